// Package clipboard reads text from the system clipboard and polls it for
// changes. Everything is expressed against the Reader interface so the watch
// loop and the engine stay testable without a real clipboard.
package clipboard

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
)

// Reader yields the current clipboard text.
type Reader interface {
	Read() (string, error)
}

// ReaderFunc adapts a plain function to Reader.
type ReaderFunc func() (string, error)

func (f ReaderFunc) Read() (string, error) { return f() }

// System reads the real OS clipboard.
type System struct{}

// Read implements Reader.
func (System) Read() (string, error) { return clipboard.ReadAll() }

// Supported reports whether a clipboard backend is available on this system.
func Supported() bool { return !clipboard.Unsupported }

// Input resolves where a one-shot invocation takes its text from: a piped
// stdin wins, otherwise the clipboard.
func Input() (string, error) {
	fi, err := os.Stdin.Stat()
	if err == nil && fi.Mode()&os.ModeCharDevice == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return clipboard.ReadAll()
}
