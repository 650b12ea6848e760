// Package notify carries outcome reporting and the two confirmation prompts
// the engine needs. Implementations here target the terminal; a tray or
// desktop-notification frontend would provide its own.
package notify

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Severity classifies a notification.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// Notifier receives fire-and-forget outcome reports.
type Notifier interface {
	Notify(title, message string, severity Severity)
}

// Action is the conflict decision, fixed for a whole operation.
type Action int

const (
	ActionSkip Action = iota
	ActionReplace
	ActionRename
)

func (a Action) String() string {
	switch a {
	case ActionReplace:
		return "replace"
	case ActionRename:
		return "rename"
	default:
		return "skip"
	}
}

// Confirmer answers the engine's blocking questions.
type Confirmer interface {
	// ConfirmConflict decides what to do with already-existing targets.
	ConfirmConflict(names []string) Action
	// ConfirmLargeBatch approves materializing a tree of the given size.
	ConfirmLargeBatch(dirCount, fileCount int) bool
}

// Interactive reports whether stdin is attached to a terminal, i.e. whether
// prompting a human is possible at all.
func Interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Console is a Notifier that prints severity-colored lines.
type Console struct {
	Writer io.Writer
	mu     sync.Mutex
}

// NewConsole returns a console notifier writing to w (os.Stderr when nil).
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stderr
	}
	return &Console{Writer: w}
}

// Notify implements Notifier.
func (c *Console) Notify(title, message string, severity Severity) {
	label := title
	if (c.Writer == os.Stdout || c.Writer == os.Stderr) && !color.NoColor {
		switch severity {
		case SeverityError:
			label = color.New(color.FgRed, color.Bold).Sprint(title)
		case SeverityWarning:
			label = color.New(color.FgYellow).Sprint(title)
		default:
			label = color.New(color.FgGreen).Sprint(title)
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.Writer, "%s: %s\n", label, message)
}

// Terminal is a Confirmer that prompts on In and reads a one-letter answer.
// Any answer outside the recognized set means skip.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

// NewTerminal returns a Confirmer prompting on stdin/stderr.
func NewTerminal() *Terminal {
	return &Terminal{In: os.Stdin, Out: os.Stderr}
}

// ConfirmConflict implements Confirmer.
func (t *Terminal) ConfirmConflict(names []string) Action {
	fmt.Fprintf(t.Out, "%d target(s) already exist:\n", len(names))
	for i, name := range names {
		if i == 5 {
			fmt.Fprintf(t.Out, "  ... and %d more\n", len(names)-i)
			break
		}
		fmt.Fprintf(t.Out, "  %s\n", name)
	}
	fmt.Fprint(t.Out, "Replace, skip, or rename? [r/s/n]: ")

	var resp string
	if _, err := fmt.Fscanln(t.In, &resp); err != nil {
		return ActionSkip
	}
	switch strings.ToLower(strings.TrimSpace(resp)) {
	case "r", "replace":
		return ActionReplace
	case "n", "rename":
		return ActionRename
	default:
		return ActionSkip
	}
}

// ConfirmLargeBatch implements Confirmer.
func (t *Terminal) ConfirmLargeBatch(dirCount, fileCount int) bool {
	fmt.Fprintf(t.Out, "About to create %d directories and %d files. Proceed? [y/N]: ",
		dirCount, fileCount)
	var resp string
	if _, err := fmt.Fscanln(t.In, &resp); err != nil {
		return false
	}
	resp = strings.ToLower(strings.TrimSpace(resp))
	return resp == "y" || resp == "yes"
}

// Static is a Confirmer with fixed answers, for non-interactive runs.
type Static struct {
	Conflict   Action
	LargeBatch bool
}

// ConfirmConflict implements Confirmer.
func (s Static) ConfirmConflict([]string) Action { return s.Conflict }

// ConfirmLargeBatch implements Confirmer.
func (s Static) ConfirmLargeBatch(int, int) bool { return s.LargeBatch }
