package clipboard

import (
	"context"
	"sync/atomic"
	"time"
)

// Handler receives each new clipboard payload.
type Handler func(text string)

// Watcher polls a Reader and invokes the handler when the text changes.
// Payloads produced by the engine itself do not re-trigger because the
// watcher primes its last-seen value before the first comparison.
type Watcher struct {
	Reader   Reader
	Interval time.Duration
	OnChange Handler
	OnError  func(err error)

	enabled atomic.Bool
}

// NewWatcher returns a watcher in the enabled state.
func NewWatcher(r Reader, interval time.Duration, onChange Handler) *Watcher {
	w := &Watcher{Reader: r, Interval: interval, OnChange: onChange}
	w.enabled.Store(true)
	return w
}

// SetEnabled toggles whether changes are delivered. While disabled the
// watcher keeps tracking the clipboard, so re-enabling does not replay
// payloads copied in the meantime.
func (w *Watcher) SetEnabled(on bool) { w.enabled.Store(on) }

// Enabled reports the current toggle state.
func (w *Watcher) Enabled() bool { return w.enabled.Load() }

// Run polls until ctx is cancelled. The clipboard content at start is
// swallowed; only subsequent changes fire the handler.
func (w *Watcher) Run(ctx context.Context) error {
	last, err := w.Reader.Read()
	if err != nil {
		last = ""
		w.fail(err)
	}

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		text, err := w.Reader.Read()
		if err != nil {
			w.fail(err)
			continue
		}
		if text == last {
			continue
		}
		last = text
		if w.enabled.Load() && w.OnChange != nil {
			w.OnChange(text)
		}
	}
}

func (w *Watcher) fail(err error) {
	if w.OnError != nil {
		w.OnError(err)
	}
}
