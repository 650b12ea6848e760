package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the configuration file whenever it changes on disk and
// swaps the result into a Store. Reload failures keep the last-known-good
// snapshot live.
type Watcher struct {
	path  string
	store *Store

	// OnReload is called after a successful swap, OnError after a failed
	// reload. Both are optional.
	OnReload func(*Snapshot)
	OnError  func(error)
}

// NewWatcher watches path and publishes reloads into store.
func NewWatcher(path string, store *Store) *Watcher {
	return &Watcher{path: path, store: store}
}

// Run blocks until ctx is cancelled. The parent directory is watched rather
// than the file itself so editors that replace the file on save are still
// observed.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	base := filepath.Base(w.path)
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			// Editors fire bursts of events per save; collapse them.
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(100*time.Millisecond, w.reload)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			if w.OnError != nil {
				w.OnError(err)
			}
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		if w.OnError != nil {
			w.OnError(err)
		}
		return
	}
	snap := NewSnapshot(cfg)
	w.store.Swap(snap)
	if w.OnReload != nil {
		w.OnReload(snap)
	}
}
