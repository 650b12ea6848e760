package config

import (
	"path/filepath"
	"regexp"
	"strings"
	"sync/atomic"
)

// Snapshot is an immutable view of one configuration generation, with the
// content regexes already compiled. Classification reads exactly one
// snapshot per invocation, so a mid-operation reload can never mix old and
// new fields.
type Snapshot struct {
	Config
	Patterns []*regexp.Regexp

	exts map[string]struct{}
}

// NewSnapshot freezes cfg into a snapshot. Uncompilable regexes are dropped,
// never fatal.
func NewSnapshot(cfg *Config) *Snapshot {
	s := &Snapshot{
		Config: *cfg,
		exts:   make(map[string]struct{}, len(cfg.AllowedExtensions)),
	}
	for _, ext := range cfg.AllowedExtensions {
		s.exts[ext] = struct{}{}
	}
	for _, pattern := range cfg.ContentRegexes {
		if pattern == "" {
			continue
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}
		s.Patterns = append(s.Patterns, re)
	}
	return s
}

// ExtensionAllowed reports whether name carries one of the configured
// extensions.
func (s *Snapshot) ExtensionAllowed(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	_, ok := s.exts[ext]
	return ok
}

// Store hands out the current snapshot and lets the file watcher swap in a
// new one atomically.
type Store struct {
	cur atomic.Pointer[Snapshot]
}

// NewStore returns a store seeded with snap.
func NewStore(snap *Snapshot) *Store {
	st := &Store{}
	st.cur.Store(snap)
	return st
}

// Current returns the live snapshot.
func (st *Store) Current() *Snapshot {
	return st.cur.Load()
}

// Swap publishes a new snapshot.
func (st *Store) Swap(snap *Snapshot) {
	st.cur.Store(snap)
}
