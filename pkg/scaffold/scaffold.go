// Package scaffold materializes parsed trees and classified file batches
// under a destination directory, with conflict resolution and path-safety
// checks on every entity it touches.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"clip2file/pkg/notify"
	"clip2file/pkg/safety"
	"clip2file/pkg/tree"
)

var (
	// ErrInvalidName marks a node or file rejected by filename validation.
	ErrInvalidName = errors.New("invalid filename")
	// ErrPathUnsafe marks a tree path that would escape the destination.
	ErrPathUnsafe = errors.New("path escapes destination")
	// ErrNoFreeName means the bounded rename/temp-name search ran out.
	ErrNoFreeName = errors.New("no free name after bounded attempts")
	// ErrDeclined means the user refused the large-tree confirmation.
	ErrDeclined = errors.New("declined by user")
	// ErrDirConflict means a file occupies a path a directory needs.
	ErrDirConflict = errors.New("existing file blocks directory")
)

// maxNameAttempts bounds both the rename-suffix and temp-name searches.
const maxNameAttempts = 1000

// Options are the materialization-relevant configuration toggles.
type Options struct {
	SkipExistingDirs     bool
	AutoCreateParentDirs bool
	LargeTreeThreshold   int
}

// FileSpec is one file to create in single or batch mode.
type FileSpec struct {
	Name    string
	Content string
}

// CreationCallback is invoked for every entity actually created.
type CreationCallback func(path string, isDir bool)

// Materializer walks trees and batches and performs the filesystem work.
// Confirm may be nil, which answers skip to conflicts and yes to size
// prompts.
type Materializer struct {
	Confirm  notify.Confirmer
	OnCreate CreationCallback
}

// Report summarizes one materialization run.
type Report struct {
	CreatedDirs  int
	CreatedFiles int
	Created      []string // destination-relative paths, rename suffixes included
	Skipped      []string
	Rejected     []error // per-entity failures that did not abort the run
}

func (r *Report) created(rel string, isDir bool) {
	if isDir {
		r.CreatedDirs++
	} else {
		r.CreatedFiles++
	}
	r.Created = append(r.Created, rel)
}

func (r *Report) reject(err error) {
	r.Rejected = append(r.Rejected, err)
}

// ApplyTree creates every child of root under dest. Invalid or unsafe nodes
// abort their own subtree and are collected in the report; an I/O failure or
// a declined size confirmation aborts the whole operation. Existing files
// are never overwritten in tree mode.
func (m *Materializer) ApplyTree(dest string, root *tree.Node, opts Options) (*Report, error) {
	report := &Report{}

	if dirs, files := root.Count(); dirs+files > opts.LargeTreeThreshold {
		if m.Confirm != nil && !m.Confirm.ConfirmLargeBatch(dirs, files) {
			return report, ErrDeclined
		}
	}

	for _, child := range root.Children {
		if err := m.applyNode(dest, "", child, opts, report); err != nil {
			return report, err
		}
	}
	return report, nil
}

// applyNode returns an error only for failures that must abort the whole
// tree; per-node rejections go into the report.
func (m *Materializer) applyNode(dest, relParent string, n *tree.Node, opts Options, report *Report) error {
	if !safety.IsValidFilename(n.Name) {
		report.reject(fmt.Errorf("%w: %q", ErrInvalidName, n.Name))
		return nil
	}
	rel := filepath.Join(relParent, n.Name)
	if !safety.IsPathSafe(rel) {
		report.reject(fmt.Errorf("%w: %q", ErrPathUnsafe, rel))
		return nil
	}
	full := filepath.Join(dest, rel)

	if n.IsDir {
		return m.applyDir(dest, rel, full, n, opts, report)
	}
	return m.applyFile(rel, full, n, opts, report)
}

func (m *Materializer) applyDir(dest, rel, full string, n *tree.Node, opts Options, report *Report) error {
	info, err := os.Lstat(full)
	switch {
	case err == nil && !info.IsDir():
		if opts.SkipExistingDirs {
			report.Skipped = append(report.Skipped, rel)
			return nil
		}
		return fmt.Errorf("%w: %s", ErrDirConflict, rel)
	case err == nil:
		// already a directory, just descend
	default:
		if mkErr := os.MkdirAll(full, 0o755); mkErr != nil {
			return fmt.Errorf("failed to create directory %s: %w", rel, mkErr)
		}
		report.created(rel, true)
		if m.OnCreate != nil {
			m.OnCreate(full, true)
		}
	}

	for _, child := range n.Children {
		if err := m.applyNode(dest, rel, child, opts, report); err != nil {
			return err
		}
	}
	return nil
}

func (m *Materializer) applyFile(rel, full string, n *tree.Node, opts Options, report *Report) error {
	parent := filepath.Dir(full)
	if _, err := os.Lstat(parent); os.IsNotExist(err) {
		if !opts.AutoCreateParentDirs {
			report.reject(fmt.Errorf("missing parent directory for %s", rel))
			return nil
		}
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("failed to create parent of %s: %w", rel, err)
		}
	}

	if _, err := os.Lstat(full); err == nil {
		// tree mode never overwrites silently
		report.Skipped = append(report.Skipped, rel)
		return nil
	}

	var content string
	if n.Content != nil {
		content = *n.Content
	}
	if err := createNew(full, content); err != nil {
		return fmt.Errorf("failed to create %s: %w", rel, err)
	}
	report.created(rel, false)
	if m.OnCreate != nil {
		m.OnCreate(full, false)
	}
	return nil
}

// createNew writes a file that must not exist yet, so a concurrent creation
// surfaces as an error instead of a silent overwrite.
func createNew(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
