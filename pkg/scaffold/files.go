package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"clip2file/pkg/notify"
	"clip2file/pkg/safety"
)

// ApplyFiles creates the given files directly under dest. Targets that do
// not exist yet are created outright; if any target already exists, the
// conflict decision is asked exactly once and applied uniformly to all
// conflicting members. Batch semantics: a single spec may carry content,
// multi-file batches are always empty files.
func (m *Materializer) ApplyFiles(dest string, files []FileSpec) *Report {
	report := &Report{}

	var conflicting []FileSpec
	for _, f := range files {
		if !safety.IsValidFilename(f.Name) {
			report.reject(fmt.Errorf("%w: %q", ErrInvalidName, f.Name))
			continue
		}
		full := filepath.Join(dest, f.Name)
		if _, err := os.Lstat(full); err == nil {
			conflicting = append(conflicting, f)
			continue
		}
		if err := createNew(full, f.Content); err != nil {
			report.reject(fmt.Errorf("failed to create %s: %w", f.Name, err))
			continue
		}
		report.created(f.Name, false)
		if m.OnCreate != nil {
			m.OnCreate(full, false)
		}
	}

	if len(conflicting) == 0 {
		return report
	}

	action := notify.ActionSkip
	if m.Confirm != nil {
		action = m.Confirm.ConfirmConflict(names(conflicting))
	}

	for _, f := range conflicting {
		full := filepath.Join(dest, f.Name)
		switch action {
		case notify.ActionReplace:
			if err := replaceAtomic(full, f.Content); err != nil {
				report.reject(fmt.Errorf("failed to replace %s: %w", f.Name, err))
				continue
			}
			report.created(f.Name, false)
			if m.OnCreate != nil {
				m.OnCreate(full, false)
			}
		case notify.ActionRename:
			fresh, err := freeName(full)
			if err != nil {
				report.reject(fmt.Errorf("cannot rename %s: %w", f.Name, err))
				continue
			}
			if err := createNew(fresh, f.Content); err != nil {
				report.reject(fmt.Errorf("failed to create %s: %w", filepath.Base(fresh), err))
				continue
			}
			report.created(filepath.Base(fresh), false)
			if m.OnCreate != nil {
				m.OnCreate(fresh, false)
			}
		default:
			// anything but the recognized actions means skip
			report.Skipped = append(report.Skipped, f.Name)
		}
	}
	return report
}

func names(files []FileSpec) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name
	}
	return out
}

// replaceAtomic writes content into a uniquely named sibling temp file and
// renames it over target, so the target is never observable in a truncated
// state. A failed attempt removes the temp file and leaves the target
// untouched.
func replaceAtomic(target, content string) error {
	tmp, err := tempName(target)
	if err != nil {
		return err
	}
	if err := createNew(tmp, content); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// tempName finds a free sibling name with _tmp_<n> inserted before the
// extension.
func tempName(target string) (string, error) {
	stem, ext := splitExt(target)
	for n := 0; n < maxNameAttempts; n++ {
		candidate := fmt.Sprintf("%s_tmp_%d%s", stem, n, ext)
		if _, err := os.Lstat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}
	return "", ErrNoFreeName
}

// freeName finds a free sibling name with " (n)" inserted before the
// extension, the way file managers deduplicate copies.
func freeName(target string) (string, error) {
	stem, ext := splitExt(target)
	for n := 1; n <= maxNameAttempts; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", stem, n, ext)
		if _, err := os.Lstat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}
	return "", ErrNoFreeName
}

func splitExt(path string) (stem, ext string) {
	ext = filepath.Ext(path)
	return strings.TrimSuffix(path, ext), ext
}
