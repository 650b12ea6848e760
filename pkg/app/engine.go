// Package app wires detection, parsing, classification and materialization
// into the engine both the watch loop and one-shot invocations drive.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"clip2file/pkg/classify"
	"clip2file/pkg/config"
	"clip2file/pkg/detect"
	"clip2file/pkg/logger"
	"clip2file/pkg/notify"
	"clip2file/pkg/scaffold"
	"clip2file/pkg/tree"
)

// DestinationProvider resolves where files should be created. Returning
// ok=false means no usable destination exists and the payload is dropped
// without side effects.
type DestinationProvider interface {
	Destination() (dir string, ok bool)
}

// Fixed always points at one directory.
type Fixed string

// Destination implements DestinationProvider.
func (f Fixed) Destination() (string, bool) { return string(f), f != "" }

// Engine processes one clipboard payload at a time. Every invocation reads a
// single configuration snapshot, so a concurrent reload never mixes
// generations within one operation.
type Engine struct {
	Store   *config.Store
	Log     *logger.Console
	Notify  notify.Notifier
	Confirm notify.Confirmer

	// Dest overrides the configured destination when non-nil.
	Dest DestinationProvider
}

// Process runs the full pipeline on text. A nil report with a nil error
// means the payload produced no work: empty text, no destination, or text
// that classified as neither a tree nor a filename.
func (e *Engine) Process(text string) (*scaffold.Report, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	snap := e.Store.Current()

	dest, ok := e.resolveDest(snap)
	if !ok {
		e.Log.Debugf("no destination available, ignoring clipboard text")
		return nil, nil
	}

	m := &scaffold.Materializer{Confirm: e.Confirm}

	if snap.CreateTree {
		if format := detect.Detect(text); format != detect.None {
			root := tree.Parse(format, text)
			if !root.Empty() {
				e.Log.Debugf("detected %s tree", format)
				report, err := m.ApplyTree(dest, root, options(snap))
				e.announceTree(dest, report, err)
				return report, err
			}
			e.Log.Debugf("%s detection yielded no entries, falling through", format)
		}
	}

	result, ok := classify.Classify(snap, text)
	if !ok {
		e.Log.Debugf("clipboard text did not classify as a filename")
		return nil, nil
	}

	batch := classify.Expand(snap, result)
	files := make([]scaffold.FileSpec, len(batch))
	for i, name := range batch {
		files[i] = scaffold.FileSpec{Name: name}
	}
	if len(batch) == 1 {
		files[0].Content = result.Entry.Content
	}

	report := m.ApplyFiles(dest, files)
	e.announceFiles(dest, report)
	return report, nil
}

// Plan reports what Process would create, without touching the filesystem.
// The returned paths are destination-relative.
func (e *Engine) Plan(text string) []PlanEntry {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	snap := e.Store.Current()

	if snap.CreateTree {
		if format := detect.Detect(text); format != detect.None {
			root := tree.Parse(format, text)
			if !root.Empty() {
				var out []PlanEntry
				walkPlan(root, "", &out)
				return out
			}
		}
	}

	result, ok := classify.Classify(snap, text)
	if !ok {
		return nil
	}
	var out []PlanEntry
	for _, name := range classify.Expand(snap, result) {
		out = append(out, PlanEntry{Path: name})
	}
	return out
}

// PlanEntry is one entity a payload would materialize.
type PlanEntry struct {
	Path  string
	IsDir bool
}

func walkPlan(n *tree.Node, relParent string, out *[]PlanEntry) {
	for _, child := range n.Children {
		rel := filepath.Join(relParent, child.Name)
		*out = append(*out, PlanEntry{Path: rel, IsDir: child.IsDir})
		walkPlan(child, rel, out)
	}
}

// resolveDest picks the override provider when set, otherwise the configured
// destination, which must exist and be a directory.
func (e *Engine) resolveDest(snap *config.Snapshot) (string, bool) {
	if e.Dest != nil {
		return e.Dest.Destination()
	}
	if snap.Destination == "" {
		return "", false
	}
	info, err := os.Stat(snap.Destination)
	if err != nil || !info.IsDir() {
		e.Log.Warnf("configured destination %s is not a directory", snap.Destination)
		return "", false
	}
	return snap.Destination, true
}

func options(snap *config.Snapshot) scaffold.Options {
	return scaffold.Options{
		SkipExistingDirs:     snap.SkipExistingDirs,
		AutoCreateParentDirs: snap.AutoCreateParentDirs,
		LargeTreeThreshold:   snap.LargeTreeThreshold,
	}
}

func (e *Engine) announceTree(dest string, report *scaffold.Report, err error) {
	if err != nil {
		e.notify("Tree Creation Failed", err.Error(), notify.SeverityError)
		return
	}
	e.warnRejected(report)
	if report.CreatedDirs+report.CreatedFiles == 0 {
		if len(report.Skipped) > 0 {
			e.notify("Nothing Created",
				fmt.Sprintf("All %d entries already existed in %s", len(report.Skipped), dest),
				notify.SeverityWarning)
		}
		return
	}
	msg := fmt.Sprintf("Created %d directories and %d files in %s",
		report.CreatedDirs, report.CreatedFiles, dest)
	if len(report.Skipped) > 0 {
		msg += fmt.Sprintf(" (%d skipped)", len(report.Skipped))
	}
	e.notify("Tree Created", msg, notify.SeverityInfo)
}

func (e *Engine) announceFiles(dest string, report *scaffold.Report) {
	e.warnRejected(report)
	switch {
	case report.CreatedFiles == 1 && len(report.Skipped) == 0:
		e.notify("File Created",
			fmt.Sprintf("Created file: %s", filepath.Join(dest, report.Created[0])),
			notify.SeverityInfo)
	case report.CreatedFiles > 0:
		msg := fmt.Sprintf("Created %d files in %s", report.CreatedFiles, dest)
		if len(report.Skipped) > 0 {
			msg += fmt.Sprintf(" (%d skipped)", len(report.Skipped))
		}
		e.notify("Files Created", msg, notify.SeverityInfo)
	case len(report.Skipped) > 0:
		e.notify("Nothing Created",
			fmt.Sprintf("Skipped %d existing file(s) in %s", len(report.Skipped), dest),
			notify.SeverityWarning)
	}
}

func (e *Engine) warnRejected(report *scaffold.Report) {
	for _, err := range report.Rejected {
		e.Log.Warnf("%v", err)
	}
	if n := len(report.Rejected); n > 0 {
		e.notify("Entries Rejected", fmt.Sprintf("%d entr(ies) failed validation", n),
			notify.SeverityWarning)
	}
}

func (e *Engine) notify(title, message string, severity notify.Severity) {
	if e.Notify != nil {
		e.Notify.Notify(title, message, severity)
	}
}
