package classify

import (
	"strings"

	"clip2file/pkg/config"
	"clip2file/pkg/safety"
)

// Expand turns a classified entry into the full batch of filenames for this
// paste. A singleton result keeps the single-file path (with content); two
// or more names trigger batch materialization, which always creates empty
// files.
//
// Two shapes are recognized. When the first unconsumed line is itself a list
// of two or more valid filenames, that list is the batch, the single-entry
// classification is discarded; if the list continues the line the name was
// found on, the name rejoins the batch. Otherwise the remaining lines are
// walked one at a time, skipping blanks, and the scan stops at the first
// line that is not a valid filename candidate.
func Expand(snap *config.Snapshot, r Result) []string {
	lines := strings.Split(strings.ReplaceAll(r.rest, "\r\n", "\n"), "\n")

	if len(lines) > 0 {
		if tokens := strings.Fields(lines[0]); len(tokens) >= 2 && allCandidates(snap, tokens) {
			if r.sameLine {
				return append([]string{r.Entry.Name}, tokens...)
			}
			return tokens
		}
	}

	batch := []string{r.Entry.Name}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !isCandidate(snap, line) {
			break
		}
		batch = append(batch, line)
	}
	return batch
}

func allCandidates(snap *config.Snapshot, names []string) bool {
	for _, name := range names {
		if !isCandidate(snap, name) {
			return false
		}
	}
	return true
}

// isCandidate applies the same gate the fallback classifier uses: a valid
// filename with an allowed extension under the word-count limit.
func isCandidate(snap *config.Snapshot, name string) bool {
	return safety.IsValidFilename(name) &&
		snap.ExtensionAllowed(name) &&
		len(strings.Fields(name)) <= snap.WordCountLimit
}
