// Package classify extracts (filename, content) pairs from freeform
// clipboard text when no tree notation was detected.
package classify

import (
	"strings"

	"clip2file/pkg/config"
)

// Entry is one file to create: Name plus an optional body. An empty Content
// means "create an empty file".
type Entry struct {
	Name    string
	Content string
}

// Result couples the classified entry with the text the classifier did not
// consume, which the batch expander re-examines for further filenames.
type Result struct {
	Entry Entry

	// rest is everything after the consumed prefix.
	rest string
	// sameLine is true when rest is the tail of the line the filename was
	// found on (the leading-word heuristic), false when it starts on the
	// following line.
	sameLine bool
}

// Classify runs the priority chain against text: configured regexes first,
// then the leading-word heuristic for single-line payloads, then the bare
// word-count fallback. Only the first matching tier is used. It returns
// false when nothing matched or the required creation features are off.
func Classify(snap *config.Snapshot, text string) (Result, bool) {
	if !snap.CreateEmpty && !snap.CreateWithContent {
		return Result{}, false
	}

	first, remainder := splitFirstLine(text)
	if first == "" {
		return Result{}, false
	}

	if r, ok, matched := matchPatterns(snap, first, remainder); matched {
		return r, ok
	}
	if remainder == "" {
		if r, ok := matchLeadingWord(snap, first); ok {
			return r, true
		}
	}
	return matchWholeLine(snap, first, remainder)
}

// matchPatterns is priority 1: the configured regex chain, in order. A
// pattern matches when it covers the whole first line and its first capture
// group is non-empty; the group becomes the filename and everything after
// the first line becomes content. matched reports whether any pattern
// claimed the line; a claimed line whose outcome is disabled ends
// classification, it never falls through to a lower tier.
func matchPatterns(snap *config.Snapshot, first, remainder string) (r Result, ok, matched bool) {
	for _, re := range snap.Patterns {
		if re.NumSubexp() < 1 {
			continue
		}
		m := re.FindStringSubmatch(first)
		if m == nil || m[0] != first || m[1] == "" {
			continue
		}
		if !featureFor(snap, remainder) {
			return Result{}, false, true
		}
		return Result{
			Entry: Entry{Name: m[1], Content: remainder},
			rest:  remainder,
		}, true, true
	}
	return Result{}, false, false
}

// matchLeadingWord is priority 2: the first whitespace-delimited token is a
// filename with an allowed extension, the rest of the line is its content.
// Only attempted when the clipboard is a single line with something after
// the token; a bare filename is the word-count fallback's job.
func matchLeadingWord(snap *config.Snapshot, first string) (Result, bool) {
	token, tail := splitFirstToken(first)
	if token == "" || tail == "" || !snap.ExtensionAllowed(token) {
		return Result{}, false
	}
	if !snap.CreateWithContent {
		return Result{}, false
	}
	return Result{
		Entry:    Entry{Name: token, Content: tail},
		rest:     tail,
		sameLine: true,
	}, true
}

// matchWholeLine is priority 3: the entire first line is the filename when
// its extension is allowed and it stays under the word-count limit. Always
// yields an empty file.
func matchWholeLine(snap *config.Snapshot, first, remainder string) (Result, bool) {
	if !snap.CreateEmpty {
		return Result{}, false
	}
	if !snap.ExtensionAllowed(first) {
		return Result{}, false
	}
	if len(strings.Fields(first)) > snap.WordCountLimit {
		return Result{}, false
	}
	return Result{
		Entry: Entry{Name: first},
		rest:  remainder,
	}, true
}

// featureFor maps an outcome to the toggle that must be on for it: trailing
// content needs create_with_content, an empty body needs create_empty.
func featureFor(snap *config.Snapshot, content string) bool {
	if content != "" {
		return snap.CreateWithContent
	}
	return snap.CreateEmpty
}

func splitFirstLine(text string) (first, remainder string) {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return strings.TrimSpace(text[:i]), text[i+1:]
	}
	return strings.TrimSpace(text), ""
}

func splitFirstToken(line string) (token, tail string) {
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		return line[:i], strings.TrimLeft(line[i:], " \t")
	}
	return line, ""
}
