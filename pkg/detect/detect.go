// Package detect classifies raw clipboard text into one of the supported
// tree notations.
package detect

import "strings"

// Format identifies which notation a blob of text uses.
type Format int

const (
	// None means the text is not a recognizable tree notation.
	None Format = iota
	// TreeGlyph is box-drawing output, e.g. from the `tree` command.
	TreeGlyph
	// Indentation is a whitespace-indented outline.
	Indentation
	// PathList is one slash-separated path per line.
	PathList
	// ContentDelimited is an indentation tree followed by
	// ---START:name--- / ---END:name--- content blocks.
	ContentDelimited
)

func (f Format) String() string {
	switch f {
	case TreeGlyph:
		return "tree-glyph"
	case Indentation:
		return "indentation"
	case PathList:
		return "path-list"
	case ContentDelimited:
		return "content-delimited"
	default:
		return "none"
	}
}

// Markers for content-delimited blocks.
const (
	StartMarker = "---START:"
	EndMarker   = "---END:"
)

// Detect classifies text by its strongest structural signal. Glyphs and
// content markers are unambiguous and win outright; indentation beats
// slash detection because an indented path-like line is still structurally
// an indentation tree.
func Detect(text string) Format {
	if strings.ContainsAny(text, "├└│") {
		return TreeGlyph
	}
	if strings.Contains(text, StartMarker) || strings.Contains(text, EndMarker) {
		return ContentDelimited
	}

	indented := false
	slashed := false
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			indented = true
			break
		}
		if strings.ContainsAny(line, `/\`) {
			slashed = true
		}
	}
	switch {
	case indented:
		return Indentation
	case slashed:
		return PathList
	default:
		return None
	}
}
