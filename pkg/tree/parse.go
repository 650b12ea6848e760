package tree

import (
	"strings"

	"clip2file/pkg/detect"
)

// parseFunc converts pre-split lines into a tree under a fresh root.
type parseFunc func(lines []string) *Node

var parsers = map[detect.Format]parseFunc{
	detect.TreeGlyph:        parseTreeGlyph,
	detect.Indentation:      parseIndentation,
	detect.PathList:         parsePathList,
	detect.ContentDelimited: parseContentDelimited,
}

// Parse converts text in the given notation into a tree. Lines that do not
// yield a usable name are skipped; a root with no children signals "not a
// tree" to the caller (check with Node.Empty), never an error.
func Parse(format detect.Format, text string) *Node {
	fn, ok := parsers[format]
	if !ok {
		return NewRoot()
	}
	return fn(splitLines(text))
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
