package tree

import "strings"

type indentEntry struct {
	indent int
	name   string
	isDir  bool
}

// parseIndentation handles whitespace-indented outlines. A tab counts as 4
// spaces. Directories are marked by a trailing slash, or inferred when the
// next entry is indented deeper.
func parseIndentation(lines []string) *Node {
	return buildIndented(collectIndented(lines))
}

func collectIndented(lines []string) []indentEntry {
	var entries []indentEntry
	for _, line := range lines {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		isDir := strings.HasSuffix(name, "/")
		name = strings.TrimSuffix(name, "/")
		if name == "" {
			continue
		}
		entries = append(entries, indentEntry{countIndent(line), name, isDir})
	}
	// second pass: an entry followed by a deeper one is a directory even
	// without the slash
	for i := range entries {
		if !entries[i].isDir && i+1 < len(entries) && entries[i+1].indent > entries[i].indent {
			entries[i].isDir = true
		}
	}
	return entries
}

func buildIndented(entries []indentEntry) *Node {
	root := NewRoot()
	stack := []openDir{{root, -1}}
	for _, e := range entries {
		for len(stack) > 1 && stack[len(stack)-1].depth >= e.indent {
			stack = stack[:len(stack)-1]
		}
		node := stack[len(stack)-1].node.AddChild(&Node{Name: e.name, IsDir: e.isDir})
		if e.isDir {
			stack = append(stack, openDir{node, e.indent})
		}
	}
	return root
}

func countIndent(line string) int {
	n := 0
	for _, r := range line {
		switch r {
		case ' ':
			n++
		case '\t':
			n += 4
		default:
			return n
		}
	}
	return n
}
