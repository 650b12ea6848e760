package tree

import "strings"

// parseTreeGlyph handles box-drawing output such as the `tree` command or an
// AI assistant produces. Depth comes from the drawing prefix, the label is
// whatever survives stripping the drawing characters, and a trailing slash
// marks a directory.
func parseTreeGlyph(lines []string) *Node {
	root := NewRoot()
	stack := []openDir{{root, -1}}

	for _, line := range lines {
		depth := glyphDepth(line)
		label := strings.TrimSpace(strings.TrimLeft(line, " │├└─"))
		if label == "" {
			continue
		}
		isDir := strings.HasSuffix(label, "/")
		label = strings.TrimSuffix(label, "/")
		if label == "" {
			continue
		}

		stack = unwind(stack, depth)
		node := stack[len(stack)-1].node.AddChild(&Node{Name: label, IsDir: isDir})
		if isDir {
			stack = append(stack, openDir{node, depth})
		}
	}
	return root
}

// glyphDepth counts groups of 4 leading runes drawn from spaces and the
// vertical bar glyph.
func glyphDepth(line string) int {
	count := 0
	for _, r := range line {
		if r != ' ' && r != '│' {
			break
		}
		count++
	}
	return count / 4
}

// openDir is a currently open ancestor on the parse stack. Directories are
// pushed with their depth; files never are.
type openDir struct {
	node  *Node
	depth int
}

// unwind pops open directories until the top is a strict ancestor of a node
// at the given depth.
func unwind(stack []openDir, depth int) []openDir {
	for len(stack) > 1 && depth <= stack[len(stack)-1].depth {
		stack = stack[:len(stack)-1]
	}
	return stack
}
