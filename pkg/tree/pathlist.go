package tree

import "strings"

// parsePathList handles one slash-separated path per line, as produced by
// `find` or a flat file listing. Intermediate components become directories,
// reused by exact name when already present. The final component is a file
// when it contains a dot after its first character, else a directory.
func parsePathList(lines []string) *Node {
	root := NewRoot()
	for _, line := range lines {
		path := strings.TrimSpace(strings.ReplaceAll(line, `\`, "/"))
		if path == "" {
			continue
		}
		parts := strings.Split(path, "/")
		cur := root
		for i, part := range parts {
			if part == "" {
				continue
			}
			last := i == len(parts)-1
			if !last {
				cur = walkDir(cur, part)
				continue
			}
			if isFileName(part) {
				if cur.Child(part) == nil {
					cur.AddChild(&Node{Name: part})
				}
			} else {
				cur = walkDir(cur, part)
			}
		}
	}
	return root
}

// walkDir returns the existing directory child named name, creating it first
// when absent.
func walkDir(parent *Node, name string) *Node {
	if existing := parent.Child(name); existing != nil {
		return existing
	}
	return parent.AddChild(&Node{Name: name, IsDir: true})
}

// isFileName treats a path component as a file when it has a dot after the
// first character, so dotfiles like ".config" still read as directories.
func isFileName(name string) bool {
	return strings.Contains(name[1:], ".")
}
