// Package tree parses the supported clipboard notations into a tree of
// filesystem entities to create.
package tree

// Node is one filesystem entity. A tree always hangs off a single synthetic
// root (IsDir true, empty name) that is never materialized itself.
type Node struct {
	Name     string
	IsDir    bool
	Content  *string // nil means "create empty file"; files only
	Children []*Node // directories only
}

// NewRoot returns the synthetic root of a fresh tree.
func NewRoot() *Node {
	return &Node{IsDir: true}
}

// AddChild appends child and returns it.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// Child returns the direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// FindFile returns the first file node named name, depth-first, or nil.
func (n *Node) FindFile(name string) *Node {
	for _, c := range n.Children {
		if !c.IsDir && c.Name == name {
			return c
		}
		if c.IsDir {
			if found := c.FindFile(name); found != nil {
				return found
			}
		}
	}
	return nil
}

// Count returns the number of directories and files in the tree, the
// synthetic root excluded.
func (n *Node) Count() (dirs, files int) {
	for _, c := range n.Children {
		if c.IsDir {
			dirs++
			d, f := c.Count()
			dirs += d
			files += f
		} else {
			files++
		}
	}
	return dirs, files
}

// Empty reports whether parsing produced no entities at all, which callers
// treat as "not actually a tree".
func (n *Node) Empty() bool {
	return len(n.Children) == 0
}

// SetContent attaches a text body to a file node.
func (n *Node) SetContent(content string) {
	n.Content = &content
}
