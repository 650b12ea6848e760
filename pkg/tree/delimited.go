package tree

import (
	"regexp"
	"strings"
)

var (
	startMarkerRe = regexp.MustCompile(`^---START:(.+?)---\s*$`)
	endMarkerRe   = regexp.MustCompile(`^---END:(.+?)---\s*$`)
)

// parseContentDelimited handles an indentation tree followed by
// ---START:name--- / ---END:name--- blocks carrying file bodies. The lines
// outside the blocks form the scaffold; each END marker attaches the
// accumulated block to the file node of that name, found depth-first. A
// block naming a file absent from the scaffold becomes a new file under the
// root, so content-only payloads still materialize.
func parseContentDelimited(lines []string) *Node {
	var scaffold []string
	inBlock := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case startMarkerRe.MatchString(trimmed):
			inBlock = true
		case endMarkerRe.MatchString(trimmed):
			inBlock = false
		case !inBlock:
			scaffold = append(scaffold, line)
		}
	}
	root := parseIndentation(scaffold)

	var body []string
	collecting := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if startMarkerRe.MatchString(trimmed) {
			collecting = true
			body = body[:0]
			continue
		}
		if m := endMarkerRe.FindStringSubmatch(trimmed); m != nil {
			attachContent(root, strings.TrimSpace(m[1]), strings.Join(body, "\n"))
			collecting = false
			body = body[:0]
			continue
		}
		if collecting {
			body = append(body, line)
		}
	}
	return root
}

func attachContent(root *Node, name, content string) {
	node := root.FindFile(name)
	if node == nil {
		node = root.AddChild(&Node{Name: name})
	}
	node.SetContent(content)
}
