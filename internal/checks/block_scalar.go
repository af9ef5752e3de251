package checks

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// blockScalarLines returns the 1-based source lines holding the content of
// literal and folded block scalars below node. The range is read from the
// source because folding drops line breaks from the decoded value.
func blockScalarLines(node *yaml.Node, lines []string) map[int]struct{} {
	found := make(map[int]struct{})

	var walk func(n *yaml.Node)

	walk = func(n *yaml.Node) {
		if n == nil {
			return
		}

		if n.Kind == yaml.ScalarNode && n.Style&(yaml.LiteralStyle|yaml.FoldedStyle) != 0 {
			markBlockLines(found, n, lines)
		}

		for _, child := range n.Content {
			walk(child)
		}
	}

	walk(node)

	return found
}

// markBlockLines adds the content lines of the block scalar n. Content starts
// after the indicator line and runs while lines are blank or indented at
// least as deep as the block.
func markBlockLines(found map[int]struct{}, n *yaml.Node, lines []string) {
	if n.Line < 1 || n.Line > len(lines) {
		return
	}

	header := strings.TrimSuffix(lines[n.Line-1], "\r")
	parent := leadingSpaces(header)

	indent := explicitIndent(header, n.Column)
	if indent > 0 {
		indent += parent
	}

	for i := n.Line; i < len(lines); i++ {
		line := strings.TrimSuffix(lines[i], "\r")

		if strings.TrimLeft(line, blanks) == "" {
			found[i+1] = struct{}{}

			continue
		}

		spaces := leadingSpaces(line)
		if indent == 0 {
			if spaces <= parent {
				return
			}

			indent = spaces
		}

		if spaces < indent {
			return
		}

		found[i+1] = struct{}{}
	}
}

// explicitIndent reads the indentation indicator following the '|' or '>'
// at the 1-based column, or 0 when there is none.
func explicitIndent(header string, column int) int {
	runes := []rune(header)
	if column < 1 || column > len(runes) {
		return 0
	}

	for _, r := range runes[column:] {
		switch {
		case r >= '1' && r <= '9':
			return int(r - '0')
		case r == '-' || r == '+':
			continue
		default:
			return 0
		}
	}

	return 0
}

func leadingSpaces(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}
