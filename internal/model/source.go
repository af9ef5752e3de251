// Package model defines the data structures shared by the linter layers.
package model

import "gopkg.in/yaml.v3"

// Path represents a file system path.
type Path string

// Source is a document as read from disk, before parsing.
type Source struct {
	Path     Path   // path as provided by the user
	FullPath Path   // expanded absolute path
	FileName string // base name
	Raw      string
}

// Document is a parsed YAML manifest. It is built once per run and must not
// be mutated by checks.
type Document struct {
	Path     Path
	FullPath Path
	FileName string
	Raw      string

	// Node is the yaml.v3 document node, kept for positions.
	Node *yaml.Node
	// Value is the decoded generic form of Node.
	Value any
}

// Lines splits the raw text of the document on newlines.
func (d *Document) Lines() []string {
	return SplitLines(d.Raw)
}

// SplitLines splits text on "\n" without producing a trailing empty element
// for a terminating newline.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := make([]string, 0, 16)
	start := 0

	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}

	if start < len(text) {
		lines = append(lines, text[start:])
	}

	return lines
}

// TreeEntry is a flattened tree node used for display.
type TreeEntry struct {
	Depth  int
	Key    string
	Parent string
	Line   int
	Column int
	Kind   string
}

// CommentOffset returns the byte offset of the '#' opening a YAML comment on
// line. A '#' only opens a comment at line start or after a blank, and never
// inside a quoted scalar.
func CommentOffset(line string) (int, bool) {
	var quote byte

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch {
		case quote != 0:
			if c == quote {
				if quote == '\'' && i+1 < len(line) && line[i+1] == '\'' {
					i++

					continue
				}

				quote = 0
			} else if c == '\\' && quote == '"' {
				i++
			}
		case c == '"' || c == '\'':
			if i == 0 || opensQuote(line[i-1]) {
				quote = c
			}
		case c == '#':
			if i == 0 || line[i-1] == ' ' || line[i-1] == '\t' {
				return i, true
			}
		}
	}

	return 0, false
}

func opensQuote(prev byte) bool {
	switch prev {
	case ' ', '\t', ':', '-', '[', '{', ',':
		return true
	}

	return false
}
