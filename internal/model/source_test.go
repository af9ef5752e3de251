package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\nb"))
	assert.Equal(t, []string{"", "a"}, SplitLines("\na\n"))
	assert.Equal(t, []string{"a", ""}, SplitLines("a\n\n"))
}

func TestDocumentLines(t *testing.T) {
	doc := &Document{Raw: "x: 1\ny: 2\n"}
	assert.Equal(t, []string{"x: 1", "y: 2"}, doc.Lines())
}

func TestCommentOffset(t *testing.T) {
	tests := []struct {
		line   string
		offset int
		found  bool
	}{
		{"# top", 0, true},
		{"  # indented", 2, true},
		{"a: 1 # trailing", 5, true},
		{"a: 1\t# after tab", 5, true},
		{"a: b#c", 0, false},
		{`a: "x # y"`, 0, false},
		{`a: "esc \" # still"`, 0, false},
		{`a: 'it''s # here'`, 0, false},
		{`a: "x" # after`, 7, true},
		{"url: http://x/#frag", 0, false},
		{"a: don't # note", 9, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			offset, found := CommentOffset(tt.line)
			assert.Equal(t, tt.found, found)

			if tt.found {
				assert.Equal(t, tt.offset, offset)
			}
		})
	}
}
