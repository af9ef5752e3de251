package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/solint/internal/model"
)

// Buffer is the line-addressed working copy that fixes edit during one run.
type Buffer struct {
	lines           []string
	trailingNewline bool
	changed         bool
}

// NewBuffer splits raw into lines.
func NewBuffer(raw string) *Buffer {
	return &Buffer{
		lines:           m.SplitLines(raw),
		trailingNewline: strings.HasSuffix(raw, "\n"),
	}
}

// Len returns the number of lines.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Line returns the 1-based line n.
func (b *Buffer) Line(n int) (string, bool) {
	if n < 1 || n > len(b.lines) {
		return "", false
	}

	return b.lines[n-1], true
}

// SetLine replaces the 1-based line n.
func (b *Buffer) SetLine(n int, text string) error {
	if n < 1 || n > len(b.lines) {
		return fmt.Errorf("line %d out of range 1..%d", n, len(b.lines))
	}

	if strings.Contains(text, "\n") {
		return fmt.Errorf("line %d: replacement spans several lines", n)
	}

	if b.lines[n-1] != text {
		b.lines[n-1] = text
		b.changed = true
	}

	return nil
}

// Changed reports whether any line was modified.
func (b *Buffer) Changed() bool {
	return b.changed
}

func (b *Buffer) String() string {
	s := strings.Join(b.lines, "\n")
	if b.trailingNewline {
		s += "\n"
	}

	return s
}
