package report

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	m "github.com/mouse-blink/solint/internal/model"
)

const documentationCheck m.CheckName = "documentation"

// Context returns the offending line and a caret under the problem column.
// It is empty for fixed problems, for the documentation check and when the
// line is not in raw.
func Context(p m.Problem, raw string) string {
	if p.Kind == m.KindFixed || p.Check == documentationCheck {
		return ""
	}

	lines := m.SplitLines(raw)
	if p.Line < 1 || p.Line > len(lines) {
		return ""
	}

	line := []rune(lines[p.Line-1])

	offset := 1
	for i, r := range line {
		if !unicode.IsSpace(r) {
			offset = i

			break
		}
	}

	return "\n  " + strings.TrimSpace(string(line)) + "\n" + caretLine(line, offset, p.Column) + "\n\n"
}

// caretLine pads the caret by the display width of the text between the
// first non-blank character and the column, plus the two-space indent.
func caretLine(line []rune, offset, column int) string {
	pad := column + 1 - offset

	if end := column - 1; offset <= end && end <= len(line) {
		pad = runewidth.StringWidth(string(line[offset:end])) + 2
	}

	if pad < 0 {
		pad = 0
	}

	return strings.Repeat(" ", pad) + "^"
}
