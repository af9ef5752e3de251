package checks

import (
	"strings"
	"unicode/utf8"

	"github.com/mouse-blink/solint/internal/domain"
	m "github.com/mouse-blink/solint/internal/model"
)

const tabReplacement = "  "

type hardTabsCheck struct {
	// blockLines are lines inside literal or folded block scalars, where
	// every tab is content.
	blockLines map[int]struct{}
}

func (c *hardTabsCheck) Description() string {
	return "reports tab characters, expanding those outside of values"
}

func (c *hardTabsCheck) Check(doc *m.Document, _ *domain.Tree, n *domain.Notifier) error {
	c.blockLines = blockScalarLines(doc.Node, doc.Lines())

	for i, line := range doc.Lines() {
		idx := strings.IndexByte(line, '\t')
		if idx < 0 {
			continue
		}

		n.Warning(m.Problem{
			Message: "tab character found",
			Line:    i + 1,
			Column:  utf8.RuneCountInString(line[:idx]) + 1,
		})
	}

	return nil
}

func (c *hardTabsCheck) Fix(p *m.Problem, buf *domain.Buffer) error {
	if _, inBlock := c.blockLines[p.Line]; inBlock {
		return domain.ErrNoFix
	}

	line, ok := buf.Line(p.Line)
	if !ok {
		return domain.ErrNoFix
	}

	if !strings.Contains(line, "\t") {
		// removed by an earlier fix on the same line
		return nil
	}

	fixed, complete := expandTabs(line)
	if !complete {
		return domain.ErrNoFix
	}

	return buf.SetLine(p.Line, fixed)
}

// expandTabs replaces the tabs of line that carry no data: indentation,
// trailing blanks and the comment. complete is false when a tab remains
// inside the content, which is then left untouched.
func expandTabs(line string) (fixed string, complete bool) {
	code, comment := line, ""
	if i, ok := m.CommentOffset(line); ok {
		code, comment = line[:i], line[i:]
	}

	body := strings.TrimRight(code, blanks)
	trailing := code[len(body):]
	content := strings.TrimLeft(body, blanks)
	indent := body[:len(body)-len(content)]

	if strings.Contains(content, "\t") {
		return line, false
	}

	return expand(indent) + content + expand(trailing) + expand(comment), true
}

func expand(s string) string {
	return strings.ReplaceAll(s, "\t", tabReplacement)
}
