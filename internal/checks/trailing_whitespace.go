package checks

import (
	"strings"
	"unicode/utf8"

	"github.com/mouse-blink/solint/internal/domain"
	m "github.com/mouse-blink/solint/internal/model"
)

const blanks = " \t"

type trailingWhitespaceCheck struct {
	// blockLines are lines inside literal or folded block scalars, where
	// trailing blanks are content.
	blockLines map[int]struct{}
}

func (c *trailingWhitespaceCheck) Description() string {
	return "reports spaces and tabs at the end of a line"
}

func (c *trailingWhitespaceCheck) Check(doc *m.Document, _ *domain.Tree, n *domain.Notifier) error {
	c.blockLines = blockScalarLines(doc.Node, doc.Lines())

	for i, line := range doc.Lines() {
		line = strings.TrimSuffix(line, "\r")

		trimmed := strings.TrimRight(line, blanks)
		if trimmed == line {
			continue
		}

		n.Warning(m.Problem{
			Message: "trailing whitespace found",
			Line:    i + 1,
			Column:  utf8.RuneCountInString(trimmed) + 1,
		})
	}

	return nil
}

func (c *trailingWhitespaceCheck) Fix(p *m.Problem, buf *domain.Buffer) error {
	if _, inBlock := c.blockLines[p.Line]; inBlock {
		return domain.ErrNoFix
	}

	line, ok := buf.Line(p.Line)
	if !ok {
		return domain.ErrNoFix
	}

	cr := strings.HasSuffix(line, "\r")
	line = strings.TrimRight(strings.TrimSuffix(line, "\r"), blanks)

	if cr {
		line += "\r"
	}

	return buf.SetLine(p.Line, line)
}
