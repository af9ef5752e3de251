package checks

import (
	"strings"

	"github.com/mouse-blink/solint/internal/domain"
	m "github.com/mouse-blink/solint/internal/model"
)

const descriptionKey = "description"

// documentationCheck applies to the document as a whole, so its problems
// carry no meaningful position.
type documentationCheck struct{}

func (c *documentationCheck) Description() string {
	return "requires a non-empty root description"
}

func (c *documentationCheck) Check(_ *m.Document, tree *domain.Tree, n *domain.Notifier) error {
	node, ok := tree.Get(descriptionKey)
	if !ok {
		n.Warning(m.Problem{Message: "solution not documented, add a root \"description\" key", Line: 1, Column: 1})

		return nil
	}

	text, isString := node.Value.(string)
	if !isString || strings.TrimSpace(text) == "" {
		n.Warning(m.Problem{Message: "root \"description\" should be a non-empty string", Line: node.Line, Column: node.Column})
	}

	return nil
}
