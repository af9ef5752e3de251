package checks

import (
	"fmt"

	"github.com/mouse-blink/solint/internal/domain"
	m "github.com/mouse-blink/solint/internal/model"
)

// requiredRootKeys must be present at the root of every solution manifest.
var requiredRootKeys = []string{"variables", "environment", "classes"}

type variablesCheck struct{}

func (c *variablesCheck) Description() string {
	return "requires variables, environment and classes at the document root"
}

func (c *variablesCheck) Check(_ *m.Document, tree *domain.Tree, n *domain.Notifier) error {
	for _, key := range requiredRootKeys {
		if _, ok := tree.Get(key); ok {
			continue
		}

		n.Error(m.Problem{
			Message: fmt.Sprintf("missing %q key at root", key),
			Line:    m.UnknownPosition,
			Column:  m.UnknownPosition,
			Token:   key,
		})

		found, ok := tree.Find(key)
		if !ok || found.TopLevel() {
			continue
		}

		warning := m.Problem{
			Message: fmt.Sprintf("found %q key at %q, should be in root", key, found.Parent),
			Line:    m.UnknownPosition,
			Column:  m.UnknownPosition,
			Token:   found.Parent,
		}

		if owner := found.ParentNode(); owner != nil {
			warning.Line, warning.Column = owner.Line, owner.Column
		}

		n.Warning(warning)
	}

	return nil
}
