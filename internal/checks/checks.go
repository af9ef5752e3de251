// Package checks provides the built-in checks. Importing it registers them
// with the default registry.
package checks

import (
	"github.com/mouse-blink/solint/internal/domain"
	m "github.com/mouse-blink/solint/internal/model"
)

// Names of the built-in checks.
const (
	Variables          m.CheckName = "variables"
	Documentation      m.CheckName = "documentation"
	TrailingWhitespace m.CheckName = "trailing_whitespace"
	HardTabs           m.CheckName = "hard_tabs"
)

func init() {
	RegisterAll(domain.DefaultRegistry())
}

// RegisterAll registers the built-in checks with r.
func RegisterAll(r *domain.Registry) {
	r.Register(Variables, func() domain.Check { return &variablesCheck{} })
	r.Register(Documentation, func() domain.Check { return &documentationCheck{} })
	r.Register(TrailingWhitespace, func() domain.Check { return &trailingWhitespaceCheck{} })
	r.Register(HardTabs, func() domain.Check { return &hardTabsCheck{} })
}
