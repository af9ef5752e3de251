package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/solint/internal/model"
)

// ErrNoFix is returned by a Fixer that recognises a problem but cannot fix it
// safely. The problem keeps its kind.
var ErrNoFix = errors.New("no fix applicable")

// Check inspects one document and reports problems through the notifier.
// It must not modify the document.
type Check interface {
	Check(doc *m.Document, tree *Tree, n *Notifier) error
}

// Fixer is implemented by checks that can repair their own problems. Fix
// edits buf and returns nil on success or ErrNoFix.
type Fixer interface {
	Fix(p *m.Problem, buf *Buffer) error
}

// Describer is implemented by checks that carry a one-line description.
type Describer interface {
	Description() string
}

// Factory returns a fresh check instance for one run.
type Factory func() Check

// InvalidProblemError is raised (as a panic) when a check notifies a problem
// that breaks the reporting contract. It is a programming error in the check.
type InvalidProblemError struct {
	Check  m.CheckName
	Reason string
}

func (e *InvalidProblemError) Error() string {
	return fmt.Sprintf("check %q reported an invalid problem: %s", e.Check, e.Reason)
}

// Notifier collects the problems of one check during one run.
type Notifier struct {
	check    m.CheckName
	doc      *m.Document
	problems []m.Problem
}

// NewNotifier returns a notifier bound to a check and a document.
func NewNotifier(check m.CheckName, doc *m.Document) *Notifier {
	return &Notifier{check: check, doc: doc}
}

// Notify validates and records a problem of the given kind.
func (n *Notifier) Notify(kind m.Kind, p m.Problem) {
	switch kind {
	case m.KindError, m.KindWarning, m.KindFixed:
	default:
		panic(&InvalidProblemError{Check: n.check, Reason: fmt.Sprintf("unknown kind %q", kind)})
	}

	if p.Message == "" {
		panic(&InvalidProblemError{Check: n.check, Reason: "missing message"})
	}

	if p.Line == 0 {
		panic(&InvalidProblemError{Check: n.check, Reason: "missing line"})
	}

	if p.Column == 0 {
		panic(&InvalidProblemError{Check: n.check, Reason: "missing column"})
	}

	p.Kind = kind
	if p.Check == "" {
		p.Check = n.check
	}

	if n.doc != nil {
		p.Path = n.doc.Path
		p.FullPath = n.doc.FullPath
		p.FileName = n.doc.FileName
	}

	n.problems = append(n.problems, p)
}

// Error records an error problem.
func (n *Notifier) Error(p m.Problem) {
	n.Notify(m.KindError, p)
}

// Warning records a warning problem.
func (n *Notifier) Warning(p m.Problem) {
	n.Notify(m.KindWarning, p)
}

// Problems returns the problems recorded so far.
func (n *Notifier) Problems() []m.Problem {
	return n.problems
}
