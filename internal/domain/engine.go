package domain

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mouse-blink/solint/internal/adapter"
	"github.com/mouse-blink/solint/internal/logger"
	m "github.com/mouse-blink/solint/internal/model"
)

const emptyDatasetMessage = "Empty dataset"

// RunContext is the per-document state of one run.
type RunContext struct {
	Document *m.Document
	Tree     *Tree
	Buffer   *Buffer
}

// Result is the outcome of running the enabled checks over one document.
type Result struct {
	Document   *m.Document
	Problems   []m.Problem
	Statistics m.Statistics
	// Fixed is the document text after the fix pass.
	Fixed   string
	Changed bool
}

// Engine loads a document, runs the enabled checks and optionally fixes the
// problems they reported.
type Engine struct {
	registry        *Registry
	parser          adapter.YAMLAdapter
	fix             bool
	ignoreOverrides bool
	logger          *zap.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithFix enables the fix pass.
func WithFix(fix bool) EngineOption {
	return func(e *Engine) { e.fix = fix }
}

// WithIgnoreOverrides controls whether ignore directives are honoured.
func WithIgnoreOverrides(enabled bool) EngineOption {
	return func(e *Engine) { e.ignoreOverrides = enabled }
}

// WithLogger sets the engine logger.
func WithLogger(l *zap.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger.OrNop(l) }
}

// NewEngine builds an engine over registry, parsing with parser.
func NewEngine(registry *Registry, parser adapter.YAMLAdapter, opts ...EngineOption) *Engine {
	e := &Engine{
		registry:        registry,
		parser:          parser,
		ignoreOverrides: true,
		logger:          zap.NewNop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Fixing reports whether the fix pass is enabled.
func (e *Engine) Fixing() bool {
	return e.fix
}

// Load parses src. When the source cannot be linted, the returned problems
// explain why and the document is nil.
func (e *Engine) Load(src m.Source) (*m.Document, []m.Problem) {
	doc := &m.Document{
		Path:     src.Path,
		FullPath: src.FullPath,
		FileName: src.FileName,
		Raw:      src.Raw,
	}

	node, value, err := e.parser.Parse(src.Raw)
	if err != nil {
		line, column, msg := 1, 1, err.Error()

		var syntaxErr *adapter.SyntaxError
		if errors.As(err, &syntaxErr) {
			line, column, msg = syntaxErr.Line, syntaxErr.Column, syntaxErr.Message
		}

		msg = fmt.Sprintf("Syntax error (%s): %s", doc.FileName, msg)

		return nil, []m.Problem{syntaxProblem(doc, msg, line, column)}
	}

	if isEmptyDataset(value) {
		return nil, []m.Problem{syntaxProblem(doc, emptyDatasetMessage, 1, 1)}
	}

	doc.Node = node
	doc.Value = value

	return doc, nil
}

// Validate reports whether raw parses.
func (e *Engine) Validate(raw string) error {
	if _, _, err := e.parser.Parse(raw); err != nil {
		return fmt.Errorf("re-parse: %w", err)
	}

	return nil
}

type checkRun struct {
	name     m.CheckName
	check    Check
	problems []m.Problem
}

// Run lints one source.
func (e *Engine) Run(src m.Source) Result {
	doc, problems := e.Load(src)
	if doc == nil {
		return Result{
			Document:   &m.Document{Path: src.Path, FullPath: src.FullPath, FileName: src.FileName, Raw: src.Raw},
			Problems:   problems,
			Statistics: m.Count(problems),
			Fixed:      src.Raw,
		}
	}

	rc := &RunContext{
		Document: doc,
		Tree:     BuildTree(doc.Node),
		Buffer:   NewBuffer(doc.Raw),
	}

	var ignores *ignoreIndex
	if e.ignoreOverrides {
		idx := buildIgnoreIndex(doc.Raw)
		ignores = &idx
	}

	checks := e.registry.Enabled()
	runs := make([]*checkRun, 0, len(checks))

	for _, d := range checks {
		run := e.runCheck(rc, d)
		if ignores != nil {
			ignores.apply(run.problems, doc.Raw)
		}

		runs = append(runs, run)
	}

	if e.fix {
		for _, run := range runs {
			e.fixProblems(run, rc)
		}
	}

	for _, run := range runs {
		problems = append(problems, run.problems...)
	}

	return Result{
		Document:   doc,
		Problems:   problems,
		Statistics: m.Count(problems),
		Fixed:      rc.Buffer.String(),
		Changed:    rc.Buffer.Changed(),
	}
}

func (e *Engine) runCheck(rc *RunContext, d Descriptor) (run *checkRun) {
	n := NewNotifier(d.Name, rc.Document)
	run = &checkRun{name: d.Name}

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if err, ok := r.(error); ok {
			var contractErr *InvalidProblemError
			if errors.As(err, &contractErr) {
				panic(r)
			}
		}

		run = e.failedRun(rc, d.Name, fmt.Errorf("panic: %v", r))
	}()

	run.check = d.New()
	if run.check == nil {
		return e.failedRun(rc, d.Name, errors.New("check has no implementation"))
	}

	if err := run.check.Check(rc.Document, rc.Tree, n); err != nil {
		return e.failedRun(rc, d.Name, err)
	}

	run.problems = n.Problems()

	return run
}

func (e *Engine) failedRun(rc *RunContext, name m.CheckName, err error) *checkRun {
	e.logger.Warn("check failed",
		zap.String("check", string(name)),
		zap.String("path", string(rc.Document.Path)),
		zap.Error(err))

	msg := fmt.Sprintf("%s check failed: %v", name, err)

	return &checkRun{name: name, problems: []m.Problem{syntaxProblem(rc.Document, msg, 1, 1)}}
}

func (e *Engine) fixProblems(run *checkRun, rc *RunContext) {
	fixer, ok := run.check.(Fixer)
	if !ok {
		return
	}

	for i := range run.problems {
		p := &run.problems[i]
		if p.Kind == m.KindIgnored || p.Kind == m.KindFixed {
			continue
		}

		err := e.safeFix(fixer, p, rc.Buffer)

		switch {
		case err == nil:
			p.Kind = m.KindFixed

			e.logger.Debug("problem fixed",
				zap.String("check", string(run.name)),
				zap.String("path", string(rc.Document.Path)),
				zap.Int("line", p.Line))
		case errors.Is(err, ErrNoFix):
		default:
			e.logger.Warn("fix failed",
				zap.String("check", string(run.name)),
				zap.String("path", string(rc.Document.Path)),
				zap.Int("line", p.Line),
				zap.Error(err))
		}
	}
}

func (e *Engine) safeFix(fixer Fixer, p *m.Problem, buf *Buffer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fix panicked: %v", r)
		}
	}()

	return fixer.Fix(p, buf)
}

func syntaxProblem(doc *m.Document, msg string, line, column int) m.Problem {
	return m.Problem{
		Check:    m.SyntaxCheck,
		Kind:     m.KindError,
		Message:  msg,
		Line:     line,
		Column:   column,
		Path:     doc.Path,
		FullPath: doc.FullPath,
		FileName: doc.FileName,
	}
}

func isEmptyDataset(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case map[string]any:
		return len(v) == 0
	case map[any]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	case string:
		return v == ""
	}

	return false
}
