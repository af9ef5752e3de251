package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	m "github.com/mouse-blink/solint/internal/model"
)

// Error levels accepted by Filter.
const (
	LevelError   = "error"
	LevelWarning = "warning"
	LevelAll     = "all"
)

// Filter decides which problems are printed.
type Filter struct {
	Level       string
	ShowIgnored bool
}

// Emits reports whether p passes the filter. Fixed problems are always
// printed, ignored ones only on request.
func (f Filter) Emits(p m.Problem) bool {
	switch {
	case p.Kind == m.KindIgnored:
		return f.ShowIgnored
	case p.Kind == m.KindFixed:
		return true
	case f.Level == "" || f.Level == LevelAll:
		return true
	default:
		return string(p.Kind) == f.Level
	}
}

// Options configures a Printer.
type Options struct {
	// Template overrides the default line template.
	Template     string
	WithFilename bool
	WithContext  bool
	Filter       Filter
	Color        bool
}

// Printer writes formatted problems.
type Printer struct {
	opts   Options
	colors map[m.Kind]*color.Color
}

// NewPrinter builds a printer.
func NewPrinter(opts Options) *Printer {
	p := &Printer{
		opts: opts,
		colors: map[m.Kind]*color.Color{
			m.KindError:   color.New(color.FgRed, color.Bold),
			m.KindWarning: color.New(color.FgYellow),
			m.KindFixed:   color.New(color.FgGreen),
			m.KindIgnored: color.New(color.FgCyan),
		},
	}

	for _, c := range p.colors {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Template returns the line template, with the path prefix when several files
// are reported or filenames were requested.
func (p *Printer) Template(multipleFiles bool) string {
	if p.opts.Template != "" {
		return p.opts.Template
	}

	if multipleFiles || p.opts.WithFilename {
		return PathPrefix + DefaultTemplate
	}

	return DefaultTemplate
}

// Print writes the problems of a single document.
func (p *Printer) Print(w io.Writer, problems []m.Problem, raw string) error {
	return p.print(w, problems, raw, false)
}

// PrintResults writes the problems of every result in order.
func (p *Printer) PrintResults(w io.Writer, results []m.FileResult) error {
	multiple := len(results) > 1

	for _, r := range results {
		if err := p.print(w, r.Problems, r.Source.Raw, multiple); err != nil {
			return err
		}
	}

	return nil
}

func (p *Printer) print(w io.Writer, problems []m.Problem, raw string, multiple bool) error {
	template := p.Template(multiple)

	for _, problem := range problems {
		problem = ResolveLocation(problem, raw)

		if !p.opts.Filter.Emits(problem) {
			continue
		}

		if _, err := fmt.Fprintln(w, format(problem, template, p.decorate)); err != nil {
			return fmt.Errorf("write problem: %w", err)
		}

		if problem.Kind == m.KindIgnored && problem.Reason != "" {
			if _, err := fmt.Fprintf(w, "  %s\n", problem.Reason); err != nil {
				return fmt.Errorf("write reason: %w", err)
			}
		}

		if p.opts.WithContext {
			if _, err := io.WriteString(w, Context(problem, raw)); err != nil {
				return fmt.Errorf("write context: %w", err)
			}
		}
	}

	return nil
}

func (p *Printer) decorate(kind m.Kind, text string) string {
	c, ok := p.colors[kind]
	if !ok {
		return text
	}

	return c.Sprint(text)
}
