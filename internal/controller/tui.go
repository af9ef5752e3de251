package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/solint/internal/model"
	"github.com/mouse-blink/solint/internal/report"
)

// TUI implements UI using Bubble Tea for the progress display. Results are
// printed after the program exits.
type TUI struct {
	output  io.Writer
	input   io.Reader
	printer *report.Printer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	err     error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, printer *report.Printer) *TUI {
	if printer == nil {
		printer = report.NewPrinter(report.Options{})
	}

	return &TUI{output: output, printer: printer}
}

// Start launches the progress program in the background.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)

	t.mu.Lock()

	if t.program != nil {
		t.mu.Unlock()

		return fmt.Errorf("tui already started")
	}

	opts := []tea.ProgramOption{tea.WithOutput(t.output)}
	if t.input != nil {
		opts = append(opts, tea.WithInput(t.input))
	}

	t.program = tea.NewProgram(newLintModel(), opts...)
	t.done = make(chan struct{})

	program, done := t.program, t.done
	t.mu.Unlock()

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			t.mu.Lock()
			t.err = err
			t.mu.Unlock()
		}
	}()

	program.Send(startMsg{mode: cfg.mode, files: cfg.files})

	return nil
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// Close asks the progress program to finish.
func (t *TUI) Close() {
	t.send(finishedMsg{})
}

// Wait blocks until the progress program has exited.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Err returns the error the progress program exited with, if any.
func (t *TUI) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

// DisplayConcurrencyInfo shows the worker count.
func (t *TUI) DisplayConcurrencyInfo(parallel int, files int) {
	t.send(concurrencyMsg{parallel: parallel, files: files})
}

// DisplayStartingFile marks a document as in progress.
func (t *TUI) DisplayStartingFile(source m.Source) {
	t.send(fileStartedMsg{path: string(source.Path)})
}

// DisplayCompletedFile records a finished document.
func (t *TUI) DisplayCompletedFile(result m.FileResult) {
	stats := result.Statistics
	if stats == nil {
		stats = m.Count(result.Problems)
	}

	t.send(fileDoneMsg{
		path:     string(result.Source.Path),
		errors:   stats[m.KindError],
		warnings: stats[m.KindWarning],
		fixed:    stats[m.KindFixed],
		written:  result.Fixed,
	})
}

// DisplayResults prints the problems of every document.
func (t *TUI) DisplayResults(results []m.FileResult) error {
	return t.printer.PrintResults(t.output, results)
}

var headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

// DisplaySummary prints per-file statistics under a heading.
func (t *TUI) DisplaySummary(results []m.FileResult) error {
	_, err := fmt.Fprintf(t.output, "\n%s\n%s", headingStyle.Render("Summary"), renderSummary(results))

	return err
}

// DisplayChecks prints the registered checks under a heading.
func (t *TUI) DisplayChecks(checks []m.CheckInfo) error {
	_, err := fmt.Fprintf(t.output, "%s\n%s", headingStyle.Render("Checks"), renderChecks(checks))

	return err
}

// DisplayTree prints the parent-annotated keys of a document.
func (t *TUI) DisplayTree(source m.Source, entries []m.TreeEntry) error {
	_, err := fmt.Fprint(t.output, renderTree(source, entries))

	return err
}
