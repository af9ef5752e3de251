package controller

import (
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/solint/internal/model"
	"github.com/mouse-blink/solint/internal/report"
)

// SimpleUI implements UI by printing to the cobra command output. Progress
// is not shown so the output only carries problems.
type SimpleUI struct {
	cmd     *cobra.Command
	printer *report.Printer
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, printer *report.Printer) *SimpleUI {
	if printer == nil {
		printer = report.NewPrinter(report.Options{})
	}

	return &SimpleUI{cmd: cmd, printer: printer}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately.
func (s *SimpleUI) Wait() {}

// DisplayConcurrencyInfo is a no-op in plain mode.
func (s *SimpleUI) DisplayConcurrencyInfo(_ int, _ int) {}

// DisplayStartingFile is a no-op in plain mode.
func (s *SimpleUI) DisplayStartingFile(_ m.Source) {}

// DisplayCompletedFile is a no-op in plain mode.
func (s *SimpleUI) DisplayCompletedFile(_ m.FileResult) {}

// DisplayResults prints the problems of every document.
func (s *SimpleUI) DisplayResults(results []m.FileResult) error {
	return s.printer.PrintResults(s.cmd.OutOrStdout(), results)
}

// DisplaySummary prints per-file statistics.
func (s *SimpleUI) DisplaySummary(results []m.FileResult) error {
	s.printf("\n%s", renderSummary(results))

	return nil
}

// DisplayChecks prints the registered checks.
func (s *SimpleUI) DisplayChecks(checks []m.CheckInfo) error {
	s.printf("%s", renderChecks(checks))

	return nil
}

// DisplayTree prints the parent-annotated keys of a document.
func (s *SimpleUI) DisplayTree(source m.Source, entries []m.TreeEntry) error {
	s.printf("%s", renderTree(source, entries))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
