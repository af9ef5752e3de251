// Package controller provides output adapters for displaying lint results.
package controller

import (
	m "github.com/mouse-blink/solint/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeLint StartMode = iota
	ModeFix
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode  StartMode
	files int
}

// WithLintMode sets the UI to lint mode.
func WithLintMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeLint
	}
}

// WithFixMode sets the UI to fix mode.
func WithFixMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeFix
	}
}

// WithFileCount announces how many documents will be processed.
func WithFileCount(n int) StartOption {
	return func(c *StartConfig) {
		c.files = n
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeLint}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying lint progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
// The progress methods are called from several goroutines.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish
	DisplayConcurrencyInfo(parallel int, files int)
	DisplayStartingFile(source m.Source)
	DisplayCompletedFile(result m.FileResult)
	DisplayResults(results []m.FileResult) error
	DisplaySummary(results []m.FileResult) error
	DisplayChecks(checks []m.CheckInfo) error
	DisplayTree(source m.Source, entries []m.TreeEntry) error
}
