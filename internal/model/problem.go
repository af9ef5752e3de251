package model

// CheckName identifies a registered check.
type CheckName string

// SyntaxCheck is the check name used for parse failures and for checks that
// failed at runtime.
const SyntaxCheck CheckName = "syntax"

// Kind is the severity or state of a problem.
type Kind string

const (
	// KindError marks a rule violation that fails the run.
	KindError Kind = "error"
	// KindWarning marks a rule violation that only fails with fail_on_warnings.
	KindWarning Kind = "warning"
	// KindFixed marks a problem that was repaired by the fix pass.
	KindFixed Kind = "fixed"
	// KindIgnored marks a problem suppressed by an ignore directive.
	KindIgnored Kind = "ignored"
)

// UnknownPosition is the line/column sentinel meaning "resolve via Token".
const UnknownPosition = -1

// Problem is a single report produced by a check or by a parse failure.
type Problem struct {
	Check   CheckName `yaml:"check"`
	Kind    Kind      `yaml:"kind"`
	Message string    `yaml:"message"`
	Line    int       `yaml:"line"`
	Column  int       `yaml:"column"`
	Token   string    `yaml:"token,omitempty"`
	Reason  string    `yaml:"reason,omitempty"`

	Path     Path   `yaml:"path"`
	FullPath Path   `yaml:"fullpath"`
	FileName string `yaml:"filename"`
}

// Located reports whether both line and column are known.
func (p Problem) Located() bool {
	return p.Line > UnknownPosition && p.Column > UnknownPosition
}

// Statistics counts problems by kind.
type Statistics map[Kind]int

// NewStatistics returns statistics with every kind present and zeroed.
func NewStatistics() Statistics {
	return Statistics{
		KindError:   0,
		KindWarning: 0,
		KindFixed:   0,
		KindIgnored: 0,
	}
}

// Count builds statistics for the given problems.
func Count(problems []Problem) Statistics {
	stats := NewStatistics()
	for _, p := range problems {
		stats[p.Kind]++
	}

	return stats
}

// Merge adds other into s.
func (s Statistics) Merge(other Statistics) {
	for kind, n := range other {
		s[kind] += n
	}
}

// Errors returns the number of error problems.
func (s Statistics) Errors() int { return s[KindError] }

// Warnings returns the number of warning problems.
func (s Statistics) Warnings() int { return s[KindWarning] }

// FileResult holds the lint outcome for a single document.
type FileResult struct {
	Source     Source
	Problems   []Problem
	Statistics Statistics
	Fixed      bool // fixes were written back
}

// CheckInfo describes a registered check for listing.
type CheckInfo struct {
	Name        CheckName
	Enabled     bool
	Fixable     bool
	Description string
}
