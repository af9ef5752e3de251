package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mouse-blink/solint/internal/checks"
	"github.com/mouse-blink/solint/internal/config"
	"github.com/mouse-blink/solint/internal/domain"
	domainmocks "github.com/mouse-blink/solint/internal/domain/mocks"
	m "github.com/mouse-blink/solint/internal/model"
)

// newTestRoot builds a fresh command tree writing to out and errOut.
func newTestRoot(out, errOut *bytes.Buffer) *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(newFixCmd(), newChecksCmd(), newTreeCmd())
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return cmd
}

// stubWorkflow makes every command use wf and records the configuration it
// was built with.
func stubWorkflow(t *testing.T, wf domain.Workflow) *config.Config {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	got := &config.Config{}
	original := newWorkflow
	newWorkflow = func(_ *cobra.Command, cfg config.Config, _ *zap.Logger) (domain.Workflow, error) {
		*got = cfg
		return wf, nil
	}
	t.Cleanup(func() { newWorkflow = original })

	return got
}

func TestRootCmd_LintArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cfg := stubWorkflow(t, mockWorkflow)

	mockWorkflow.On("Lint", mock.Anything, mock.MatchedBy(func(args domain.LintArgs) bool {
		return args.Parallel == 2 &&
			args.Summary &&
			args.Reports == m.Path("out") &&
			assert.ObjectsAreEqual([]m.Path{"a.yaml", "manifests"}, args.Paths)
	})).Return(domain.Summary{}, nil)

	cmd := newTestRoot(&bytes.Buffer{}, &bytes.Buffer{})
	cmd.SetArgs([]string{"--parallel", "2", "--summary", "--reports", "out", "a.yaml", "manifests"})

	require.NoError(t, cmd.Execute())
	assert.False(t, cfg.Fix)
	assert.True(t, cfg.IgnoreOverrides)
	assert.Equal(t, config.LevelAll, cfg.ErrorLevel)
}

func TestRootCmd_ExitStatus(t *testing.T) {
	errorStats := m.Count([]m.Problem{{Kind: m.KindError}, {Kind: m.KindWarning}})
	warnings := m.Count([]m.Problem{{Kind: m.KindWarning}})
	fixed := m.Count([]m.Problem{{Kind: m.KindFixed}, {Kind: m.KindIgnored}})

	tests := []struct {
		name    string
		stats   m.Statistics
		args    []string
		wantErr bool
	}{
		{name: "errors fail", stats: errorStats, wantErr: true},
		{name: "warnings pass", stats: warnings},
		{name: "warnings fail on request", stats: warnings, args: []string{"--fail-on-warnings"}, wantErr: true},
		{name: "fixed and ignored pass", stats: fixed, args: []string{"--fail-on-warnings"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)
			stubWorkflow(t, mockWorkflow)

			mockWorkflow.On("Lint", mock.Anything, mock.Anything).
				Return(domain.Summary{Statistics: tt.stats}, nil)

			cmd := newTestRoot(&bytes.Buffer{}, &bytes.Buffer{})
			cmd.SetArgs(append(tt.args, "a.yaml"))

			err := cmd.Execute()
			if tt.wantErr {
				require.ErrorIs(t, err, errProblemsFound)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRootCmd_ConfigFileThenFlags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cfg := stubWorkflow(t, mockWorkflow)

	rc := filepath.Join(t.TempDir(), "solint.toml")
	require.NoError(t, os.WriteFile(rc, []byte(`
error_level = "error"
with_context = true
parallel = 3
show_ignored = true
`), 0o600))

	mockWorkflow.On("Lint", mock.Anything, mock.MatchedBy(func(args domain.LintArgs) bool {
		return args.Parallel == 5
	})).Return(domain.Summary{}, nil)

	cmd := newTestRoot(&bytes.Buffer{}, &bytes.Buffer{})
	cmd.SetArgs([]string{
		"--config", rc,
		"--parallel", "5",
		"--show-ignored=false",
		"--only-checks", "variables,documentation",
		"--no-hard_tabs-check",
		"a.yaml",
	})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, config.LevelError, cfg.ErrorLevel)
	assert.True(t, cfg.WithContext)
	assert.False(t, cfg.ShowIgnored)
	assert.Equal(t, 5, cfg.Parallel)
	assert.Equal(t, []string{"variables", "documentation"}, cfg.OnlyChecks)
	assert.Equal(t, []string{"hard_tabs"}, cfg.DisabledChecks)
}

func TestRootCmd_InvalidOption(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, mockWorkflow)

	cmd := newTestRoot(&bytes.Buffer{}, &bytes.Buffer{})
	cmd.SetArgs([]string{"--error-level", "loud", "a.yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ErrorLevel")
}

func TestRootCmd_FixFlag(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cfg := stubWorkflow(t, mockWorkflow)

	mockWorkflow.On("Lint", mock.Anything, mock.Anything).Return(domain.Summary{}, nil)

	cmd := newTestRoot(&bytes.Buffer{}, &bytes.Buffer{})
	cmd.SetArgs([]string{"--fix", "a.yaml"})

	require.NoError(t, cmd.Execute())
	assert.True(t, cfg.Fix)
}

func TestRootCmd_NoInput(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, mockWorkflow)

	mockWorkflow.On("Lint", mock.Anything, mock.MatchedBy(func(args domain.LintArgs) bool {
		return len(args.Paths) == 0
	})).Return(domain.Summary{}, domain.ErrNoInput)

	cmd := newTestRoot(&bytes.Buffer{}, &bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.ErrorIs(t, cmd.Execute(), domain.ErrNoInput)
}

func TestRootCmd_DeprecatedPlaceholder(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cfg := stubWorkflow(t, mockWorkflow)

	mockWorkflow.On("Lint", mock.Anything, mock.Anything).Return(domain.Summary{}, nil)

	errOut := &bytes.Buffer{}
	cmd := newTestRoot(&bytes.Buffer{}, errOut)
	cmd.SetArgs([]string{"--log-format", "%{path}:%{linenumber}: %{message}", "a.yaml"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "%{path}:%{linenumber}: %{message}", cfg.LogFormat)
	assert.Contains(t, errOut.String(), "deprecated")
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "problems found", err: errProblemsFound, want: ""},
		{
			name: "no input",
			err:  domain.ErrNoInput,
			want: "solint: no file specified or specified file does not exist\n" +
				"solint: try 'solint --help' for more information\n",
		},
		{name: "other", err: context.Canceled, want: "solint: context canceled\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportError(&buf, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestNewRegistry(t *testing.T) {
	t.Run("only and disabled", func(t *testing.T) {
		cfg := config.Default()
		cfg.OnlyChecks = []string{string(checks.Variables), string(checks.HardTabs)}
		cfg.DisabledChecks = []string{string(checks.HardTabs)}

		registry, err := newRegistry(cfg)
		require.NoError(t, err)

		enabled := registry.Enabled()
		require.Len(t, enabled, 1)
		assert.Equal(t, checks.Variables, enabled[0].Name)

		d, ok := domain.DefaultRegistry().Lookup(checks.HardTabs)
		require.True(t, ok)
		assert.True(t, d.Enabled, "default registry must not change")
	})

	t.Run("unknown check", func(t *testing.T) {
		cfg := config.Default()
		cfg.DisabledChecks = []string{"indentation"}

		_, err := newRegistry(cfg)
		require.ErrorIs(t, err, domain.ErrUnknownCheck)
	})
}

func TestRootCmd_EndToEnd(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "solution.yaml")
	require.NoError(t, os.WriteFile(path, []byte("description: demo \nvariables: {}\nenvironment: {}\nclasses: []\n"), 0o600))

	t.Run("lint", func(t *testing.T) {
		out := &bytes.Buffer{}
		cmd := newTestRoot(out, &bytes.Buffer{})
		cmd.SetArgs([]string{path})

		require.NoError(t, cmd.Execute())
		assert.Equal(t, "WARNING: trailing whitespace found on line 1\n", out.String())
	})

	t.Run("fail on warnings", func(t *testing.T) {
		cmd := newTestRoot(&bytes.Buffer{}, &bytes.Buffer{})
		cmd.SetArgs([]string{"--fail-on-warnings", path})

		require.ErrorIs(t, cmd.Execute(), errProblemsFound)
	})

	t.Run("fix", func(t *testing.T) {
		out := &bytes.Buffer{}
		cmd := newTestRoot(out, &bytes.Buffer{})
		cmd.SetArgs([]string{"fix", path})

		require.NoError(t, cmd.Execute())
		assert.Equal(t, "FIXED: trailing whitespace found on line 1\n", out.String())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "description: demo\nvariables: {}\nenvironment: {}\nclasses: []\n", string(content))
	})
}

func TestRootCmd_Version(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, mockWorkflow)

	out := &bytes.Buffer{}
	cmd := newTestRoot(out, &bytes.Buffer{})
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "solint version dev\n", out.String())
}
