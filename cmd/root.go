// Package cmd provides the root command and CLI setup for solint.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mouse-blink/solint/internal/adapter"
	_ "github.com/mouse-blink/solint/internal/checks"
	"github.com/mouse-blink/solint/internal/config"
	"github.com/mouse-blink/solint/internal/controller"
	"github.com/mouse-blink/solint/internal/domain"
	"github.com/mouse-blink/solint/internal/logger"
	m "github.com/mouse-blink/solint/internal/model"
	"github.com/mouse-blink/solint/internal/report"
)

const rootLongDescription = `Solint checks YAML solution manifests with a set of pluggable checks
and reports every problem found, one line per problem.

Arguments may be files or directories; directories are searched
recursively for *.yaml and *.yml files.

Problems can be silenced in the document itself:
  key: value  # solint:ignore trailing_whitespace -- reason
  # solint:ignore                (applies to the next line)
  # solint:ignore-file variables (applies to the whole document)

Options are read from /etc/solint.toml, ~/.solint.toml, ./.solint.toml and
--config, in that order. Flags override every file.`

var configFlag string
var withContextFlag bool
var withFilenameFlag bool
var failOnWarningsFlag bool
var errorLevelFlag string
var showIgnoredFlag bool
var logFormatFlag string
var onlyChecksFlag []string
var fixFlag bool
var parallelFlag int
var colorFlag bool
var summaryFlag bool
var reportsFlag string
var ignoreOverridesFlag bool
var tuiFlag bool
var debugFlag bool
var checkToggles []checkToggle

// checkToggle binds a generated --no-<check>-check flag.
type checkToggle struct {
	name     m.CheckName
	disabled *bool
}

// version is set at build time with -ldflags "-X ...cmd.version=...".
var version = "dev"

// errProblemsFound makes the process exit non-zero without further output.
var errProblemsFound = errors.New("problems found")

// newWorkflow builds the workflow used by a command run.
var newWorkflow = buildWorkflow

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "solint [flags] FILE...",
		Short:         "Lint YAML solution manifests",
		Long:          rootLongDescription,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, fixFlag)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "read options from this TOML file after the default rc files")
	flags.BoolVar(&withContextFlag, "with-context", false, "show the offending line with a caret under each problem")
	flags.BoolVar(&withFilenameFlag, "with-filename", false, "prefix every problem with the file path")
	flags.BoolVar(&failOnWarningsFlag, "fail-on-warnings", false, "exit non-zero when warnings are found")
	flags.StringVar(&errorLevelFlag, "error-level", config.LevelAll, "problems to print: error, warning or all")
	flags.BoolVar(&showIgnoredFlag, "show-ignored", false, "print problems silenced by ignore directives")
	flags.StringVar(&logFormatFlag, "log-format", "", "problem line template, e.g. '%{path}:%{line}:%{column}: %{message}'")
	flags.StringSliceVar(&onlyChecksFlag, "only-checks", nil, "run only these checks (comma separated)")
	flags.IntVarP(&parallelFlag, "parallel", "p", 1, "number of documents linted in parallel")
	flags.BoolVar(&colorFlag, "color", false, "color the problem kind")
	flags.BoolVar(&summaryFlag, "summary", false, "print a per-file statistics table")
	flags.StringVar(&reportsFlag, "reports", "", "write per-document YAML reports to this directory")
	flags.BoolVar(&ignoreOverridesFlag, "ignore-overrides", true, "honor solint:ignore directives")
	flags.BoolVar(&tuiFlag, "tui", false, "show interactive progress when stdout is a terminal")
	flags.BoolVar(&debugFlag, "debug", false, "log debug information to stderr")

	checkToggles = checkToggles[:0]
	for _, name := range domain.DefaultRegistry().Names() {
		toggle := checkToggle{name: name}
		toggle.disabled = flags.Bool(fmt.Sprintf("no-%s-check", name), false, fmt.Sprintf("disable the %s check", name))
		checkToggles = append(checkToggles, toggle)
	}

	cmd.Flags().BoolVar(&fixFlag, "fix", false, "apply available fixes and write fixed documents back")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
		stop()
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	switch {
	case errors.Is(err, errProblemsFound):
	case errors.Is(err, domain.ErrNoInput):
		fmt.Fprintln(w, "solint: no file specified or specified file does not exist")
		fmt.Fprintln(w, "solint: try 'solint --help' for more information")
	default:
		fmt.Fprintf(w, "solint: %v\n", err)
	}
}

func runLint(cmd *cobra.Command, args []string, fix bool) error {
	cfg, wf, err := setup(cmd, fix)
	if err != nil {
		return err
	}

	summary, err := wf.Lint(cmd.Context(), domain.LintArgs{
		Paths:    parsePaths(args),
		Parallel: cfg.Parallel,
		Reports:  m.Path(cfg.Reports),
		Summary:  cfg.Summary,
	})
	if err != nil {
		return err
	}

	if summary.Failed(cfg.FailOnWarnings) {
		return errProblemsFound
	}

	return nil
}

// setup loads the configuration and builds the workflow for cmd.
func setup(cmd *cobra.Command, fix bool) (config.Config, domain.Workflow, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return config.Config{}, nil, err
	}

	if fix {
		cfg.Fix = true
	}

	log := newLogger(cmd)

	if report.UsesDeprecatedPlaceholder(cfg.LogFormat) {
		log.Warn("the %{linenumber} placeholder is deprecated, use %{line}")
	}

	wf, err := newWorkflow(cmd, cfg, log)
	if err != nil {
		return config.Config{}, nil, err
	}

	return cfg, wf, nil
}

// loadConfig reads the rc files and applies the flags set on cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return config.Config{}, err
	}

	applyFlags(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("with-context") {
		cfg.WithContext = withContextFlag
	}

	if flags.Changed("with-filename") {
		cfg.WithFilename = withFilenameFlag
	}

	if flags.Changed("fail-on-warnings") {
		cfg.FailOnWarnings = failOnWarningsFlag
	}

	if flags.Changed("error-level") {
		cfg.ErrorLevel = errorLevelFlag
	}

	if flags.Changed("show-ignored") {
		cfg.ShowIgnored = showIgnoredFlag
	}

	if flags.Changed("log-format") {
		cfg.LogFormat = logFormatFlag
	}

	if flags.Changed("only-checks") {
		cfg.OnlyChecks = onlyChecksFlag
	}

	if flags.Changed("fix") {
		cfg.Fix = fixFlag
	}

	if flags.Changed("parallel") {
		cfg.Parallel = parallelFlag
	}

	if flags.Changed("color") {
		cfg.Color = colorFlag
	}

	if flags.Changed("summary") {
		cfg.Summary = summaryFlag
	}

	if flags.Changed("reports") {
		cfg.Reports = reportsFlag
	}

	if flags.Changed("ignore-overrides") {
		cfg.IgnoreOverrides = ignoreOverridesFlag
	}

	for _, toggle := range checkToggles {
		if *toggle.disabled {
			cfg.DisabledChecks = append(cfg.DisabledChecks, string(toggle.name))
		}
	}
}

func newLogger(cmd *cobra.Command) *zap.Logger {
	level := "warn"
	if debugFlag {
		level = "debug"
	}

	return logger.NewWithWriter(cmd.ErrOrStderr(), level, logger.FormatConsole)
}

// buildWorkflow wires the adapters, registry, engine and UI for cfg.
func buildWorkflow(cmd *cobra.Command, cfg config.Config, log *zap.Logger) (domain.Workflow, error) {
	registry, err := newRegistry(cfg)
	if err != nil {
		return nil, err
	}

	printer := report.NewPrinter(report.Options{
		Template:     cfg.LogFormat,
		WithFilename: cfg.WithFilename,
		WithContext:  cfg.WithContext,
		Filter:       report.Filter{Level: cfg.ErrorLevel, ShowIgnored: cfg.ShowIgnored},
		Color:        cfg.Color,
	})

	ui := controller.NewUI(cmd, printer, tuiFlag && controller.IsTTY(cmd.OutOrStdout()))

	engine := domain.NewEngine(registry, adapter.NewLocalYAMLAdapter(),
		domain.WithFix(cfg.Fix),
		domain.WithIgnoreOverrides(cfg.IgnoreOverrides),
		domain.WithLogger(log),
	)

	return domain.NewWorkflow(
		adapter.NewLocalDocumentFSAdapter(),
		adapter.NewReportStore(),
		ui,
		engine,
		registry,
		log,
	), nil
}

// newRegistry copies the default registry and applies the check selection.
func newRegistry(cfg config.Config) (*domain.Registry, error) {
	registry := domain.DefaultRegistry().Clone()

	if len(cfg.OnlyChecks) > 0 {
		if err := registry.Only(toCheckNames(cfg.OnlyChecks)...); err != nil {
			return nil, fmt.Errorf("only_checks: %w", err)
		}
	}

	for _, name := range toCheckNames(cfg.DisabledChecks) {
		if err := registry.Disable(name); err != nil {
			return nil, fmt.Errorf("disabled_checks: %w", err)
		}
	}

	return registry, nil
}

func toCheckNames(names []string) []m.CheckName {
	out := make([]m.CheckName, 0, len(names))
	for _, name := range names {
		out = append(out, m.CheckName(name))
	}

	return out
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
