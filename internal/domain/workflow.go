package domain

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/solint/internal/adapter"
	"github.com/mouse-blink/solint/internal/controller"
	"github.com/mouse-blink/solint/internal/logger"
	m "github.com/mouse-blink/solint/internal/model"
)

// ErrNoInput is returned when no path was given or a given path is missing.
var ErrNoInput = errors.New("no file specified or specified file does not exist")

const fixedFilePerm = 0o644

// LintArgs holds the inputs of a lint run.
type LintArgs struct {
	Paths    []m.Path
	Parallel int
	// Reports is the directory for per-document reports; empty disables them.
	Reports m.Path
	Summary bool
}

// Summary is the outcome of a lint run, in input order.
type Summary struct {
	Results    []m.FileResult
	Statistics m.Statistics
}

// Failed reports whether the run should exit non-zero.
func (s Summary) Failed(failOnWarnings bool) bool {
	if s.Statistics.Errors() > 0 {
		return true
	}

	return failOnWarnings && s.Statistics.Warnings() > 0
}

// Workflow defines the operations exposed to the command line.
type Workflow interface {
	Lint(ctx context.Context, args LintArgs) (Summary, error)
	ListChecks() error
	ShowTree(ctx context.Context, paths ...m.Path) error
}

type workflow struct {
	fsAdapter   adapter.DocumentFSAdapter
	reportStore adapter.ReportStore
	ui          controller.UI
	engine      *Engine
	registry    *Registry
	logger      *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.DocumentFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	engine *Engine,
	registry *Registry,
	log *zap.Logger,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		ui:          ui,
		engine:      engine,
		registry:    registry,
		logger:      logger.OrNop(log),
	}
}

func (w *workflow) collect(ctx context.Context, paths []m.Path) ([]m.Source, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	sources, err := w.fsAdapter.Collect(ctx, paths)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrNoInput, err)
		}

		return nil, err
	}

	if len(sources) == 0 {
		return nil, ErrNoInput
	}

	return sources, nil
}

// Lint runs the engine over every document below paths.
func (w *workflow) Lint(ctx context.Context, args LintArgs) (Summary, error) {
	sources, err := w.collect(ctx, args.Paths)
	if err != nil {
		return Summary{}, err
	}

	parallel := args.Parallel
	if parallel <= 0 {
		parallel = 1
	}

	mode := controller.WithLintMode()
	if w.engine.Fixing() {
		mode = controller.WithFixMode()
	}

	if err := w.ui.Start(mode, controller.WithFileCount(len(sources))); err != nil {
		return Summary{}, fmt.Errorf("start ui: %w", err)
	}

	w.ui.DisplayConcurrencyInfo(parallel, len(sources))

	results, err := w.lintAll(ctx, sources, parallel)

	w.ui.Close()
	w.ui.Wait()

	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Results: results, Statistics: m.NewStatistics()}
	for _, r := range results {
		summary.Statistics.Merge(r.Statistics)
	}

	if args.Reports != "" {
		if err := w.saveReports(args.Reports, results); err != nil {
			return summary, err
		}
	}

	if err := w.ui.DisplayResults(results); err != nil {
		return summary, fmt.Errorf("display results: %w", err)
	}

	if args.Summary {
		if err := w.ui.DisplaySummary(results); err != nil {
			return summary, fmt.Errorf("display summary: %w", err)
		}
	}

	return summary, nil
}

func (w *workflow) lintAll(ctx context.Context, sources []m.Source, parallel int) ([]m.FileResult, error) {
	results := make([]m.FileResult, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	var done atomic.Int64

	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			w.ui.DisplayStartingFile(src)

			result, err := w.lintOne(gctx, src)
			if err != nil {
				return err
			}

			results[i] = result

			w.ui.DisplayCompletedFile(result)
			w.logger.Debug("document linted",
				zap.String("path", string(src.Path)),
				zap.Int("problems", len(result.Problems)),
				zap.Int64("done", done.Add(1)),
				zap.Int("total", len(sources)))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (w *workflow) lintOne(ctx context.Context, src m.Source) (m.FileResult, error) {
	res := w.engine.Run(src)
	result := m.FileResult{Source: src, Problems: res.Problems, Statistics: res.Statistics}

	if !res.Changed {
		return result, nil
	}

	if err := w.engine.Validate(res.Fixed); err != nil {
		w.logger.Warn("fixed document does not parse, keeping original",
			zap.String("path", string(src.Path)),
			zap.Error(err))

		p := syntaxProblem(res.Document, fmt.Sprintf("fixes produced an invalid document: %v", errors.Unwrap(err)), 1, 1)
		result.Problems = append(result.Problems, p)
		result.Statistics = m.Count(result.Problems)

		return result, nil
	}

	if err := w.fsAdapter.WriteFile(ctx, src.FullPath, []byte(res.Fixed), fixedFilePerm); err != nil {
		return m.FileResult{}, fmt.Errorf("write fixed %s: %w", src.Path, err)
	}

	w.logger.Info("fixed document written", zap.String("path", string(src.Path)))

	result.Fixed = true

	return result, nil
}

func (w *workflow) saveReports(dir m.Path, results []m.FileResult) error {
	if err := w.reportStore.SaveReports(dir, results); err != nil {
		return fmt.Errorf("save reports: %w", err)
	}

	if err := w.reportStore.RegenerateIndex(dir); err != nil {
		return fmt.Errorf("regenerate report index: %w", err)
	}

	w.logger.Debug("reports saved", zap.String("dir", string(dir)), zap.Int("documents", len(results)))

	return nil
}

// ListChecks displays every registered check.
func (w *workflow) ListChecks() error {
	descriptors := w.registry.Checks()
	infos := make([]m.CheckInfo, 0, len(descriptors))

	for _, d := range descriptors {
		infos = append(infos, m.CheckInfo{
			Name:        d.Name,
			Enabled:     d.Enabled,
			Fixable:     d.Fixable(),
			Description: d.Description(),
		})
	}

	return w.ui.DisplayChecks(infos)
}

// ShowTree displays the parent-annotated tree of each document below paths.
// Documents that cannot be parsed are reported as lint results instead.
func (w *workflow) ShowTree(ctx context.Context, paths ...m.Path) error {
	sources, err := w.collect(ctx, paths)
	if err != nil {
		return err
	}

	for _, src := range sources {
		doc, problems := w.engine.Load(src)
		if doc == nil {
			result := m.FileResult{Source: src, Problems: problems, Statistics: m.Count(problems)}
			if err := w.ui.DisplayResults([]m.FileResult{result}); err != nil {
				return err
			}

			continue
		}

		if err := w.ui.DisplayTree(src, BuildTree(doc.Node).Entries()); err != nil {
			return err
		}
	}

	return nil
}
