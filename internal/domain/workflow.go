// Package domain implements the reporting lifecycle around a browser test run.
package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/awhisler/wdioTest/internal/adapter"
	"github.com/awhisler/wdioTest/internal/controller"
	"github.com/awhisler/wdioTest/internal/logger"
	m "github.com/awhisler/wdioTest/internal/model"
	"github.com/awhisler/wdioTest/internal/reporter"
)

// ErrNoSpecs is returned by Run when there is nothing to run.
var ErrNoSpecs = errors.New("no spec files to run")

// WorkerEnvKey carries the worker id, "<spec index>-<attempt>", into the runner.
const WorkerEnvKey = "WDIOREPORT_WORKER"

// RunArgs contains the arguments for a test run.
type RunArgs struct {
	Specs        []string
	Parallel     int
	Retries      int
	Capabilities m.Capabilities
}

// ViewArgs contains the arguments for viewing the last results.
type ViewArgs struct {
	FailedOnly bool
}

// Workflow is the entry point the CLI drives.
type Workflow interface {
	// Prepare, After and Complete expose the lifecycle hooks to a runner
	// that calls them itself.
	Prepare(ctx context.Context) error
	After(ctx context.Context, result m.RunResult) error
	Complete(ctx context.Context) error

	// Run drives the runner for every spec file and returns the run's exit code.
	Run(ctx context.Context, args RunArgs) (int, error)

	// View shows the results and failed specs currently on disk.
	View(ctx context.Context, args ViewArgs) error
}

// WorkflowOptions holds the optional collaborators of a Workflow.
type WorkflowOptions struct {
	Reporter reporter.Options
	Sessions adapter.SessionFactory
	Output   io.Writer
}

type workflow struct {
	runner      adapter.TestRunnerAdapter
	results     adapter.ResultStore
	manifest    adapter.ManifestStore
	coordinator Coordinator
	ui          controller.UI
	logs        *logger.Config

	reporterOptions reporter.Options
	sessions        adapter.SessionFactory
	out             io.Writer
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	runner adapter.TestRunnerAdapter,
	results adapter.ResultStore,
	manifest adapter.ManifestStore,
	coordinator Coordinator,
	ui controller.UI,
	logs *logger.Config,
	opts WorkflowOptions,
) Workflow {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	return &workflow{
		runner:          runner,
		results:         results,
		manifest:        manifest,
		coordinator:     coordinator,
		ui:              ui,
		logs:            logs,
		reporterOptions: opts.Reporter,
		sessions:        opts.Sessions,
		out:             &syncWriter{w: out},
	}
}

func (w *workflow) Prepare(ctx context.Context) error {
	return w.coordinator.OnPrepare(ctx)
}

func (w *workflow) After(ctx context.Context, result m.RunResult) error {
	return w.coordinator.After(ctx, result, nil)
}

func (w *workflow) Complete(ctx context.Context) error {
	return w.coordinator.OnComplete(ctx)
}

func (w *workflow) Run(ctx context.Context, args RunArgs) (int, error) {
	if len(args.Specs) == 0 {
		return 1, ErrNoSpecs
	}

	if err := w.coordinator.OnPrepare(ctx); err != nil {
		return 1, fmt.Errorf("prepare: %w", err)
	}

	slog.Debug("Starting test run", "specs", len(args.Specs), "parallel", args.Parallel, "retries", args.Retries)

	runs := make([]m.SpecRun, len(args.Specs))

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Parallel > 0 {
		group.SetLimit(args.Parallel)
	}

	for i, spec := range args.Specs {
		group.Go(func() error {
			run, err := w.runSpec(groupCtx, i, spec, args)
			runs[i] = run

			return err
		})
	}

	runErr := group.Wait()
	if runErr != nil {
		slog.Error("Failed to run spec files", "error", runErr)
	}

	completeErr := w.coordinator.OnComplete(ctx)

	code := exitCode(runs)
	if err := errors.Join(runErr, completeErr); err != nil {
		if code == 0 {
			code = 1
		}

		return code, err
	}

	if err := w.ui.DisplayRunSummary(ctx, runs); err != nil {
		slog.Error("Failed to display run summary", "error", err)
		return code, fmt.Errorf("display: %w", err)
	}

	return code, nil
}

func (w *workflow) runSpec(ctx context.Context, index int, spec string, args RunArgs) (m.SpecRun, error) {
	log := w.logs.New("Worker", logger.Fields{"spec": RelativizeSpec(spec)})
	caseReporter := reporter.New(w.results, w.logs.New("AllureReporter", nil), w.reporterOptions)
	coordinator := w.coordinator.ForWorker(caseReporter)

	dispatcher := NewDispatcher(coordinator, caseReporter, w.sessions, w.out, log)
	defer dispatcher.Close()

	run := m.SpecRun{Spec: spec}

	for attempt := 0; attempt <= args.Retries; attempt++ {
		run.Attempts++

		code, err := w.runner.Run(ctx, adapter.RunRequest{
			Specs: []string{spec},
			Env:   []string{fmt.Sprintf("%s=%d-%d", WorkerEnvKey, index, attempt)},
		}, dispatcher)
		if err != nil {
			slog.Error("Failed to run spec", "spec", spec, "error", err)
			return run, fmt.Errorf("run %s: %w", spec, err)
		}

		run.ExitCode = code
		if code == 0 {
			break
		}

		if attempt < args.Retries {
			log.Info("Retrying spec file", logger.Fields{"attempt": attempt + 2, "exitCode": code})
		}
	}

	// After logs its own failures; a manifest error must not stop other workers.
	_ = coordinator.After(ctx, m.RunResult{ExitCode: run.ExitCode, Specs: []string{spec}}, args.Capabilities)

	return run, nil
}

func exitCode(runs []m.SpecRun) int {
	for _, run := range runs {
		if run.ExitCode != 0 {
			return run.ExitCode
		}
	}

	return 0
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	results, err := w.results.LoadResults()
	if err != nil {
		slog.Error("Failed to load results", "error", err)
		return fmt.Errorf("load results: %w", err)
	}

	if args.FailedOnly {
		failed := results[:0]

		for _, result := range results {
			if result.Status == m.StatusFailed || result.Status == m.StatusBroken {
				failed = append(failed, result)
			}
		}

		results = failed
	}

	manifest, err := w.manifest.Read()
	if err != nil {
		slog.Error("Failed to read failed tests file", "error", err)
		return fmt.Errorf("read manifest: %w", err)
	}

	if err := w.ui.DisplayResults(ctx, results); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return w.ui.DisplayFailedSpecs(ctx, strings.Fields(manifest))
}
