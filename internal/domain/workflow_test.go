package domain_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/awhisler/wdioTest/internal/adapter"
	adaptermocks "github.com/awhisler/wdioTest/internal/adapter/mocks"
	controllermocks "github.com/awhisler/wdioTest/internal/controller/mocks"
	"github.com/awhisler/wdioTest/internal/domain"
	domainmocks "github.com/awhisler/wdioTest/internal/domain/mocks"
	"github.com/awhisler/wdioTest/internal/logger"
	m "github.com/awhisler/wdioTest/internal/model"
	"github.com/awhisler/wdioTest/internal/reporter"
)

func testLogs() *logger.Config {
	return logger.NewConfig(logger.WithOutput(&bytes.Buffer{}), logger.WithTimestamp(false))
}

func runRequest(spec, worker string) adapter.RunRequest {
	return adapter.RunRequest{
		Specs: []string{spec},
		Env:   []string{domain.WorkerEnvKey + "=" + worker},
	}
}

func TestWorkflow_Run(t *testing.T) {
	ctx := context.Background()
	caps := m.Capabilities{"browserName": "chrome"}

	t.Run("runs every spec and reports the first failing exit code", func(t *testing.T) {
		// Arrange
		runner := new(adaptermocks.MockTestRunnerAdapter)
		coordinator := new(domainmocks.MockCoordinator)
		worker := new(domainmocks.MockCoordinator)
		ui := new(controllermocks.MockUI)

		coordinator.EXPECT().OnPrepare(ctx).Return(nil)
		coordinator.EXPECT().ForWorker(mock.Anything).Return(worker)
		coordinator.EXPECT().OnComplete(ctx).Return(nil)
		runner.EXPECT().Run(mock.Anything, runRequest("/w/specs/a.spec.js", "0-0"), mock.Anything).Return(0, nil)
		runner.EXPECT().Run(mock.Anything, runRequest("/w/specs/b.spec.js", "1-0"), mock.Anything).Return(3, nil)
		worker.EXPECT().After(mock.Anything, m.RunResult{ExitCode: 0, Specs: []string{"/w/specs/a.spec.js"}}, caps).Return(nil)
		worker.EXPECT().After(mock.Anything, m.RunResult{ExitCode: 3, Specs: []string{"/w/specs/b.spec.js"}}, caps).Return(nil)
		ui.EXPECT().DisplayRunSummary(ctx, []m.SpecRun{
			{Spec: "/w/specs/a.spec.js", ExitCode: 0, Attempts: 1},
			{Spec: "/w/specs/b.spec.js", ExitCode: 3, Attempts: 1},
		}).Return(nil)

		wf := domain.NewWorkflow(runner, nil, nil, coordinator, ui, testLogs(), domain.WorkflowOptions{Output: &bytes.Buffer{}})

		// Act
		code, err := wf.Run(ctx, domain.RunArgs{
			Specs:        []string{"/w/specs/a.spec.js", "/w/specs/b.spec.js"},
			Parallel:     1,
			Capabilities: caps,
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 3, code)
		runner.AssertExpectations(t)
		coordinator.AssertExpectations(t)
		worker.AssertExpectations(t)
		ui.AssertExpectations(t)
	})

	t.Run("retries a failing spec until it passes", func(t *testing.T) {
		runner := new(adaptermocks.MockTestRunnerAdapter)
		coordinator := new(domainmocks.MockCoordinator)
		worker := new(domainmocks.MockCoordinator)
		ui := new(controllermocks.MockUI)

		coordinator.EXPECT().OnPrepare(ctx).Return(nil)
		coordinator.EXPECT().ForWorker(mock.Anything).Return(worker)
		coordinator.EXPECT().OnComplete(ctx).Return(nil)
		runner.EXPECT().Run(mock.Anything, runRequest("specs/flaky.spec.js", "0-0"), mock.Anything).Return(1, nil).Once()
		runner.EXPECT().Run(mock.Anything, runRequest("specs/flaky.spec.js", "0-1"), mock.Anything).Return(0, nil).Once()
		worker.EXPECT().After(mock.Anything, m.RunResult{ExitCode: 0, Specs: []string{"specs/flaky.spec.js"}}, caps).Return(nil).Once()
		ui.EXPECT().DisplayRunSummary(ctx, []m.SpecRun{{Spec: "specs/flaky.spec.js", ExitCode: 0, Attempts: 2}}).Return(nil)

		wf := domain.NewWorkflow(runner, nil, nil, coordinator, ui, testLogs(), domain.WorkflowOptions{Output: &bytes.Buffer{}})

		code, err := wf.Run(ctx, domain.RunArgs{Specs: []string{"specs/flaky.spec.js"}, Retries: 2, Capabilities: caps})

		require.NoError(t, err)
		assert.Equal(t, 0, code)
		runner.AssertExpectations(t)
		worker.AssertExpectations(t)
	})

	t.Run("gives up after the last retry", func(t *testing.T) {
		runner := new(adaptermocks.MockTestRunnerAdapter)
		coordinator := new(domainmocks.MockCoordinator)
		worker := new(domainmocks.MockCoordinator)
		ui := new(controllermocks.MockUI)

		coordinator.EXPECT().OnPrepare(ctx).Return(nil)
		coordinator.EXPECT().ForWorker(mock.Anything).Return(worker)
		coordinator.EXPECT().OnComplete(ctx).Return(nil)
		runner.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).Return(1, nil).Times(2)
		worker.EXPECT().After(mock.Anything, m.RunResult{ExitCode: 1, Specs: []string{"specs/broken.spec.js"}}, caps).Return(nil).Once()
		ui.EXPECT().DisplayRunSummary(ctx, []m.SpecRun{{Spec: "specs/broken.spec.js", ExitCode: 1, Attempts: 2}}).Return(nil)

		wf := domain.NewWorkflow(runner, nil, nil, coordinator, ui, testLogs(), domain.WorkflowOptions{Output: &bytes.Buffer{}})

		code, err := wf.Run(ctx, domain.RunArgs{Specs: []string{"specs/broken.spec.js"}, Retries: 1, Capabilities: caps})

		require.NoError(t, err)
		assert.Equal(t, 1, code)
		runner.AssertExpectations(t)
	})

	t.Run("completes even when the runner fails", func(t *testing.T) {
		runner := new(adaptermocks.MockTestRunnerAdapter)
		coordinator := new(domainmocks.MockCoordinator)
		worker := new(domainmocks.MockCoordinator)
		ui := new(controllermocks.MockUI)

		coordinator.EXPECT().OnPrepare(ctx).Return(nil)
		coordinator.EXPECT().ForWorker(mock.Anything).Return(worker)
		coordinator.EXPECT().OnComplete(ctx).Return(nil)
		runner.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).Return(-1, errors.New("npx not found"))

		wf := domain.NewWorkflow(runner, nil, nil, coordinator, ui, testLogs(), domain.WorkflowOptions{Output: &bytes.Buffer{}})

		code, err := wf.Run(ctx, domain.RunArgs{Specs: []string{"specs/a.spec.js"}})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "npx not found")
		assert.Equal(t, 1, code)
		coordinator.AssertExpectations(t)
		worker.AssertNotCalled(t, "After", mock.Anything, mock.Anything, mock.Anything)
		ui.AssertNotCalled(t, "DisplayRunSummary", mock.Anything, mock.Anything)
	})

	t.Run("complete failure is returned with the run's exit code", func(t *testing.T) {
		runner := new(adaptermocks.MockTestRunnerAdapter)
		coordinator := new(domainmocks.MockCoordinator)
		worker := new(domainmocks.MockCoordinator)
		ui := new(controllermocks.MockUI)

		coordinator.EXPECT().OnPrepare(ctx).Return(nil)
		coordinator.EXPECT().ForWorker(mock.Anything).Return(worker)
		coordinator.EXPECT().OnComplete(ctx).Return(adapter.ErrGenerationTimeout)
		runner.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).Return(2, nil)
		worker.EXPECT().After(mock.Anything, mock.Anything, mock.Anything).Return(nil)

		wf := domain.NewWorkflow(runner, nil, nil, coordinator, ui, testLogs(), domain.WorkflowOptions{Output: &bytes.Buffer{}})

		code, err := wf.Run(ctx, domain.RunArgs{Specs: []string{"specs/a.spec.js"}})

		require.ErrorIs(t, err, adapter.ErrGenerationTimeout)
		assert.Equal(t, 2, code)
	})

	t.Run("prepare failure stops the run", func(t *testing.T) {
		runner := new(adaptermocks.MockTestRunnerAdapter)
		coordinator := new(domainmocks.MockCoordinator)

		coordinator.EXPECT().OnPrepare(ctx).Return(errors.New("permission denied"))

		wf := domain.NewWorkflow(runner, nil, nil, coordinator, nil, testLogs(), domain.WorkflowOptions{})

		code, err := wf.Run(ctx, domain.RunArgs{Specs: []string{"specs/a.spec.js"}})

		require.Error(t, err)
		assert.Equal(t, 1, code)
		runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no specs", func(t *testing.T) {
		wf := domain.NewWorkflow(nil, nil, nil, nil, nil, testLogs(), domain.WorkflowOptions{})

		code, err := wf.Run(ctx, domain.RunArgs{})

		require.ErrorIs(t, err, domain.ErrNoSpecs)
		assert.Equal(t, 1, code)
	})
}

// scriptedRunner replays events and output lines for every spec it is asked to run.
type scriptedRunner struct {
	steps []any
	code  int
}

func (r *scriptedRunner) Run(ctx context.Context, _ adapter.RunRequest, handler adapter.RunHandler) (int, error) {
	for _, step := range r.steps {
		switch step := step.(type) {
		case m.Event:
			handler.HandleEvent(ctx, step)
		case string:
			handler.HandleOutput(step)
		}
	}

	return r.code, nil
}

func TestWorkflow_Run_Reports(t *testing.T) {
	// Arrange
	ctx := context.Background()
	root := t.TempDir()
	layout := m.Layout{
		Results:     m.Path(filepath.Join(root, "allure-results")),
		Reports:     m.Path(filepath.Join(root, "allure-reports")),
		FailedTests: m.Path(filepath.Join(root, "failed-tests")),
		Categories:  m.Path(filepath.Join(root, "categories.json")),
	}

	logs := &bytes.Buffer{}
	cfg := logger.NewConfig(logger.WithOutput(logs), logger.WithTimestamp(false), logger.WithStackTrace(false))

	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	test := m.Test{Title: "rejects a bad password", Parent: "Login", File: "/w/specs/login.spec.js"}
	testErr := &m.TestError{Name: "Error", Message: "element still not displayed"}
	runner := &scriptedRunner{
		steps: []any{
			m.Event{Type: m.EventTestStart, Test: test, Time: start},
			"[0-0] clicking #submit",
			m.Event{Type: m.EventAfterTest, Test: test, Error: testErr},
			m.Event{Type: m.EventTestFail, Test: test, Error: testErr, Time: start.Add(time.Second)},
		},
		code: 1,
	}

	results := adapter.NewFileResultStore(layout.Results)
	manifest := adapter.NewFileManifestStore(layout.FailedTests)
	generator := new(adaptermocks.MockReportGenerator)
	coordinator := domain.NewCoordinator(adapter.NewLocalReportFSAdapter(), manifest, generator, cfg.New("AllureService", nil), layout, m.ReportOptions{})
	ui := new(controllermocks.MockUI)
	ui.EXPECT().DisplayRunSummary(ctx, mock.Anything).Return(nil)

	out := &bytes.Buffer{}
	wf := domain.NewWorkflow(runner, results, manifest, coordinator, ui, cfg, domain.WorkflowOptions{
		Reporter: reporter.Options{AddConsoleLogs: true},
		Output:   out,
	})

	// Act
	code, err := wf.Run(ctx, domain.RunArgs{Specs: []string{"/w/specs/login.spec.js"}})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.Equal(t, "[0-0] clicking #submit\n", out.String())

	saved, err := results.LoadResults()
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Login rejects a bad password", saved[0].FullName)
	assert.Equal(t, m.StatusFailed, saved[0].Status)
	assert.Equal(t, "element still not displayed", saved[0].StatusDetails.Message)
	require.Len(t, saved[0].Attachments, 1)
	assert.Equal(t, reporter.ConsoleLogsName, saved[0].Attachments[0].Name)

	assert.Contains(t, logs.String(), "No browser session to take a screenshot with")
	assert.Contains(t, logs.String(), domain.FailedTestsBanner("specs/login.spec.js"))
	assert.NoDirExists(t, string(layout.FailedTests))
	generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_View(t *testing.T) {
	ctx := context.Background()
	stored := []m.TestResult{
		{Name: "passes", Status: m.StatusPassed},
		{Name: "fails", Status: m.StatusFailed},
		{Name: "breaks", Status: m.StatusBroken},
		{Name: "skips", Status: m.StatusSkipped},
	}

	t.Run("shows all results and failed specs", func(t *testing.T) {
		results := new(adaptermocks.MockResultStore)
		manifest := new(adaptermocks.MockManifestStore)
		ui := new(controllermocks.MockUI)

		results.EXPECT().LoadResults().Return(append([]m.TestResult(nil), stored...), nil)
		manifest.EXPECT().Read().Return("specs/a.spec.js specs/b.spec.js", nil)
		ui.EXPECT().DisplayResults(ctx, stored).Return(nil)
		ui.EXPECT().DisplayFailedSpecs(ctx, []string{"specs/a.spec.js", "specs/b.spec.js"}).Return(nil)

		wf := domain.NewWorkflow(nil, results, manifest, nil, ui, testLogs(), domain.WorkflowOptions{})

		require.NoError(t, wf.View(ctx, domain.ViewArgs{}))
		ui.AssertExpectations(t)
	})

	t.Run("filters failed results", func(t *testing.T) {
		results := new(adaptermocks.MockResultStore)
		manifest := new(adaptermocks.MockManifestStore)
		ui := new(controllermocks.MockUI)

		results.EXPECT().LoadResults().Return(append([]m.TestResult(nil), stored...), nil)
		manifest.EXPECT().Read().Return("", nil)
		ui.EXPECT().DisplayResults(ctx, []m.TestResult{stored[1], stored[2]}).Return(nil)
		ui.EXPECT().DisplayFailedSpecs(ctx, []string{}).Return(nil)

		wf := domain.NewWorkflow(nil, results, manifest, nil, ui, testLogs(), domain.WorkflowOptions{})

		require.NoError(t, wf.View(ctx, domain.ViewArgs{FailedOnly: true}))
		ui.AssertExpectations(t)
	})

	t.Run("load failure", func(t *testing.T) {
		results := new(adaptermocks.MockResultStore)
		results.EXPECT().LoadResults().Return(nil, errors.New("corrupt result"))

		wf := domain.NewWorkflow(nil, results, nil, nil, nil, testLogs(), domain.WorkflowOptions{})

		err := wf.View(ctx, domain.ViewArgs{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "corrupt result")
	})
}

func TestWorkflow_Hooks(t *testing.T) {
	ctx := context.Background()
	coordinator := new(domainmocks.MockCoordinator)
	result := m.RunResult{ExitCode: 1, Specs: []string{"specs/a.spec.js"}}

	coordinator.EXPECT().OnPrepare(ctx).Return(nil)
	coordinator.EXPECT().After(ctx, result, m.Capabilities(nil)).Return(nil)
	coordinator.EXPECT().OnComplete(ctx).Return(nil)

	wf := domain.NewWorkflow(nil, nil, nil, coordinator, nil, testLogs(), domain.WorkflowOptions{})

	require.NoError(t, wf.Prepare(ctx))
	require.NoError(t, wf.After(ctx, result))
	require.NoError(t, wf.Complete(ctx))
	coordinator.AssertExpectations(t)
}
