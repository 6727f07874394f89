package domain

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/awhisler/wdioTest/internal/adapter"
	"github.com/awhisler/wdioTest/internal/logger"
	m "github.com/awhisler/wdioTest/internal/model"
	"github.com/awhisler/wdioTest/internal/reporter"
)

// ScreenshotName is the attachment name of failure screenshots.
const ScreenshotName = "Screenshot"

// Attacher adds a file to the case currently being reported.
type Attacher interface {
	AddAttachment(name, mimeType string, content []byte) error
}

// Coordinator is driven by the runner's lifecycle callbacks around a test run.
type Coordinator interface {
	// OnPrepare clears the failure manifest of any previous run.
	OnPrepare(ctx context.Context) error
	// Before keeps the worker's browser session for later screenshots.
	Before(ctx context.Context, caps m.Capabilities, specs []string, session adapter.BrowserSession)
	// AfterTest screenshots a failed test. Screenshot failures are logged only.
	AfterTest(ctx context.Context, test m.Test, outcome m.TestOutcome)
	// AfterHook screenshots a failed hook. Screenshot failures are logged only.
	AfterHook(ctx context.Context, test m.Test, outcome m.TestOutcome)
	// After records the worker's specs in the manifest when it failed, and
	// removes the manifest file when it passed.
	After(ctx context.Context, result m.RunResult, caps m.Capabilities) error
	// OnComplete prepares the results directory, generates the report and
	// reports the failed specs.
	OnComplete(ctx context.Context) error
	// ForWorker returns a coordinator sharing this one's stores, attaching
	// screenshots through attacher.
	ForWorker(attacher Attacher) Coordinator
}

type coordinator struct {
	adapter.ReportFSAdapter
	adapter.ManifestStore
	adapter.ReportGenerator

	log      *logger.Logger
	layout   m.Layout
	options  m.ReportOptions
	attacher Attacher
	session  adapter.BrowserSession
}

// NewCoordinator creates a Coordinator for layout.
func NewCoordinator(
	fsAdapter adapter.ReportFSAdapter,
	manifest adapter.ManifestStore,
	generator adapter.ReportGenerator,
	log *logger.Logger,
	layout m.Layout,
	options m.ReportOptions,
) Coordinator {
	return &coordinator{
		ReportFSAdapter: fsAdapter,
		ManifestStore:   manifest,
		ReportGenerator: generator,
		log:             log,
		layout:          layout,
		options:         options,
	}
}

func (c *coordinator) ForWorker(attacher Attacher) Coordinator {
	return &coordinator{
		ReportFSAdapter: c.ReportFSAdapter,
		ManifestStore:   c.ManifestStore,
		ReportGenerator: c.ReportGenerator,
		log:             c.log,
		layout:          c.layout,
		options:         c.options,
		attacher:        attacher,
	}
}

func (c *coordinator) OnPrepare(_ context.Context) error {
	if err := c.ManifestStore.Reset(); err != nil {
		c.log.Error("Failed to reset failed tests directory", logger.Fields{"path": c.ManifestStore.Dir()}, err)
		return err
	}

	return nil
}

func (c *coordinator) Before(_ context.Context, caps m.Capabilities, specs []string, session adapter.BrowserSession) {
	c.session = session
	c.log.Debug("Worker started", logger.Fields{"specs": specs, "browser": caps["browserName"]})
}

func (c *coordinator) AfterTest(ctx context.Context, test m.Test, outcome m.TestOutcome) {
	if outcome.Passed {
		return
	}

	c.screenshot(ctx, test)
}

func (c *coordinator) AfterHook(ctx context.Context, test m.Test, outcome m.TestOutcome) {
	if outcome.Passed {
		return
	}

	c.screenshot(ctx, test)
}

func (c *coordinator) screenshot(ctx context.Context, test m.Test) {
	fields := logger.Fields{"test": test.FullTitle()}

	if c.session == nil {
		c.log.Warn("No browser session to take a screenshot with", fields)
		return
	}

	png, err := c.session.TakeScreenshot(ctx)
	if err != nil {
		c.log.Warn("Failed to take screenshot", fields, err)
		return
	}

	if c.attacher == nil {
		return
	}

	err = c.attacher.AddAttachment(ScreenshotName, "image/png", png)
	switch {
	case errors.Is(err, reporter.ErrNoActiveCase):
		c.log.Debug("Screenshot taken outside of a test case", fields)
	case err != nil:
		c.log.Warn("Failed to attach screenshot", fields, err)
	}
}

func (c *coordinator) After(ctx context.Context, result m.RunResult, _ m.Capabilities) error {
	if !result.Failed() {
		if err := c.ManifestStore.RemoveFile(); err != nil {
			c.log.Error("Failed to delete failed tests file", err)
			return err
		}

		return nil
	}

	for _, spec := range result.Specs {
		name := RelativizeSpec(spec)

		if err := c.ManifestStore.Append(ctx, name); err != nil {
			c.log.Error("Failed to record failed spec", logger.Fields{"spec": name}, err)
			return fmt.Errorf("record failed spec %s: %w", name, err)
		}
	}

	return nil
}

// RelativizeSpec cuts a spec path down to the part starting at its "specs/"
// segment. Paths without one are returned unchanged, with forward slashes.
func RelativizeSpec(spec string) string {
	slashed := filepath.ToSlash(spec)

	idx := strings.Index(slashed, "specs/")
	if idx < 0 {
		return slashed
	}

	return slashed[idx:]
}

// FailedTestsBanner frames the manifest content for the final error line.
func FailedTestsBanner(manifest string) string {
	return "\n\n=============\nFAILED TESTS: " + manifest + "\n============="
}

func (c *coordinator) OnComplete(ctx context.Context) error {
	if err := c.ReportFSAdapter.MkdirAll(c.layout.Results); err != nil {
		c.log.Error("Failed to create results directory", logger.Fields{"path": c.layout.Results}, err)
		return fmt.Errorf("create results dir: %w", err)
	}

	if err := c.installCategories(); err != nil {
		c.log.Error("Failed to install categories", logger.Fields{"source": c.layout.Categories}, err)
		return fmt.Errorf("install categories: %w", err)
	}

	if c.options.SaveHistory {
		if err := c.saveHistory(ctx); err != nil {
			c.log.Error("Failed to save report history", err)
			return fmt.Errorf("save history: %w", err)
		}
	}

	if c.options.AutoGenerateOnComplete {
		if err := c.ReportGenerator.Generate(ctx, c.layout.Results, c.layout.Reports); err != nil {
			c.log.Error("Failed to generate report", err)
			return err
		}

		c.log.Info("Report generated", logger.Fields{"path": c.layout.Reports})
	}

	failed, err := c.ManifestStore.Read()
	if err != nil {
		c.log.Error("Failed to read failed tests file", err)
		return err
	}

	if len(failed) > 0 {
		c.log.Error(FailedTestsBanner(failed))
	}

	return c.ManifestStore.RemoveDir()
}
