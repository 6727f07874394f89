package model

import "time"

// RunResult is what a worker reports once its spec files have run.
type RunResult struct {
	ExitCode int
	Specs    []string
}

// Failed reports whether the run ended with a non-zero exit code.
func (r RunResult) Failed() bool {
	return r.ExitCode != 0
}

// ReportOptions toggles the optional onComplete steps.
type ReportOptions struct {
	SaveHistory            bool `mapstructure:"save_history" yaml:"save_history"`
	AutoGenerateOnComplete bool `mapstructure:"auto_generate" yaml:"auto_generate"`
}

// DefaultReportOptions enables both history carry-over and generation.
func DefaultReportOptions() ReportOptions {
	return ReportOptions{
		SaveHistory:            true,
		AutoGenerateOnComplete: true,
	}
}

// Capabilities describes the browser a worker runs against.
type Capabilities map[string]any

// Test identifies a test or hook reported by the runner.
type Test struct {
	Title  string `json:"title"`
	Parent string `json:"parent,omitempty"`
	File   string `json:"file,omitempty"`
}

// FullTitle joins the suite and test titles.
func (t Test) FullTitle() string {
	if t.Parent == "" {
		return t.Title
	}

	return t.Parent + " " + t.Title
}

// TestError is the failure reported for a test.
type TestError struct {
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// Error implements error.
func (e *TestError) Error() string {
	if e.Name == "" {
		return e.Message
	}

	return e.Name + ": " + e.Message
}

// TestOutcome is the result handed to the afterTest and afterHook callbacks.
type TestOutcome struct {
	Passed   bool
	Error    *TestError
	Duration time.Duration
}

// ErrorName reports the runner-side error class, e.g. AssertionError.
func (e *TestError) ErrorName() string {
	return e.Name
}

// SpecRun is the final state of one spec file after its attempts.
type SpecRun struct {
	Spec     string
	ExitCode int
	Attempts int
}
