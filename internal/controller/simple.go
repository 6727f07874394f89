package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/awhisler/wdioTest/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRunSummary prints one row per spec file.
func (s *SimpleUI) DisplayRunSummary(ctx context.Context, runs []m.SpecRun) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderRunSummaryTable(runs))

	return nil
}

// DisplayResults prints one row per test result.
func (s *SimpleUI) DisplayResults(ctx context.Context, results []m.TestResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(results) == 0 {
		s.printf("No test results found\n")
		return nil
	}

	s.printf("\n%s", renderResultsTable(results))

	return nil
}

// DisplayFailedSpecs lists the spec files recorded in the failure manifest.
func (s *SimpleUI) DisplayFailedSpecs(ctx context.Context, specs []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(specs) == 0 {
		return nil
	}

	s.printf("\nFailed specs:\n")

	for _, spec := range specs {
		s.printf("  %s\n", spec)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
