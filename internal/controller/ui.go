// Package controller provides output adapters for displaying test run results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "github.com/awhisler/wdioTest/internal/model"
)

// UI defines the interface for displaying run outcomes.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayRunSummary(ctx context.Context, runs []m.SpecRun) error
	DisplayResults(ctx context.Context, results []m.TestResult) error
	DisplayFailedSpecs(ctx context.Context, specs []string) error
}

// NewUI picks the TUI for terminals and plain tables otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(os.Stdout)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
