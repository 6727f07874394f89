package adapter

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"al.essio.dev/pkg/shellescape"
	"github.com/pkg/errors"

	m "github.com/awhisler/wdioTest/internal/model"
)

// DefaultGenerationTimeout bounds a single report generation.
const DefaultGenerationTimeout = 30 * time.Second

// ErrGenerationTimeout is returned when the generator outlives its timeout.
var ErrGenerationTimeout error = generationTimeoutError{}

type generationTimeoutError struct{}

func (generationTimeoutError) Error() string     { return "Error to generate Allure report: timeout" }
func (generationTimeoutError) ErrorName() string { return "GenerationTimeoutError" }

// GenerationExitError is returned when the generator exits with a non-zero code.
type GenerationExitError struct {
	Code   int
	Output string
}

func (e *GenerationExitError) Error() string {
	return fmt.Sprintf("Error to generate Allure report: code=%d", e.Code)
}

func (e *GenerationExitError) ErrorName() string { return "GenerationExitError" }

// ReportGenerator turns a results directory into a browsable report.
type ReportGenerator interface {
	Generate(ctx context.Context, results, reports m.Path) error
}

// LocalReportGenerator runs the generator binary through os/exec.
type LocalReportGenerator struct {
	command []string
	timeout time.Duration
}

// NewLocalReportGenerator builds a generator invoking command, "allure" when
// empty, with the given timeout or DefaultGenerationTimeout when zero.
func NewLocalReportGenerator(command []string, timeout time.Duration) *LocalReportGenerator {
	if len(command) == 0 {
		command = []string{"allure"}
	}

	if timeout <= 0 {
		timeout = DefaultGenerationTimeout
	}

	return &LocalReportGenerator{
		command: command,
		timeout: timeout,
	}
}

// Generate runs `<command> generate --clean --output <reports> <results>`.
func (g *LocalReportGenerator) Generate(ctx context.Context, results, reports m.Path) error {
	runCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	args := append(append([]string{}, g.command[1:]...),
		"generate", "--clean", "--output", string(reports), string(results))

	cmd := exec.CommandContext(runCtx, g.command[0], args...)
	cmd.WaitDelay = time.Second

	var output bytes.Buffer

	cmd.Stdout = &output
	cmd.Stderr = &output

	slog.Debug("Generating report", "command", shellescape.QuoteCommand(append([]string{g.command[0]}, args...)), "timeout", g.timeout)

	err := cmd.Run()
	if err == nil {
		return nil
	}

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		return errors.WithStack(ErrGenerationTimeout)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return errors.WithStack(&GenerationExitError{Code: exitErr.ExitCode(), Output: output.String()})
	}

	return errors.Wrap(err, "run report generator")
}
