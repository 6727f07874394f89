package adapter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"al.essio.dev/pkg/shellescape"
	"github.com/pkg/errors"

	m "github.com/awhisler/wdioTest/internal/model"
)

// EventPrefix marks runner stdout lines carrying a JSON encoded m.Event.
const EventPrefix = "##wdioreport "

const maxEventLineSize = 4 * 1024 * 1024

// RunRequest describes one runner invocation.
type RunRequest struct {
	// Specs are passed to the runner, each after SpecFlag.
	Specs []string
	// Env is appended to the current process environment.
	Env []string
	// Stderr receives the runner's stderr. Nil means os.Stderr.
	Stderr io.Writer
}

// RunHandler receives what the runner prints, line by line, in order.
type RunHandler interface {
	HandleEvent(ctx context.Context, event m.Event)
	HandleOutput(line string)
}

// TestRunnerAdapter abstracts the external browser test runner.
type TestRunnerAdapter interface {
	// Run executes the runner for req.Specs and returns its exit code.
	// A non-zero exit code is not an error; err is set only when the runner
	// could not be run at all.
	Run(ctx context.Context, req RunRequest, handler RunHandler) (exitCode int, err error)
}

// LocalTestRunnerAdapter provides a concrete implementation using os/exec.
type LocalTestRunnerAdapter struct {
	command  []string
	specFlag string
}

// NewLocalTestRunnerAdapter constructs a LocalTestRunnerAdapter.
func NewLocalTestRunnerAdapter(command []string, specFlag string) *LocalTestRunnerAdapter {
	if len(command) == 0 {
		command = []string{"npx", "wdio", "run", "wdio.conf.js"}
	}

	return &LocalTestRunnerAdapter{
		command:  command,
		specFlag: specFlag,
	}
}

// Run starts the runner and streams its stdout into handler.
func (a *LocalTestRunnerAdapter) Run(ctx context.Context, req RunRequest, handler RunHandler) (int, error) {
	args := append([]string{}, a.command[1:]...)

	for _, spec := range req.Specs {
		if a.specFlag != "" {
			args = append(args, a.specFlag)
		}

		args = append(args, spec)
	}

	cmd := exec.CommandContext(ctx, a.command[0], args...)
	cmd.Env = append(os.Environ(), req.Env...)
	cmd.WaitDelay = 5 * time.Second

	cmd.Stderr = req.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return -1, errors.Wrap(err, "runner stdout")
	}

	slog.Debug("Starting test runner", "command", shellescape.QuoteCommand(append([]string{a.command[0]}, args...)))

	if err := cmd.Start(); err != nil {
		return -1, errors.Wrap(err, "start test runner")
	}

	scanErr := scanRunnerOutput(ctx, stdout, handler)

	err = cmd.Wait()
	if scanErr != nil {
		slog.Warn("Failed to read runner output", "error", scanErr)
	}

	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			code = 1
		}

		return code, nil
	}

	return -1, errors.Wrap(err, "wait for test runner")
}

func scanRunnerOutput(ctx context.Context, r io.Reader, handler RunHandler) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventLineSize)

	for scanner.Scan() {
		line := scanner.Text()

		event, ok, err := ParseEventLine(line)
		if err != nil {
			slog.Warn("Failed to decode runner event", "line", line, "error", err)
		}

		if ok {
			handler.HandleEvent(ctx, event)
			continue
		}

		handler.HandleOutput(line)
	}

	if err := scanner.Err(); err != nil {
		_, _ = io.Copy(io.Discard, r)
		return err
	}

	return nil
}

// ParseEventLine decodes a prefixed event line. ok is false for plain output
// and for lines that fail to decode.
func ParseEventLine(line string) (m.Event, bool, error) {
	payload, found := strings.CutPrefix(line, EventPrefix)
	if !found {
		return m.Event{}, false, nil
	}

	var event m.Event
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return m.Event{}, false, fmt.Errorf("decode event: %w", err)
	}

	if event.Time.IsZero() {
		event.Time = time.Now()
	}

	return event, true, nil
}
