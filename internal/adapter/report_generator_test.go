package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/awhisler/wdioTest/internal/model"
)

// writeScript drops an executable shell script standing in for an external binary.
func writeScript(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fake.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o700))

	return path
}

func TestLocalReportGenerator_PassesArguments(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args.txt")
	script := writeScript(t, `echo "$@" > `+argsFile)

	gen := NewLocalReportGenerator([]string{script}, time.Second*5)

	err := gen.Generate(context.Background(), m.Path("out/results"), m.Path("out/reports"))
	require.NoError(t, err)

	got, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t, "generate --clean --output out/reports out/results\n", string(got))
}

func TestLocalReportGenerator_NonZeroExit(t *testing.T) {
	script := writeScript(t, "echo broken >&2\nexit 3")

	gen := NewLocalReportGenerator([]string{script}, time.Second*5)

	err := gen.Generate(context.Background(), "results", "reports")
	require.Error(t, err)

	var exitErr *GenerationExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
	assert.Contains(t, exitErr.Output, "broken")
	assert.EqualError(t, err, "Error to generate Allure report: code=3")
	assert.False(t, errors.Is(err, ErrGenerationTimeout))
}

func TestLocalReportGenerator_Timeout(t *testing.T) {
	script := writeScript(t, "exec sleep 5")

	gen := NewLocalReportGenerator([]string{script}, 100*time.Millisecond)

	start := time.Now()
	err := gen.Generate(context.Background(), "results", "reports")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationTimeout))
	assert.EqualError(t, err, "Error to generate Allure report: timeout")

	var exitErr *GenerationExitError
	assert.False(t, errors.As(err, &exitErr))
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestLocalReportGenerator_MissingBinary(t *testing.T) {
	gen := NewLocalReportGenerator([]string{filepath.Join(t.TempDir(), "allure")}, time.Second)

	err := gen.Generate(context.Background(), "results", "reports")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrGenerationTimeout))
}

func TestNewLocalReportGenerator_Defaults(t *testing.T) {
	gen := NewLocalReportGenerator(nil, 0)

	assert.Equal(t, []string{"allure"}, gen.command)
	assert.Equal(t, DefaultGenerationTimeout, gen.timeout)
}
