package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainmocks "github.com/awhisler/wdioTest/internal/domain/mocks"
	m "github.com/awhisler/wdioTest/internal/model"
)

func newTestHooksRoot(t *testing.T) (*domainmocks.MockWorkflow, func(args ...string) error) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newPrepareCmd(), newAfterCmd(), newCompleteCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow, func(args ...string) error {
		cmd.SetArgs(args)
		return cmd.Execute()
	}
}

func TestPrepareCmd(t *testing.T) {
	mockWorkflow, execute := newTestHooksRoot(t)
	mockWorkflow.EXPECT().Prepare(mock.Anything).Return(nil)

	require.NoError(t, execute("prepare"))
}

func TestPrepareCmd_RejectsArgs(t *testing.T) {
	_, execute := newTestHooksRoot(t)

	require.Error(t, execute("prepare", "specs/a.spec.js"))
}

func TestAfterCmd_FailedWorker(t *testing.T) {
	mockWorkflow, execute := newTestHooksRoot(t)
	mockWorkflow.EXPECT().After(mock.Anything, m.RunResult{
		ExitCode: 1,
		Specs:    []string{"/w/specs/a.spec.js", "/w/specs/b.spec.js"},
	}).Return(nil)

	require.NoError(t, execute("after", "--exit-code", "1", "/w/specs/a.spec.js", "/w/specs/b.spec.js"))
}

func TestAfterCmd_PassedWorker(t *testing.T) {
	mockWorkflow, execute := newTestHooksRoot(t)
	mockWorkflow.EXPECT().After(mock.Anything, mock.MatchedBy(func(result m.RunResult) bool {
		return result.ExitCode == 0 && len(result.Specs) == 0
	})).Return(nil)

	require.NoError(t, execute("after"))
}

func TestCompleteCmd_PropagatesErrors(t *testing.T) {
	mockWorkflow, execute := newTestHooksRoot(t)
	mockWorkflow.EXPECT().Complete(mock.Anything).Return(errors.New("Error to generate Allure report: code=1"))

	err := execute("complete")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "code=1")
}
