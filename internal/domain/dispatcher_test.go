package domain_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/awhisler/wdioTest/internal/adapter"
	adaptermocks "github.com/awhisler/wdioTest/internal/adapter/mocks"
	"github.com/awhisler/wdioTest/internal/domain"
	domainmocks "github.com/awhisler/wdioTest/internal/domain/mocks"
	"github.com/awhisler/wdioTest/internal/logger"
	m "github.com/awhisler/wdioTest/internal/model"
)

type fakeCaseReporter struct {
	calls   []string
	console []string
	err     error
}

func (r *fakeCaseReporter) AddAttachment(name, _ string, _ []byte) error {
	r.calls = append(r.calls, "attach "+name)
	return r.err
}

func (r *fakeCaseReporter) StartCase(test m.Test, _ time.Time) error {
	r.calls = append(r.calls, "start "+test.FullTitle())
	return r.err
}

func (r *fakeCaseReporter) OnTestPass(_ time.Time) error {
	r.calls = append(r.calls, "pass")
	return r.err
}

func (r *fakeCaseReporter) OnTestFail(test m.Test, testErr *m.TestError, _ time.Time) error {
	r.calls = append(r.calls, "fail "+test.FullTitle()+": "+testErr.Error())
	return r.err
}

func (r *fakeCaseReporter) OnTestSkip(test m.Test, _ time.Time) error {
	r.calls = append(r.calls, "skip "+test.FullTitle())
	return r.err
}

func (r *fakeCaseReporter) AppendConsole(line string) {
	r.console = append(r.console, line)
}

func newTestDispatcher(
	coordinator domain.Coordinator,
	caseReporter domain.CaseReporter,
	sessions adapter.SessionFactory,
) (*domain.Dispatcher, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	cfg := logger.NewConfig(logger.WithOutput(logs), logger.WithTimestamp(false))

	return domain.NewDispatcher(coordinator, caseReporter, sessions, out, cfg.New("Worker", nil)), out, logs
}

func TestDispatcher_SessionStart(t *testing.T) {
	ctx := context.Background()
	caps := m.Capabilities{"browserName": "chrome"}
	specs := []string{"/w/specs/a.spec.js"}

	t.Run("opens the session and calls Before", func(t *testing.T) {
		// Arrange
		coordinator := new(domainmocks.MockCoordinator)
		session := new(adaptermocks.MockBrowserSession)
		var address string
		sessions := func(_ context.Context, addr string) (adapter.BrowserSession, error) {
			address = addr
			return session, nil
		}
		coordinator.EXPECT().Before(ctx, caps, specs, session).Return()
		session.EXPECT().Close().Return(nil)
		dispatcher, _, _ := newTestDispatcher(coordinator, &fakeCaseReporter{}, sessions)

		// Act
		dispatcher.HandleEvent(ctx, m.Event{
			Type:         m.EventSessionStart,
			Session:      "ws://127.0.0.1:9222/devtools/browser/abc",
			Capabilities: caps,
			Specs:        specs,
		})
		dispatcher.Close()

		// Assert
		assert.Equal(t, "ws://127.0.0.1:9222/devtools/browser/abc", address)
		coordinator.AssertExpectations(t)
		session.AssertExpectations(t)
	})

	t.Run("new session closes the previous one", func(t *testing.T) {
		coordinator := new(domainmocks.MockCoordinator)
		first := new(adaptermocks.MockBrowserSession)
		second := new(adaptermocks.MockBrowserSession)
		opened := []adapter.BrowserSession{first, second}
		sessions := func(context.Context, string) (adapter.BrowserSession, error) {
			session := opened[0]
			opened = opened[1:]
			return session, nil
		}
		coordinator.EXPECT().Before(ctx, mock.Anything, mock.Anything, mock.Anything).Return()
		first.EXPECT().Close().Return(nil).Once()
		dispatcher, _, _ := newTestDispatcher(coordinator, &fakeCaseReporter{}, sessions)

		dispatcher.HandleEvent(ctx, m.Event{Type: m.EventSessionStart, Session: "ws://one"})
		dispatcher.HandleEvent(ctx, m.Event{Type: m.EventSessionStart, Session: "ws://two"})

		first.AssertExpectations(t)
		second.AssertNotCalled(t, "Close")
		coordinator.AssertNumberOfCalls(t, "Before", 2)
	})

	t.Run("session failure still calls Before without a session", func(t *testing.T) {
		coordinator := new(domainmocks.MockCoordinator)
		sessions := func(context.Context, string) (adapter.BrowserSession, error) {
			return nil, errors.New("connection refused")
		}
		coordinator.EXPECT().Before(ctx, caps, specs, nil).Return()
		dispatcher, _, logs := newTestDispatcher(coordinator, &fakeCaseReporter{}, sessions)

		dispatcher.HandleEvent(ctx, m.Event{Type: m.EventSessionStart, Session: "ws://gone", Capabilities: caps, Specs: specs})
		dispatcher.Close()

		assert.Contains(t, logs.String(), "Failed to open browser session")
		assert.Contains(t, logs.String(), "connection refused")
		coordinator.AssertExpectations(t)
	})

	t.Run("without address no session is opened", func(t *testing.T) {
		coordinator := new(domainmocks.MockCoordinator)
		sessions := func(context.Context, string) (adapter.BrowserSession, error) {
			t.Fatalf("session factory should not be called")
			return nil, nil
		}
		coordinator.EXPECT().Before(ctx, caps, specs, nil).Return()
		dispatcher, _, _ := newTestDispatcher(coordinator, &fakeCaseReporter{}, sessions)

		dispatcher.HandleEvent(ctx, m.Event{Type: m.EventSessionStart, Capabilities: caps, Specs: specs})

		coordinator.AssertExpectations(t)
	})
}

func TestDispatcher_TestEvents(t *testing.T) {
	ctx := context.Background()
	test := m.Test{Title: "logs in", Parent: "Login", File: "/w/specs/login.spec.js"}
	testErr := &m.TestError{Name: "AssertionError", Message: "expected true"}

	t.Run("maps lifecycle events to the reporter", func(t *testing.T) {
		coordinator := new(domainmocks.MockCoordinator)
		caseReporter := &fakeCaseReporter{}
		dispatcher, _, _ := newTestDispatcher(coordinator, caseReporter, nil)

		dispatcher.HandleEvent(ctx, m.Event{Type: m.EventTestStart, Test: test})
		dispatcher.HandleEvent(ctx, m.Event{Type: m.EventTestPass, Test: test})
		dispatcher.HandleEvent(ctx, m.Event{Type: m.EventTestStart, Test: test})
		dispatcher.HandleEvent(ctx, m.Event{Type: m.EventTestFail, Test: test, Error: testErr})
		dispatcher.HandleEvent(ctx, m.Event{Type: m.EventTestSkip, Test: test})

		assert.Equal(t, []string{
			"start Login logs in",
			"pass",
			"start Login logs in",
			"fail Login logs in: AssertionError: expected true",
			"skip Login logs in",
		}, caseReporter.calls)
	})

	t.Run("after events reach the coordinator", func(t *testing.T) {
		coordinator := new(domainmocks.MockCoordinator)
		outcome := m.TestOutcome{Error: testErr, Duration: 1500 * time.Millisecond}
		coordinator.EXPECT().AfterTest(ctx, test, outcome).Return()
		coordinator.EXPECT().AfterHook(ctx, test, m.TestOutcome{Passed: true}).Return()
		dispatcher, _, _ := newTestDispatcher(coordinator, &fakeCaseReporter{}, nil)

		dispatcher.HandleEvent(ctx, m.Event{Type: m.EventAfterTest, Test: test, Error: testErr, Duration: 1500})
		dispatcher.HandleEvent(ctx, m.Event{Type: m.EventAfterHook, Test: test, Passed: true})

		coordinator.AssertExpectations(t)
	})

	t.Run("reporter errors are logged", func(t *testing.T) {
		coordinator := new(domainmocks.MockCoordinator)
		caseReporter := &fakeCaseReporter{err: errors.New("disk full")}
		dispatcher, _, logs := newTestDispatcher(coordinator, caseReporter, nil)

		dispatcher.HandleEvent(ctx, m.Event{Type: m.EventTestPass, Test: test})

		assert.Contains(t, logs.String(), "WARN - ")
		assert.Contains(t, logs.String(), "Failed to record test result")
		assert.Contains(t, logs.String(), "disk full")
	})

	t.Run("unknown events are ignored", func(t *testing.T) {
		coordinator := new(domainmocks.MockCoordinator)
		caseReporter := &fakeCaseReporter{}
		dispatcher, _, logs := newTestDispatcher(coordinator, caseReporter, nil)

		dispatcher.HandleEvent(ctx, m.Event{Type: "suite:start"})

		assert.Empty(t, caseReporter.calls)
		assert.Contains(t, logs.String(), "Ignoring runner event")
	})
}

func TestDispatcher_HandleOutput(t *testing.T) {
	caseReporter := &fakeCaseReporter{}
	dispatcher, out, _ := newTestDispatcher(new(domainmocks.MockCoordinator), caseReporter, nil)

	dispatcher.HandleOutput("[chrome] Login logs in")
	dispatcher.HandleOutput("1 passing")

	assert.Equal(t, "[chrome] Login logs in\n1 passing\n", out.String())
	assert.Equal(t, []string{"[chrome] Login logs in", "1 passing"}, caseReporter.console)
}
