package domain

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/awhisler/wdioTest/internal/adapter"
	"github.com/awhisler/wdioTest/internal/logger"
	m "github.com/awhisler/wdioTest/internal/model"
)

// CaseReporter records the cases of one worker.
type CaseReporter interface {
	Attacher
	StartCase(test m.Test, at time.Time) error
	OnTestPass(at time.Time) error
	OnTestFail(test m.Test, testErr *m.TestError, at time.Time) error
	OnTestSkip(test m.Test, at time.Time) error
	AppendConsole(line string)
}

// Dispatcher turns runner events into reporter and coordinator calls.
// It implements adapter.RunHandler.
type Dispatcher struct {
	coordinator Coordinator
	reporter    CaseReporter
	sessions    adapter.SessionFactory
	out         io.Writer
	log         *logger.Logger

	session adapter.BrowserSession
}

// NewDispatcher wires one worker's coordinator and reporter. Plain runner
// output is copied to out.
func NewDispatcher(
	coordinator Coordinator,
	caseReporter CaseReporter,
	sessions adapter.SessionFactory,
	out io.Writer,
	log *logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		coordinator: coordinator,
		reporter:    caseReporter,
		sessions:    sessions,
		out:         out,
		log:         log,
	}
}

// HandleEvent dispatches a single runner event.
func (d *Dispatcher) HandleEvent(ctx context.Context, event m.Event) {
	var err error

	switch event.Type {
	case m.EventSessionStart:
		d.startSession(ctx, event)
	case m.EventTestStart:
		err = d.reporter.StartCase(event.Test, event.Time)
	case m.EventTestPass:
		err = d.reporter.OnTestPass(event.Time)
	case m.EventTestFail:
		err = d.reporter.OnTestFail(event.Test, event.Error, event.Time)
	case m.EventTestSkip:
		err = d.reporter.OnTestSkip(event.Test, event.Time)
	case m.EventAfterTest:
		d.coordinator.AfterTest(ctx, event.Test, event.Outcome())
	case m.EventAfterHook:
		d.coordinator.AfterHook(ctx, event.Test, event.Outcome())
	default:
		d.log.Debug("Ignoring runner event", logger.Fields{"type": event.Type})
	}

	if err != nil {
		d.log.Warn("Failed to record test result", logger.Fields{"event": event.Type, "test": event.Test.FullTitle()}, err)
	}
}

func (d *Dispatcher) startSession(ctx context.Context, event m.Event) {
	d.closeSession()

	if event.Session != "" && d.sessions != nil {
		session, err := d.sessions(ctx, event.Session)
		if err != nil {
			d.log.Warn("Failed to open browser session", logger.Fields{"address": event.Session}, err)
		} else {
			d.session = session
		}
	}

	d.coordinator.Before(ctx, event.Capabilities, event.Specs, d.session)
}

// HandleOutput forwards a plain output line.
func (d *Dispatcher) HandleOutput(line string) {
	_, _ = fmt.Fprintln(d.out, line)
	d.reporter.AppendConsole(line)
}

// Close releases the browser session, if one was opened.
func (d *Dispatcher) Close() {
	d.closeSession()
}

func (d *Dispatcher) closeSession() {
	if d.session == nil {
		return
	}

	if err := d.session.Close(); err != nil {
		d.log.Debug("Failed to close browser session", err)
	}

	d.session = nil
}

// syncWriter serializes line writes from parallel workers.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.w.Write(p)
}
