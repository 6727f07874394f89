package model

import "time"

// EventType names a runner callback.
type EventType string

// Callbacks the runner can report.
const (
	EventSessionStart EventType = "session:start"
	EventTestStart    EventType = "test:start"
	EventTestPass     EventType = "test:pass"
	EventTestFail     EventType = "test:fail"
	EventTestSkip     EventType = "test:skip"
	EventAfterTest    EventType = "after:test"
	EventAfterHook    EventType = "after:hook"
)

// Event is one callback emitted by the runner on its stdout. For a test the
// runner emits test:start, then after:test, then the test:pass, test:fail or
// test:skip result, so screenshots land on the still open case.
type Event struct {
	Type     EventType  `json:"type"`
	Test     Test       `json:"test"`
	Passed   bool       `json:"passed,omitempty"`
	Error    *TestError `json:"error,omitempty"`
	Time     time.Time  `json:"time"`
	Duration int64      `json:"duration,omitempty"`

	// Session and Capabilities are only set on session:start. Session is the
	// browser DevTools websocket URL.
	Session      string       `json:"session,omitempty"`
	Capabilities Capabilities `json:"capabilities,omitempty"`
	Specs        []string     `json:"specs,omitempty"`
}

// Outcome converts the event into the after:test / after:hook payload.
func (e Event) Outcome() TestOutcome {
	return TestOutcome{
		Passed:   e.Passed,
		Error:    e.Error,
		Duration: time.Duration(e.Duration) * time.Millisecond,
	}
}
