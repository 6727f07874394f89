// Package reporter records test cases as report-generator results and decides
// which terminal status a failure is reported with.
package reporter

import (
	"time"

	"github.com/awhisler/wdioTest/internal/logger"
	m "github.com/awhisler/wdioTest/internal/model"
)

// Finalizer assigns the terminal status to the current case.
type Finalizer interface {
	EndCase(status m.Status, err *m.TestError, at time.Time) error
}

// FinalizerFunc adapts a function to Finalizer.
type FinalizerFunc func(status m.Status, err *m.TestError, at time.Time) error

// EndCase calls f.
func (f FinalizerFunc) EndCase(status m.Status, err *m.TestError, at time.Time) error {
	return f(status, err, at)
}

// StatusPolicy wraps the finalizer used while reporting a single failure.
type StatusPolicy func(next Finalizer) Finalizer

// PassThrough keeps the classified status.
func PassThrough(next Finalizer) Finalizer {
	return next
}

// NormalizeFailures reports broken and failed cases alike as failed.
// Other statuses, the error and the timestamp are passed on untouched.
func NormalizeFailures(log *logger.Logger) StatusPolicy {
	return func(next Finalizer) Finalizer {
		return FinalizerFunc(func(status m.Status, err *m.TestError, at time.Time) error {
			log.Debug("Previous Status: " + string(status))

			if status == m.StatusBroken || status == m.StatusFailed {
				status = m.StatusFailed
			}

			return next.EndCase(status, err, at)
		})
	}
}
