package reporter

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/awhisler/wdioTest/internal/adapter"
	"github.com/awhisler/wdioTest/internal/logger"
	m "github.com/awhisler/wdioTest/internal/model"
)

// ErrNoActiveCase is returned when a case operation arrives outside StartCase/EndCase.
var ErrNoActiveCase = errors.New("no active test case")

// ConsoleLogsName is the attachment name of captured runner output.
const ConsoleLogsName = "Console Logs"

var issuePattern = regexp.MustCompile(`\b[A-Z][A-Z0-9]+-\d+\b`)

// Options configures a Reporter.
type Options struct {
	// Policy wraps finalization of failures. Nil selects NormalizeFailures.
	Policy StatusPolicy
	// AddConsoleLogs attaches runner output captured during a case.
	AddConsoleLogs bool
	// IssueLinkTemplate turns issue keys in test titles into links; "{}" is replaced by the key.
	IssueLinkTemplate string
}

// Reporter tracks the case currently running on one worker.
type Reporter struct {
	store   adapter.ResultStore
	log     *logger.Logger
	policy  StatusPolicy
	options Options

	mu      sync.Mutex
	current *m.TestResult
	console bytes.Buffer
}

// New creates a Reporter writing through store.
func New(store adapter.ResultStore, log *logger.Logger, opts Options) *Reporter {
	policy := opts.Policy
	if policy == nil {
		policy = NormalizeFailures(log)
	}

	return &Reporter{
		store:   store,
		log:     log,
		policy:  policy,
		options: opts,
	}
}

// StartCase opens a case for test. An unfinished previous case is closed as broken.
func (r *Reporter) StartCase(test m.Test, at time.Time) error {
	r.mu.Lock()
	previous := r.current
	r.mu.Unlock()

	if previous != nil {
		r.log.Warn("Case was never finished", logger.Fields{"test": previous.FullName})

		if err := r.EndCase(m.StatusBroken, nil, at); err != nil {
			return err
		}
	}

	fullName := test.FullTitle()
	result := &m.TestResult{
		UUID:      uuid.NewString(),
		HistoryID: uuid.NewSHA1(uuid.NameSpaceURL, []byte(test.File+"#"+fullName)).String(),
		Name:      test.Title,
		FullName:  fullName,
		Stage:     m.StageRunning,
		Start:     at.UnixMilli(),
		Labels:    caseLabels(test),
		Links:     r.issueLinks(test.Title),
	}

	r.mu.Lock()
	r.current = result
	r.console.Reset()
	r.mu.Unlock()

	return nil
}

func caseLabels(test m.Test) []m.Label {
	labels := []m.Label{{Name: "language", Value: "javascript"}, {Name: "framework", Value: "wdio"}}

	if test.Parent != "" {
		labels = append(labels, m.Label{Name: "suite", Value: test.Parent})
	}

	if test.File != "" {
		labels = append(labels, m.Label{Name: "package", Value: test.File})
	}

	return labels
}

func (r *Reporter) issueLinks(title string) []m.Link {
	if r.options.IssueLinkTemplate == "" {
		return nil
	}

	var links []m.Link
	for _, key := range issuePattern.FindAllString(title, -1) {
		links = append(links, m.Link{
			Name: key,
			URL:  strings.ReplaceAll(r.options.IssueLinkTemplate, "{}", key),
			Type: "issue",
		})
	}

	return links
}

// AddAttachment stores content and references it from the current case.
func (r *Reporter) AddAttachment(name, mimeType string, content []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.attachLocked(name, mimeType, content)
}

func (r *Reporter) attachLocked(name, mimeType string, content []byte) error {
	if r.current == nil {
		return ErrNoActiveCase
	}

	source, err := r.store.SaveAttachment(content, extensionFor(mimeType))
	if err != nil {
		return fmt.Errorf("save attachment %q: %w", name, err)
	}

	r.current.Attachments = append(r.current.Attachments, m.Attachment{
		Name:   name,
		Source: source,
		Type:   mimeType,
	})

	return nil
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/png":
		return "png"
	case "application/json":
		return "json"
	case "text/plain":
		return "txt"
	}

	return ""
}

// AppendConsole captures one line of runner output for the current case.
func (r *Reporter) AppendConsole(line string) {
	if !r.options.AddConsoleLogs {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return
	}

	r.console.WriteString(line)
	r.console.WriteByte('\n')
}

// EndCase finalizes the current case with exactly the given status and saves it.
func (r *Reporter) EndCase(status m.Status, testErr *m.TestError, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return ErrNoActiveCase
	}

	if r.console.Len() > 0 {
		if err := r.attachLocked(ConsoleLogsName, "text/plain", r.console.Bytes()); err != nil {
			r.log.Warn("Failed to attach console logs", err)
		}

		r.console.Reset()
	}

	result := r.current
	r.current = nil

	result.Status = status
	result.Stage = m.StageFinished
	result.Stop = at.UnixMilli()

	if testErr != nil {
		result.StatusDetails = &m.StatusDetails{
			Message: testErr.Message,
			Trace:   testErr.Stack,
		}
	}

	if err := r.store.SaveResult(*result); err != nil {
		return fmt.Errorf("save result %s: %w", result.FullName, err)
	}

	return nil
}

// OnTestPass finalizes the current case as passed.
func (r *Reporter) OnTestPass(at time.Time) error {
	return r.EndCase(m.StatusPassed, nil, at)
}

// OnTestSkip records a skipped test, opening a case when none is active.
func (r *Reporter) OnTestSkip(test m.Test, at time.Time) error {
	if !r.hasCase() {
		if err := r.StartCase(test, at); err != nil {
			return err
		}
	}

	return r.EndCase(m.StatusSkipped, nil, at)
}

// OnTestFail classifies the failure and finalizes the current case through the
// status policy. The policy only wraps this call.
func (r *Reporter) OnTestFail(test m.Test, testErr *m.TestError, at time.Time) error {
	if !r.hasCase() {
		if err := r.StartCase(test, at); err != nil {
			return err
		}
	}

	return r.policy(r).EndCase(Classify(testErr), testErr, at)
}

func (r *Reporter) hasCase() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.current != nil
}

// Classify returns failed for assertion errors and broken for everything else.
func Classify(testErr *m.TestError) m.Status {
	if testErr == nil {
		return m.StatusBroken
	}

	if strings.Contains(testErr.Name, "AssertionError") || strings.Contains(testErr.Message, "expect") {
		return m.StatusFailed
	}

	return m.StatusBroken
}
