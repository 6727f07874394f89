package model

// Status is the terminal status of a test case.
type Status string

// Statuses understood by the report generator.
const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusBroken  Status = "broken"
	StatusSkipped Status = "skipped"
)

const (
	// StageRunning marks a result whose case is still open.
	StageRunning = "running"
	// StageFinished marks a result whose case has been closed.
	StageFinished = "finished"
)

// TestResult is one case as written to the results directory.
type TestResult struct {
	UUID          string         `json:"uuid"`
	HistoryID     string         `json:"historyId"`
	Name          string         `json:"name"`
	FullName      string         `json:"fullName"`
	Status        Status         `json:"status"`
	StatusDetails *StatusDetails `json:"statusDetails,omitempty"`
	Stage         string         `json:"stage"`
	Start         int64          `json:"start"`
	Stop          int64          `json:"stop"`
	Labels        []Label        `json:"labels,omitempty"`
	Links         []Link         `json:"links,omitempty"`
	Attachments   []Attachment   `json:"attachments,omitempty"`
}

// Link points a result at an external tracker.
type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// StatusDetails carries the failure message and trace of a case.
type StatusDetails struct {
	Message string `json:"message,omitempty"`
	Trace   string `json:"trace,omitempty"`
}

// Label is a name/value pair attached to a result.
type Label struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Attachment references a file stored next to the result.
type Attachment struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Type   string `json:"type"`
}
