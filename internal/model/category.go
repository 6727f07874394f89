package model

// Category groups results in the generated report by status and message.
type Category struct {
	Name            string   `json:"name" yaml:"name"`
	MatchedStatuses []Status `json:"matchedStatuses,omitempty" yaml:"matchedStatuses,omitempty"`
	MessageRegex    string   `json:"messageRegex,omitempty" yaml:"messageRegex,omitempty"`
	TraceRegex      string   `json:"traceRegex,omitempty" yaml:"traceRegex,omitempty"`
}
