package metrics

import "time"

// ResultLabel enumerates emission outcomes for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailure ResultLabel = "failure"
)

// Recorder defines observability hooks for emission runs.
type Recorder interface {
	ObserveEmit(target string, d time.Duration, result ResultLabel)
	SetLintIssues(severity string, n int)
	SetSidebarEntries(groups, items int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveEmit(string, time.Duration, ResultLabel) {}
func (NoopRecorder) SetLintIssues(string, int)                     {}
func (NoopRecorder) SetSidebarEntries(int, int)                    {}
