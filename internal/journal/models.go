package journal

import "time"

// Status records the outcome of one file repair.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Run is one journal entry: what happened to one subtitle file during one
// fix invocation.
type Run struct {
	ID           int64
	RunID        string
	Path         string
	InputFormat  string
	OutputFormat string
	Status       Status
	Error        string
	Original     int
	Final        int
	Adjusted     int
	Merged       int
	Renumbered   int
	TextChanges  int
	Dropped      int
	CreatedAt    time.Time
}
