package domain

import "time"

// TimeRange is the persisted booking slot. A range starts out active and is
// switched to inactive exactly once when its booking completes; it is never
// deleted and never reactivated.
type TimeRange struct {
	ID        string
	Start     time.Time
	End       time.Time
	IsActive  bool
	CreatedAt time.Time
}

// SubmissionStatus enumerates the workflow states shown to the user. Idle
// and pending are transient display states; success and failed are terminal.
type SubmissionStatus string

const (
	// SubmissionStatusIdle is the quiescent state before any submission runs.
	SubmissionStatusIdle    SubmissionStatus = "idle"
	SubmissionStatusPending SubmissionStatus = "pending"
	SubmissionStatusSuccess SubmissionStatus = "success"
	SubmissionStatusFailed  SubmissionStatus = "failed"
)

// Severity classifies a status message for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)
