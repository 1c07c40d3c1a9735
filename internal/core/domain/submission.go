package domain

import (
	"errors"
	"time"
)

// SubmissionStatus represents the review state of a submission.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "Pending"
	StatusApproved SubmissionStatus = "Approved"
	StatusRejected SubmissionStatus = "Rejected"
)

var ErrSubmissionNotFound = errors.New("submission not found")
var ErrAlreadySubmitted = errors.New("task already has a pending or approved submission")
var ErrInvalidReviewStatus = errors.New("invalid review status")

// IsActive reports whether the submission still blocks resubmission of the
// same task by the same account. Only a rejection frees the task again.
func (s SubmissionStatus) IsActive() bool {
	return s == StatusPending || s == StatusApproved
}

// ValidReviewStatus reports whether status is an acceptable review verdict.
// Pending is not a verdict; a submission starts there and never returns.
func ValidReviewStatus(s SubmissionStatus) bool {
	return s == StatusApproved || s == StatusRejected
}

// Submission is a user's attempt to satisfy a task, either an uploaded file or
// a self-hosted link. FileKey holds the object-store key when the file was
// uploaded through us; it stays empty for plain links and is what the
// compensating delete targets.
type Submission struct {
	ID          string           `json:"id"`
	TaskID      string           `json:"task_id"`
	AccountID   string           `json:"account_id"`
	FileURL     string           `json:"file_url"`
	FileKey     string           `json:"-"`
	Status      SubmissionStatus `json:"status"`
	SubmittedAt time.Time        `json:"submitted_at"`
}
