package ports

import (
	"context"
	"time"

	"github.com/taskvault/backend/internal/core/domain"
)

// UploadInput is a file received through the multipart form, already read
// into memory by the transport layer.
type UploadInput struct {
	Content     []byte
	Filename    string
	ContentType string
}

// SubmitInput carries everything needed to create a submission. Exactly one
// of Upload and LinkURL must be set; the handler enforces that before the
// service is called. AccountID comes from verified token claims.
type SubmitInput struct {
	TaskID    string
	AccountID string
	LinkURL   string
	Upload    *UploadInput
}

// SubmitResult is returned to the caller after a successful submission.
type SubmitResult struct {
	ID          string
	FileURL     string
	SubmittedAt time.Time
}

// ReviewInput carries an admin's verdict on a submission.
type ReviewInput struct {
	SubmissionID string
	Status       domain.SubmissionStatus
}

// SubmissionView is a submission joined with the display fields of its task
// and (for admin listings) its submitter.
type SubmissionView struct {
	ID              string
	TaskID          string
	AccountID       string
	FileURL         string
	Status          domain.SubmissionStatus
	SubmittedAt     time.Time
	TaskDescription string
	TaskDeadline    string
	Username        string
}

// SubmissionService covers submission creation, listing and review.
type SubmissionService interface {
	// Submit stores the uploaded file (when present) with the file
	// collaborator, then conditionally inserts a Pending submission. Any
	// failure after the upload, including an eligibility conflict, triggers
	// a compensating delete of the stored object before the error surfaces.
	Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error)
	// ListForAccount returns the caller's submissions, newest first.
	ListForAccount(ctx context.Context, accountID string) ([]SubmissionView, error)
	// ListAll returns every submission, newest first. Admin only.
	ListAll(ctx context.Context) ([]SubmissionView, error)
	// Get returns a single submission by ID. Admin only.
	Get(ctx context.Context, id string) (*SubmissionView, error)
	// Review overwrites the submission's status with an Approved or Rejected
	// verdict. Re-reviewing an already decided submission is permitted.
	Review(ctx context.Context, input ReviewInput) error
}
