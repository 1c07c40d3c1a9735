package ports

import (
	"context"

	"github.com/taskvault/backend/internal/core/domain"
)

// SubmissionRepository defines persistence operations for submissions.
//
// The store carries a partial unique index on (task_id, account_id) scoped to
// active (Pending/Approved) submissions, so Create is the atomic conditional
// insert that enforces the one-active-submission invariant under concurrency.
type SubmissionRepository interface {
	// Create inserts a new submission and fills in its generated ID. When an
	// active submission already exists for the same (task, account) pair the
	// insert is rejected by the store and domain.ErrAlreadySubmitted is
	// returned.
	Create(ctx context.Context, sub *domain.Submission) error
	FindByID(ctx context.Context, id string) (*domain.Submission, error)
	// FindByAccount returns all submissions by the account, newest first.
	FindByAccount(ctx context.Context, accountID string) ([]*domain.Submission, error)
	// FindActiveTaskIDs returns the task IDs for which the account holds a
	// Pending or Approved submission.
	FindActiveTaskIDs(ctx context.Context, accountID string) ([]string, error)
	// FindAll returns every submission in the system, newest first.
	FindAll(ctx context.Context) ([]*domain.Submission, error)
	// UpdateStatus overwrites the status of the identified submission.
	// Returns domain.ErrSubmissionNotFound when no document matches.
	UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus) error
}
