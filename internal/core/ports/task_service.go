package ports

import (
	"context"

	"github.com/taskvault/backend/internal/core/domain"
)

// CreateTaskInput carries the fields of an admin createTask request.
type CreateTaskInput struct {
	Domain      string
	Description string
	Deadline    string
}

// EligibleTasksInput identifies the caller asking for their task list.
// Both fields come from verified token claims, never from the request body.
type EligibleTasksInput struct {
	AccountID string
	Domain    string
}

// TaskService covers task publication and the eligibility query.
type TaskService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	// ListEligible returns the caller's domain tasks minus any task the
	// caller already holds a Pending or Approved submission for. A task the
	// caller was rejected on reappears.
	ListEligible(ctx context.Context, input EligibleTasksInput) ([]*domain.Task, error)
}
