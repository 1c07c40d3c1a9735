package ports

import (
	"context"

	"github.com/taskvault/backend/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	// Create inserts a new task and fills in its generated ID.
	Create(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// FindByDomain returns all tasks published for the given domain,
	// newest first.
	FindByDomain(ctx context.Context, taskDomain string) ([]*domain.Task, error)
	// FindByIDs returns the tasks matching the given IDs; unknown IDs are
	// silently skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Task, error)
}
