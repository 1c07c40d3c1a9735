package ports

import (
	"context"

	"github.com/taskvault/backend/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	// Create inserts a new account and fills in its generated ID.
	// A duplicate username yields domain.ErrUserExists.
	Create(ctx context.Context, account *domain.Account) error
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	// FindByIDs returns the accounts matching the given IDs; unknown IDs are
	// silently skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Account, error)
}
