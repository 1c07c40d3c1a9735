package ports

import (
	"context"

	"github.com/taskvault/backend/internal/core/domain"
)

// ContactRepository persists contact-form messages. Append-only.
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
}
