package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskvault/backend/internal/api/metrics"
	"github.com/taskvault/backend/internal/core/domain"
	"github.com/taskvault/backend/internal/core/ports"
)

// ContactService records contact-form messages. Append-only, no lifecycle.
type ContactService struct {
	contacts ports.ContactRepository
	log      zerolog.Logger
}

func NewContactService(contacts ports.ContactRepository, log zerolog.Logger) *ContactService {
	return &ContactService{contacts: contacts, log: log}
}

func (s *ContactService) Create(ctx context.Context, input ports.CreateContactInput) error {
	msg := &domain.ContactMessage{
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.contacts.Create(ctx, msg); err != nil {
		s.log.Error().Err(err).Msg("failed to store contact message")
		return err
	}

	metrics.ContactMessagesTotal.Inc()
	return nil
}
