package ports

import "context"

// CreateContactInput carries the fields of a public contact-form request.
type CreateContactInput struct {
	Name    string
	Email   string
	Message string
}

// ContactService records contact-form messages.
type ContactService interface {
	Create(ctx context.Context, input CreateContactInput) error
}
