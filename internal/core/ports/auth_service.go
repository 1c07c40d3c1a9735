package ports

import (
	"context"

	"github.com/taskvault/backend/internal/core/domain"
)

// LoginResult is returned on a successful authentication.
type LoginResult struct {
	Token string
	Role  string
}

// CreateAccountInput carries the fields of an admin addUser request.
type CreateAccountInput struct {
	Username string
	Password string
	Role     string
	Domain   string
}

// AuthService covers credential issuance and admin-driven account creation.
type AuthService interface {
	// Login verifies the credentials and issues a signed, time-limited token
	// carrying the account's ID, role and domain. A wrong password and an
	// unknown username are indistinguishable: both yield
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// CreateAccount hashes the password and stores a new account.
	CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error)
}
