package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskvault/backend/internal/api/metrics"
	"github.com/taskvault/backend/internal/core/domain"
	"github.com/taskvault/backend/internal/core/ports"
)

// AuthService implements login and admin-driven account creation.
type AuthService struct {
	accounts  ports.AccountRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(accounts ports.AccountRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{accounts: accounts, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Login checks the credentials and issues a signed token. Unknown usernames
// and wrong passwords collapse into the same ErrInvalidCredentials so the
// response never reveals which half failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(account)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", username).Str("role", account.Role).Msg("login succeeded")

	return &ports.LoginResult{Token: token, Role: account.Role}, nil
}

// CreateAccount hashes the password and stores a new account. Username
// uniqueness is enforced by the store's unique index; a duplicate surfaces as
// domain.ErrUserExists.
func (s *AuthService) CreateAccount(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error) {
	if input.Username == "" || input.Password == "" || input.Domain == "" {
		return nil, fmt.Errorf("%w: username, password and domain are required", domain.ErrInvalidAccountInput)
	}
	if !domain.ValidRole(input.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidAccountInput, input.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         input.Role,
		Domain:       input.Domain,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	metrics.AccountsCreatedTotal.WithLabelValues(account.Role).Inc()
	s.log.Info().Str("username", account.Username).Str("role", account.Role).Str("domain", account.Domain).Msg("account created")

	return account, nil
}

func (s *AuthService) issueToken(account *domain.Account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    account.ID,
		"role":   account.Role,
		"domain": account.Domain,
		"iat":    now.Unix(),
		"exp":    now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
