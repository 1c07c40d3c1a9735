package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidAccountInput = errors.New("invalid account input")
var ErrUserExists = errors.New("user already exists")
var ErrAccountNotFound = errors.New("account not found")
var ErrForbidden = errors.New("access forbidden")

// Account models an authenticated actor. Accounts are created by admins only;
// there is no self-registration.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Domain       string    `json:"domain"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidRole reports whether role is one of the recognised account roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
