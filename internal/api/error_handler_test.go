package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskvault/backend/internal/core/domain"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusBadRequest},
		{"already submitted", domain.ErrAlreadySubmitted, http.StatusBadRequest},
		{"invalid review status", fmt.Errorf("%w: %q", domain.ErrInvalidReviewStatus, "Maybe"), http.StatusBadRequest},
		{"invalid account input", fmt.Errorf("%w: unknown role %q", domain.ErrInvalidAccountInput, "superuser"), http.StatusBadRequest},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"task not found", domain.ErrTaskNotFound, http.StatusNotFound},
		{"submission not found", domain.ErrSubmissionNotFound, http.StatusNotFound},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"wrapped sentinel", fmt.Errorf("submit: %w", domain.ErrTaskNotFound), http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := render(t, tc.err)
			if code != tc.code {
				t.Fatalf("code = %d, want %d", code, tc.code)
			}
			if msg == "" {
				t.Fatalf("empty error message")
			}
		})
	}
}

func TestHTTPErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	code, msg := render(t, echo.NewHTTPError(http.StatusTooManyRequests, "too many requests"))
	if code != http.StatusTooManyRequests || msg != "too many requests" {
		t.Fatalf("got %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	code, msg := render(t, errors.New("mongo: connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}
