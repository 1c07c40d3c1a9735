package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/backend/internal/core/domain"
	"github.com/taskvault/backend/internal/core/ports"
)

type stubAuthService struct {
	loginResult  *ports.LoginResult
	loginErr     error
	created      *ports.CreateAccountInput
	createErr    error
	lastUsername string
	lastPassword string
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (*ports.LoginResult, error) {
	s.lastUsername = username
	s.lastPassword = password
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginResult, nil
}

func (s *stubAuthService) CreateAccount(_ context.Context, input ports.CreateAccountInput) (*domain.Account, error) {
	s.created = &input
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &domain.Account{ID: "acc-1", Username: input.Username, Role: input.Role, Domain: input.Domain}, nil
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{loginResult: &ports.LoginResult{Token: "signed-token", Role: "user"}}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/login", `{"username":"alice","password":"secret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.lastUsername != "alice" || svc.lastPassword != "secret" {
		t.Fatalf("credentials not forwarded: %q/%q", svc.lastUsername, svc.lastPassword)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed-token" || resp.Role != "user" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/login", `{"username":"alice"}`)
	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidCredentialsPassThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/login", `{"username":"alice","password":"wrong"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected sentinel to reach the error handler, got %v", err)
	}
}

func TestAuthHandler_AddUser(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	body := `{"username":"bob","password":"pw","role":"user","domain":"design"}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/admin/addUser", body)
	if err := h.AddUser(c); err != nil {
		t.Fatalf("addUser failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if svc.created == nil || svc.created.Role != "user" || svc.created.Domain != "design" {
		t.Fatalf("input not forwarded: %+v", svc.created)
	}

	var resp addUserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "acc-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_AddUser_InvalidRole(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	body := `{"username":"bob","password":"pw","role":"superadmin","domain":"design"}`
	c, _ := newJSONContext(t, http.MethodPost, "/api/admin/addUser", body)
	err := h.AddUser(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid role, got %v", err)
	}
	if svc.created != nil {
		t.Fatalf("service must not be called for an invalid role")
	}
}

func TestAuthHandler_AddUser_DuplicatePassThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{createErr: domain.ErrUserExists})

	body := `{"username":"bob","password":"pw","role":"user","domain":"design"}`
	c, _ := newJSONContext(t, http.MethodPost, "/api/admin/addUser", body)
	err := h.AddUser(c)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected sentinel to reach the error handler, got %v", err)
	}
}
