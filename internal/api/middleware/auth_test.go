package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func invokeAuth(authorization string) (echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Auth(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestAuth_ValidToken(t *testing.T) {
	token := signedToken(t, testSecret, jwt.MapClaims{
		"sub":    "acc-1",
		"role":   "user",
		"domain": "design",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	c, err := invokeAuth("Bearer " + token)
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if got := c.Get(CtxAccountID); got != "acc-1" {
		t.Errorf("account_id claim = %v, want acc-1", got)
	}
	if got := c.Get(CtxRole); got != "user" {
		t.Errorf("role claim = %v, want user", got)
	}
	if got := c.Get(CtxDomain); got != "design" {
		t.Errorf("domain claim = %v, want design", got)
	}
}

func TestAuth_Rejections(t *testing.T) {
	expired := signedToken(t, testSecret, jwt.MapClaims{
		"sub": "acc-1", "role": "user", "domain": "design",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	wrongKey := signedToken(t, "other-secret", jwt.MapClaims{
		"sub": "acc-1", "role": "user", "domain": "design",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"malformed header", "just-a-token"},
		{"wrong scheme", "Basic abc123"},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + expired},
		{"wrong signing key", "Bearer " + wrongKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := invokeAuth(tc.header)
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %v", err)
			}
		})
	}
}

func TestRBAC(t *testing.T) {
	run := func(role interface{}, allowed ...string) error {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		if role != nil {
			c.Set(CtxRole, role)
		}
		return RBAC(allowed...)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})(c)
	}

	if err := run("admin", "admin"); err != nil {
		t.Errorf("allowed role rejected: %v", err)
	}
	if err := run("user", "admin", "user"); err != nil {
		t.Errorf("role in allowed set rejected: %v", err)
	}

	for name, role := range map[string]interface{}{
		"wrong role":      "user",
		"missing role":    nil,
		"non-string role": 42,
	} {
		err := run(role, "admin")
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusForbidden {
			t.Errorf("%s: expected 403, got %v", name, err)
		}
	}
}
