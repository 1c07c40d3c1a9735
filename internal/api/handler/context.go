package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/backend/internal/api/middleware"
)

// claims is the verified caller identity extracted from the echo context.
// Handlers pass these fields explicitly into service inputs; nothing below
// the transport layer reads ambient request state.
type claims struct {
	AccountID string
	Role      string
	Domain    string
}

// ctxClaims extracts the auth claims injected by the Auth middleware and
// fast-fails before any service call:
//   - role must be non-empty (presence proves the middleware ran).
//   - a token without an account ID or domain is structurally valid but
//     operationally unusable for this API, so it is rejected with 401.
func ctxClaims(c echo.Context) (claims, error) {
	role, _ := c.Get(middleware.CtxRole).(string)
	if role == "" {
		return claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	accountID, _ := c.Get(middleware.CtxAccountID).(string)
	domain, _ := c.Get(middleware.CtxDomain).(string)
	if accountID == "" || domain == "" {
		return claims{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing account identity")
	}

	return claims{AccountID: accountID, Role: role, Domain: domain}, nil
}
