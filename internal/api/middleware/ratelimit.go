package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HitCounter abstracts the fixed-window counter store (Redis).
type HitCounter interface {
	// Hit increments the counter for (scope, client) and returns the count
	// accumulated in the current window.
	Hit(ctx context.Context, scope, client string, window time.Duration) (int64, error)
}

// RateLimit bounds unauthenticated endpoints per client IP. When the counter
// store is unreachable the request is allowed through; availability of login
// and contact beats strictness here.
func RateLimit(counter HitCounter, scope string, max int, window time.Duration, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			count, err := counter.Hit(c.Request().Context(), scope, c.RealIP(), window)
			if err != nil {
				log.Warn().Err(err).Str("scope", scope).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if count > int64(max) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
