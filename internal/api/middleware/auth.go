package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/snowonice/venue-api/internal/core/domain"
	"github.com/snowonice/venue-api/internal/core/ports"
)

// sessionKey is the echo context key the Auth middleware stores the resolved
// session under.
const sessionKey = "session"

// Auth resolves the bearer token to its live server-side session and injects
// it into the request context. A token whose session was destroyed by logout
// is rejected even when the signature still verifies.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			sess, err := auth.SessionFromToken(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			c.Set(sessionKey, *sess)
			return next(c)
		}
	}
}

// SessionFrom returns the session injected by Auth. The second return is
// false on routes mounted without the middleware.
func SessionFrom(c echo.Context) (domain.Session, bool) {
	sess, ok := c.Get(sessionKey).(domain.Session)
	return sess, ok
}
