package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snowonice/venue-api/internal/api/middleware"
	"github.com/snowonice/venue-api/internal/core/domain"
)

// ctxSession extracts the session injected by the Auth middleware and
// fast-fails with 401 when a handler is reached without one. Presence of the
// session proves the middleware ran and the token resolved.
func ctxSession(c echo.Context) (domain.Session, error) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sess, nil
}
