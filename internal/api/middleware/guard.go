package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/snowonice/venue-api/internal/core/domain"
)

// Outcome is the access decision for a guarded route.
type Outcome int

const (
	// OutcomeAllow lets the request through.
	OutcomeAllow Outcome = iota
	// OutcomeLogin means no session is present; the caller must authenticate
	// and may be sent back to the requested path afterwards.
	OutcomeLogin
	// OutcomeFallback means the session is live but lacks the capability;
	// the caller is steered to the dashboard instead of shown an error page.
	OutcomeFallback
)

// fallbackPath is where capability-denied requests are steered.
const fallbackPath = "/v1/dashboard"

// Decide computes the access outcome for a session against one capability.
// A nil session always demands login; an unknown capability never allows.
func Decide(sess *domain.Session, cap domain.Capability) Outcome {
	if sess == nil {
		return OutcomeLogin
	}
	if !sess.HasPermission(cap) {
		return OutcomeFallback
	}
	return OutcomeAllow
}

// Guard enforces one capability on a route. It must be mounted after Auth;
// without a session it answers 401 with a login URL carrying the original
// path, and with an insufficient session it redirects to the dashboard.
func Guard(cap domain.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sess *domain.Session
			if s, ok := SessionFrom(c); ok {
				sess = &s
			}

			switch Decide(sess, cap) {
			case OutcomeAllow:
				return next(c)
			case OutcomeLogin:
				login := "/v1/auth/login?from=" + url.QueryEscape(c.Request().URL.Path)
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "authentication required",
					"login": login,
				})
			default:
				return c.Redirect(http.StatusSeeOther, fallbackPath)
			}
		}
	}
}
