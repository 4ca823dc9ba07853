package ports

import (
	"context"

	"github.com/snowonice/venue-api/internal/core/domain"
)

// UserView is an account as exposed to admin tooling. It never carries the
// password hash.
type UserView struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

// AuthService owns login/logout, the account directory, and permission
// queries. It is the single source of truth for "who is logged in" and
// "what can they do".
type AuthService interface {
	// Login verifies credentials, establishes a persisted session, and
	// returns a signed bearer token for it. Unknown user and wrong password
	// are deliberately indistinguishable.
	Login(ctx context.Context, username, password string) (token string, sess *domain.Session, err error)

	// Logout destroys the session. Succeeds even when the session is
	// already gone.
	Logout(ctx context.Context, sessionID string) error

	// SessionFromToken resolves a bearer token to its live session record.
	// A session deleted by Logout makes the token dead.
	SessionFromToken(ctx context.Context, token string) (*domain.Session, error)

	// CreateUser appends a new account to the directory. Admin-only;
	// usernames are unique (case-sensitive).
	CreateUser(ctx context.Context, caller domain.Session, username, password string, role domain.Role) (*UserView, error)

	// DeleteUser removes an account. Admin-only; the administrator account
	// is protected.
	DeleteUser(ctx context.Context, caller domain.Session, id string) error

	// ListUsers returns the directory with password hashes stripped.
	// Non-admin callers get an empty list; read access is gated too.
	ListUsers(ctx context.Context, caller domain.Session) ([]UserView, error)
}
