package domain

import (
	"errors"
	"time"
)

// Well-known administrator identity. Seeded at first run and re-injected on
// every directory load; this account can never be deleted.
const (
	AdminID       = "admin-id"
	AdminUsername = "Administrador"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username already in use")
	ErrUserNotFound       = errors.New("user not found")
	ErrAdminProtected     = errors.New("administrator account cannot be deleted")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidRole        = errors.New("invalid role")
)

// Account is a staff login stored in the account directory.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is the projection of an Account that represents "who is currently
// authenticated". It never carries the password hash.
type Session struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether the session belongs to the administrator role.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// HasPermission delegates to the static permission table. A zero session
// (no role) grants nothing.
func (s Session) HasPermission(cap Capability) bool {
	return RoleGrants(s.Role, cap)
}
