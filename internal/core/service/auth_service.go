package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/snowonice/venue-api/internal/core/domain"
	"github.com/snowonice/venue-api/internal/core/ports"
)

// AuthService implements login, logout, and the admin-gated account
// directory. Sessions are persisted server-side and referenced from the
// bearer token by id, so logout kills the token immediately.
type AuthService struct {
	accounts  ports.AccountRepository
	sessions  ports.SessionRepository
	jwtSecret string
	log       zerolog.Logger
}

func NewAuthService(accounts ports.AccountRepository, sessions ports.SessionRepository, jwtSecret string, log zerolog.Logger) *AuthService {
	return &AuthService{
		accounts:  accounts,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		log:       log,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Session, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	// Case-sensitive exact match; an unknown user and a wrong password
	// produce the same failure.
	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	sess := domain.Session{
		ID:       uuid.NewString(),
		UserID:   account.ID,
		Username: account.Username,
		Role:     account.Role,
	}

	// Persist before handing out the token; a failed write must not leave a
	// token pointing at nothing.
	if err := s.sessions.Save(ctx, sess); err != nil {
		return "", nil, err
	}

	token, err := s.signToken(sess)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", account.Username).Str("role", string(account.Role)).Msg("login")
	return token, &sess, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return err
	}
	s.log.Info().Str("session_id", sessionID).Msg("logout")
	return nil
}

func (s *AuthService) SessionFromToken(ctx context.Context, token string) (*domain.Session, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrSessionNotFound
	}

	sid, _ := claims["sid"].(string)
	sess, err := s.sessions.Find(ctx, sid)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *AuthService) CreateUser(ctx context.Context, caller domain.Session, username, password string, role domain.Role) (*ports.UserView, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.accounts.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	s.log.Info().Str("username", username).Str("role", string(role)).Msg("user created")
	return &ports.UserView{ID: account.ID, Username: account.Username, Role: account.Role}, nil
}

func (s *AuthService) DeleteUser(ctx context.Context, caller domain.Session, id string) error {
	if !caller.IsAdmin() {
		return domain.ErrPermissionDenied
	}
	if id == domain.AdminID {
		return domain.ErrAdminProtected
	}

	if err := s.accounts.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *AuthService) ListUsers(ctx context.Context, caller domain.Session) ([]ports.UserView, error) {
	// Read access is gated too: non-admin callers see an empty directory.
	if !caller.IsAdmin() {
		return []ports.UserView{}, nil
	}

	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ports.UserView, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, ports.UserView{ID: a.ID, Username: a.Username, Role: a.Role})
	}
	return views, nil
}

// signToken issues an HS256 token referencing the session by id. Sessions
// have no expiry; they die only on explicit logout.
func (s *AuthService) signToken(sess domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":      sess.ID,
		"username": sess.Username,
		"role":     string(sess.Role),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
