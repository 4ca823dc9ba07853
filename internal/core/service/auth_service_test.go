package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/snowonice/venue-api/internal/core/domain"
)

const adminPassword = "101010"

type stubAccountRepo struct {
	accounts map[string]*domain.Account
}

func newStubAccountRepo(t *testing.T) *stubAccountRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash admin password: %v", err)
	}
	return &stubAccountRepo{accounts: map[string]*domain.Account{
		domain.AdminID: {
			ID:           domain.AdminID,
			Username:     domain.AdminUsername,
			PasswordHash: string(hash),
			Role:         domain.RoleAdmin,
		},
	}}
}

func (r *stubAccountRepo) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Username == username {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAccountRepo) List(_ context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) error {
	clone := *account
	r.accounts[account.ID] = &clone
	return nil
}

func (r *stubAccountRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.accounts[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.accounts, id)
	return nil
}

type stubSessionRepo struct {
	sessions map[string]domain.Session
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]domain.Session)}
}

func (r *stubSessionRepo) Save(_ context.Context, sess domain.Session) error {
	r.sessions[sess.ID] = sess
	return nil
}

func (r *stubSessionRepo) Find(_ context.Context, id string) (*domain.Session, error) {
	sess, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &sess, nil
}

func (r *stubSessionRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func newAuthService(t *testing.T) (*AuthService, *stubAccountRepo) {
	t.Helper()
	repo := newStubAccountRepo(t)
	return NewAuthService(repo, newStubSessionRepo(), "secret", zerolog.Nop()), repo
}

func adminSession() domain.Session {
	return domain.Session{ID: "sess-admin", UserID: domain.AdminID, Username: domain.AdminUsername, Role: domain.RoleAdmin}
}

func TestAuthService_Login_RoundTrip(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	token, sess, err := svc.Login(ctx, domain.AdminUsername, adminPassword)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if !sess.IsAdmin() {
		t.Fatalf("expected admin session, got role %q", sess.Role)
	}
	if !sess.HasPermission(domain.CapRinkManager) {
		t.Fatalf("admin should hold rinkManager")
	}

	resolved, err := svc.SessionFromToken(ctx, token)
	if err != nil {
		t.Fatalf("token did not resolve: %v", err)
	}
	if resolved.Username != domain.AdminUsername || resolved.Role != domain.RoleAdmin {
		t.Fatalf("unexpected session: %+v", resolved)
	}

	// Logout kills the token; the same credentials log in again cleanly.
	if err := svc.Logout(ctx, sess.ID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := svc.SessionFromToken(ctx, token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected dead token after logout, got %v", err)
	}
	if _, _, err := svc.Login(ctx, domain.AdminUsername, adminPassword); err != nil {
		t.Fatalf("re-login failed: %v", err)
	}
}

func TestAuthService_Login_FailuresIndistinguishable(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	if _, _, err := svc.Login(ctx, domain.AdminUsername, "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "nobody", adminPassword); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("empty credentials: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_CaseSensitiveUsername(t *testing.T) {
	svc, _ := newAuthService(t)

	if _, _, err := svc.Login(context.Background(), "administrador", adminPassword); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected case-sensitive match to fail, got %v", err)
	}
}

func TestAuthService_CreateUser_RequiresAdmin(t *testing.T) {
	svc, repo := newAuthService(t)
	caller := domain.Session{ID: "s", Username: "maria", Role: domain.RoleFuncionario}

	if _, err := svc.CreateUser(context.Background(), caller, "novo", "pw", domain.RoleUser); !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if len(repo.accounts) != 1 {
		t.Fatalf("directory should be unchanged, has %d accounts", len(repo.accounts))
	}
}

func TestAuthService_CreateUser_DuplicateUsername(t *testing.T) {
	svc, repo := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, adminSession(), "caixa1", "pw", domain.RoleUser); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateUser(ctx, adminSession(), "caixa1", "other", domain.RoleAnalise); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	// Exactly one new account beyond the seeded admin.
	if len(repo.accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(repo.accounts))
	}
}

func TestAuthService_CreateUser_Validation(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, adminSession(), "", "pw", domain.RoleUser); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("empty username: got %v", err)
	}
	if _, err := svc.CreateUser(ctx, adminSession(), "x", "", domain.RoleUser); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("empty password: got %v", err)
	}
	if _, err := svc.CreateUser(ctx, adminSession(), "x", "pw", "gerente"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("unknown role: got %v", err)
	}
}

func TestAuthService_CreateUser_HashesPassword(t *testing.T) {
	svc, repo := newAuthService(t)

	view, err := svc.CreateUser(context.Background(), adminSession(), "ana", "segredo", domain.RoleAnalise)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	stored := repo.accounts[view.ID]
	if stored.PasswordHash == "segredo" {
		t.Fatalf("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("segredo")) != nil {
		t.Fatalf("stored hash does not verify")
	}
}

func TestAuthService_DeleteUser_ProtectsAdmin(t *testing.T) {
	svc, repo := newAuthService(t)

	if err := svc.DeleteUser(context.Background(), adminSession(), domain.AdminID); !errors.Is(err, domain.ErrAdminProtected) {
		t.Fatalf("expected ErrAdminProtected, got %v", err)
	}
	if _, ok := repo.accounts[domain.AdminID]; !ok {
		t.Fatalf("administrator account must survive")
	}
}

func TestAuthService_DeleteUser(t *testing.T) {
	svc, repo := newAuthService(t)
	ctx := context.Background()

	view, err := svc.CreateUser(ctx, adminSession(), "temp", "pw", domain.RoleUser)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	caller := domain.Session{ID: "s", Username: "temp", Role: domain.RoleUser}
	if err := svc.DeleteUser(ctx, caller, view.ID); !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("non-admin delete: expected ErrPermissionDenied, got %v", err)
	}

	if err := svc.DeleteUser(ctx, adminSession(), view.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.DeleteUser(ctx, adminSession(), view.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("second delete: expected ErrUserNotFound, got %v", err)
	}
	if _, ok := repo.accounts[domain.AdminID]; !ok {
		t.Fatalf("administrator account must survive every sequence")
	}
}

func TestAuthService_ListUsers(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, adminSession(), "bia", "pw", domain.RoleFuncionario); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	views, err := svc.ListUsers(ctx, adminSession())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 users, got %d", len(views))
	}

	// Read access is gated: non-admins see nothing, not an error.
	caller := domain.Session{ID: "s", Username: "bia", Role: domain.RoleFuncionario}
	views, err = svc.ListUsers(ctx, caller)
	if err != nil {
		t.Fatalf("list as non-admin failed: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("expected empty list for non-admin, got %d", len(views))
	}
}
