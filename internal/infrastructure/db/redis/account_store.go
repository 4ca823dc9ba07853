package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/snowonice/venue-api/internal/core/domain"
)

const accountsKey = "accounts"

// storedAccount is the persisted shape of an account; the domain type never
// serializes its password hash.
type storedAccount struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// AccountStore is the durable account directory, a Redis hash keyed by
// account id. Loads are fail-soft (corrupt entries are dropped) and
// self-healing: the well-known administrator account is re-injected whenever
// it is found missing.
type AccountStore struct {
	client        *redis.Client
	adminPassHash string
	log           zerolog.Logger
}

func NewAccountStore(client *redis.Client, adminPassHash string, log zerolog.Logger) *AccountStore {
	return &AccountStore{client: client, adminPassHash: adminPassHash, log: log}
}

// Bootstrap seeds the directory with the administrator account on first run.
// Safe to call on every start.
func (s *AccountStore) Bootstrap(ctx context.Context) error {
	_, err := s.load(ctx)
	return err
}

func (s *AccountStore) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	accounts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.Username == username {
			acc := toDomain(a)
			return &acc, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *AccountStore) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	accounts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.ID == id {
			acc := toDomain(a)
			return &acc, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *AccountStore) List(ctx context.Context) ([]domain.Account, error) {
	stored, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Account, 0, len(stored))
	for _, a := range stored {
		out = append(out, toDomain(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *AccountStore) Create(ctx context.Context, account *domain.Account) error {
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}
	return s.set(ctx, storedAccount{
		ID:           account.ID,
		Username:     account.Username,
		PasswordHash: account.PasswordHash,
		Role:         string(account.Role),
		CreatedAt:    account.CreatedAt,
	})
}

func (s *AccountStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.HDel(ctx, accountsKey, id).Result()
	if err != nil {
		return fmt.Errorf("delete account: %w: %v", domain.ErrPersistence, err)
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// load reads the whole directory, dropping corrupt entries, and re-injects
// the administrator account if it is missing.
func (s *AccountStore) load(ctx context.Context) ([]storedAccount, error) {
	raw, err := s.client.HGetAll(ctx, accountsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w: %v", domain.ErrPersistence, err)
	}

	accounts := make([]storedAccount, 0, len(raw))
	adminPresent := false
	for id, data := range raw {
		var a storedAccount
		if err := json.Unmarshal([]byte(data), &a); err != nil {
			s.log.Warn().Str("account_id", id).Msg("discarding corrupt account entry")
			continue
		}
		if a.ID == domain.AdminID {
			adminPresent = true
		}
		accounts = append(accounts, a)
	}

	if !adminPresent {
		admin := storedAccount{
			ID:           domain.AdminID,
			Username:     domain.AdminUsername,
			PasswordHash: s.adminPassHash,
			Role:         string(domain.RoleAdmin),
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.set(ctx, admin); err != nil {
			return nil, err
		}
		accounts = append(accounts, admin)
		s.log.Info().Msg("administrator account seeded")
	}

	return accounts, nil
}

func (s *AccountStore) set(ctx context.Context, a storedAccount) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal account: %w", err)
	}
	if err := s.client.HSet(ctx, accountsKey, a.ID, data).Err(); err != nil {
		return fmt.Errorf("save account: %w: %v", domain.ErrPersistence, err)
	}
	return nil
}

func toDomain(a storedAccount) domain.Account {
	return domain.Account{
		ID:           a.ID,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		Role:         domain.Role(a.Role),
		CreatedAt:    a.CreatedAt,
	}
}
