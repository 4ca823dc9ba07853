package ports

import (
	"context"

	"github.com/snowonice/venue-api/internal/core/domain"
)

// AccountRepository is the durable account directory. Implementations must
// guarantee the well-known administrator account is present after every load
// (self-healing seed) and must load fail-soft: corrupt entries are discarded,
// never surfaced as errors.
type AccountRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Create(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, id string) error
}

// SessionRepository persists authenticated sessions. Sessions carry no
// expiry; they live until explicit deletion.
type SessionRepository interface {
	Save(ctx context.Context, sess domain.Session) error
	Find(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
