package ports

import (
	"context"

	"github.com/snowonice/venue-api/internal/core/domain"
)

// RinkRepository persists rink check-in records in the durable KV store.
// LoadAll is fail-soft: corrupt entries are skipped, not surfaced.
type RinkRepository interface {
	LoadAll(ctx context.Context) (map[int]domain.RinkRecord, error)
	Save(ctx context.Context, rec domain.RinkRecord) error
	Delete(ctx context.Context, customerNumber int) error
	SaveAll(ctx context.Context, recs map[int]domain.RinkRecord) error
}
