package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/snowonice/venue-api/internal/core/domain"
)

const rinkKey = "rink:customers"

// RinkStore persists rink check-in records as a Redis hash keyed by customer
// number, so tracked countdowns survive a process restart.
type RinkStore struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewRinkStore(client *redis.Client, log zerolog.Logger) *RinkStore {
	return &RinkStore{client: client, log: log}
}

// LoadAll reads every persisted record. Fail-soft: entries that do not parse
// are dropped with a warning, never surfaced as an error.
func (s *RinkStore) LoadAll(ctx context.Context) (map[int]domain.RinkRecord, error) {
	raw, err := s.client.HGetAll(ctx, rinkKey).Result()
	if err != nil {
		return nil, fmt.Errorf("load rink records: %w: %v", domain.ErrPersistence, err)
	}

	records := make(map[int]domain.RinkRecord, len(raw))
	for field, data := range raw {
		number, err := strconv.Atoi(field)
		if err != nil || !domain.ValidCustomerNumber(number) {
			s.log.Warn().Str("field", field).Msg("discarding rink entry with bad customer number")
			continue
		}
		var rec domain.RinkRecord
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			s.log.Warn().Int("customer", number).Msg("discarding corrupt rink entry")
			continue
		}
		records[number] = rec
	}
	return records, nil
}

func (s *RinkStore) Save(ctx context.Context, rec domain.RinkRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal rink record: %w", err)
	}
	if err := s.client.HSet(ctx, rinkKey, strconv.Itoa(rec.CustomerNumber), data).Err(); err != nil {
		return fmt.Errorf("save rink record: %w: %v", domain.ErrPersistence, err)
	}
	return nil
}

func (s *RinkStore) Delete(ctx context.Context, customerNumber int) error {
	if err := s.client.HDel(ctx, rinkKey, strconv.Itoa(customerNumber)).Err(); err != nil {
		return fmt.Errorf("delete rink record: %w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// SaveAll writes a batch of records in one pipeline; used by the bulk
// pause/resume toggle.
func (s *RinkStore) SaveAll(ctx context.Context, recs map[int]domain.RinkRecord) error {
	pipe := s.client.TxPipeline()
	for number, rec := range recs {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal rink record: %w", err)
		}
		pipe.HSet(ctx, rinkKey, strconv.Itoa(number), data)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save rink records: %w: %v", domain.ErrPersistence, err)
	}
	return nil
}
