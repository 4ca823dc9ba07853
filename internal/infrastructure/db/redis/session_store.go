package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/snowonice/venue-api/internal/core/domain"
)

const sessionPrefix = "session:"

// SessionStore persists authenticated sessions under session:<id>. Sessions
// carry no TTL; they live until explicit logout deletes them.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Save(ctx context.Context, sess domain.Session) error {
	if sess.ID == "" {
		return errors.New("session id cannot be empty")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := s.client.Set(ctx, sessionPrefix+sess.ID, data, 0).Err(); err != nil {
		return fmt.Errorf("save session: %w: %v", domain.ErrPersistence, err)
	}
	return nil
}

func (s *SessionStore) Find(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, domain.ErrSessionNotFound
	}

	data, err := s.client.Get(ctx, sessionPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w: %v", domain.ErrPersistence, err)
	}

	var sess domain.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		// Corrupt persisted data is discarded, not propagated.
		_ = s.client.Del(ctx, sessionPrefix+id).Err()
		return nil, domain.ErrSessionNotFound
	}

	return &sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.client.Del(ctx, sessionPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete session: %w: %v", domain.ErrPersistence, err)
	}
	return nil
}
