package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"panditseva/models"
)

// ErrSessionNotFound marks a missing or expired search session.
var ErrSessionNotFound = errors.New("search session not found or expired")

// SessionStore persists the snapshot between search and confirmation.
type SessionStore interface {
	Save(ctx context.Context, session models.SearchSession) error
	Get(ctx context.Context, sessionID string) (*models.SearchSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore stores sessions as JSON under their session ID.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) Save(ctx context.Context, session models.SearchSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal search session: %w", err)
	}
	if err := s.Client.Set(ctx, session.SessionID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store search session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.SearchSession, error) {
	data, err := s.Client.Get(ctx, sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to fetch search session: %w", err)
	}
	var session models.SearchSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse search session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete search session: %w", err)
	}
	return nil
}
