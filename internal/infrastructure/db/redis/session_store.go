package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hammondstays/hotels-api/internal/core/domain"
	"github.com/hammondstays/hotels-api/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// SessionStore keeps opaque server-side sessions in Redis.
// Key format: session:<uuid>, value is the JSON-encoded session payload.
// Expiry is handled by Redis TTLs; an expired id simply stops resolving.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Create stores the payload under a fresh opaque id and returns the id.
func (s *SessionStore) Create(ctx context.Context, data ports.SessionData) (string, error) {
	id := uuid.NewString()

	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(id), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return id, nil
}

// Get resolves a session id, refreshing its TTL on every hit (sliding
// expiry). Unknown or expired ids report domain.ErrUnauthenticated.
func (s *SessionStore) Get(ctx context.Context, id string) (*ports.SessionData, error) {
	payload, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var data ports.SessionData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	if err := s.client.Expire(ctx, s.key(id), s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("refresh session: %w", err)
	}
	return &data, nil
}

// Delete terminates a session. Deleting an absent session is a no-op.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(id string) string {
	return "session:" + id
}
