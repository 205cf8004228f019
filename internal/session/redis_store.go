package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/saransh1220/filevault/internal/domain"
)

const keyPrefix = "auth_"

type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed session store. Expiry is left to
// Redis itself (SET with TTL), so there is no sweep to run.
func NewRedisStore(client *redis.Client) domain.SessionStore {
	return &redisStore{client: client}
}

func (s *redisStore) Set(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	if err := s.client.Set(ctx, keyPrefix+token, userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get resolves a token to a user id. Unknown and expired tokens both return
// uuid.Nil with a nil error; callers treat that as unauthorized.
func (s *redisStore) Get(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return uuid.Nil, nil
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to read session: %w", err)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		// A corrupt entry is indistinguishable from absence to callers.
		return uuid.Nil, nil
	}
	return userID, nil
}

func (s *redisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
