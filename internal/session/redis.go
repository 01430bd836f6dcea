// internal/session/redis.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ekthaa-chatbot/internal/models"
)

var ErrSerializationFailed = errors.New("CONTEXT_SERIALIZATION_FAILED")

const redisKeyPrefix = "chat:ctx:"

// RedisStore persists conversation context in Redis with a per-key TTL, so
// server restarts keep ongoing conversations intact.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, userID string) (models.ParsedIntent, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+userID).Bytes()
	if err == redis.Nil {
		return models.ParsedIntent{}, nil
	}
	if err != nil {
		return models.ParsedIntent{}, fmt.Errorf("get context for %s: %w", userID, err)
	}

	var intent models.ParsedIntent
	if err := json.Unmarshal(data, &intent); err != nil {
		return models.ParsedIntent{}, fmt.Errorf("%w: %v", ErrSerializationFailed, err)
	}
	return intent, nil
}

func (s *RedisStore) Put(ctx context.Context, userID string, intent models.ParsedIntent) error {
	data, err := json.Marshal(intent)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerializationFailed, err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+userID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("put context for %s: %w", userID, err)
	}
	return nil
}
