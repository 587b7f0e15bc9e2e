package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"belegcheck/internal/domain"
)

const redisKeyPrefix = "vies:uid:"

// RedisStore shares registry answers across instances via redis, with the
// TTL enforced server-side.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a redis-backed cache store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Get returns the cached answer for uid, or (nil, nil) when absent.
func (s *RedisStore) Get(ctx context.Context, uid string) (*domain.ViesValidationInfo, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+uid).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var info domain.ViesValidationInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("decode cached registry answer: %w", err)
	}
	return &info, nil
}

// Set stores the answer for uid with the configured TTL.
func (s *RedisStore) Set(ctx context.Context, uid string, info *domain.ViesValidationInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("encode registry answer: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+uid, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
