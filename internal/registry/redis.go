package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "refresh_token:"

// RedisRegistry stores entries as TTL-bearing keys, so expiry is enforced by
// the store and entries survive process restarts.
type RedisRegistry struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRegistry(client *redis.Client, ttl time.Duration) *RedisRegistry {
	return &RedisRegistry{client: client, ttl: ttl}
}

func (r *RedisRegistry) Register(ctx context.Context, subjectID string) error {
	if err := r.client.Set(ctx, keyPrefix+subjectID, "1", r.ttl).Err(); err != nil {
		return fmt.Errorf("register refresh entry: %w", err)
	}
	return nil
}

func (r *RedisRegistry) Verify(ctx context.Context, subjectID string) (bool, error) {
	n, err := r.client.Exists(ctx, keyPrefix+subjectID).Result()
	if err != nil {
		return false, fmt.Errorf("verify refresh entry: %w", err)
	}
	return n > 0, nil
}

func (r *RedisRegistry) Remove(ctx context.Context, subjectID string) error {
	if err := r.client.Del(ctx, keyPrefix+subjectID).Err(); err != nil {
		return fmt.Errorf("remove refresh entry: %w", err)
	}
	return nil
}
