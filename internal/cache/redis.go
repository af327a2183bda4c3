package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"shiftbox/internal/logger"
)

// RedisCache is a QuoteCache backed by Redis, for deployments where many
// engine instances serve the same quote traffic.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to the Redis instance at addr.
func NewRedisCache(addr string) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// Get returns the cached value for key. Misses and errors look the same to
// the caller; errors are logged.
func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Get().Errorw("quote cache read failed", "key", key, "error", err)
		}
		return "", false
	}
	return val, true
}

// Set stores value under key with the given ttl.
func (r *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Close releases the underlying connection pool.
func (r *RedisCache) Close() error {
	return r.client.Close()
}
