// Package cache provides the Redis-backed result cache.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kent15/youtube-analytics-platform/pkg/logger"
)

// Cache stores opaque blobs with a time-to-live. Callers own the payload
// encoding; the cache never inspects values.
type Cache struct {
	client *redis.Client
}

// New creates a Cache backed by the given Redis client.
func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Get retrieves a value by key. A miss returns (nil, nil).
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get %q: %w", key, err)
	}

	logger.Log.Debug("cache hit", zap.String("key", key))
	return value, nil
}

// Set stores a value under key with the given TTL.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %q: %w", key, err)
	}

	logger.Log.Debug("cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

// Remove deletes a key.
func (c *Cache) Remove(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache remove %q: %w", key, err)
	}

	logger.Log.Debug("cache removed", zap.String("key", key))
	return nil
}

// Ping verifies connectivity to Redis.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
