package configuration

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// cacheTTL bounds how stale a cached directory snapshot may get even when an
// invalidation is missed.
const cacheTTL = 5 * time.Minute

// CacheClient is the backend a Cache reads and writes through. Production
// uses Redis; tests substitute an in-memory implementation.
type CacheClient interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// Cache is a small read cache with explicit invalidation. A nil *Cache is
// valid and disables caching entirely.
type Cache struct {
	client CacheClient
}

// NewCache connects to Redis; an empty addr returns a disabled cache.
func NewCache(addr string) *Cache {
	if addr == "" {
		return nil
	}
	return NewCacheWith(redisClient{client: redis.NewClient(&redis.Options{Addr: addr})})
}

// NewCacheWith builds a cache over the given backend.
func NewCacheWith(client CacheClient) *Cache {
	return &Cache{client: client}
}

// Get returns the cached payload for key, or false on miss or error.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, key)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores a payload under key. Errors are swallowed; the cache is an
// optimization, never a source of truth.
func (c *Cache) Set(ctx context.Context, key string, value []byte) {
	if c == nil {
		return
	}
	_ = c.client.Set(ctx, key, value, cacheTTL)
}

// Invalidate drops the cached payload after a mutation.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if c == nil {
		return
	}
	_ = c.client.Del(ctx, key)
}

// Ping reports whether the cache backend is reachable.
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Ping(ctx)
}

// redisClient adapts a Redis connection to the CacheClient interface.
type redisClient struct {
	client *redis.Client
}

func (r redisClient) Get(ctx context.Context, key string) ([]byte, error) {
	return r.client.Get(ctx, key).Bytes()
}

func (r redisClient) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r redisClient) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r redisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
