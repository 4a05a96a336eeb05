package pairwise

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache memoizes DTW distances by Key. Implementations must be safe for
// concurrent use.
type Cache interface {
	// Get reports the cached distance for key, or ok=false on a miss.
	Get(ctx context.Context, key string) (v float64, ok bool, err error)
	// Set stores v under key.
	Set(ctx context.Context, key string, v float64) error
}

// MemoryCache is an in-process Cache.
type MemoryCache struct {
	mu sync.RWMutex
	m  map[string]float64
}

// NewMemoryCache returns an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{m: make(map[string]float64)}
}

// Get implements Cache.
func (c *MemoryCache) Get(_ context.Context, key string) (float64, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[key]

	return v, ok, nil
}

// Set implements Cache.
func (c *MemoryCache) Set(_ context.Context, key string, v float64) error {
	c.mu.Lock()
	c.m[key] = v
	c.mu.Unlock()

	return nil
}

// Len returns the number of cached distances.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.m)
}

// RedisCache stores distances as Redis strings under prefix+key.
type RedisCache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewRedisCache wraps client. A zero ttl keeps entries until evicted.
func NewRedisCache(client redis.Cmdable, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

// Get implements Cache.
func (c *RedisCache) Get(ctx context.Context, key string) (float64, bool, error) {
	v, err := c.client.Get(ctx, c.prefix+key).Float64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("pairwise: redis get %s: %w", key, err)
	}

	return v, true, nil
}

// Set implements Cache.
func (c *RedisCache) Set(ctx context.Context, key string, v float64) error {
	if err := c.client.Set(ctx, c.prefix+key, v, c.ttl).Err(); err != nil {
		return fmt.Errorf("pairwise: redis set %s: %w", key, err)
	}

	return nil
}
