package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss indicates the key is absent or expired
var ErrCacheMiss = errors.New("cache miss")

// redisCache implements Cache interface using Redis
type redisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis-based cache
func NewRedisCache(client *redis.Client) Cache {
	return &redisCache{
		client: client,
	}
}

// Get retrieves a value from cache
func (c *redisCache) Get(ctx context.Context, key string, value interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return ErrCacheMiss
		}
		return errors.Wrap(err, "failed to get from cache")
	}

	if err := json.Unmarshal(data, value); err != nil {
		return errors.Wrap(err, "failed to unmarshal cache value")
	}
	return nil
}

// Set stores a value in cache with TTL
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "failed to marshal cache value")
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to set cache value")
	}
	return nil
}

// Delete removes a value from cache
func (c *redisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "failed to delete from cache")
	}
	return nil
}

// memoryCache implements Cache using in-memory storage (for testing)
type memoryCache struct {
	mu   sync.Mutex
	data map[string]cacheEntry
}

type cacheEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewMemoryCache creates a new in-memory cache (mainly for testing)
func NewMemoryCache() Cache {
	return &memoryCache{
		data: make(map[string]cacheEntry),
	}
}

// Get retrieves a value from cache
func (c *memoryCache) Get(ctx context.Context, key string, value interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.data[key]
	if !exists {
		return ErrCacheMiss
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.data, key)
		return ErrCacheMiss
	}

	return json.Unmarshal(entry.value, value)
}

// Set stores a value in cache with TTL
func (c *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = cacheEntry{
		value:     data,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a value from cache
func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}
