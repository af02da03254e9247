package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrNotInitialized is returned by every method of a Cache without a client.
var ErrNotInitialized = errors.New("Redis client is not initialized")

type Cache struct {
	client *redis.Client
}

// NewCache wraps client. A nil client yields a Cache whose methods all fail
// with ErrNotInitialized.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Enabled reports whether the cache has a live client behind it.
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if !c.Enabled() {
		return ErrNotInitialized
	}
	return c.client.Del(ctx, key).Err()
}

func (c *Cache) DeleteAll(ctx context.Context, pattern string) error {
	if !c.Enabled() {
		return ErrNotInitialized
	}
	// SCAN rather than KEYS so large keyspaces do not block the server
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if !c.Enabled() {
		return ErrNotInitialized
	}
	return c.client.Set(ctx, key, value, expiration).Err()
}

// Get returns "" with a nil error when the key does not exist.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	if !c.Enabled() {
		return "", ErrNotInitialized
	}
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}
