// Package cache provides an optional Redis-backed read-through cache for
// product point lookups. The cache is strictly an accelerator: every
// failure path degrades to the store, and the system runs identically
// with no cache configured.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/model"
)

// DefaultTTL bounds staleness of cached products. Stock changes via the
// replenishment sweep, so cached entries must expire rather than live
// forever.
const DefaultTTL = 5 * time.Minute

// ProductCache holds the Redis client connection.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis at addr and returns a ProductCache.
// A zero ttl selects DefaultTTL.
func New(addr string, ttl time.Duration) (*ProductCache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &ProductCache{client: client, ttl: ttl}, nil
}

// Close closes the Redis connection.
func (c *ProductCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func productKey(id string) string {
	return "product:" + id
}

// Get fetches a cached product. The second return value reports whether
// the key was present; a miss is not an error.
func (c *ProductCache) Get(ctx context.Context, id string) (model.Product, bool, error) {
	data, err := c.client.Get(ctx, productKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Product{}, false, nil
	}
	if err != nil {
		return model.Product{}, false, fmt.Errorf("cache get: %w", err)
	}

	var p model.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Product{}, false, fmt.Errorf("cache get: decode: %w", err)
	}
	return p, true, nil
}

// Set stores a product under its id with the configured TTL.
func (c *ProductCache) Set(ctx context.Context, p model.Product) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cache set: encode: %w", err)
	}
	if err := c.client.Set(ctx, productKey(p.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops a cached product, e.g. after a stock update.
func (c *ProductCache) Invalidate(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, productKey(id)).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
