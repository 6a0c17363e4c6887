package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/localbiz/directory-api/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// BusinessCache is a read-through cache for single-listing lookups.
// Key format: business:<id>. Entries expire after cacheTTL and are
// invalidated explicitly on update/delete; the store stays authoritative.
type BusinessCache struct {
	client *redis.Client
}

// NewBusinessCache creates a BusinessCache wrapping the given Redis client.
func NewBusinessCache(client *redis.Client) *BusinessCache {
	return &BusinessCache{client: client}
}

// Get returns the cached listing, or (nil, nil) on a miss.
func (c *BusinessCache) Get(ctx context.Context, id string) (*domain.Business, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var b domain.Business
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &b, nil
}

func (c *BusinessCache) Set(ctx context.Context, b *domain.Business) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(b.ID), raw, cacheTTL).Err()
}

func (c *BusinessCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *BusinessCache) key(id string) string {
	return "business:" + id
}
