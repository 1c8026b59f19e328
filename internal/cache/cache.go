// Package cache memoizes derived statistics in redis. Engine inputs are
// immutable once a game completes, so cached results carry no invalidation
// hazard beyond a newly completed game; a short TTL bounds that window.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New returns a Cache over the given client. A nil client yields a disabled
// cache where every Get is a miss and every Set is a no-op.
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Key builds a namespaced key from the parts identifying one engine query
// (league, operation, category, filters, page).
func Key(parts ...string) string {
	return "stats:" + strings.Join(parts, ":")
}

// Get unmarshals the cached value for key into dest and reports whether a
// value was present.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	err = json.Unmarshal(payload, dest)
	if err != nil {
		return false, err
	}

	return true, nil
}

// Set stores value under key for the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	if c == nil || c.client == nil {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, payload, c.ttl).Err()
}
