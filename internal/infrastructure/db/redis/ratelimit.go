package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitStore implements fixed-window request counting backed by Redis.
// Key format: ratelimit:<scope>:<client>
type RateLimitStore struct {
	client *redis.Client
}

// NewRateLimitStore creates a RateLimitStore wrapping the given Redis client.
func NewRateLimitStore(client *redis.Client) *RateLimitStore {
	return &RateLimitStore{client: client}
}

// Hit increments the window counter for the key and returns the new count.
// The expiry is only set when the key is first created, which is what makes
// the window fixed rather than sliding.
func (s *RateLimitStore) Hit(ctx context.Context, scope, client string, window time.Duration) (int64, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", scope, client)

	pipe := s.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("rate limit hit: %w", err)
	}
	return incr.Val(), nil
}
