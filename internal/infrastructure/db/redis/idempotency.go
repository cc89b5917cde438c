package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultIdempotencyTTL = 24 * time.Hour

// IdempotencyStore provides replay protection for order submissions backed
// by Redis. Key format: order:idem:<client-key> → order id.
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given Redis
// client. A non-positive ttl falls back to the default of 24 hours.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Lookup returns the order id previously stored under key, or "" when the
// key has not been seen.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (string, error) {
	orderID, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("idempotency lookup: %w", err)
	}
	return orderID, nil
}

// Remember records the order created for key (expires after the store TTL).
// SetNX keeps the first order id when two submissions race.
func (s *IdempotencyStore) Remember(ctx context.Context, key, orderID string) error {
	return s.client.SetNX(ctx, s.key(key), orderID, s.ttl).Err()
}

func (s *IdempotencyStore) key(key string) string {
	return "order:idem:" + key
}
