// Package idempotency keeps replayable responses in Redis, keyed by caller
// and Idempotency-Key header.
package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "idem:"
	lockPrefix = "idem-lock:"
	lockTTL    = 30 * time.Second
)

// Record is a stored response.
type Record struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type Store struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewStore(client redis.Cmdable, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Get returns the stored record for key, or nil when none exists.
func (s *Store) Get(ctx context.Context, key string) (*Record, error) {
	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting idempotency record: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding idempotency record: %w", err)
	}

	return &rec, nil
}

// Lock marks key as in flight. It returns false when another request holds it.
func (s *Store) Lock(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, lockPrefix+key, 1, lockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("locking idempotency key: %w", err)
	}

	return ok, nil
}

func (s *Store) Unlock(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, lockPrefix+key).Err(); err != nil {
		return fmt.Errorf("unlocking idempotency key: %w", err)
	}

	return nil
}

// Save stores rec unless a record already exists for key.
func (s *Store) Save(ctx context.Context, key string, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding idempotency record: %w", err)
	}

	if err := s.client.SetNX(ctx, keyPrefix+key, string(data), s.ttl).Err(); err != nil {
		return fmt.Errorf("saving idempotency record: %w", err)
	}

	return nil
}
