package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisStore persists the snapshot under a single fixed redis key.
// Cart snapshots carry no TTL: the cart survives until the customer
// clears it or an order succeeds.
type RedisStore struct {
	client *redis.Client
	key    string
	logger zerolog.Logger
}

// NewRedisStore creates a redis-backed snapshot store. The connection
// is verified with a ping.
func NewRedisStore(ctx context.Context, client *redis.Client, key string, logger zerolog.Logger) (*RedisStore, error) {
	if key == "" {
		return nil, fmt.Errorf("snapshot key is required")
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &RedisStore{
		client: client,
		key:    key,
		logger: logger.With().Str("component", "redis-store").Logger(),
	}, nil
}

// Load reads the snapshot value.
func (s *RedisStore) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return data, nil
}

// Save overwrites the snapshot value.
func (s *RedisStore) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	s.logger.Debug().Int("bytes", len(data)).Msg("snapshot saved")
	return nil
}
