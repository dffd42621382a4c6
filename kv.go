package main

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

// KV is the durable key-value backend the portal persists into. Values are
// raw strings; all JSON decoding happens in the layer above, so consumers
// always receive a consistently-typed payload.
type KV interface {
	// Get returns the value stored at key, or ErrNoValue if the key was
	// never written.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value at key.
	Set(ctx context.Context, key, value string) error
}

// RedisKV adapts a Redis client to the KV interface.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV creates a RedisKV over the given client.
func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

// Get retrieves the raw value at key.
func (s *RedisKV) Get(ctx context.Context, key string) (string, error) {
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoValue
		}
		return "", err
	}
	return data, nil
}

// Set stores value at key with no expiry.
func (s *RedisKV) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}
