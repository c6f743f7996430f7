package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// GoRedisClient implements RedisClient on top of go-redis.
type GoRedisClient struct {
	client *redis.Client
}

// NewGoRedisClient wraps an initialized go-redis client
func NewGoRedisClient(client *redis.Client) *GoRedisClient {
	return &GoRedisClient{client: client}
}

// Set stores value under key; a zero ttl means no expiry.
func (r *GoRedisClient) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Get retrieves the value for a given key from Redis
func (r *GoRedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return val, nil
}

func (r *GoRedisClient) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *GoRedisClient) Ping(ctx context.Context) error {
	_, err := r.client.Ping(ctx).Result()
	return err
}

func (r *GoRedisClient) Close() error {
	return r.client.Close()
}
