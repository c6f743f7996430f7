package db

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned by Get when the key does not exist or has expired.
var ErrKeyNotFound = errors.New("key not found")

// RedisClient defines the methods the application needs from Redis
type RedisClient interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
