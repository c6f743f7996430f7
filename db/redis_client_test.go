package db

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRedisClient_SetAndGet(t *testing.T) {
	tests := []struct {
		name   string
		client RedisClient
	}{
		{"MockRedisClient", NewMockRedisClient()},
		// Replace with a real Redis client configuration for integration testing
		// {"GoRedisClient", NewGoRedisClient(goredis.NewClient(&goredis.Options{Addr: "localhost:6379"}))},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx := context.Background()
			key := "test-key"
			value := "test-value"

			// Act
			if err := test.client.Set(ctx, key, value, 0); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			retrieved, err := test.client.Get(ctx, key)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}

			// Assert
			if retrieved != value {
				t.Errorf("Expected %s, got %s", value, retrieved)
			}

			if err := test.client.Del(ctx, key); err != nil {
				t.Fatalf("Del failed: %v", err)
			}
			if _, err := test.client.Get(ctx, key); !errors.Is(err, ErrKeyNotFound) {
				t.Errorf("Expected ErrKeyNotFound after Del, got %v", err)
			}
		})
	}
}

func TestMockRedisClient_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	client := NewMockRedisClient()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	client.now = func() time.Time { return now }

	if err := client.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	now = now.Add(59 * time.Second)
	if _, err := client.Get(ctx, "k"); err != nil {
		t.Fatalf("Expected value before expiry, got %v", err)
	}

	now = now.Add(time.Second)
	if _, err := client.Get(ctx, "k"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound after expiry, got %v", err)
	}
}

func TestMockRedisClient_MissingKey(t *testing.T) {
	_, err := NewMockRedisClient().Get(context.Background(), "missing")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got %v", err)
	}
}

func TestRedisClient_Ping(t *testing.T) {
	if err := NewMockRedisClient().Ping(context.Background()); err != nil {
		t.Errorf("Expected Ping to succeed, got %v", err)
	}
}
