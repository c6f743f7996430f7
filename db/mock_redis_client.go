package db

import (
	"context"
	"log"
	"sync"
	"time"
)

type mockEntry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

// MockRedisClient simulates a Redis client for testing purposes.
type MockRedisClient struct {
	data map[string]mockEntry
	mu   sync.RWMutex
	now  func() time.Time
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		data: make(map[string]mockEntry),
		now:  time.Now,
	}
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := mockEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.data[key] = entry
	return nil
}

// Get retrieves a value for a given key from the mock Redis.
func (m *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, exists := m.data[key]
	if !exists {
		return "", ErrKeyNotFound
	}
	if !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt) {
		return "", ErrKeyNotFound
	}
	return entry.value, nil
}

func (m *MockRedisClient) Del(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Ping simulates a Redis Ping operation.
func (m *MockRedisClient) Ping(ctx context.Context) error {
	log.Println("MockRedisClient: Ping successful")
	return nil
}

func (m *MockRedisClient) Close() error {
	return nil
}
