package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"weather-server/db"
	"weather-server/models"
)

// GEOCODE_KEY_FORMAT is used to cache geocoding candidates per city.
const GEOCODE_KEY_FORMAT = "geocode_v1:%s"

// RedisGeocodeDAO caches geocoding search responses in Redis.
type RedisGeocodeDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewRedisGeocodeDAO initializes a RedisGeocodeDAO with the Redis client.
func NewRedisGeocodeDAO(client db.RedisClient, ttl time.Duration) *RedisGeocodeDAO {
	return &RedisGeocodeDAO{client: client, ttl: ttl}
}

func geocodeKey(city string) string {
	return fmt.Sprintf(GEOCODE_KEY_FORMAT, strings.ToLower(strings.TrimSpace(city)))
}

// GetCandidates returns the cached candidates for city. found is false on a
// cache miss.
func (dao *RedisGeocodeDAO) GetCandidates(ctx context.Context, city string) ([]models.Location, bool, error) {
	str, err := dao.client.Get(ctx, geocodeKey(city))
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("[RedisGeocodeDAO] failed to get candidates: %w", err)
	}

	var candidates []models.Location
	if err := json.Unmarshal([]byte(str), &candidates); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal candidates JSON: %w", err)
	}
	if candidates == nil {
		candidates = []models.Location{}
	}
	return candidates, true, nil
}

// SetCandidates caches the candidates for city with the DAO's TTL.
func (dao *RedisGeocodeDAO) SetCandidates(ctx context.Context, city string, candidates []models.Location) error {
	data, err := json.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("failed to marshal candidates for %s: %w", city, err)
	}
	if err := dao.client.Set(ctx, geocodeKey(city), string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set candidates in redis: %w", err)
	}
	return nil
}

// DeleteCandidates drops the cached entry for city.
func (dao *RedisGeocodeDAO) DeleteCandidates(ctx context.Context, city string) error {
	key := geocodeKey(city)
	if err := dao.client.Del(ctx, key); err != nil {
		return fmt.Errorf("failed to delete geocode key %s: %w", key, err)
	}
	return nil
}
