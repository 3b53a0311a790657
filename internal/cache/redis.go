// Package cache provides an optional Redis-backed search cache. It is a
// drop-in for the SQLite cache when the service runs with shared state
// across instances.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"pricescan/internal/engine"
)

const keyPrefix = "pricescan:search:"

// RedisCache stores normalized listings in Redis with a TTL.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(host, port, password string, db int, ttl time.Duration) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisCache{client: rdb, ctx: ctx, ttl: ttl}, nil
}

// GetSearch retrieves cached listings for a key. The ttl argument is
// ignored: Redis enforces expiry itself when entries are stored.
func (r *RedisCache) GetSearch(key string, _ time.Duration) ([]engine.Listing, bool) {
	payload, err := r.client.Get(r.ctx, keyPrefix+key).Result()
	if err != nil {
		return nil, false
	}
	var listings []engine.Listing
	if err := json.Unmarshal([]byte(payload), &listings); err != nil {
		return nil, false
	}
	return listings, true
}

// SetSearch stores listings under a key with the configured TTL.
// Failures are swallowed: the cache is an optimization.
func (r *RedisCache) SetSearch(key string, listings []engine.Listing) {
	payload, err := json.Marshal(listings)
	if err != nil {
		return
	}
	r.client.Set(r.ctx, keyPrefix+key, string(payload), r.ttl)
}

// Close closes the Redis connection.
func (r *RedisCache) Close() error {
	return r.client.Close()
}
