package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"quicktrip-api/internal/ports"
)

// RedisRouteCache shares routed leg results across instances through
// Redis. Values are stored as JSON with the TTL applied per key.
type RedisRouteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{client: client, ttl: ttl}
}

type cachedRoute struct {
	DistanceMeters  int `json:"distance_meters"`
	DurationSeconds int `json:"duration_seconds"`
}

func (r *RedisRouteCache) Get(ctx context.Context, key string) (ports.RouteResult, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return ports.RouteResult{}, false, nil
	}
	if err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("redis route cache get: %w", err)
	}

	var cached cachedRoute
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("redis route cache: unmarshal %q: %w", key, err)
	}

	return ports.RouteResult{
		DistanceMeters:  cached.DistanceMeters,
		DurationSeconds: cached.DurationSeconds,
	}, true, nil
}

func (r *RedisRouteCache) Put(ctx context.Context, key string, result ports.RouteResult) error {
	payload, err := json.Marshal(cachedRoute{
		DistanceMeters:  result.DistanceMeters,
		DurationSeconds: result.DurationSeconds,
	})
	if err != nil {
		return fmt.Errorf("redis route cache: marshal %q: %w", key, err)
	}

	if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis route cache set: %w", err)
	}

	return nil
}
