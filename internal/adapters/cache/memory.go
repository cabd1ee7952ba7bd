package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bluele/gcache"

	"quicktrip-api/internal/ports"
)

// MemoryRouteCache keeps routed leg results in an in-process LRU with
// per-entry expiry. It is the default store for single-instance deploys.
type MemoryRouteCache struct {
	c gcache.Cache
}

func NewMemoryRouteCache(size int, ttl time.Duration) *MemoryRouteCache {
	return &MemoryRouteCache{
		c: gcache.New(size).LRU().Expiration(ttl).Build(),
	}
}

func (m *MemoryRouteCache) Get(ctx context.Context, key string) (ports.RouteResult, bool, error) {
	v, err := m.c.Get(key)
	if err != nil {
		if errors.Is(err, gcache.KeyNotFoundError) {
			return ports.RouteResult{}, false, nil
		}
		return ports.RouteResult{}, false, fmt.Errorf("memory route cache get: %w", err)
	}

	r, ok := v.(ports.RouteResult)
	if !ok {
		return ports.RouteResult{}, false, fmt.Errorf("memory route cache: unexpected value type %T", v)
	}

	return r, true, nil
}

func (m *MemoryRouteCache) Put(ctx context.Context, key string, result ports.RouteResult) error {
	if err := m.c.Set(key, result); err != nil {
		return fmt.Errorf("memory route cache set: %w", err)
	}
	return nil
}
