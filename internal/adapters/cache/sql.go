package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quicktrip-api/internal/platform/obs"
	"quicktrip-api/internal/ports"
)

// DefaultTTL bounds how long a routed leg result stays reusable. Road and
// transit conditions drift, so entries go stale quickly.
const DefaultTTL = 120 * time.Second

// SQLRouteCache is a Postgres-backed cache for routed leg results keyed
// by the caller's cache key.
type SQLRouteCache struct {
	DB  *sql.DB
	ttl time.Duration
}

func NewSQLRouteCache(db *sql.DB, ttl time.Duration) *SQLRouteCache {
	return &SQLRouteCache{DB: db, ttl: ttl}
}

// Fetch one cached leg result, skipping expired rows.
func (s *SQLRouteCache) Get(ctx context.Context, key string) (_ ports.RouteResult, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return ports.RouteResult{}, false, errors.New("route cache: db is nil")
	}

	if key == "" {
		return ports.RouteResult{}, false, errors.New("get route cache: key must not be empty")
	}

	q := `
	SELECT distance_meters, duration_seconds
    FROM route_cache
    WHERE cache_key = $1
        AND expires_at > $2;
	`

	var meters, seconds int
	err = s.DB.QueryRowContext(ctx, q, key, time.Now()).Scan(&meters, &seconds)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.RouteResult{}, false, nil
	}
	if err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	return ports.RouteResult{
		DistanceMeters:  meters,
		DurationSeconds: seconds,
	}, true, nil
}

// Store one leg result, replacing any previous entry for the key.
func (s *SQLRouteCache) Put(ctx context.Context, key string, result ports.RouteResult) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if key == "" {
		return errors.New("insert route cache: key must not be empty")
	}

	q := `
	INSERT INTO route_cache (cache_key, distance_meters, duration_seconds, expires_at)
    VALUES ($1, $2, $3, $4)
	ON CONFLICT (cache_key) DO UPDATE
	SET distance_meters = EXCLUDED.distance_meters,
		duration_seconds = EXCLUDED.duration_seconds,
		expires_at = EXCLUDED.expires_at;
	`

	expiresAt := time.Now().Add(s.ttl)
	if _, err := s.DB.ExecContext(ctx, q, key, result.DistanceMeters, result.DurationSeconds, expiresAt); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}
