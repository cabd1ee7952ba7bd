package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quicktrip-api/internal/ports"
)

// SQLite backed cache for routed leg results. Expiry is stored as unix
// seconds so the table stays portable across drivers.
type SqliteRouteCache struct {
	DB  *sql.DB
	ttl time.Duration
}

func NewSqliteRouteCache(db *sql.DB, ttl time.Duration) *SqliteRouteCache {
	return &SqliteRouteCache{DB: db, ttl: ttl}
}

// Fetch one cached leg result, skipping expired rows.
func (s *SqliteRouteCache) Get(ctx context.Context, key string) (ports.RouteResult, bool, error) {
	if s.DB == nil {
		return ports.RouteResult{}, false, errors.New("route cache: db is nil")
	}

	if key == "" {
		return ports.RouteResult{}, false, errors.New("get route cache: key must not be empty")
	}

	q := `
	SELECT distance_meters, duration_seconds
    FROM route_cache
    WHERE cache_key = ?
        AND expires_at > ?;
	`

	var meters, seconds int
	err := s.DB.QueryRowContext(ctx, q, key, time.Now().Unix()).Scan(&meters, &seconds)
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
func (s *SqliteRouteCache) Put(ctx context.Context, key string, result ports.RouteResult) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if key == "" {
		return errors.New("insert route cache: key must not be empty")
	}

	q := `
	INSERT OR REPLACE INTO route_cache (
        cache_key,
        distance_meters,
        duration_seconds,
        expires_at
    )
    VALUES (?, ?, ?, ?);
	`

	expiresAt := time.Now().Add(s.ttl).Unix()
	if _, err := s.DB.ExecContext(ctx, q, key, result.DistanceMeters, result.DurationSeconds, expiresAt); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}
