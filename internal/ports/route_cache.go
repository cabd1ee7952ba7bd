package ports

import "context"

// Contract for caching routed leg results keyed by mode and endpoint
// geohashes. Entries expire; a miss is reported through the found flag,
// an error means the store itself misbehaved.
type RouteCache interface {
	Get(ctx context.Context, key string) (RouteResult, bool, error)
	Put(ctx context.Context, key string, result RouteResult) error
}
