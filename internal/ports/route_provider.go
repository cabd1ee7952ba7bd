package ports

import (
	"context"

	"quicktrip-api/internal/domain"
)

// Distance and travel duration for a single routed leg.
type RouteResult struct {
	DistanceMeters  int
	DurationSeconds int
}

// Contract for answering one routing query for one leg.
// Implementations must be safe for concurrent use: aggregation issues one
// call per leg in parallel.
type RouteProvider interface {
	// Return distance and duration for travelling origin -> destination
	// with the given mode. Returns domain.ErrNoRouteFound when the backend
	// answered but found no route.
	Route(ctx context.Context, origin, destination domain.Coordinates, mode domain.TransportMode) (RouteResult, error)
}
