package ports

import (
	"context"

	"quicktrip-api/internal/domain"
)

// Port: a boundary for storing Itinerary sessions and coordinating plan
// runs against them.
//
// Accessors return deep copies; callers never share memory with the
// store. BeginRun and PublishPlan carry the run tag that keeps a slow
// aggregation from clobbering a newer one.
type ItineraryRepository interface {
	// Create a new itinerary session.
	Create(ctx context.Context, mode domain.TransportMode, searchOrigin *domain.Coordinates) (*domain.Itinerary, error)

	// Retrieve one itinerary by id.
	Get(ctx context.Context, itineraryID string) (*domain.Itinerary, error)

	// Replace the waypoint list wholesale. Waypoints are renumbered and
	// any in-flight plan run is invalidated.
	ReplaceWaypoints(ctx context.Context, itineraryID string, waypoints []domain.Waypoint) (*domain.Itinerary, error)

	// Toggle one waypoint in or out of the trip.
	SetWaypointInTrip(ctx context.Context, itineraryID, waypointID string, inTrip bool) (*domain.Itinerary, error)

	// Switch the transport mode for every leg.
	SetMode(ctx context.Context, itineraryID string, mode domain.TransportMode) (*domain.Itinerary, error)

	// Update the live-location anchor flags.
	SetAnchors(ctx context.Context, itineraryID string, anchors domain.AnchorFlags) (*domain.Itinerary, error)

	// Snapshot the itinerary for a fresh aggregation run and return the
	// run tag the eventual plan must carry.
	BeginRun(ctx context.Context, itineraryID string) (*domain.Itinerary, uint64, error)

	// Store a computed plan if run still identifies the latest snapshot.
	// Returns false when the run went stale and the plan was dropped.
	PublishPlan(ctx context.Context, itineraryID string, run uint64, plan *domain.TripPlan) (bool, error)
}
