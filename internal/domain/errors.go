package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and adapters.
var (
	ErrItineraryNotFound   = errors.New("itinerary not found")
	ErrWaypointNotFound    = errors.New("waypoint not found")
	ErrNoRouteFound        = errors.New("no route found")
	ErrLocationUnavailable = errors.New("live location unavailable")
)

// ProviderError reports a routing backend failure that is not a clean
// "no route" outcome. Status holds the upstream HTTP status when one was
// received, 0 otherwise.
type ProviderError struct {
	Provider string
	Status   int
	Message  string
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// FailureReason collapses a leg error into the coarse reason exposed to
// clients.
func FailureReason(err error) string {
	if errors.Is(err, ErrNoRouteFound) {
		return "no_route_found"
	}
	return "provider_error"
}
