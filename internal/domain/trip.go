package domain

import "time"

// Routing mode applied to every leg of a trip.
type TransportMode string

const (
	ModeDriving TransportMode = "driving"
	ModeWalking TransportMode = "walking"
	ModeTransit TransportMode = "transit"
)

// Valid reports whether m is one of the supported transport modes.
func (m TransportMode) Valid() bool {
	switch m {
	case ModeDriving, ModeWalking, ModeTransit:
		return true
	}
	return false
}

// Toggles tying a trip's endpoints to the caller's live position.
type AnchorFlags struct {
	StartAtCurrent bool
	EndAtCurrent   bool
}

// Represents a single origin->destination segment of a trip.
// Each leg is routed with an independent query; legs never depend on each
// other's results.
type Leg struct {
	Origin      Coordinates
	Destination Coordinates
	Mode        TransportMode
}

// Aggregate distance and duration folded over the successful legs of a
// single aggregation run. Failed legs contribute nothing, so totals may be
// partial.
type TripTotals struct {
	DistanceMeters  int
	DurationSeconds int
}

// Fold one leg result into the running totals.
func (t *TripTotals) Add(distanceMeters, durationSeconds int) {
	t.DistanceMeters += distanceMeters
	t.DurationSeconds += durationSeconds
}

// A leg whose routing query failed, reported alongside the partial totals.
type LegFailure struct {
	LegIndex int
	Leg      Leg
	Err      error
}

// Represents the outcome of one aggregation run over an itinerary.
// A TripPlan is immutable result data: totals over the legs that routed,
// the legs that failed, and the run tag it was computed under.
type TripPlan struct {
	Run        uint64
	Mode       TransportMode
	LegCount   int
	Totals     TripTotals
	FailedLegs []LegFailure
	ComputedAt time.Time
}
