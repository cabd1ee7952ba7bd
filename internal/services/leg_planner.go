package services

import "quicktrip-api/internal/domain"

// Build the ordered legs for one aggregation run.
//
// Consecutive in-trip waypoints are connected pairwise in visit order.
// When the start anchor is set, the first waypoint gains an incoming leg
// from the live location, falling back to the search origin when no live
// fix exists. When the end anchor is set and a live fix exists, the last
// waypoint gains an outgoing leg back to it. A live location that cannot
// be resolved silently skips the affected anchor leg; it never fails the
// run. With no in-trip waypoints there are no legs at all.
func BuildLegs(
	waypoints []domain.Waypoint,
	mode domain.TransportMode,
	anchors domain.AnchorFlags,
	live *domain.Coordinates,
	searchOrigin *domain.Coordinates,
) []domain.Leg {
	included := domain.Included(waypoints)
	if len(included) == 0 {
		return nil
	}

	legs := make([]domain.Leg, 0, len(included)+1)

	if start := startAnchor(anchors, live, searchOrigin); start != nil {
		legs = append(legs, domain.Leg{
			Origin:      *start,
			Destination: included[0].Coord,
			Mode:        mode,
		})
	}

	for i := 1; i < len(included); i++ {
		legs = append(legs, domain.Leg{
			Origin:      included[i-1].Coord,
			Destination: included[i].Coord,
			Mode:        mode,
		})
	}

	if anchors.EndAtCurrent && live != nil {
		legs = append(legs, domain.Leg{
			Origin:      included[len(included)-1].Coord,
			Destination: *live,
			Mode:        mode,
		})
	}

	return legs
}

// Resolve the origin for the start anchor leg, nil when none applies.
func startAnchor(anchors domain.AnchorFlags, live, searchOrigin *domain.Coordinates) *domain.Coordinates {
	if !anchors.StartAtCurrent {
		return nil
	}
	if live != nil {
		return live
	}
	return searchOrigin
}
