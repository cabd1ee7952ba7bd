package domain

import "fmt"

// Itinerary is the session aggregate for one trip being built: the ordered
// waypoint candidates, routing mode, anchor settings and the most recently
// published plan.
//
// RunSeq advances on every state change and on every plan trigger. A plan
// computed under an older sequence value is stale and must not be
// published over a newer one.
type Itinerary struct {
	ItineraryID  string
	Waypoints    []Waypoint
	Mode         TransportMode
	Anchors      AnchorFlags
	SearchOrigin *Coordinates
	Plan         *TripPlan
	RunSeq       uint64
}

func NewItinerary(id string, mode TransportMode, searchOrigin *Coordinates) *Itinerary {
	return &Itinerary{
		ItineraryID:  id,
		Mode:         mode,
		SearchOrigin: searchOrigin,
	}
}

// Replace the waypoint list wholesale and renumber the result.
func (it *Itinerary) ReplaceWaypoints(waypoints []Waypoint) {
	it.Waypoints = waypoints
	Renumber(it.Waypoints)
}

// Toggle a single waypoint in or out of the trip and renumber.
func (it *Itinerary) SetWaypointInTrip(waypointID string, inTrip bool) error {
	for i := range it.Waypoints {
		if it.Waypoints[i].WaypointID == waypointID {
			it.Waypoints[i].InTrip = inTrip
			Renumber(it.Waypoints)
			return nil
		}
	}
	return fmt.Errorf("set waypoint %s: %w", waypointID, ErrWaypointNotFound)
}

// Clone returns a deep copy safe to hand out past a repository lock.
func (it *Itinerary) Clone() *Itinerary {
	cp := *it
	cp.Waypoints = append([]Waypoint(nil), it.Waypoints...)
	if it.SearchOrigin != nil {
		origin := *it.SearchOrigin
		cp.SearchOrigin = &origin
	}
	if it.Plan != nil {
		plan := *it.Plan
		plan.FailedLegs = append([]LegFailure(nil), it.Plan.FailedLegs...)
		cp.Plan = &plan
	}
	return &cp
}
