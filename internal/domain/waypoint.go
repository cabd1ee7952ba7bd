package domain

// Represents a single point of interest collected into an itinerary.
// A Waypoint keeps its position in the user's ordering whether or not it
// is currently part of the trip; only in-trip waypoints carry a visit
// number.
type Waypoint struct {
	WaypointID string
	Name       string
	Coord      Coordinates
	InTrip     bool
	// OrderNum is the dense 1..K visit number over in-trip waypoints.
	// Excluded waypoints keep their last assigned number; it is stale
	// and never displayed.
	OrderNum int
}

// Reassign visit numbers in place: in-trip waypoints get 1..K following
// slice order. Excluded waypoints are left untouched. Relative order
// never changes.
func Renumber(waypoints []Waypoint) {
	n := 0
	for i := range waypoints {
		if waypoints[i].InTrip {
			n++
			waypoints[i].OrderNum = n
		}
	}
}

// Included returns the in-trip waypoints in slice order.
func Included(waypoints []Waypoint) []Waypoint {
	out := make([]Waypoint, 0, len(waypoints))
	for _, wp := range waypoints {
		if wp.InTrip {
			out = append(out, wp)
		}
	}
	return out
}
