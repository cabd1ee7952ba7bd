package domain

import "testing"

func wp(id string, inTrip bool, num int) Waypoint {
	return Waypoint{WaypointID: id, Name: id, InTrip: inTrip, OrderNum: num}
}

func TestRenumberAssignsDenseNumbers(t *testing.T) {
	waypoints := []Waypoint{
		wp("a", true, 0),
		wp("b", false, 0),
		wp("c", true, 0),
		wp("d", true, 0),
	}

	Renumber(waypoints)

	want := []int{1, 0, 2, 3}
	for i, w := range waypoints {
		if w.OrderNum != want[i] {
			t.Errorf("waypoint %s OrderNum = %d, want %d", w.WaypointID, w.OrderNum, want[i])
		}
	}
}

func TestRenumberClosesGapAfterRemoval(t *testing.T) {
	waypoints := []Waypoint{
		wp("a", true, 1),
		wp("b", true, 2),
		wp("c", true, 3),
	}

	// drop the middle waypoint from the trip
	waypoints[1].InTrip = false
	Renumber(waypoints)

	// b keeps its stale number; it is never displayed while excluded
	want := []int{1, 2, 2}
	for i, w := range waypoints {
		if w.OrderNum != want[i] {
			t.Errorf("waypoint %s OrderNum = %d, want %d", w.WaypointID, w.OrderNum, want[i])
		}
	}
}

func TestRenumberIsIdempotent(t *testing.T) {
	waypoints := []Waypoint{
		wp("a", true, 0),
		wp("b", false, 0),
		wp("c", true, 0),
	}

	Renumber(waypoints)
	first := make([]int, len(waypoints))
	for i, w := range waypoints {
		first[i] = w.OrderNum
	}

	Renumber(waypoints)
	for i, w := range waypoints {
		if w.OrderNum != first[i] {
			t.Errorf("second pass changed waypoint %s: %d -> %d", w.WaypointID, first[i], w.OrderNum)
		}
	}
}

func TestRenumberLeavesExcludedUntouched(t *testing.T) {
	waypoints := []Waypoint{
		wp("a", false, 4),
		wp("b", false, 9),
	}

	Renumber(waypoints)

	if waypoints[0].OrderNum != 4 || waypoints[1].OrderNum != 9 {
		t.Errorf("excluded numbers = [%d, %d], want [4, 9]",
			waypoints[0].OrderNum, waypoints[1].OrderNum)
	}
}

func TestIncludedPreservesOrder(t *testing.T) {
	waypoints := []Waypoint{
		wp("a", false, 0),
		wp("b", true, 0),
		wp("c", true, 0),
		wp("d", false, 0),
	}

	got := Included(waypoints)

	if len(got) != 2 {
		t.Fatalf("len(Included) = %d, want 2", len(got))
	}
	if got[0].WaypointID != "b" || got[1].WaypointID != "c" {
		t.Errorf("Included order = [%s, %s], want [b, c]", got[0].WaypointID, got[1].WaypointID)
	}
}
