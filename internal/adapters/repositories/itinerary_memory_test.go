package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"quicktrip-api/internal/domain"
)

func testWaypoints() []domain.Waypoint {
	return []domain.Waypoint{
		{Name: "Museum", Coord: domain.Coordinates{Lat: 40.0, Lon: 29.0}, InTrip: true},
		{Name: "Harbor", Coord: domain.Coordinates{Lat: 40.1, Lon: 29.1}, InTrip: false},
		{Name: "Castle", Coord: domain.Coordinates{Lat: 40.2, Lon: 29.2}, InTrip: true},
	}
}

func TestMemoryItineraryRepositoryCreateGet(t *testing.T) {
	repo := NewMemoryItineraryRepository()

	origin := domain.Coordinates{Lat: 40.0, Lon: 29.0}
	created, err := repo.Create(context.Background(), domain.ModeWalking, &origin)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ItineraryID == "" {
		t.Fatal("expected an itinerary id")
	}
	if created.Mode != domain.ModeWalking {
		t.Fatalf("mode = %q, want walking", created.Mode)
	}

	got, err := repo.Get(context.Background(), created.ItineraryID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ItineraryID != created.ItineraryID {
		t.Fatalf("id = %q, want %q", got.ItineraryID, created.ItineraryID)
	}
	if got.SearchOrigin == nil || *got.SearchOrigin != origin {
		t.Fatalf("search origin = %v, want %v", got.SearchOrigin, origin)
	}

	// The stored itinerary must not alias the caller's value.
	origin.Lat = 0
	got, err = repo.Get(context.Background(), created.ItineraryID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SearchOrigin.Lat != 40.0 {
		t.Fatalf("search origin lat = %v, want 40.0", got.SearchOrigin.Lat)
	}
}

func TestMemoryItineraryRepositoryGetUnknown(t *testing.T) {
	repo := NewMemoryItineraryRepository()

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrItineraryNotFound) {
		t.Fatalf("error = %v, want ErrItineraryNotFound", err)
	}
}

func TestMemoryItineraryRepositoryReplaceWaypoints(t *testing.T) {
	repo := NewMemoryItineraryRepository()
	created, err := repo.Create(context.Background(), domain.ModeDriving, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.ReplaceWaypoints(context.Background(), created.ItineraryID, testWaypoints())
	if err != nil {
		t.Fatalf("replace waypoints: %v", err)
	}

	if len(got.Waypoints) != 3 {
		t.Fatalf("expected 3 waypoints, got %d", len(got.Waypoints))
	}
	for i, wp := range got.Waypoints {
		if wp.WaypointID == "" {
			t.Fatalf("waypoint %d has no id", i)
		}
	}

	nums := []int{got.Waypoints[0].OrderNum, got.Waypoints[1].OrderNum, got.Waypoints[2].OrderNum}
	if nums[0] != 1 || nums[1] != 0 || nums[2] != 2 {
		t.Fatalf("order numbers = %v, want [1 0 2]", nums)
	}
}

func TestMemoryItineraryRepositorySetWaypointInTrip(t *testing.T) {
	repo := NewMemoryItineraryRepository()
	created, err := repo.Create(context.Background(), domain.ModeDriving, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	it, err := repo.ReplaceWaypoints(context.Background(), created.ItineraryID, testWaypoints())
	if err != nil {
		t.Fatalf("replace waypoints: %v", err)
	}

	got, err := repo.SetWaypointInTrip(context.Background(), it.ItineraryID, it.Waypoints[0].WaypointID, false)
	if err != nil {
		t.Fatalf("set waypoint in trip: %v", err)
	}

	// The dropped waypoint keeps its stale number; the remaining in-trip
	// waypoint is renumbered from 2 to 1.
	nums := []int{got.Waypoints[0].OrderNum, got.Waypoints[1].OrderNum, got.Waypoints[2].OrderNum}
	if nums[0] != 1 || nums[1] != 0 || nums[2] != 1 {
		t.Fatalf("order numbers = %v, want [1 0 1]", nums)
	}

	_, err = repo.SetWaypointInTrip(context.Background(), it.ItineraryID, "missing", true)
	if !errors.Is(err, domain.ErrWaypointNotFound) {
		t.Fatalf("error = %v, want ErrWaypointNotFound", err)
	}
}

func TestMemoryItineraryRepositorySetMode(t *testing.T) {
	repo := NewMemoryItineraryRepository()
	created, err := repo.Create(context.Background(), domain.ModeDriving, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.SetMode(context.Background(), created.ItineraryID, domain.ModeTransit)
	if err != nil {
		t.Fatalf("set mode: %v", err)
	}
	if got.Mode != domain.ModeTransit {
		t.Fatalf("mode = %q, want transit", got.Mode)
	}

	if _, err := repo.SetMode(context.Background(), created.ItineraryID, domain.TransportMode("flying")); err == nil {
		t.Fatal("expected an error for an unsupported mode")
	}
}

func TestMemoryItineraryRepositoryPublishPlan(t *testing.T) {
	repo := NewMemoryItineraryRepository()
	created, err := repo.Create(context.Background(), domain.ModeDriving, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, run, err := repo.BeginRun(context.Background(), created.ItineraryID)
	if err != nil {
		t.Fatalf("begin run: %v", err)
	}

	plan := &domain.TripPlan{Run: run, Mode: domain.ModeDriving, ComputedAt: time.Now().UTC()}
	published, err := repo.PublishPlan(context.Background(), created.ItineraryID, run, plan)
	if err != nil {
		t.Fatalf("publish plan: %v", err)
	}
	if !published {
		t.Fatal("expected the plan to publish")
	}

	got, err := repo.Get(context.Background(), created.ItineraryID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Plan == nil || got.Plan.Run != run {
		t.Fatalf("stored plan = %+v, want run %d", got.Plan, run)
	}
}

func TestMemoryItineraryRepositoryDropsOvertakenPlan(t *testing.T) {
	repo := NewMemoryItineraryRepository()
	created, err := repo.Create(context.Background(), domain.ModeDriving, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, run, err := repo.BeginRun(context.Background(), created.ItineraryID)
	if err != nil {
		t.Fatalf("begin run: %v", err)
	}

	// Any state change after the run starts invalidates its tag.
	if _, err := repo.SetAnchors(context.Background(), created.ItineraryID, domain.AnchorFlags{StartAtCurrent: true}); err != nil {
		t.Fatalf("set anchors: %v", err)
	}

	published, err := repo.PublishPlan(context.Background(), created.ItineraryID, run, &domain.TripPlan{Run: run})
	if err != nil {
		t.Fatalf("publish plan: %v", err)
	}
	if published {
		t.Fatal("expected the overtaken plan to be dropped")
	}

	got, err := repo.Get(context.Background(), created.ItineraryID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Plan != nil {
		t.Fatalf("stored plan = %+v, want none", got.Plan)
	}

	// A newer run with the current tag publishes normally.
	_, run2, err := repo.BeginRun(context.Background(), created.ItineraryID)
	if err != nil {
		t.Fatalf("begin run: %v", err)
	}
	published, err = repo.PublishPlan(context.Background(), created.ItineraryID, run2, &domain.TripPlan{Run: run2})
	if err != nil {
		t.Fatalf("publish plan: %v", err)
	}
	if !published {
		t.Fatal("expected the fresh plan to publish")
	}
}

func TestMemoryItineraryRepositoryClonesState(t *testing.T) {
	repo := NewMemoryItineraryRepository()
	created, err := repo.Create(context.Background(), domain.ModeDriving, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	it, err := repo.ReplaceWaypoints(context.Background(), created.ItineraryID, testWaypoints())
	if err != nil {
		t.Fatalf("replace waypoints: %v", err)
	}

	// Mutating the returned copy must not leak into the store.
	it.Waypoints[0].Name = "changed"
	it.Mode = domain.ModeTransit

	got, err := repo.Get(context.Background(), created.ItineraryID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Waypoints[0].Name != "Museum" {
		t.Fatalf("name = %q, want Museum", got.Waypoints[0].Name)
	}
	if got.Mode != domain.ModeDriving {
		t.Fatalf("mode = %q, want driving", got.Mode)
	}
}
