package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"quicktrip-api/internal/domain"
)

// In-memory implementation of the ItineraryRepository port.
//
// Itineraries are session state scoped to the process lifetime, so they
// live in a map guarded by a mutex. Every mutation and every BeginRun
// advances the itinerary's run sequence; PublishPlan compares against it
// to drop plans that a newer run or a state change overtook.
type MemoryItineraryRepository struct {
	mu          sync.RWMutex
	itineraries map[string]*domain.Itinerary
}

func NewMemoryItineraryRepository() *MemoryItineraryRepository {
	return &MemoryItineraryRepository{
		itineraries: make(map[string]*domain.Itinerary),
	}
}

func (r *MemoryItineraryRepository) Create(
	ctx context.Context,
	mode domain.TransportMode,
	searchOrigin *domain.Coordinates,
) (*domain.Itinerary, error) {
	if searchOrigin != nil {
		origin := *searchOrigin
		searchOrigin = &origin
	}
	it := domain.NewItinerary(uuid.NewString(), mode, searchOrigin)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.itineraries[it.ItineraryID] = it

	return it.Clone(), nil
}

func (r *MemoryItineraryRepository) Get(ctx context.Context, itineraryID string) (*domain.Itinerary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.itineraries[itineraryID]
	if !ok {
		return nil, fmt.Errorf("get itinerary %s: %w", itineraryID, domain.ErrItineraryNotFound)
	}

	return it.Clone(), nil
}

// mutate runs fn on the stored itinerary under the write lock and bumps
// the run sequence so in-flight plans cannot publish over the change.
func (r *MemoryItineraryRepository) mutate(
	itineraryID string,
	fn func(*domain.Itinerary) error,
) (*domain.Itinerary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.itineraries[itineraryID]
	if !ok {
		return nil, fmt.Errorf("get itinerary %s: %w", itineraryID, domain.ErrItineraryNotFound)
	}

	if err := fn(it); err != nil {
		return nil, err
	}

	it.RunSeq++
	return it.Clone(), nil
}

func (r *MemoryItineraryRepository) ReplaceWaypoints(
	ctx context.Context,
	itineraryID string,
	waypoints []domain.Waypoint,
) (*domain.Itinerary, error) {
	return r.mutate(itineraryID, func(it *domain.Itinerary) error {
		ws := make([]domain.Waypoint, len(waypoints))
		copy(ws, waypoints)
		for i := range ws {
			if ws[i].WaypointID == "" {
				ws[i].WaypointID = uuid.NewString()
			}
		}
		it.ReplaceWaypoints(ws)
		return nil
	})
}

func (r *MemoryItineraryRepository) SetWaypointInTrip(
	ctx context.Context,
	itineraryID, waypointID string,
	inTrip bool,
) (*domain.Itinerary, error) {
	return r.mutate(itineraryID, func(it *domain.Itinerary) error {
		return it.SetWaypointInTrip(waypointID, inTrip)
	})
}

func (r *MemoryItineraryRepository) SetMode(
	ctx context.Context,
	itineraryID string,
	mode domain.TransportMode,
) (*domain.Itinerary, error) {
	return r.mutate(itineraryID, func(it *domain.Itinerary) error {
		if !mode.Valid() {
			return fmt.Errorf("set mode: unsupported mode %q", mode)
		}
		it.Mode = mode
		return nil
	})
}

func (r *MemoryItineraryRepository) SetAnchors(
	ctx context.Context,
	itineraryID string,
	anchors domain.AnchorFlags,
) (*domain.Itinerary, error) {
	return r.mutate(itineraryID, func(it *domain.Itinerary) error {
		it.Anchors = anchors
		return nil
	})
}

func (r *MemoryItineraryRepository) BeginRun(
	ctx context.Context,
	itineraryID string,
) (*domain.Itinerary, uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.itineraries[itineraryID]
	if !ok {
		return nil, 0, fmt.Errorf("get itinerary %s: %w", itineraryID, domain.ErrItineraryNotFound)
	}

	it.RunSeq++
	return it.Clone(), it.RunSeq, nil
}

func (r *MemoryItineraryRepository) PublishPlan(
	ctx context.Context,
	itineraryID string,
	run uint64,
	plan *domain.TripPlan,
) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.itineraries[itineraryID]
	if !ok {
		return false, fmt.Errorf("get itinerary %s: %w", itineraryID, domain.ErrItineraryNotFound)
	}

	if run != it.RunSeq {
		// a newer run or a state change overtook this plan
		return false, nil
	}

	it.Plan = plan
	return true, nil
}
