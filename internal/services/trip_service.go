package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"quicktrip-api/internal/domain"
	"quicktrip-api/internal/platform/obs"
	"quicktrip-api/internal/ports"
)

// TripService runs plan computations over stored itineraries.
//
// Each run snapshots the itinerary under a fresh run tag, routes the legs
// of that snapshot, and publishes the plan back unless a newer run or a
// state change overtook it. Stale plans are dropped from the published
// slot but still returned to the caller that asked for them.
type TripService struct {
	repo     ports.ItineraryRepository
	provider ports.RouteProvider
}

func NewTripService(repo ports.ItineraryRepository, provider ports.RouteProvider) *TripService {
	return &TripService{repo: repo, provider: provider}
}

// ComputePlan aggregates route totals for one itinerary.
//
// The live location is resolved once, at the moment the run begins. A
// location that cannot be resolved downgrades the anchor legs instead of
// failing the run.
func (s *TripService) ComputePlan(
	ctx context.Context,
	itineraryID string,
	location ports.LocationProvider,
) (_ *domain.TripPlan, err error) {
	defer obs.Time(ctx, "trips.ComputePlan")(&err)

	itin, run, err := s.repo.BeginRun(ctx, itineraryID)
	if err != nil {
		return nil, fmt.Errorf("compute plan: begin run: %w", err)
	}

	var live *domain.Coordinates
	if location != nil && (itin.Anchors.StartAtCurrent || itin.Anchors.EndAtCurrent) {
		coord, lerr := location.Current(ctx)
		if lerr == nil {
			live = &coord
		} else if !errors.Is(lerr, domain.ErrLocationUnavailable) {
			log.Printf("compute plan: live location lookup failed itinerary=%s err=%v", itineraryID, lerr)
		}
	}

	legs := BuildLegs(itin.Waypoints, itin.Mode, itin.Anchors, live, itin.SearchOrigin)
	totals, failures := Aggregate(ctx, legs, s.provider)

	plan := &domain.TripPlan{
		Run:        run,
		Mode:       itin.Mode,
		LegCount:   len(legs),
		Totals:     totals,
		FailedLegs: failures,
		ComputedAt: time.Now().UTC(),
	}

	published, err := s.repo.PublishPlan(ctx, itineraryID, run, plan)
	if err != nil {
		return nil, fmt.Errorf("compute plan: publish: %w", err)
	}
	if !published {
		log.Printf("compute plan: dropped stale run itinerary=%s run=%d", itineraryID, run)
	}

	return plan, nil
}
