package services

import (
	"context"
	"sync"

	"quicktrip-api/internal/domain"
	"quicktrip-api/internal/ports"
)

type legOutcome struct {
	result ports.RouteResult
	err    error
}

// Aggregate routes every leg concurrently and folds the successes into
// trip totals.
//
// One query is dispatched per leg and each outcome lands in its own slot;
// the fold runs only after every query has completed. A failed leg never
// aborts the others and is never retried here; it is reported in the
// returned failures with its leg position. Zero legs yield zero totals:
// an empty trip is a valid trip, not an error.
func Aggregate(
	ctx context.Context,
	legs []domain.Leg,
	provider ports.RouteProvider,
) (domain.TripTotals, []domain.LegFailure) {
	var totals domain.TripTotals
	if len(legs) == 0 {
		return totals, nil
	}

	outcomes := make([]legOutcome, len(legs))
	var wg sync.WaitGroup

	for i, leg := range legs {
		wg.Add(1)
		go func(i int, leg domain.Leg) {
			defer wg.Done()
			result, err := provider.Route(ctx, leg.Origin, leg.Destination, leg.Mode)
			outcomes[i] = legOutcome{result: result, err: err}
		}(i, leg)
	}

	wg.Wait()

	var failures []domain.LegFailure
	for i, out := range outcomes {
		if out.err != nil {
			failures = append(failures, domain.LegFailure{LegIndex: i, Leg: legs[i], Err: out.err})
			continue
		}
		totals.Add(out.result.DistanceMeters, out.result.DurationSeconds)
	}

	return totals, failures
}
