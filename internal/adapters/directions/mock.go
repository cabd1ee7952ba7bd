package directions

import (
	"context"
	"fmt"

	"quicktrip-api/internal/domain"
	"quicktrip-api/internal/ports"
)

type MockLeg struct {
	From, To domain.Coordinates
	Mode     domain.TransportMode
	Meters   int
	Seconds  int
}

// MockProvider serves canned per-leg results for tests and local runs.
type MockProvider struct {
	m    map[string]ports.RouteResult
	errs map[string]error
}

func mockKey(from, to domain.Coordinates, mode domain.TransportMode) string {
	return from.LatLon() + "|" + to.LatLon() + "|" + string(mode)
}

func NewMockProvider(legs []MockLeg) *MockProvider {
	m := make(map[string]ports.RouteResult, len(legs))
	for _, l := range legs {
		m[mockKey(l.From, l.To, l.Mode)] = ports.RouteResult{
			DistanceMeters:  l.Meters,
			DurationSeconds: l.Seconds,
		}
	}
	return &MockProvider{m: m, errs: make(map[string]error)}
}

// FailWith makes one leg answer with err instead of a result.
func (p *MockProvider) FailWith(from, to domain.Coordinates, mode domain.TransportMode, err error) {
	p.errs[mockKey(from, to, mode)] = err
}

func (p *MockProvider) Route(
	ctx context.Context,
	origin, destination domain.Coordinates,
	mode domain.TransportMode,
) (ports.RouteResult, error) {
	key := mockKey(origin, destination, mode)
	if err, ok := p.errs[key]; ok {
		return ports.RouteResult{}, err
	}

	r, ok := p.m[key]
	if !ok {
		return ports.RouteResult{}, fmt.Errorf("missing leg %q", key)
	}

	return r, nil
}
