package directions

import (
	"context"
	"fmt"

	"quicktrip-api/internal/domain"
	"quicktrip-api/internal/ports"
)

// ModeDispatcher sends each query to the backend serving its mode: map
// directions for driving and walking, the transit service for transit.
type ModeDispatcher struct {
	mapRoutes ports.RouteProvider
	transit   ports.RouteProvider
}

func NewModeDispatcher(mapRoutes, transit ports.RouteProvider) *ModeDispatcher {
	return &ModeDispatcher{mapRoutes: mapRoutes, transit: transit}
}

func (d *ModeDispatcher) Route(
	ctx context.Context,
	origin, destination domain.Coordinates,
	mode domain.TransportMode,
) (ports.RouteResult, error) {
	switch mode {
	case domain.ModeDriving, domain.ModeWalking:
		return d.mapRoutes.Route(ctx, origin, destination, mode)
	case domain.ModeTransit:
		return d.transit.Route(ctx, origin, destination, mode)
	}
	return ports.RouteResult{}, fmt.Errorf("route dispatch: unsupported mode %q", mode)
}
