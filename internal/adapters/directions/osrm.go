package directions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"quicktrip-api/internal/domain"
	"quicktrip-api/internal/platform/obs"
	"quicktrip-api/internal/ports"
)

// OSRMProvider implements RouteProvider for the driving and walking modes
// against an OSRM route service.
//
// The provider is safe for concurrent use; aggregation issues one call
// per leg in parallel.
type OSRMProvider struct {
	session *http.Client
	baseURL string
}

func NewOSRMProvider(baseURL string) (*OSRMProvider, error) {
	if baseURL == "" {
		return nil, errors.New("OSRM base URL is empty")
	}

	return &OSRMProvider{
		session: newHTTPClient(),
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

type osrmResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// osrmProfile maps a transport mode onto an OSRM routing profile.
func osrmProfile(mode domain.TransportMode) (string, error) {
	switch mode {
	case domain.ModeDriving:
		return "driving", nil
	case domain.ModeWalking:
		return "foot", nil
	}
	return "", fmt.Errorf("OSRM route: unsupported mode %q", mode)
}

func (p *OSRMProvider) Route(
	ctx context.Context,
	origin, destination domain.Coordinates,
	mode domain.TransportMode,
) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "osrm.Route")(&err)

	profile, err := osrmProfile(mode)
	if err != nil {
		return ports.RouteResult{}, err
	}

	endpoint := fmt.Sprintf(
		"%s/route/v1/%s/%s;%s?overview=false",
		p.baseURL, profile, origin.LonLat(), destination.LonLat(),
	)

	req, err := newGetRequest(ctx, endpoint)
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("OSRM route: %w", err)
	}

	resp, err := p.session.Do(req)
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("OSRM route: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus("osrm", resp); err != nil {
		return ports.RouteResult{}, err
	}

	var out osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ports.RouteResult{}, fmt.Errorf("OSRM route: decode response: %w", err)
	}

	if len(out.Routes) == 0 {
		return ports.RouteResult{}, fmt.Errorf(
			"OSRM route %s -> %s: %w",
			origin.LonLat(), destination.LonLat(), domain.ErrNoRouteFound,
		)
	}

	route := out.Routes[0]
	// OSRM reports float metrics; round to the nearest integer.
	return ports.RouteResult{
		DistanceMeters:  int(math.Round(route.Distance)),
		DurationSeconds: int(math.Round(route.Duration)),
	}, nil
}
