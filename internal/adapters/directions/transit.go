package directions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"quicktrip-api/internal/domain"
	"quicktrip-api/internal/platform/obs"
	"quicktrip-api/internal/ports"
)

// TransitProvider implements RouteProvider for the transit mode against a
// directions service speaking the Google Directions JSON schema.
//
// The provider is safe for concurrent use.
type TransitProvider struct {
	session *http.Client
	baseURL string
	apiKey  string
}

func NewTransitProvider(baseURL, apiKey string) (*TransitProvider, error) {
	if baseURL == "" {
		return nil, errors.New("transit base URL is empty")
	}
	if apiKey == "" {
		return nil, errors.New("transit api key is empty")
	}

	return &TransitProvider{
		session: newHTTPClient(),
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}, nil
}

type transitResponse struct {
	Routes []struct {
		Legs []struct {
			Distance struct {
				Value int `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value int `json:"value"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

func (p *TransitProvider) Route(
	ctx context.Context,
	origin, destination domain.Coordinates,
	mode domain.TransportMode,
) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "transit.Route")(&err)

	if mode != domain.ModeTransit {
		return ports.RouteResult{}, fmt.Errorf("transit route: unsupported mode %q", mode)
	}

	params := url.Values{}
	params.Set("origin", origin.LatLon())
	params.Set("destination", destination.LatLon())
	params.Set("mode", "transit")
	params.Set("key", p.apiKey)

	req, err := newGetRequest(ctx, p.baseURL+"?"+params.Encode())
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("transit route: %w", err)
	}

	resp, err := p.session.Do(req)
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("transit route: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus("transit", resp); err != nil {
		return ports.RouteResult{}, err
	}

	var out transitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ports.RouteResult{}, fmt.Errorf("transit route: decode response: %w", err)
	}

	if len(out.Routes) == 0 || len(out.Routes[0].Legs) == 0 {
		return ports.RouteResult{}, fmt.Errorf(
			"transit route %s -> %s: %w",
			origin.LatLon(), destination.LatLon(), domain.ErrNoRouteFound,
		)
	}

	// A queried leg comes back as the first route's first journey leg.
	// Transit journeys may omit distance entirely; that decodes as zero
	// meters and still counts as a success.
	leg := out.Routes[0].Legs[0]
	return ports.RouteResult{
		DistanceMeters:  leg.Distance.Value,
		DurationSeconds: leg.Duration.Value,
	}, nil
}
