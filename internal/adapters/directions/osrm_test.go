package directions

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"quicktrip-api/internal/domain"
)

func coord(lat, lon float64) domain.Coordinates {
	return domain.Coordinates{Lat: lat, Lon: lon}
}

func TestOSRMProviderRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/route/v1/driving/29,40;29.1,40.1" {
			t.Errorf("path = %q, want lon,lat ordered driving route", r.URL.Path)
		}
		if r.URL.Query().Get("overview") != "false" {
			t.Errorf("overview = %q, want false", r.URL.Query().Get("overview"))
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"routes":[{"distance":1234.6,"duration":299.4}]}`)
	}))
	defer srv.Close()

	provider, err := NewOSRMProvider(srv.URL)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	result, err := provider.Route(context.Background(), coord(40, 29), coord(40.1, 29.1), domain.ModeDriving)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DistanceMeters != 1235 {
		t.Fatalf("distance = %d, want 1235", result.DistanceMeters)
	}
	if result.DurationSeconds != 299 {
		t.Fatalf("duration = %d, want 299", result.DurationSeconds)
	}
}

func TestOSRMProviderWalkingProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/route/v1/foot/29,40;29.1,40.1" {
			t.Errorf("path = %q, want foot profile", r.URL.Path)
		}
		fmt.Fprint(w, `{"routes":[{"distance":900,"duration":700}]}`)
	}))
	defer srv.Close()

	provider, err := NewOSRMProvider(srv.URL)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	result, err := provider.Route(context.Background(), coord(40, 29), coord(40.1, 29.1), domain.ModeWalking)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DistanceMeters != 900 {
		t.Fatalf("distance = %d, want 900", result.DistanceMeters)
	}
}

func TestOSRMProviderNoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"routes":[]}`)
	}))
	defer srv.Close()

	provider, err := NewOSRMProvider(srv.URL)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	_, err = provider.Route(context.Background(), coord(40, 29), coord(40.1, 29.1), domain.ModeDriving)
	if !errors.Is(err, domain.ErrNoRouteFound) {
		t.Fatalf("error = %v, want ErrNoRouteFound", err)
	}
}

func TestOSRMProviderUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "router overloaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	provider, err := NewOSRMProvider(srv.URL)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	_, err = provider.Route(context.Background(), coord(40, 29), coord(40.1, 29.1), domain.ModeDriving)

	var provErr *domain.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("error = %v, want *domain.ProviderError", err)
	}
	if provErr.Provider != "osrm" {
		t.Fatalf("provider = %q, want osrm", provErr.Provider)
	}
	if provErr.Status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", provErr.Status)
	}
}

func TestOSRMProviderRejectsTransit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an unsupported mode")
	}))
	defer srv.Close()

	provider, err := NewOSRMProvider(srv.URL)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	if _, err := provider.Route(context.Background(), coord(40, 29), coord(40.1, 29.1), domain.ModeTransit); err == nil {
		t.Fatal("expected an error for transit mode")
	}
}

func TestNewOSRMProviderEmptyBaseURL(t *testing.T) {
	if _, err := NewOSRMProvider(""); err == nil {
		t.Fatal("expected an error for an empty base URL")
	}
}
