package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"quicktrip-api/internal/api/handlers"
	"quicktrip-api/internal/ports"
	"quicktrip-api/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware
// of concrete adapters).
func NewRouter(repo ports.ItineraryRepository, trips *services.TripService) http.Handler {
	router := mux.NewRouter()

	itineraryHandler := handlers.NewItineraryHandler(repo)
	planHandler := handlers.NewPlanHandler(trips)

	router.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	// Itinerary session endpoints
	router.HandleFunc("/itineraries", itineraryHandler.Create).Methods(http.MethodPost)
	router.HandleFunc("/itineraries/{itinerary_id}", itineraryHandler.Get).Methods(http.MethodGet)
	router.HandleFunc("/itineraries/{itinerary_id}/waypoints", itineraryHandler.ReplaceWaypoints).Methods(http.MethodPut)
	router.HandleFunc("/itineraries/{itinerary_id}/waypoints/{waypoint_id}", itineraryHandler.SetWaypointInTrip).Methods(http.MethodPatch)
	router.HandleFunc("/itineraries/{itinerary_id}/mode", itineraryHandler.SetMode).Methods(http.MethodPut)
	router.HandleFunc("/itineraries/{itinerary_id}/anchors", itineraryHandler.SetAnchors).Methods(http.MethodPut)

	// Plan aggregation endpoint
	router.HandleFunc("/itineraries/{itinerary_id}/plan", planHandler.Compute).Methods(http.MethodPost)

	return requestIDMiddleware(loggingMiddleware(router))
}
