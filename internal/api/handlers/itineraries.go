package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"quicktrip-api/internal/api/dto"
	"quicktrip-api/internal/domain"
	"quicktrip-api/internal/ports"
)

// ItineraryHandler exposes the session endpoints for building a trip:
// creating an itinerary, replacing and toggling waypoints, and switching
// mode and anchor settings.
type ItineraryHandler struct {
	Repo     ports.ItineraryRepository
	validate *validator.Validate
}

func NewItineraryHandler(repo ports.ItineraryRepository) *ItineraryHandler {
	return &ItineraryHandler{
		Repo:     repo,
		validate: validator.New(),
	}
}

func (h *ItineraryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateItineraryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	mode := domain.TransportMode(req.Mode)
	if req.Mode == "" {
		mode = domain.ModeDriving
	}

	it, err := h.Repo.Create(r.Context(), mode, coordFromPayload(req.SearchOrigin))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, itineraryResponse(it))
}

func (h *ItineraryHandler) Get(w http.ResponseWriter, r *http.Request) {
	itineraryID := mux.Vars(r)["itinerary_id"]

	it, err := h.Repo.Get(r.Context(), itineraryID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, itineraryResponse(it))
}

func (h *ItineraryHandler) ReplaceWaypoints(w http.ResponseWriter, r *http.Request) {
	itineraryID := mux.Vars(r)["itinerary_id"]

	var req dto.ReplaceWaypointsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	waypoints := make([]domain.Waypoint, 0, len(req.Waypoints))
	for _, wp := range req.Waypoints {
		inTrip := true
		if wp.InTrip != nil {
			inTrip = *wp.InTrip
		}
		waypoints = append(waypoints, domain.Waypoint{
			Name:   wp.Name,
			Coord:  domain.Coordinates{Lat: wp.Lat, Lon: wp.Lon},
			InTrip: inTrip,
		})
	}

	it, err := h.Repo.ReplaceWaypoints(r.Context(), itineraryID, waypoints)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, itineraryResponse(it))
}

func (h *ItineraryHandler) SetWaypointInTrip(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itineraryID := vars["itinerary_id"]
	waypointID := vars["waypoint_id"]

	var req dto.SetWaypointInTripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	it, err := h.Repo.SetWaypointInTrip(r.Context(), itineraryID, waypointID, *req.InTrip)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, itineraryResponse(it))
}

func (h *ItineraryHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	itineraryID := mux.Vars(r)["itinerary_id"]

	var req dto.SetModeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	it, err := h.Repo.SetMode(r.Context(), itineraryID, domain.TransportMode(req.Mode))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, itineraryResponse(it))
}

func (h *ItineraryHandler) SetAnchors(w http.ResponseWriter, r *http.Request) {
	itineraryID := mux.Vars(r)["itinerary_id"]

	var req dto.SetAnchorsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	anchors := domain.AnchorFlags{
		StartAtCurrent: req.StartAtCurrent,
		EndAtCurrent:   req.EndAtCurrent,
	}

	it, err := h.Repo.SetAnchors(r.Context(), itineraryID, anchors)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, itineraryResponse(it))
}

func coordFromPayload(p *dto.CoordinatesPayload) *domain.Coordinates {
	if p == nil {
		return nil
	}
	return &domain.Coordinates{Lat: p.Lat, Lon: p.Lon}
}

func itineraryResponse(it *domain.Itinerary) dto.ItineraryResponse {
	res := dto.ItineraryResponse{
		ItineraryID:    it.ItineraryID,
		Mode:           string(it.Mode),
		StartAtCurrent: it.Anchors.StartAtCurrent,
		EndAtCurrent:   it.Anchors.EndAtCurrent,
		Waypoints:      make([]dto.WaypointResponse, 0, len(it.Waypoints)),
	}

	if it.SearchOrigin != nil {
		res.SearchOrigin = &dto.CoordinatesPayload{Lat: it.SearchOrigin.Lat, Lon: it.SearchOrigin.Lon}
	}

	for _, wp := range it.Waypoints {
		w := dto.WaypointResponse{
			WaypointID: wp.WaypointID,
			Name:       wp.Name,
			Lat:        wp.Coord.Lat,
			Lon:        wp.Coord.Lon,
			InTrip:     wp.InTrip,
		}
		// Excluded waypoints hold a stale visit number; never expose it.
		if wp.InTrip {
			w.OrderNum = wp.OrderNum
		}
		res.Waypoints = append(res.Waypoints, w)
	}

	if it.Plan != nil {
		plan := planResponse(it.Plan)
		res.Plan = &plan
	}

	return res
}
