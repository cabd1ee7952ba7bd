package handlers

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"quicktrip-api/internal/api/dto"
	"quicktrip-api/internal/domain"
	"quicktrip-api/internal/ports"
	"quicktrip-api/internal/services"
)

// PlanHandler triggers plan aggregation runs over an itinerary.
type PlanHandler struct {
	Trips    *services.TripService
	validate *validator.Validate
}

func NewPlanHandler(trips *services.TripService) *PlanHandler {
	return &PlanHandler{
		Trips:    trips,
		validate: validator.New(),
	}
}

// Compute starts a fresh aggregation run and returns its plan. The body
// is optional; when present it may carry the caller's live location for
// anchor legs.
func (h *PlanHandler) Compute(w http.ResponseWriter, r *http.Request) {
	itineraryID := mux.Vars(r)["itinerary_id"]

	var req dto.ComputePlanRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		if err := h.validate.Struct(req); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}

	var location ports.LocationProvider
	if req.CurrentLocation != nil {
		location = staticLocation{
			coord: domain.Coordinates{Lat: req.CurrentLocation.Lat, Lon: req.CurrentLocation.Lon},
		}
	}

	plan, err := h.Trips.ComputePlan(r.Context(), itineraryID, location)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, planResponse(plan))
}

// staticLocation adapts a request-supplied coordinate to the
// LocationProvider port.
type staticLocation struct {
	coord domain.Coordinates
}

func (s staticLocation) Current(ctx context.Context) (domain.Coordinates, error) {
	return s.coord, nil
}

func planResponse(plan *domain.TripPlan) dto.PlanResponse {
	res := dto.PlanResponse{
		Run:                  plan.Run,
		Mode:                 string(plan.Mode),
		LegCount:             plan.LegCount,
		TotalDistanceMeters:  plan.Totals.DistanceMeters,
		TotalDurationSeconds: plan.Totals.DurationSeconds,
		ComputedAt:           plan.ComputedAt,
	}

	for _, f := range plan.FailedLegs {
		res.FailedLegs = append(res.FailedLegs, dto.FailedLegResponse{
			LegIndex:    f.LegIndex,
			Origin:      dto.CoordinatesPayload{Lat: f.Leg.Origin.Lat, Lon: f.Leg.Origin.Lon},
			Destination: dto.CoordinatesPayload{Lat: f.Leg.Destination.Lat, Lon: f.Leg.Destination.Lon},
			Reason:      domain.FailureReason(f.Err),
		})
	}

	return res
}
