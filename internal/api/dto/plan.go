package dto

import "time"

type ComputePlanRequest struct {
	// CurrentLocation is the caller's live position, when the device has
	// one. Anchor legs that need it are skipped when it is absent.
	CurrentLocation *CoordinatesPayload `json:"current_location" validate:"omitempty"`
}

type FailedLegResponse struct {
	LegIndex    int                `json:"leg_index"`
	Origin      CoordinatesPayload `json:"origin"`
	Destination CoordinatesPayload `json:"destination"`
	Reason      string             `json:"reason"`
}

type PlanResponse struct {
	Run                  uint64              `json:"run"`
	Mode                 string              `json:"mode"`
	LegCount             int                 `json:"leg_count"`
	TotalDistanceMeters  int                 `json:"total_distance_meters"`
	TotalDurationSeconds int                 `json:"total_duration_seconds"`
	FailedLegs           []FailedLegResponse `json:"failed_legs,omitempty"`
	ComputedAt           time.Time           `json:"computed_at"`
}
