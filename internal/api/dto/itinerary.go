package dto

type CoordinatesPayload struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

type CreateItineraryRequest struct {
	Mode         string              `json:"mode" validate:"omitempty,oneof=driving walking transit"`
	SearchOrigin *CoordinatesPayload `json:"search_origin" validate:"omitempty"`
}

type WaypointPayload struct {
	Name string  `json:"name" validate:"required"`
	Lat  float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon  float64 `json:"lon" validate:"gte=-180,lte=180"`
	// InTrip defaults to true when omitted: a waypoint sent without the
	// flag joins the trip.
	InTrip *bool `json:"in_trip"`
}

type ReplaceWaypointsRequest struct {
	Waypoints []WaypointPayload `json:"waypoints" validate:"required,dive"`
}

type SetWaypointInTripRequest struct {
	InTrip *bool `json:"in_trip" validate:"required"`
}

type SetModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=driving walking transit"`
}

type SetAnchorsRequest struct {
	StartAtCurrent bool `json:"start_at_current"`
	EndAtCurrent   bool `json:"end_at_current"`
}

type WaypointResponse struct {
	WaypointID string  `json:"waypoint_id"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	InTrip     bool    `json:"in_trip"`
	OrderNum   int     `json:"order_num,omitempty"`
}

type ItineraryResponse struct {
	ItineraryID    string              `json:"itinerary_id"`
	Mode           string              `json:"mode"`
	StartAtCurrent bool                `json:"start_at_current"`
	EndAtCurrent   bool                `json:"end_at_current"`
	SearchOrigin   *CoordinatesPayload `json:"search_origin,omitempty"`
	Waypoints      []WaypointResponse  `json:"waypoints"`
	Plan           *PlanResponse       `json:"plan,omitempty"`
}
