package dto

import "github.com/accessnav-service/internal/domain"

// RoutePoint is a lat/lng pair in a route request.
type RoutePoint struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

func (p RoutePoint) ToPoint() domain.Point {
	return domain.Point{Lat: p.Lat, Lng: p.Lng}
}

// RouteRequest asks for an annotated route between two points, optionally
// through intermediate stops, for a mobility profile.
type RouteRequest struct {
	Start   RoutePoint   `json:"start" validate:"required"`
	End     RoutePoint   `json:"end" validate:"required"`
	Stops   []RoutePoint `json:"stops" validate:"omitempty,dive"`
	Profile string       `json:"profile" validate:"omitempty,mobility_profile"`
}

// SubmitReportRequest is the hazard report submission payload.
type SubmitReportRequest struct {
	Type              string  `json:"type" validate:"required,hazard_type"`
	Message           string  `json:"message" validate:"required,max=1000"`
	Lat               float64 `json:"location_lat" validate:"min=-90,max=90"`
	Lng               float64 `json:"location_lng" validate:"min=-180,max=180"`
	PhotoURL          *string `json:"photo_url,omitempty" validate:"omitempty,url"`
	ExpectedDuration  *string `json:"expected_duration,omitempty" validate:"omitempty,max=50"`
	AffectsWheelchair bool    `json:"affects_wheelchair"`
}

// VoteRequest is a community validation vote on a report.
type VoteRequest struct {
	Vote string `json:"vote" validate:"required,vote_value"`
}

// CreateAlertRequest creates a legacy alert.
type CreateAlertRequest struct {
	Type     string  `json:"type" validate:"required,hazard_type"`
	Message  string  `json:"message" validate:"required,max=1000"`
	Lat      float64 `json:"location_lat" validate:"min=-90,max=90"`
	Lng      float64 `json:"location_lng" validate:"min=-180,max=180"`
	Severity string  `json:"severity" validate:"required,severity"`
}

// SaveRouteRequest bookmarks a route for the authenticated user.
type SaveRouteRequest struct {
	Start       string        `json:"start" validate:"required,max=255"`
	Destination string        `json:"dest" validate:"required,max=255"`
	Stops       []domain.Stop `json:"stops" validate:"omitempty,dive"`
}
