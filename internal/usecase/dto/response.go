package dto

import (
	"github.com/accessnav-service/internal/domain"
)

// RouteResponse is the annotated-route result returned to the UI.
// The status is "success" even when the directions provider failed and
// fallback geometry was substituted: a degraded route is still a route.
type RouteResponse struct {
	RouteGeometry domain.GeoJSONFeature `json:"routeGeometry"`
	Alerts        []domain.RouteAlert   `json:"alerts"`
	Guidance      []string              `json:"guidance"`
	Profile       string                `json:"profile"`
	Meta          *domain.ProfileMeta   `json:"meta,omitempty"`
	Status        string                `json:"status"`
}

// SavedRouteResponse is the UI shape of a saved route.
type SavedRouteResponse struct {
	ID    string        `json:"id"`
	Start string        `json:"start"`
	Dest  string        `json:"dest"`
	Stops []domain.Stop `json:"stops"`
	Date  string        `json:"date"`
}

// ConvertSavedRoute maps a stored route to the UI shape.
func ConvertSavedRoute(route *domain.SavedRoute) SavedRouteResponse {
	stops := route.Stops
	if stops == nil {
		stops = []domain.Stop{}
	}
	return SavedRouteResponse{
		ID:    route.ID.String(),
		Start: route.Start,
		Dest:  route.Destination,
		Stops: stops,
		Date:  route.CreatedAt.Format("2006-01-02"),
	}
}
