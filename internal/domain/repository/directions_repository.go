package repository

import (
	"context"

	"github.com/accessnav-service/internal/domain"
)

// DirectionsRepository is the external directions provider: given an
// ordered sequence of waypoints and a routing mode it returns route
// geometry with duration and distance.
type DirectionsRepository interface {
	GetDirections(ctx context.Context, points []domain.Point, mode string) (*domain.DirectionsResult, error)
}
