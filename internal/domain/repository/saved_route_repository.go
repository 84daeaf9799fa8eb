package repository

import (
	"context"

	"github.com/accessnav-service/internal/domain"
	"github.com/google/uuid"
)

// SavedRouteRepository stores per-user saved routes.
type SavedRouteRepository interface {
	Save(ctx context.Context, route *domain.SavedRoute) (*domain.SavedRoute, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SavedRoute, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
