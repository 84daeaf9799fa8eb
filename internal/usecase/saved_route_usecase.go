package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/accessnav-service/internal/domain"
	"github.com/accessnav-service/internal/domain/repository"
	"github.com/accessnav-service/internal/pkg/errors"
	"github.com/accessnav-service/internal/usecase/dto"
)

// SavedRouteUseCase manages per-user route bookmarks.
type SavedRouteUseCase struct {
	routeRepo repository.SavedRouteRepository
	logger    *zap.Logger
}

func NewSavedRouteUseCase(routeRepo repository.SavedRouteRepository, logger *zap.Logger) *SavedRouteUseCase {
	return &SavedRouteUseCase{
		routeRepo: routeRepo,
		logger:    logger,
	}
}

func (uc *SavedRouteUseCase) Save(ctx context.Context, userID *uuid.UUID, req dto.SaveRouteRequest) (dto.SavedRouteResponse, error) {
	if userID == nil {
		return dto.SavedRouteResponse{}, errors.ErrUnauthorized
	}

	created, err := uc.routeRepo.Save(ctx, &domain.SavedRoute{
		UserID:      *userID,
		Start:       req.Start,
		Destination: req.Destination,
		Stops:       req.Stops,
	})
	if err != nil {
		uc.logger.Error("Failed to save route", zap.Error(err))
		return dto.SavedRouteResponse{}, err
	}

	return dto.ConvertSavedRoute(created), nil
}

func (uc *SavedRouteUseCase) List(ctx context.Context, userID *uuid.UUID) ([]dto.SavedRouteResponse, error) {
	if userID == nil {
		return nil, errors.ErrUnauthorized
	}

	routes, err := uc.routeRepo.ListByUser(ctx, *userID)
	if err != nil {
		uc.logger.Error("Failed to list saved routes", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SavedRouteResponse, 0, len(routes))
	for _, route := range routes {
		result = append(result, dto.ConvertSavedRoute(route))
	}

	return result, nil
}

func (uc *SavedRouteUseCase) Delete(ctx context.Context, userID *uuid.UUID, id uuid.UUID) error {
	if userID == nil {
		return errors.ErrUnauthorized
	}

	return uc.routeRepo.Delete(ctx, id, *userID)
}
