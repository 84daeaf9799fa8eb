package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/accessnav-service/internal/domain"
	"github.com/accessnav-service/internal/pkg/errors"
	"github.com/accessnav-service/internal/usecase"
	"github.com/accessnav-service/internal/usecase/dto"
)

func TestSavedRouteUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("save returns the UI shape", func(t *testing.T) {
		routeRepo := &MockSavedRouteRepository{}
		uc := usecase.NewSavedRouteUseCase(routeRepo, zap.NewNop())

		created := &domain.SavedRoute{
			ID:          uuid.New(),
			UserID:      userID,
			Start:       "Home",
			Destination: "Clinic",
			Stops:       []domain.Stop{{Name: "Pharmacy", Lat: 40.71, Lng: -74.0}},
			CreatedAt:   time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		}
		routeRepo.On("Save", ctx, mock.MatchedBy(func(r *domain.SavedRoute) bool {
			return r.UserID == userID && r.Start == "Home" && r.Destination == "Clinic"
		})).Return(created, nil)

		resp, err := uc.Save(ctx, &userID, dto.SaveRouteRequest{
			Start:       "Home",
			Destination: "Clinic",
			Stops:       created.Stops,
		})

		require.NoError(t, err)
		assert.Equal(t, created.ID.String(), resp.ID)
		assert.Equal(t, "Clinic", resp.Dest)
		assert.Equal(t, "2026-03-14", resp.Date)
	})

	t.Run("nil stops become empty slice", func(t *testing.T) {
		routeRepo := &MockSavedRouteRepository{}
		uc := usecase.NewSavedRouteUseCase(routeRepo, zap.NewNop())

		routeRepo.On("ListByUser", ctx, userID).Return([]*domain.SavedRoute{
			{ID: uuid.New(), UserID: userID, Start: "A", Destination: "B"},
		}, nil)

		routes, err := uc.List(ctx, &userID)

		require.NoError(t, err)
		require.Len(t, routes, 1)
		assert.NotNil(t, routes[0].Stops)
		assert.Empty(t, routes[0].Stops)
	})

	t.Run("anonymous calls rejected", func(t *testing.T) {
		uc := usecase.NewSavedRouteUseCase(&MockSavedRouteRepository{}, zap.NewNop())

		_, err := uc.Save(ctx, nil, dto.SaveRouteRequest{Start: "A", Destination: "B"})
		assert.ErrorIs(t, err, errors.ErrUnauthorized)

		_, err = uc.List(ctx, nil)
		assert.ErrorIs(t, err, errors.ErrUnauthorized)

		err = uc.Delete(ctx, nil, uuid.New())
		assert.ErrorIs(t, err, errors.ErrUnauthorized)
	})

	t.Run("delete of another user's route not found", func(t *testing.T) {
		routeRepo := &MockSavedRouteRepository{}
		uc := usecase.NewSavedRouteUseCase(routeRepo, zap.NewNop())

		routeID := uuid.New()
		routeRepo.On("Delete", ctx, routeID, userID).Return(errors.ErrRouteNotFound)

		err := uc.Delete(ctx, &userID, routeID)

		assert.ErrorIs(t, err, errors.ErrRouteNotFound)
	})
}
