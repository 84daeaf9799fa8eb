package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/accessnav-service/internal/config"
	"github.com/accessnav-service/internal/domain"
	"github.com/accessnav-service/internal/pkg/errors"
	"github.com/accessnav-service/internal/usecase"
	"github.com/accessnav-service/internal/usecase/dto"
)

func newRouteUseCase(
	directions *MockDirectionsRepository,
	reportRepo *MockReportRepository,
	alertRepo *MockAlertRepository,
) *usecase.RouteUseCase {
	return usecase.NewRouteUseCase(
		directions,
		reportRepo,
		alertRepo,
		usecase.NewSimulatedHazardSource(1),
		zap.NewNop(),
		&config.HazardsConfig{},
	)
}

func routeRequest(profile string) dto.RouteRequest {
	return dto.RouteRequest{
		Start:   dto.RoutePoint{Lat: 40.7128, Lng: -74.0060},
		End:     dto.RoutePoint{Lat: 40.7228, Lng: -74.0160},
		Profile: profile,
	}
}

func directionsResult(n int) *domain.DirectionsResult {
	coords := make([][]float64, n)
	for i := 0; i < n; i++ {
		coords[i] = []float64{-74.0060 + float64(i)*0.001, 40.7128 + float64(i)*0.001}
	}
	return &domain.DirectionsResult{
		Geometry:        domain.GeoJSONGeometry{Type: "LineString", Coordinates: coords},
		DurationSeconds: 600,
		DistanceMeters:  800,
	}
}

func TestRouteUseCase_PlanRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("wheelchair with no real hazards gets synthetic supplements", func(t *testing.T) {
		directions := &MockDirectionsRepository{}
		reportRepo := &MockReportRepository{}
		alertRepo := &MockAlertRepository{}
		uc := newRouteUseCase(directions, reportRepo, alertRepo)

		directions.On("GetDirections", ctx, mock.Anything, domain.ModeWalking).
			Return(directionsResult(10), nil)
		alertRepo.On("ListRecent", ctx, 50).Return([]*domain.LegacyAlert{}, nil)
		reportRepo.On("ListRecent", ctx, domain.ReportStatusActive, domain.MinRouteTrust, 100).
			Return([]*domain.HazardReport{}, nil)

		resp, err := uc.PlanRoute(ctx, routeRequest("Wheelchair"))

		require.NoError(t, err)
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, "Wheelchair", resp.Profile)

		require.Len(t, resp.Alerts, 2)
		assert.Equal(t, domain.HazardConstruction, resp.Alerts[0].Type)
		assert.Equal(t, domain.HazardObstacle, resp.Alerts[1].Type)
		assert.False(t, resp.Alerts[0].IsReal)

		assert.Contains(t, resp.Guidance, "Turn left to avoid construction zone.")
		assert.Contains(t, resp.Guidance, "Use the ramp on the right.")

		directions.AssertExpectations(t)
	})

	t.Run("nearby real hazards suppress wheelchair supplements", func(t *testing.T) {
		directions := &MockDirectionsRepository{}
		reportRepo := &MockReportRepository{}
		alertRepo := &MockAlertRepository{}
		uc := newRouteUseCase(directions, reportRepo, alertRepo)

		directions.On("GetDirections", ctx, mock.Anything, domain.ModeWalking).
			Return(directionsResult(10), nil)
		alertRepo.On("ListRecent", ctx, 50).Return([]*domain.LegacyAlert{}, nil)

		photo := "https://cdn.example.com/ramp.jpg"
		reportRepo.On("ListRecent", ctx, domain.ReportStatusActive, domain.MinRouteTrust, 100).
			Return([]*domain.HazardReport{
				{
					Type:       domain.HazardObstacle,
					Message:    "Scaffolding blocks sidewalk",
					Lat:        40.7150,
					Lng:        -74.0080,
					TrustScore: 0.8,
					Status:     domain.ReportStatusActive,
					PhotoURL:   &photo,
				},
			}, nil)

		resp, err := uc.PlanRoute(ctx, routeRequest("Wheelchair"))

		require.NoError(t, err)
		require.Len(t, resp.Alerts, 1)
		assert.True(t, resp.Alerts[0].IsReal)
		assert.Equal(t, "Scaffolding blocks sidewalk (Trust: 80%)", resp.Alerts[0].Message)
		assert.Equal(t, &photo, resp.Alerts[0].PhotoURL)
		assert.Empty(t, resp.Guidance)
	})

	t.Run("distant hazards are filtered out", func(t *testing.T) {
		directions := &MockDirectionsRepository{}
		reportRepo := &MockReportRepository{}
		alertRepo := &MockAlertRepository{}
		uc := newRouteUseCase(directions, reportRepo, alertRepo)

		directions.On("GetDirections", ctx, mock.Anything, domain.ModeDriving).
			Return(directionsResult(10), nil)
		alertRepo.On("ListRecent", ctx, 50).Return([]*domain.LegacyAlert{
			{ID: 1, Type: domain.HazardCrowd, Message: "Far away crowd", Lat: 41.5, Lng: -74.0, Severity: domain.SeverityLow},
			{ID: 2, Type: domain.HazardConstruction, Message: "Road work on Main St", Lat: 40.7130, Lng: -74.0062, Severity: domain.SeverityMedium},
		}, nil)
		reportRepo.On("ListRecent", ctx, domain.ReportStatusActive, domain.MinRouteTrust, 100).
			Return([]*domain.HazardReport{}, nil)

		resp, err := uc.PlanRoute(ctx, routeRequest(""))

		require.NoError(t, err)
		require.Len(t, resp.Alerts, 1)
		assert.Equal(t, "alert-2", resp.Alerts[0].ID)
		assert.Equal(t, "Road work on Main St (Trust: 100%)", resp.Alerts[0].Message)
	})

	t.Run("directions failure degrades to fallback geometry", func(t *testing.T) {
		directions := &MockDirectionsRepository{}
		reportRepo := &MockReportRepository{}
		alertRepo := &MockAlertRepository{}
		uc := newRouteUseCase(directions, reportRepo, alertRepo)

		directions.On("GetDirections", ctx, mock.Anything, domain.ModeWalking).
			Return(nil, errors.ErrRoutingUnavailable)
		alertRepo.On("ListRecent", ctx, 50).Return([]*domain.LegacyAlert{}, nil)
		reportRepo.On("ListRecent", ctx, domain.ReportStatusActive, domain.MinRouteTrust, 100).
			Return([]*domain.HazardReport{}, nil)

		resp, err := uc.PlanRoute(ctx, routeRequest("Fatigue"))

		require.NoError(t, err)
		assert.Equal(t, "success", resp.Status)
		assert.GreaterOrEqual(t, len(resp.RouteGeometry.Geometry.Coordinates), 2)
		assert.Equal(t, "LineString", resp.RouteGeometry.Geometry.Type)
		// Fallback starts at the origin and ends at the destination.
		first := resp.RouteGeometry.Geometry.Coordinates[0]
		last := resp.RouteGeometry.Geometry.Coordinates[len(resp.RouteGeometry.Geometry.Coordinates)-1]
		assert.Equal(t, []float64{-74.0060, 40.7128}, first)
		assert.Equal(t, []float64{-74.0160, 40.7228}, last)
	})

	t.Run("storage failure degrades to empty overlay", func(t *testing.T) {
		directions := &MockDirectionsRepository{}
		reportRepo := &MockReportRepository{}
		alertRepo := &MockAlertRepository{}
		uc := newRouteUseCase(directions, reportRepo, alertRepo)

		directions.On("GetDirections", ctx, mock.Anything, domain.ModeDriving).
			Return(directionsResult(5), nil)
		alertRepo.On("ListRecent", ctx, 50).Return(nil, errors.ErrStorageUnavailable)
		reportRepo.On("ListRecent", ctx, domain.ReportStatusActive, domain.MinRouteTrust, 100).
			Return(nil, errors.ErrStorageUnavailable)

		resp, err := uc.PlanRoute(ctx, routeRequest(""))

		require.NoError(t, err)
		assert.Equal(t, "success", resp.Status)
		assert.Empty(t, resp.Alerts)
	})

	t.Run("walking mode for mobility profiles, driving otherwise", func(t *testing.T) {
		for profile, mode := range map[string]string{
			"Wheelchair": domain.ModeWalking,
			"Walker":     domain.ModeWalking,
			"Temporary":  domain.ModeWalking,
			"Fatigue":    domain.ModeWalking,
			"Elderly":    domain.ModeDriving,
			"Cognitive":  domain.ModeDriving,
			"Caregiver":  domain.ModeDriving,
			"":           domain.ModeDriving,
		} {
			directions := &MockDirectionsRepository{}
			reportRepo := &MockReportRepository{}
			alertRepo := &MockAlertRepository{}
			uc := newRouteUseCase(directions, reportRepo, alertRepo)

			directions.On("GetDirections", ctx, mock.Anything, mode).
				Return(directionsResult(5), nil)
			alertRepo.On("ListRecent", ctx, 50).Return([]*domain.LegacyAlert{}, nil)
			reportRepo.On("ListRecent", ctx, domain.ReportStatusActive, domain.MinRouteTrust, 100).
				Return([]*domain.HazardReport{}, nil)

			_, err := uc.PlanRoute(ctx, routeRequest(profile))

			require.NoError(t, err, "profile %q", profile)
			directions.AssertExpectations(t)
		}
	})

	t.Run("stops are forwarded in request order", func(t *testing.T) {
		directions := &MockDirectionsRepository{}
		reportRepo := &MockReportRepository{}
		alertRepo := &MockAlertRepository{}
		uc := newRouteUseCase(directions, reportRepo, alertRepo)

		req := routeRequest("Walker")
		req.Stops = []dto.RoutePoint{
			{Lat: 40.7150, Lng: -74.0100},
			{Lat: 40.7180, Lng: -74.0130},
		}

		expected := []domain.Point{
			{Lat: 40.7128, Lng: -74.0060},
			{Lat: 40.7150, Lng: -74.0100},
			{Lat: 40.7180, Lng: -74.0130},
			{Lat: 40.7228, Lng: -74.0160},
		}

		directions.On("GetDirections", ctx, expected, domain.ModeWalking).
			Return(directionsResult(5), nil)
		alertRepo.On("ListRecent", ctx, 50).Return([]*domain.LegacyAlert{}, nil)
		reportRepo.On("ListRecent", ctx, domain.ReportStatusActive, domain.MinRouteTrust, 100).
			Return([]*domain.HazardReport{}, nil)

		_, err := uc.PlanRoute(ctx, req)

		require.NoError(t, err)
		directions.AssertExpectations(t)
	})

	t.Run("invalid coordinates rejected", func(t *testing.T) {
		uc := newRouteUseCase(&MockDirectionsRepository{}, &MockReportRepository{}, &MockAlertRepository{})

		req := routeRequest("")
		req.Start.Lat = 95.0

		_, err := uc.PlanRoute(ctx, req)

		assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)
	})

	t.Run("elderly response carries presentation metadata", func(t *testing.T) {
		directions := &MockDirectionsRepository{}
		reportRepo := &MockReportRepository{}
		alertRepo := &MockAlertRepository{}
		uc := newRouteUseCase(directions, reportRepo, alertRepo)

		directions.On("GetDirections", ctx, mock.Anything, domain.ModeDriving).
			Return(directionsResult(10), nil)
		alertRepo.On("ListRecent", ctx, 50).Return([]*domain.LegacyAlert{}, nil)
		reportRepo.On("ListRecent", ctx, domain.ReportStatusActive, domain.MinRouteTrust, 100).
			Return([]*domain.HazardReport{}, nil)

		resp, err := uc.PlanRoute(ctx, routeRequest("Elderly"))

		require.NoError(t, err)
		require.NotNil(t, resp.Meta)
		assert.True(t, resp.Meta.LargeText)
		assert.True(t, resp.Meta.SlowerAudio)
	})
}
