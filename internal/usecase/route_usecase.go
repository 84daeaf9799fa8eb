package usecase

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/accessnav-service/internal/config"
	"github.com/accessnav-service/internal/domain"
	"github.com/accessnav-service/internal/domain/repository"
	"github.com/accessnav-service/internal/pkg/errors"
	"github.com/accessnav-service/internal/pkg/utils"
	"github.com/accessnav-service/internal/usecase/dto"
)

// RouteUseCase plans annotated routes: directions geometry merged with
// nearby community hazards and profile-specific synthetic supplements.
type RouteUseCase struct {
	directions      repository.DirectionsRepository
	reportRepo      repository.ReportRepository
	alertRepo       repository.AlertRepository
	synthetic       SyntheticHazardSource
	logger          *zap.Logger
	proximityDegree float64
	reportLimit     int
	alertLimit      int
}

func NewRouteUseCase(
	directions repository.DirectionsRepository,
	reportRepo repository.ReportRepository,
	alertRepo repository.AlertRepository,
	synthetic SyntheticHazardSource,
	logger *zap.Logger,
	cfg *config.HazardsConfig,
) *RouteUseCase {
	proximityDegree := cfg.ProximityDegree
	if proximityDegree <= 0 {
		proximityDegree = domain.DefaultProximityDegree
	}
	reportLimit := cfg.ReportLimit
	if reportLimit <= 0 {
		reportLimit = 100
	}
	alertLimit := cfg.AlertLimit
	if alertLimit <= 0 {
		alertLimit = 50
	}

	return &RouteUseCase{
		directions:      directions,
		reportRepo:      reportRepo,
		alertRepo:       alertRepo,
		synthetic:       synthetic,
		logger:          logger,
		proximityDegree: proximityDegree,
		reportLimit:     reportLimit,
		alertLimit:      alertLimit,
	}
}

// PlanRoute is the top-level route annotation workflow. It degrades
// rather than fails: a broken directions provider yields fallback
// geometry, a broken hazard store yields a route without overlays.
func (uc *RouteUseCase) PlanRoute(ctx context.Context, req dto.RouteRequest) (*dto.RouteResponse, error) {
	if !utils.ValidateCoordinates(req.Start.Lat, req.Start.Lng) ||
		!utils.ValidateCoordinates(req.End.Lat, req.End.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}
	for _, stop := range req.Stops {
		if !utils.ValidateCoordinates(stop.Lat, stop.Lng) {
			return nil, errors.ErrInvalidCoordinates
		}
	}

	profile, _ := domain.ParseMobilityProfile(req.Profile)
	start := req.Start.ToPoint()
	end := req.End.ToPoint()

	feature := uc.fetchRouteGeometry(ctx, req, profile, start, end)

	realAlerts := uc.collectNearbyHazards(ctx, start)

	var guidance []string
	var meta *domain.ProfileMeta
	alerts := realAlerts

	if SupplementNeeded(profile, len(realAlerts)) {
		generated, generatedGuidance, generatedMeta := uc.synthetic.GenerateForProfile(
			profile, feature.Geometry.Coordinates, start)
		alerts = append(alerts, generated...)
		guidance = append(guidance, generatedGuidance...)
		meta = generatedMeta
	}

	if guidance == nil {
		guidance = []string{}
	}

	return &dto.RouteResponse{
		RouteGeometry: feature,
		Alerts:        alerts,
		Guidance:      guidance,
		Profile:       string(profile),
		Meta:          meta,
		Status:        "success",
	}, nil
}

// fetchRouteGeometry asks the directions provider for route geometry,
// substituting a straight-line fallback on any failure.
func (uc *RouteUseCase) fetchRouteGeometry(
	ctx context.Context,
	req dto.RouteRequest,
	profile domain.MobilityProfile,
	start, end domain.Point,
) domain.GeoJSONFeature {
	points := make([]domain.Point, 0, len(req.Stops)+2)
	points = append(points, start)
	for _, stop := range req.Stops {
		points = append(points, stop.ToPoint())
	}
	points = append(points, end)

	result, err := uc.directions.GetDirections(ctx, points, profile.DirectionsMode())
	if err != nil {
		uc.logger.Warn("Directions provider unavailable, using fallback geometry",
			zap.String("profile", string(profile)),
			zap.Error(err))
		return fallbackGeometry(start, end)
	}

	return domain.NewLineStringFeature(result.Geometry.Coordinates, map[string]interface{}{
		"duration": result.DurationSeconds,
		"distance": result.DistanceMeters,
	})
}

// collectNearbyHazards gathers legacy alerts and trusted active reports,
// narrows them to the route start's vicinity and formats alert entries.
// Storage failures degrade to an empty overlay: a route without hazard
// markers is still useful.
func (uc *RouteUseCase) collectNearbyHazards(ctx context.Context, start domain.Point) []domain.RouteAlert {
	legacy, err := uc.alertRepo.ListRecent(ctx, uc.alertLimit)
	if err != nil {
		uc.logger.Warn("Failed to load legacy alerts for route", zap.Error(err))
		legacy = nil
	}

	reports, err := uc.reportRepo.ListRecent(ctx, domain.ReportStatusActive, domain.MinRouteTrust, uc.reportLimit)
	if err != nil {
		uc.logger.Warn("Failed to load hazard reports for route", zap.Error(err))
		reports = nil
	}

	nearbyLegacy := domain.FilterByProximity(start, legacy, uc.proximityDegree)
	nearbyReports := domain.FilterByProximity(start, reports, uc.proximityDegree)

	alerts := make([]domain.RouteAlert, 0, len(nearbyLegacy)+len(nearbyReports))
	for _, a := range nearbyLegacy {
		trust := 1.0
		alerts = append(alerts, domain.RouteAlert{
			ID:         fmt.Sprintf("alert-%d", a.ID),
			Type:       a.Type,
			Message:    withTrustSuffix(a.Message, trust),
			Lat:        a.Lat,
			Lng:        a.Lng,
			TrustScore: &trust,
			IsReal:     true,
		})
	}
	for _, r := range nearbyReports {
		trust := r.TrustScore
		alerts = append(alerts, domain.RouteAlert{
			ID:         r.ID.String(),
			Type:       r.Type,
			Message:    withTrustSuffix(r.Message, trust),
			Lat:        r.Lat,
			Lng:        r.Lng,
			TrustScore: &trust,
			PhotoURL:   r.PhotoURL,
			IsReal:     true,
		})
	}

	return alerts
}

func withTrustSuffix(message string, trust float64) string {
	return fmt.Sprintf("%s (Trust: %d%%)", message, int(math.Round(trust*100)))
}

// fallbackGeometry is a straight line start->end with one jitter point so
// the result still renders as a path.
func fallbackGeometry(start, end domain.Point) domain.GeoJSONFeature {
	return domain.NewLineStringFeature([][]float64{
		{start.Lng, start.Lat},
		{start.Lng + 0.001, start.Lat + 0.001},
		{end.Lng, end.Lat},
	}, map[string]interface{}{
		"fallback": true,
	})
}
