package usecase

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/accessnav-service/internal/domain"
	"github.com/accessnav-service/internal/domain/repository"
	"github.com/accessnav-service/internal/pkg/errors"
	"github.com/accessnav-service/internal/pkg/utils"
	"github.com/accessnav-service/internal/usecase/dto"
)

// AlertUseCase serves the area alerts feed: recent legacy alerts merged
// with synthetic alerts around the caller's location.
type AlertUseCase struct {
	alertRepo repository.AlertRepository
	synthetic SyntheticHazardSource
	logger    *zap.Logger
	limit     int
}

func NewAlertUseCase(
	alertRepo repository.AlertRepository,
	synthetic SyntheticHazardSource,
	logger *zap.Logger,
) *AlertUseCase {
	return &AlertUseCase{
		alertRepo: alertRepo,
		synthetic: synthetic,
		logger:    logger,
		limit:     50,
	}
}

// ListArea returns synthetic alerts around the caller (when a location
// is supplied) followed by recent stored alerts normalized to the rich
// shape.
func (uc *AlertUseCase) ListArea(ctx context.Context, lat, lng *float64) ([]domain.AreaAlert, error) {
	stored, err := uc.alertRepo.ListRecent(ctx, uc.limit)
	if err != nil {
		uc.logger.Error("Failed to list alerts", zap.Error(err))
		return nil, err
	}

	result := make([]domain.AreaAlert, 0, len(stored)+5)

	hasLocation := lat != nil && lng != nil && utils.ValidateCoordinates(*lat, *lng)
	if hasLocation {
		result = append(result, uc.synthetic.NearbyAlerts(domain.Point{Lat: *lat, Lng: *lng})...)
	}

	for _, a := range stored {
		alert := domain.AreaAlert{
			ID:         fmt.Sprintf("alert-%d", a.ID),
			Category:   "Reported",
			Type:       string(a.Type),
			Message:    a.Message,
			Severity:   a.Severity,
			Lat:        a.Lat,
			Lng:        a.Lng,
			Suggestion: "Verify on arrival.",
			CreatedAt:  a.CreatedAt,
		}
		if hasLocation {
			alert.Metadata = map[string]interface{}{
				"distance_km": math.Round(utils.HaversineDistance(*lat, *lng, a.Lat, a.Lng)*100) / 100,
			}
		}
		result = append(result, alert)
	}

	return result, nil
}

// CreateAlert persists a legacy alert.
func (uc *AlertUseCase) CreateAlert(ctx context.Context, req dto.CreateAlertRequest) (*domain.LegacyAlert, error) {
	if !domain.IsValidHazardType(req.Type) {
		return nil, errors.ErrInvalidHazardType
	}
	if !domain.IsValidSeverity(req.Severity) {
		return nil, errors.ErrInvalidSeverity
	}
	if !utils.ValidateCoordinates(req.Lat, req.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	alert := &domain.LegacyAlert{
		Type:     domain.HazardType(req.Type),
		Message:  req.Message,
		Lat:      req.Lat,
		Lng:      req.Lng,
		Severity: domain.Severity(req.Severity),
	}

	created, err := uc.alertRepo.Create(ctx, alert)
	if err != nil {
		uc.logger.Error("Failed to create alert", zap.Error(err))
		return nil, err
	}

	return created, nil
}
