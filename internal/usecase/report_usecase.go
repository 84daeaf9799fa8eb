package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/accessnav-service/internal/domain"
	"github.com/accessnav-service/internal/domain/repository"
	"github.com/accessnav-service/internal/pkg/errors"
	"github.com/accessnav-service/internal/pkg/utils"
	"github.com/accessnav-service/internal/usecase/dto"
)

// ReportUseCase handles hazard report submission and community
// validation (the report's trust score and status lifecycle).
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
	streams    repository.StreamRepository
	logger     *zap.Logger
}

func NewReportUseCase(
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
	streams repository.StreamRepository,
	logger *zap.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo: reportRepo,
		userRepo:   userRepo,
		streams:    streams,
		logger:     logger,
	}
}

// SubmitReport creates a hazard report with its initial trust score
// computed from photo evidence and the submitter's reputation snapshot.
// Anonymous submissions use the default reputation.
func (uc *ReportUseCase) SubmitReport(
	ctx context.Context,
	userID *uuid.UUID,
	req dto.SubmitReportRequest,
) (*domain.HazardReport, error) {
	if !domain.IsValidHazardType(req.Type) {
		return nil, errors.ErrInvalidHazardType
	}
	if !utils.ValidateCoordinates(req.Lat, req.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	submitterTrust := domain.DefaultSubmitterTrust
	if userID != nil {
		rating, err := uc.userRepo.GetTrustRating(ctx, *userID)
		if err != nil {
			uc.logger.Warn("Failed to load submitter trust rating, using default",
				zap.String("user_id", userID.String()),
				zap.Error(err))
		} else {
			submitterTrust = rating
		}
	}

	hasPhoto := req.PhotoURL != nil && *req.PhotoURL != ""
	score := domain.InitialScore(hasPhoto, submitterTrust)

	report := &domain.HazardReport{
		UserID:            userID,
		Type:              domain.HazardType(req.Type),
		Message:           req.Message,
		Lat:               req.Lat,
		Lng:               req.Lng,
		PhotoURL:          req.PhotoURL,
		ExpectedDuration:  req.ExpectedDuration,
		AffectsWheelchair: req.AffectsWheelchair,
		TrustScore:        score,
		Status:            domain.ReportStatusActive,
		SubmitterTrust:    submitterTrust,
	}

	created, err := uc.reportRepo.Create(ctx, report)
	if err != nil {
		uc.logger.Error("Failed to create report", zap.Error(err))
		return nil, err
	}

	uc.broadcast(ctx, domain.EventNewReport, created)

	uc.logger.Info("Report submitted",
		zap.String("id", created.ID.String()),
		zap.String("type", string(created.Type)),
		zap.Float64("trust_score", created.TrustScore))

	return created, nil
}

// ListReports returns the recent active reports for map display,
// optionally narrowed to a set of hazard types.
func (uc *ReportUseCase) ListReports(ctx context.Context, types []domain.HazardType) ([]*domain.HazardReport, error) {
	for _, t := range types {
		if !domain.IsValidHazardType(string(t)) {
			return nil, errors.ErrInvalidHazardType
		}
	}

	if len(types) > 0 {
		return uc.reportRepo.ListRecentByTypes(ctx, domain.ReportStatusActive, 0, types, 100)
	}
	return uc.reportRepo.ListRecent(ctx, domain.ReportStatusActive, 0, 100)
}

// GetReport returns a single report by id.
func (uc *ReportUseCase) GetReport(ctx context.Context, id uuid.UUID) (*domain.HazardReport, error) {
	return uc.reportRepo.GetByID(ctx, id)
}

// Vote records a validation vote and applies the trust transition.
// Requires an authenticated user; one vote per user per report. The
// repository serializes concurrent votes on the same report, so the
// score/status update is atomic and lost updates cannot occur.
func (uc *ReportUseCase) Vote(
	ctx context.Context,
	reportID uuid.UUID,
	userID *uuid.UUID,
	vote string,
) (*domain.HazardReport, error) {
	if userID == nil {
		return nil, errors.ErrUnauthorized
	}
	if !domain.IsValidVote(vote) {
		return nil, errors.ErrInvalidVote
	}

	updated, err := uc.reportRepo.CastVote(ctx, reportID, *userID, domain.VoteValue(vote))
	if err != nil {
		return nil, err
	}

	uc.broadcast(ctx, domain.EventUpdateReport, updated)

	uc.logger.Info("Vote recorded",
		zap.String("report_id", reportID.String()),
		zap.String("vote", vote),
		zap.Float64("trust_score", updated.TrustScore),
		zap.String("status", string(updated.Status)))

	return updated, nil
}

// broadcast pushes a report event onto the broadcast stream. Delivery is
// fire-and-forget: the mutation already succeeded and at-most-once is
// acceptable for live updates.
func (uc *ReportUseCase) broadcast(ctx context.Context, event string, report *domain.HazardReport) {
	err := uc.streams.PublishToStream(ctx, domain.StreamReportEvents, domain.ReportEvent{
		Event:      event,
		Report:     report,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		uc.logger.Warn("Failed to broadcast report event",
			zap.String("event", event),
			zap.String("report_id", report.ID.String()),
			zap.Error(err))
	}
}
