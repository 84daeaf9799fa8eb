package repository

import (
	"context"

	"github.com/accessnav-service/internal/domain"
	"github.com/google/uuid"
)

// ReportRepository owns hazard reports and their validation votes.
type ReportRepository interface {
	// Create persists a new report and returns it with id/created_at assigned.
	Create(ctx context.Context, report *domain.HazardReport) (*domain.HazardReport, error)

	// GetByID returns a single report or ErrReportNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.HazardReport, error)

	// ListRecent returns up to limit reports with the given status and
	// trust_score strictly above minTrust, most recent first.
	ListRecent(ctx context.Context, status domain.ReportStatus, minTrust float64, limit int) ([]*domain.HazardReport, error)

	// ListRecentByTypes is ListRecent narrowed to a set of hazard types.
	ListRecentByTypes(ctx context.Context, status domain.ReportStatus, minTrust float64, types []domain.HazardType, limit int) ([]*domain.HazardReport, error)

	// CastVote records a validation vote and applies the trust-score
	// adjustment and status transition in one transaction. The report row
	// is locked for the duration so concurrent votes on the same report
	// serialize instead of losing updates. Returns ErrDuplicateVote if
	// this user already voted, ErrReportNotFound if the report is gone.
	CastVote(ctx context.Context, reportID, userID uuid.UUID, vote domain.VoteValue) (*domain.HazardReport, error)
}

// UserRepository exposes the one user attribute the core reads: the
// reputation snapshot taken when a report is submitted.
type UserRepository interface {
	// GetTrustRating returns the user's trust rating in [0,1], or the
	// default rating when the user is unknown.
	GetTrustRating(ctx context.Context, userID uuid.UUID) (float64, error)
}
