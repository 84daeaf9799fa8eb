package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/accessnav-service/internal/domain"
	"github.com/accessnav-service/internal/domain/repository"
	"github.com/accessnav-service/internal/pkg/errors"
)

const reportColumns = `
	id, user_id, type, message, location_lat, location_lng,
	photo_url, expected_duration, affects_wheelchair,
	trust_score, status, submitter_trust, created_at
`

type reportRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewReportRepository(db *DB) repository.ReportRepository {
	return &reportRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.HazardReport) (*domain.HazardReport, error) {
	query := `
		INSERT INTO reports
			(id, user_id, type, message, location_lat, location_lng,
			 photo_url, expected_duration, affects_wheelchair,
			 trust_score, status, submitter_trust)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + reportColumns

	id := report.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var created domain.HazardReport
	err := r.db.GetContext(ctx, &created, query,
		id, report.UserID, report.Type, report.Message,
		report.Lat, report.Lng, report.PhotoURL, report.ExpectedDuration,
		report.AffectsWheelchair, report.TrustScore, report.Status,
		report.SubmitterTrust,
	)
	if err != nil {
		r.logger.Error("Failed to insert report", zap.Error(err))
		return nil, errors.ErrStorageUnavailable
	}

	return &created, nil
}

func (r *reportRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.HazardReport, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`

	var report domain.HazardReport
	err := r.db.GetContext(ctx, &report, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrReportNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get report by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrStorageUnavailable
	}

	return &report, nil
}

func (r *reportRepository) ListRecent(
	ctx context.Context,
	status domain.ReportStatus,
	minTrust float64,
	limit int,
) ([]*domain.HazardReport, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM reports
		WHERE status = $1 AND trust_score > $2
		ORDER BY created_at DESC
		LIMIT $3
	`

	reports := make([]*domain.HazardReport, 0)
	err := r.db.SelectContext(ctx, &reports, query, status, minTrust, limit)
	if err != nil {
		r.logger.Error("Failed to list recent reports",
			zap.String("status", string(status)),
			zap.Float64("min_trust", minTrust),
			zap.Error(err))
		return nil, errors.ErrStorageUnavailable
	}

	return reports, nil
}

func (r *reportRepository) ListRecentByTypes(
	ctx context.Context,
	status domain.ReportStatus,
	minTrust float64,
	types []domain.HazardType,
	limit int,
) ([]*domain.HazardReport, error) {
	if len(types) == 0 {
		return r.ListRecent(ctx, status, minTrust, limit)
	}

	query := `
		SELECT ` + reportColumns + `
		FROM reports
		WHERE status = $1 AND trust_score > $2 AND type = ANY($3)
		ORDER BY created_at DESC
		LIMIT $4
	`

	typeStrings := make([]string, len(types))
	for i, t := range types {
		typeStrings[i] = string(t)
	}

	reports := make([]*domain.HazardReport, 0)
	err := r.db.SelectContext(ctx, &reports, query, status, minTrust, pq.Array(typeStrings), limit)
	if err != nil {
		r.logger.Error("Failed to list reports by types",
			zap.Strings("types", typeStrings),
			zap.Error(err))
		return nil, errors.ErrStorageUnavailable
	}

	return reports, nil
}

// CastVote runs the whole vote transition in one transaction. The report
// row is locked with FOR UPDATE first, so concurrent votes on the same
// report serialize: each vote reads the score the previous one wrote.
func (r *reportRepository) CastVote(
	ctx context.Context,
	reportID, userID uuid.UUID,
	vote domain.VoteValue,
) (*domain.HazardReport, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin vote transaction", zap.Error(err))
		return nil, errors.ErrStorageUnavailable
	}
	defer tx.Rollback()

	var report domain.HazardReport
	err = tx.GetContext(ctx, &report,
		`SELECT `+reportColumns+` FROM reports WHERE id = $1 FOR UPDATE`, reportID)
	if err == sql.ErrNoRows {
		return nil, errors.ErrReportNotFound
	}
	if err != nil {
		r.logger.Error("Failed to lock report for vote",
			zap.String("report_id", reportID.String()),
			zap.Error(err))
		return nil, errors.ErrStorageUnavailable
	}

	var alreadyVoted bool
	err = tx.GetContext(ctx, &alreadyVoted,
		`SELECT EXISTS (SELECT 1 FROM validations WHERE report_id = $1 AND user_id = $2)`,
		reportID, userID)
	if err != nil {
		r.logger.Error("Failed to check existing vote", zap.Error(err))
		return nil, errors.ErrStorageUnavailable
	}
	if alreadyVoted {
		return nil, errors.ErrDuplicateVote
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO validations (report_id, user_id, vote) VALUES ($1, $2, $3)`,
		reportID, userID, vote)
	if err != nil {
		r.logger.Error("Failed to insert vote", zap.Error(err))
		return nil, errors.ErrStorageUnavailable
	}

	newScore := domain.ApplyVote(report.TrustScore, vote)
	newStatus := domain.NextStatus(report.Status, newScore)

	var updated domain.HazardReport
	err = tx.GetContext(ctx, &updated,
		`UPDATE reports SET trust_score = $1, status = $2 WHERE id = $3 RETURNING `+reportColumns,
		newScore, newStatus, reportID)
	if err != nil {
		r.logger.Error("Failed to apply vote to report", zap.Error(err))
		return nil, errors.ErrStorageUnavailable
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit vote transaction", zap.Error(err))
		return nil, errors.ErrStorageUnavailable
	}

	return &updated, nil
}
