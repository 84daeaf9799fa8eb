package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/accessnav-service/internal/domain"
	"github.com/accessnav-service/internal/domain/repository"
	"github.com/accessnav-service/internal/pkg/errors"
)

type alertRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAlertRepository(db *DB) repository.AlertRepository {
	return &alertRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *alertRepository) ListRecent(ctx context.Context, limit int) ([]*domain.LegacyAlert, error) {
	query := `
		SELECT id, type, message, location_lat, location_lng, severity, created_at
		FROM alerts
		ORDER BY created_at DESC
		LIMIT $1
	`

	alerts := make([]*domain.LegacyAlert, 0)
	err := r.db.SelectContext(ctx, &alerts, query, limit)
	if err != nil {
		r.logger.Error("Failed to list recent alerts", zap.Error(err))
		return nil, errors.ErrStorageUnavailable
	}

	return alerts, nil
}

func (r *alertRepository) Create(ctx context.Context, alert *domain.LegacyAlert) (*domain.LegacyAlert, error) {
	query := `
		INSERT INTO alerts (type, message, location_lat, location_lng, severity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, type, message, location_lat, location_lng, severity, created_at
	`

	var created domain.LegacyAlert
	err := r.db.GetContext(ctx, &created, query,
		alert.Type, alert.Message, alert.Lat, alert.Lng, alert.Severity)
	if err != nil {
		r.logger.Error("Failed to insert alert", zap.Error(err))
		return nil, errors.ErrStorageUnavailable
	}

	return &created, nil
}
