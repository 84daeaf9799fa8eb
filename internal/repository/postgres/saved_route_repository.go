package postgres

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/accessnav-service/internal/domain"
	"github.com/accessnav-service/internal/domain/repository"
	"github.com/accessnav-service/internal/pkg/errors"
)

type savedRouteRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSavedRouteRepository(db *DB) repository.SavedRouteRepository {
	return &savedRouteRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *savedRouteRepository) Save(ctx context.Context, route *domain.SavedRoute) (*domain.SavedRoute, error) {
	stops := route.Stops
	if stops == nil {
		stops = []domain.Stop{}
	}
	stopsJSON, err := json.Marshal(stops)
	if err != nil {
		r.logger.Error("Failed to marshal route stops", zap.Error(err))
		return nil, errors.ErrInvalidRequest
	}

	id := route.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := `
		INSERT INTO saved_routes (id, user_id, start_location, destination, stops)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, start_location, destination, stops, created_at
	`

	var created domain.SavedRoute
	var stopsRaw []byte
	err = r.db.QueryRowContext(ctx, query,
		id, route.UserID, route.Start, route.Destination, stopsJSON,
	).Scan(&created.ID, &created.UserID, &created.Start, &created.Destination, &stopsRaw, &created.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert saved route", zap.Error(err))
		return nil, errors.ErrStorageUnavailable
	}

	if err := json.Unmarshal(stopsRaw, &created.Stops); err != nil {
		r.logger.Warn("Failed to unmarshal route stops", zap.Error(err))
	}

	return &created, nil
}

func (r *savedRouteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SavedRoute, error) {
	query := `
		SELECT id, user_id, start_location, destination, stops, created_at
		FROM saved_routes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list saved routes", zap.Error(err))
		return nil, errors.ErrStorageUnavailable
	}
	defer rows.Close()

	routes := make([]*domain.SavedRoute, 0)
	for rows.Next() {
		var route domain.SavedRoute
		var stopsRaw []byte
		if err := rows.Scan(&route.ID, &route.UserID, &route.Start, &route.Destination, &stopsRaw, &route.CreatedAt); err != nil {
			r.logger.Error("Failed to scan saved route", zap.Error(err))
			continue
		}
		if len(stopsRaw) > 0 {
			if err := json.Unmarshal(stopsRaw, &route.Stops); err != nil {
				r.logger.Warn("Failed to unmarshal route stops",
					zap.String("id", route.ID.String()),
					zap.Error(err))
			}
		}
		routes = append(routes, &route)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate saved routes", zap.Error(err))
		return nil, errors.ErrStorageUnavailable
	}

	return routes, nil
}

func (r *savedRouteRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM saved_routes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		r.logger.Error("Failed to delete saved route", zap.Error(err))
		return errors.ErrStorageUnavailable
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return errors.ErrRouteNotFound
	}

	return nil
}
