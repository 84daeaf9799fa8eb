package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/accessnav-service/internal/domain"
	"github.com/accessnav-service/internal/domain/repository"
	"github.com/accessnav-service/internal/pkg/errors"
)

type userRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// GetTrustRating reads the submitter reputation snapshot. Unknown users
// get the default rating; reports should not fail because the user row
// is missing.
func (r *userRepository) GetTrustRating(ctx context.Context, userID uuid.UUID) (float64, error) {
	var rating float64
	err := r.db.GetContext(ctx, &rating,
		`SELECT trust_rating FROM users WHERE id = $1`, userID)
	if err == sql.ErrNoRows {
		return domain.DefaultSubmitterTrust, nil
	}
	if err != nil {
		r.logger.Error("Failed to get user trust rating",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return 0, errors.ErrStorageUnavailable
	}

	return domain.ClampScore(rating), nil
}
