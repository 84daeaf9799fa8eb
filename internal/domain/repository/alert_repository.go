package repository

import (
	"context"

	"github.com/accessnav-service/internal/domain"
)

// AlertRepository stores legacy alerts (the older non-trust-scored schema).
type AlertRepository interface {
	// ListRecent returns up to limit alerts, most recent first.
	ListRecent(ctx context.Context, limit int) ([]*domain.LegacyAlert, error)

	// Create persists a new alert and returns it with id/created_at assigned.
	Create(ctx context.Context, alert *domain.LegacyAlert) (*domain.LegacyAlert, error)
}
