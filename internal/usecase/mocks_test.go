package usecase_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/accessnav-service/internal/domain"
)

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *domain.HazardReport) (*domain.HazardReport, error) {
	args := m.Called(ctx, report)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HazardReport), args.Error(1)
}

func (m *MockReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.HazardReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HazardReport), args.Error(1)
}

func (m *MockReportRepository) ListRecent(ctx context.Context, status domain.ReportStatus, minTrust float64, limit int) ([]*domain.HazardReport, error) {
	args := m.Called(ctx, status, minTrust, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.HazardReport), args.Error(1)
}

func (m *MockReportRepository) ListRecentByTypes(ctx context.Context, status domain.ReportStatus, minTrust float64, types []domain.HazardType, limit int) ([]*domain.HazardReport, error) {
	args := m.Called(ctx, status, minTrust, types, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.HazardReport), args.Error(1)
}

func (m *MockReportRepository) CastVote(ctx context.Context, reportID, userID uuid.UUID, vote domain.VoteValue) (*domain.HazardReport, error) {
	args := m.Called(ctx, reportID, userID, vote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HazardReport), args.Error(1)
}

type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) ListRecent(ctx context.Context, limit int) ([]*domain.LegacyAlert, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LegacyAlert), args.Error(1)
}

func (m *MockAlertRepository) Create(ctx context.Context, alert *domain.LegacyAlert) (*domain.LegacyAlert, error) {
	args := m.Called(ctx, alert)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LegacyAlert), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetTrustRating(ctx context.Context, userID uuid.UUID) (float64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(float64), args.Error(1)
}

type MockDirectionsRepository struct {
	mock.Mock
}

func (m *MockDirectionsRepository) GetDirections(ctx context.Context, points []domain.Point, mode string) (*domain.DirectionsResult, error) {
	args := m.Called(ctx, points, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DirectionsResult), args.Error(1)
}

type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToChannel(ctx context.Context, channel, payload string) error {
	args := m.Called(ctx, channel, payload)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

type MockSavedRouteRepository struct {
	mock.Mock
}

func (m *MockSavedRouteRepository) Save(ctx context.Context, route *domain.SavedRoute) (*domain.SavedRoute, error) {
	args := m.Called(ctx, route)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedRoute), args.Error(1)
}

func (m *MockSavedRouteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SavedRoute, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SavedRoute), args.Error(1)
}

func (m *MockSavedRouteRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
