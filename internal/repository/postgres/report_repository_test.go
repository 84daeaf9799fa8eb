package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/accessnav-service/internal/domain"
	"github.com/accessnav-service/internal/domain/repository"
	"github.com/accessnav-service/internal/pkg/errors"
	"github.com/accessnav-service/internal/repository/postgres/testhelpers"
)

// ReportRepositorySuite tests the report repository with real database
type ReportRepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.ReportRepository
	ctx    context.Context
}

// SetupSuite runs once before all tests
func (s *ReportRepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(
		s.testDB.DB.DB,
		"../../../migrations",
	)
	s.NoError(err, "Failed to apply migrations")

	s.repo = testhelpers.NewReportRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

// TearDownSuite runs once after all tests
func (s *ReportRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest runs before each test
func (s *ReportRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.NoError(s.testDB.Cleanup(s.ctx))
}

func (s *ReportRepositorySuite) createReport(hazardType domain.HazardType, score float64) *domain.HazardReport {
	created, err := s.repo.Create(s.ctx, &domain.HazardReport{
		Type:           hazardType,
		Message:        "Sidewalk blocked near the crossing",
		Lat:            40.7128,
		Lng:            -74.0060,
		TrustScore:     score,
		Status:         domain.ReportStatusActive,
		SubmitterTrust: 0.5,
	})
	s.Require().NoError(err)
	s.Require().NotNil(created)
	return created
}

// ============================================================================
// Test CastVote
// ============================================================================

func (s *ReportRepositorySuite) TestCastVote_ConfirmRaisesScore() {
	report := s.createReport(domain.HazardConstruction, 0.5)

	updated, err := s.repo.CastVote(s.ctx, report.ID, uuid.New(), domain.VoteConfirm)
	s.NoError(err)
	s.Require().NotNil(updated)
	s.InDelta(0.6, updated.TrustScore, 1e-9)
	s.Equal(domain.ReportStatusActive, updated.Status)
}

func (s *ReportRepositorySuite) TestCastVote_DuplicateVoteLeavesScoreUntouched() {
	report := s.createReport(domain.HazardObstacle, 0.5)
	voter := uuid.New()

	first, err := s.repo.CastVote(s.ctx, report.ID, voter, domain.VoteConfirm)
	s.Require().NoError(err)
	s.InDelta(0.6, first.TrustScore, 1e-9)

	_, err = s.repo.CastVote(s.ctx, report.ID, voter, domain.VoteDeny)
	s.ErrorIs(err, errors.ErrDuplicateVote)

	// The rejected vote must roll back completely: score and vote
	// count stay as the first vote left them.
	stored, err := s.repo.GetByID(s.ctx, report.ID)
	s.Require().NoError(err)
	s.InDelta(0.6, stored.TrustScore, 1e-9)

	var votes int
	err = s.testDB.DB.GetContext(s.ctx, &votes,
		`SELECT COUNT(*) FROM validations WHERE report_id = $1`, report.ID)
	s.Require().NoError(err)
	s.Equal(1, votes)
}

func (s *ReportRepositorySuite) TestCastVote_DenyBelowThresholdFlipsStatus() {
	report := s.createReport(domain.HazardWeather, 0.25)

	updated, err := s.repo.CastVote(s.ctx, report.ID, uuid.New(), domain.VoteDeny)
	s.Require().NoError(err)
	s.InDelta(0.05, updated.TrustScore, 1e-9)
	s.Equal(domain.ReportStatusFalseReport, updated.Status)

	// false_report is terminal. A later confirm still records and
	// adjusts the score but never flips the status back.
	after, err := s.repo.CastVote(s.ctx, report.ID, uuid.New(), domain.VoteConfirm)
	s.Require().NoError(err)
	s.InDelta(0.15, after.TrustScore, 1e-9)
	s.Equal(domain.ReportStatusFalseReport, after.Status)
}

func (s *ReportRepositorySuite) TestCastVote_MissingReport() {
	_, err := s.repo.CastVote(s.ctx, uuid.New(), uuid.New(), domain.VoteConfirm)
	s.ErrorIs(err, errors.ErrReportNotFound)
}

// ============================================================================
// Test ListRecent / ListRecentByTypes
// ============================================================================

func (s *ReportRepositorySuite) TestListRecent_TrustFloorIsStrict() {
	s.createReport(domain.HazardConstruction, 0.3)
	trusted := s.createReport(domain.HazardObstacle, 0.5)

	reports, err := s.repo.ListRecent(s.ctx, domain.ReportStatusActive, domain.MinRouteTrust, 100)
	s.Require().NoError(err)
	s.Require().Len(reports, 1)
	s.Equal(trusted.ID, reports[0].ID)
}

func (s *ReportRepositorySuite) TestListRecentByTypes_FiltersOnType() {
	s.createReport(domain.HazardConstruction, 0.5)
	crowd := s.createReport(domain.HazardCrowd, 0.5)

	reports, err := s.repo.ListRecentByTypes(s.ctx, domain.ReportStatusActive, 0.0,
		[]domain.HazardType{domain.HazardCrowd}, 100)
	s.Require().NoError(err)
	s.Require().Len(reports, 1)
	s.Equal(crowd.ID, reports[0].ID)
}

func (s *ReportRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, errors.ErrReportNotFound)
}

func TestReportRepositorySuite(t *testing.T) {
	suite.Run(t, new(ReportRepositorySuite))
}
