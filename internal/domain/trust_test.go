package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/accessnav-service/internal/domain"
)

func TestInitialScore(t *testing.T) {
	tests := []struct {
		name           string
		hasPhoto       bool
		submitterTrust float64
		expected       float64
	}{
		{"anonymous default trust, no photo", false, 0.5, 0.4},
		{"anonymous default trust, with photo", true, 0.5, 0.6},
		{"trusted submitter with photo", true, 0.8, 0.66},
		{"zero trust, no photo", false, 0.0, 0.3},
		{"max trust with photo stays clamped", true, 1.0, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.InitialScore(tt.hasPhoto, tt.submitterTrust)
			assert.InDelta(t, tt.expected, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestApplyVote(t *testing.T) {
	t.Run("confirm adds 0.1", func(t *testing.T) {
		assert.InDelta(t, 0.6, domain.ApplyVote(0.5, domain.VoteConfirm), 1e-9)
	})

	t.Run("deny subtracts 0.2", func(t *testing.T) {
		assert.InDelta(t, 0.3, domain.ApplyVote(0.5, domain.VoteDeny), 1e-9)
	})

	t.Run("confirm clamps at 1.0", func(t *testing.T) {
		assert.Equal(t, 1.0, domain.ApplyVote(0.95, domain.VoteConfirm))
	})

	t.Run("deny clamps at 0.0", func(t *testing.T) {
		assert.Equal(t, 0.0, domain.ApplyVote(0.1, domain.VoteDeny))
	})

	t.Run("monotonic", func(t *testing.T) {
		for _, s := range []float64{0.05, 0.2, 0.5, 0.85, 0.99} {
			assert.Greater(t, domain.ApplyVote(s, domain.VoteConfirm), s)
			assert.Less(t, domain.ApplyVote(s, domain.VoteDeny), s)
		}
	})
}

// Full lifecycle from the product scenario: photo + trusted submitter,
// then three denies from different users drive the report below the
// false_report threshold.
func TestTrustLifecycle(t *testing.T) {
	score := domain.InitialScore(true, 0.8)
	assert.InDelta(t, 0.66, score, 1e-9)

	status := domain.ReportStatusActive

	score = domain.ApplyVote(score, domain.VoteDeny)
	status = domain.NextStatus(status, score)
	assert.InDelta(t, 0.46, score, 1e-9)
	assert.Equal(t, domain.ReportStatusActive, status)

	score = domain.ApplyVote(score, domain.VoteDeny)
	status = domain.NextStatus(status, score)
	assert.InDelta(t, 0.26, score, 1e-9)
	assert.Equal(t, domain.ReportStatusActive, status)

	score = domain.ApplyVote(score, domain.VoteDeny)
	status = domain.NextStatus(status, score)
	assert.InDelta(t, 0.06, score, 1e-9)
	assert.Equal(t, domain.ReportStatusFalseReport, status)
}

func TestNextStatusOneWay(t *testing.T) {
	// Once false_report, no score brings the report back.
	for _, score := range []float64{0.0, 0.19, 0.2, 0.5, 1.0} {
		assert.Equal(t, domain.ReportStatusFalseReport,
			domain.NextStatus(domain.ReportStatusFalseReport, score))
	}

	// Active flips only strictly below the threshold.
	assert.Equal(t, domain.ReportStatusActive, domain.NextStatus(domain.ReportStatusActive, 0.2))
	assert.Equal(t, domain.ReportStatusFalseReport, domain.NextStatus(domain.ReportStatusActive, 0.19))
}
