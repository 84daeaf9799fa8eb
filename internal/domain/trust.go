package domain

// Trust scoring weights. A report's confidence starts from a base,
// gains from submitter reputation and photo evidence, and then moves
// with every community vote. Confirm nudges it up, deny pulls it down
// twice as hard: suppressing a false positive quickly matters more
// than confirming a real hazard slowly.
const (
	TrustBase            = 0.3
	TrustSubmitterWeight = 0.2
	TrustPhotoBonus      = 0.2

	VoteConfirmDelta = 0.1
	VoteDenyDelta    = 0.2

	// FalseReportThreshold flips a report to false_report once its
	// score drops strictly below it.
	FalseReportThreshold = 0.2

	// MinRouteTrust is the floor (strict >) for reports considered
	// during route annotation.
	MinRouteTrust = 0.3

	// DefaultSubmitterTrust is used for anonymous or unknown submitters.
	DefaultSubmitterTrust = 0.5
)

// InitialScore computes the starting confidence of a new report from
// photo evidence and the submitter's reputation snapshot.
func InitialScore(hasPhoto bool, submitterTrust float64) float64 {
	score := TrustBase + ClampScore(submitterTrust)*TrustSubmitterWeight
	if hasPhoto {
		score += TrustPhotoBonus
	}
	return ClampScore(score)
}

// ApplyVote returns the score after a single validation vote. Pure:
// the caller persists the result and evaluates the status transition.
func ApplyVote(current float64, vote VoteValue) float64 {
	switch vote {
	case VoteConfirm:
		current += VoteConfirmDelta
	case VoteDeny:
		current -= VoteDenyDelta
	}
	return ClampScore(current)
}

// NextStatus evaluates the one-way transition rule. false_report is
// terminal: no score can bring a report back to active.
func NextStatus(current ReportStatus, score float64) ReportStatus {
	if current == ReportStatusFalseReport {
		return ReportStatusFalseReport
	}
	if score < FalseReportThreshold {
		return ReportStatusFalseReport
	}
	return ReportStatusActive
}

// ClampScore bounds a trust score to [0.0, 1.0].
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
