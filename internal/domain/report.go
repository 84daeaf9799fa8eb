package domain

import (
	"time"

	"github.com/google/uuid"
)

// HazardType classifies a community-reported obstacle.
type HazardType string

const (
	HazardConstruction HazardType = "Construction"
	HazardAccident     HazardType = "Accident"
	HazardCrowd        HazardType = "Crowd"
	HazardWeather      HazardType = "Weather"
	HazardObstacle     HazardType = "Obstacle"
	HazardSlope        HazardType = "Slope"
	HazardRest         HazardType = "Rest"
	HazardInfo         HazardType = "Info"
	HazardOther        HazardType = "Other"
)

var hazardTypes = map[HazardType]bool{
	HazardConstruction: true,
	HazardAccident:     true,
	HazardCrowd:        true,
	HazardWeather:      true,
	HazardObstacle:     true,
	HazardSlope:        true,
	HazardRest:         true,
	HazardInfo:         true,
	HazardOther:        true,
}

func IsValidHazardType(t string) bool {
	return hazardTypes[HazardType(t)]
}

// ReportStatus is the lifecycle state of a hazard report.
// The only transition is active -> false_report; there is no way back.
type ReportStatus string

const (
	ReportStatusActive      ReportStatus = "active"
	ReportStatusFalseReport ReportStatus = "false_report"
)

// VoteValue is a community validation vote on a report.
type VoteValue string

const (
	VoteConfirm VoteValue = "confirm"
	VoteDeny    VoteValue = "deny"
)

func IsValidVote(v string) bool {
	return VoteValue(v) == VoteConfirm || VoteValue(v) == VoteDeny
}

// HazardReport is a user- or system-originated observation of an obstacle.
// Score and status are mutated only through the validation flow.
type HazardReport struct {
	ID                uuid.UUID    `json:"id" db:"id"`
	UserID            *uuid.UUID   `json:"user_id,omitempty" db:"user_id"`
	Type              HazardType   `json:"type" db:"type"`
	Message           string       `json:"message" db:"message"`
	Lat               float64      `json:"location_lat" db:"location_lat"`
	Lng               float64      `json:"location_lng" db:"location_lng"`
	PhotoURL          *string      `json:"photo_url,omitempty" db:"photo_url"`
	ExpectedDuration  *string      `json:"expected_duration,omitempty" db:"expected_duration"`
	AffectsWheelchair bool         `json:"affects_wheelchair" db:"affects_wheelchair"`
	TrustScore        float64      `json:"trust_score" db:"trust_score"`
	Status            ReportStatus `json:"status" db:"status"`
	SubmitterTrust    float64      `json:"submitter_trust" db:"submitter_trust"`
	CreatedAt         time.Time    `json:"created_at" db:"created_at"`
}

func (r *HazardReport) Location() Point {
	return Point{Lat: r.Lat, Lng: r.Lng}
}

// ValidationVote records a single user's vote on a report.
// (report_id, user_id) is unique: one vote per user per report.
type ValidationVote struct {
	ReportID  uuid.UUID `json:"report_id" db:"report_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Vote      VoteValue `json:"vote" db:"vote"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
