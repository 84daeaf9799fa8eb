package domain

import "time"

// Severity levels for legacy alerts.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func IsValidSeverity(s string) bool {
	sv := Severity(s)
	return sv == SeverityLow || sv == SeverityMedium || sv == SeverityHigh
}

// LegacyAlert is the older, non-trust-scored hazard record.
// The route aggregator treats these as always active with trust 1.0.
type LegacyAlert struct {
	ID        int64      `json:"id" db:"id"`
	Type      HazardType `json:"type" db:"type"`
	Message   string     `json:"message" db:"message"`
	Lat       float64    `json:"location_lat" db:"location_lat"`
	Lng       float64    `json:"location_lng" db:"location_lng"`
	Severity  Severity   `json:"severity" db:"severity"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

func (a *LegacyAlert) Location() Point {
	return Point{Lat: a.Lat, Lng: a.Lng}
}

// AreaAlert is the enriched shape returned by the alerts endpoint:
// legacy rows normalized plus synthetic alerts around the caller.
type AreaAlert struct {
	ID         string                 `json:"id"`
	Category   string                 `json:"category"`
	Type       string                 `json:"type"`
	Title      string                 `json:"title,omitempty"`
	Message    string                 `json:"message"`
	Severity   Severity               `json:"severity"`
	Lat        float64                `json:"location_lat"`
	Lng        float64                `json:"location_lng"`
	Suggestion string                 `json:"suggestion,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}
