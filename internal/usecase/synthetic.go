package usecase

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/accessnav-service/internal/domain"
	"github.com/accessnav-service/internal/pkg/errors"
)

// SyntheticHazardSource supplies simulated hazards where community data
// is sparse. Injectable so tests use deterministic fixtures.
type SyntheticHazardSource interface {
	// GenerateForProfile derives profile-specific alerts and guidance
	// placed along the route geometry. Coordinates are GeoJSON order
	// (lng, lat); origin is the fallback anchor for empty geometry.
	GenerateForProfile(profile domain.MobilityProfile, coordinates [][]float64, origin domain.Point) ([]domain.RouteAlert, []string, *domain.ProfileMeta)

	// NearbyAlerts fabricates area alerts around a location for the
	// alerts endpoint.
	NearbyAlerts(around domain.Point) []domain.AreaAlert
}

// SampleRoutePoint picks the coordinate at floor(len*fraction), clamped
// into range, and converts it from GeoJSON (lng, lat) order. An empty
// geometry is a caller bug; it returns ErrEmptyGeometry so callers can
// substitute a fallback point.
func SampleRoutePoint(coordinates [][]float64, fraction float64) (domain.Point, error) {
	if len(coordinates) == 0 {
		return domain.Point{}, errors.ErrEmptyGeometry
	}

	index := int(math.Floor(float64(len(coordinates)) * fraction))
	if index < 0 {
		index = 0
	}
	if index >= len(coordinates) {
		index = len(coordinates) - 1
	}

	pt := coordinates[index]
	return domain.Point{Lat: pt[1], Lng: pt[0]}, nil
}

// SupplementNeeded decides whether synthetic hazards should supplement
// the real ones found near the route. Synthetic data exists only to keep
// the experience non-empty when the community dataset is sparse, so most
// profiles supplement only when nothing real was found; Walker tolerates
// one real hazard before supplementing.
func SupplementNeeded(profile domain.MobilityProfile, realCount int) bool {
	switch profile {
	case domain.ProfileNone:
		return false
	case domain.ProfileWalker:
		return realCount < 2
	default:
		return realCount < 1
	}
}

type simulatedHazardSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedHazardSource builds the default synthetic source. Seed 0
// means non-deterministic; tests pass a fixed seed.
func NewSimulatedHazardSource(seed int64) SyntheticHazardSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &simulatedHazardSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// pointAt samples the route, falling back to a fixed offset from the
// origin when the geometry is unusable.
func pointAt(coordinates [][]float64, fraction float64, origin domain.Point, offset float64) domain.Point {
	pt, err := SampleRoutePoint(coordinates, fraction)
	if err != nil {
		return domain.Point{Lat: origin.Lat + offset, Lng: origin.Lng + offset}
	}
	return pt
}

func (s *simulatedHazardSource) GenerateForProfile(
	profile domain.MobilityProfile,
	coordinates [][]float64,
	origin domain.Point,
) ([]domain.RouteAlert, []string, *domain.ProfileMeta) {
	var alerts []domain.RouteAlert
	var guidance []string
	var meta *domain.ProfileMeta

	switch profile {
	case domain.ProfileWheelchair:
		p1 := pointAt(coordinates, 0.2, origin, 0.0005)
		p2 := pointAt(coordinates, 0.6, origin, 0.0015)
		alerts = append(alerts,
			domain.RouteAlert{
				Type:    domain.HazardConstruction,
				Message: "Curb ramp ahead is blocked. Rerouting via accessible sidewalk.",
				Lat:     p1.Lat,
				Lng:     p1.Lng,
			},
			domain.RouteAlert{
				Type:    domain.HazardObstacle,
				Message: "Narrow footpath detected. Avoid this section.",
				Lat:     p2.Lat,
				Lng:     p2.Lng,
			},
		)
		guidance = append(guidance,
			"Turn left to avoid construction zone.",
			"Use the ramp on the right.",
		)

	case domain.ProfileWalker:
		p := pointAt(coordinates, 0.3, origin, 0.001)
		alerts = append(alerts, domain.RouteAlert{
			Type:    domain.HazardSlope,
			Message: "Steep slope ahead. Rerouting to flatter terrain.",
			Lat:     p.Lat,
			Lng:     p.Lng,
		})
		guidance = append(guidance,
			"Keep right for flatter surface.",
			"Avoid the cobblestone path.",
		)

	case domain.ProfileTemporary:
		p := pointAt(coordinates, 0.5, origin, 0.001)
		alerts = append(alerts, domain.RouteAlert{
			Type:    domain.HazardInfo,
			Message: "This route is longer but has fewer steps and smoother surface.",
			Lat:     p.Lat,
			Lng:     p.Lng,
		})
		guidance = append(guidance, "Follow the green path for step-free access.")

	case domain.ProfileFatigue:
		p1 := pointAt(coordinates, 0.25, origin, 0.0008)
		p2 := pointAt(coordinates, 0.60, origin, 0.0025)
		alerts = append(alerts,
			domain.RouteAlert{
				Type:    domain.HazardRest,
				Message: "A rest spot is 30 meters ahead.",
				Lat:     p1.Lat,
				Lng:     p1.Lng,
			},
			domain.RouteAlert{
				Type:    domain.HazardRest,
				Message: "Bench available here.",
				Lat:     p2.Lat,
				Lng:     p2.Lng,
			},
		)
		guidance = append(guidance, "Take a break at the upcoming bench.")

	case domain.ProfileCognitive:
		p := pointAt(coordinates, 0.1, origin, 0)
		alerts = append(alerts, domain.RouteAlert{
			Type:    domain.HazardInfo,
			Message: "Simple route mode active. Avoiding crowded areas.",
			Lat:     p.Lat,
			Lng:     p.Lng,
		})
		guidance = append(guidance, "Go straight for 20 steps.", "Then turn left.")

	case domain.ProfileElderly:
		p := pointAt(coordinates, 0.4, origin, 0.0012)
		alerts = append(alerts, domain.RouteAlert{
			Type:    domain.HazardInfo,
			Message: "Busy area ahead. Please wait while we find a safer route.",
			Lat:     p.Lat,
			Lng:     p.Lng,
		})
		guidance = append(guidance,
			"Walk slowly. Busy area ahead.",
			"Cross strictly at the zebra crossing.",
		)
		meta = &domain.ProfileMeta{LargeText: true, SlowerAudio: true}

	case domain.ProfileCaregiver:
		alerts = append(alerts, domain.RouteAlert{
			Type:    domain.HazardInfo,
			Message: "Live location sharing enabled for this trip.",
			Lat:     origin.Lat,
			Lng:     origin.Lng,
		})
		guidance = append(guidance, "Route shared with caregiver.")
	}

	return alerts, guidance, meta
}

// NearbyAlerts fabricates a handful of area alerts scattered around the
// caller's location, standing in for real sensor/crowd feeds.
func (s *simulatedHazardSource) NearbyAlerts(around domain.Point) []domain.AreaAlert {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	scatter := func(offset float64) domain.Point {
		return domain.Point{
			Lat: around.Lat + s.rng.Float64()*2*offset - offset,
			Lng: around.Lng + s.rng.Float64()*2*offset - offset,
		}
	}

	alerts := make([]domain.AreaAlert, 0, 5)

	p1 := scatter(0.002)
	alerts = append(alerts, domain.AreaAlert{
		ID:         "sim_p1",
		Category:   "PHYSICAL",
		Type:       "BLOCKED_RAMP",
		Title:      "Curb Ramp Blocked",
		Message:    "Construction material dumped on the curb cut.",
		Severity:   domain.SeverityHigh,
		Lat:        p1.Lat,
		Lng:        p1.Lng,
		Suggestion: "Use the driveway 20m ahead.",
		Metadata: map[string]interface{}{
			"surface": "concrete",
			"affects": []string{"Wheelchair", "Stroller"},
		},
		CreatedAt: now,
	})

	p2 := scatter(0.003)
	alerts = append(alerts, domain.AreaAlert{
		ID:         "sim_p2",
		Category:   "PHYSICAL",
		Type:       "NARROW_PATH",
		Title:      "Narrow Sidewalk",
		Message:    "Path narrows to under 90cm due to fencing.",
		Severity:   domain.SeverityMedium,
		Lat:        p2.Lat,
		Lng:        p2.Lng,
		Suggestion: "Proceed with caution or use opposite sidewalk.",
		Metadata: map[string]interface{}{
			"width_cm": 85,
		},
		CreatedAt: now,
	})

	p3 := scatter(0.0015)
	alerts = append(alerts, domain.AreaAlert{
		ID:         "sim_t1",
		Category:   "TEMPORARY",
		Type:       "PARKED_VEHICLE",
		Title:      "Vehicle Blocking Path",
		Message:    "Large vehicle parked fully on the footpath.",
		Severity:   domain.SeverityMedium,
		Lat:        p3.Lat,
		Lng:        p3.Lng,
		Suggestion: "Go around via the parking lane (watch for traffic).",
		Metadata: map[string]interface{}{
			"expiry": now.Add(time.Hour).Format(time.RFC3339),
		},
		CreatedAt: now,
	})

	if s.rng.Float64() > 0.3 {
		p4 := scatter(0.004)
		alerts = append(alerts, domain.AreaAlert{
			ID:         "sim_c1",
			Category:   "CROWD",
			Type:       "HIGH_CROWD",
			Title:      "Dense Market Crowd",
			Message:    "Weekly market active. High pedestrian density.",
			Severity:   domain.SeverityLow,
			Lat:        p4.Lat,
			Lng:        p4.Lng,
			Suggestion: "Avoid if sensitive to crowds or noise.",
			Metadata: map[string]interface{}{
				"density":        "high",
				"time_sensitive": true,
			},
			CreatedAt: now,
		})
	}

	p5 := scatter(0.0025)
	alerts = append(alerts, domain.AreaAlert{
		ID:         "sim_e1",
		Category:   "COMFORT",
		Type:       "STEEP_SLOPE",
		Title:      "Steep Slope",
		Message:    "Gradient over 8% for the next 50 meters.",
		Severity:   domain.SeverityMedium,
		Lat:        p5.Lat,
		Lng:        p5.Lng,
		Suggestion: "Assistance recommended for manual wheelchairs.",
		Metadata: map[string]interface{}{
			"slope_percent": 10,
		},
		CreatedAt: now,
	})

	return alerts
}
