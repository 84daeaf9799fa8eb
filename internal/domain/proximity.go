package domain

import "math"

// DefaultProximityDegree is roughly 10 km at mid-latitudes.
const DefaultProximityDegree = 0.1

// Locatable is anything that sits at a coordinate pair.
type Locatable interface {
	Location() Point
}

// FilterByProximity keeps items whose latitude and longitude both lie
// strictly within maxDegreeDelta degrees of the reference point. This is
// an axis-aligned bounding box, not a geodesic distance: it distorts at
// high latitude and near the antimeridian, which is acceptable for
// city-scale filtering. Input order is preserved.
func FilterByProximity[T Locatable](ref Point, candidates []T, maxDegreeDelta float64) []T {
	kept := make([]T, 0, len(candidates))
	for _, c := range candidates {
		loc := c.Location()
		if math.Abs(loc.Lat-ref.Lat) < maxDegreeDelta && math.Abs(loc.Lng-ref.Lng) < maxDegreeDelta {
			kept = append(kept, c)
		}
	}
	return kept
}
