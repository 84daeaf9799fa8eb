package domain

// Point represents coordinates of a single location.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeoJSONGeometry is a LineString in GeoJSON coordinate order (lng, lat).
type GeoJSONGeometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// GeoJSONFeature wraps route geometry together with duration/distance
// properties so the UI gets a single consistent shape.
type GeoJSONFeature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   GeoJSONGeometry        `json:"geometry"`
}

// NewLineStringFeature builds a Feature around a LineString.
func NewLineStringFeature(coordinates [][]float64, properties map[string]interface{}) GeoJSONFeature {
	if properties == nil {
		properties = map[string]interface{}{}
	}
	return GeoJSONFeature{
		Type:       "Feature",
		Properties: properties,
		Geometry: GeoJSONGeometry{
			Type:        "LineString",
			Coordinates: coordinates,
		},
	}
}

// DirectionsResult is what the external directions provider returns.
type DirectionsResult struct {
	Geometry        GeoJSONGeometry
	DurationSeconds float64
	DistanceMeters  float64
}

// RouteAlert is a hazard marker placed along a planned route.
// Real alerts originate from the store; synthetic ones carry no id,
// trust score or photo.
type RouteAlert struct {
	ID         string     `json:"id,omitempty"`
	Type       HazardType `json:"type"`
	Message    string     `json:"message"`
	Lat        float64    `json:"lat"`
	Lng        float64    `json:"lng"`
	TrustScore *float64   `json:"trust_score,omitempty"`
	PhotoURL   *string    `json:"photo_url,omitempty"`
	IsReal     bool       `json:"is_real"`
}

// ProfileMeta carries presentation hints for profiles that need them
// (currently only Elderly).
type ProfileMeta struct {
	LargeText   bool `json:"largeText"`
	SlowerAudio bool `json:"slowerAudio"`
}

// Stop is an intermediate waypoint of a saved or requested route.
type Stop struct {
	Name string  `json:"name,omitempty"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}
