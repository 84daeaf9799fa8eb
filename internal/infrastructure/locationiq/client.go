package locationiq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/accessnav-service/internal/config"
	"github.com/accessnav-service/internal/domain"
	"github.com/accessnav-service/internal/domain/repository"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewClient creates a directions client for the LocationIQ OSRM-style
// directions API. The HTTP timeout bounds every request: route planning
// must degrade to fallback geometry, never hang.
func NewClient(cfg *config.DirectionsConfig, logger *zap.Logger) repository.DirectionsRepository {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

type directionsResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry domain.GeoJSONGeometry `json:"geometry"`
		Duration float64                `json:"duration"`
		Distance float64                `json:"distance"`
	} `json:"routes"`
}

// GetDirections requests a route through the given waypoints. Points are
// ordered origin, stops, destination; the provider expects lng,lat pairs.
func (c *client) GetDirections(
	ctx context.Context,
	points []domain.Point,
	mode string,
) (*domain.DirectionsResult, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("directions require at least 2 points, got %d", len(points))
	}
	if mode != domain.ModeWalking && mode != domain.ModeDriving {
		return nil, fmt.Errorf("unsupported directions mode: %s", mode)
	}

	coordinates := make([]string, len(points))
	for i, p := range points {
		coordinates[i] = fmt.Sprintf("%f,%f", p.Lng, p.Lat)
	}
	coordinatesStr := strings.Join(coordinates, ";")

	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("overview", "full")
	query.Set("geometries", "geojson")
	query.Set("steps", "true")

	requestURL := fmt.Sprintf("%s/v1/directions/%s/%s?%s",
		c.baseURL, mode, coordinatesStr, query.Encode())

	c.logger.Debug("Calling directions API",
		zap.String("mode", mode),
		zap.Int("waypoints", len(points)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		c.logger.Error("Failed to create directions request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute directions request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Directions API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("directions API error: status %d", resp.StatusCode)
	}

	var directionsResp directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&directionsResp); err != nil {
		c.logger.Error("Failed to decode directions response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if directionsResp.Code != "Ok" || len(directionsResp.Routes) == 0 {
		c.logger.Warn("Directions API returned no routes",
			zap.String("code", directionsResp.Code),
			zap.Int("routes", len(directionsResp.Routes)))
		return nil, fmt.Errorf("directions API returned no routes (code: %s)", directionsResp.Code)
	}

	best := directionsResp.Routes[0]
	if len(best.Geometry.Coordinates) < 2 {
		return nil, fmt.Errorf("directions API returned degenerate geometry")
	}
	for _, pt := range best.Geometry.Coordinates {
		if len(pt) < 2 {
			return nil, fmt.Errorf("directions API returned degenerate geometry")
		}
	}

	c.logger.Debug("Directions API call successful",
		zap.Float64("duration_s", best.Duration),
		zap.Float64("distance_m", best.Distance),
		zap.Int("geometry_points", len(best.Geometry.Coordinates)))

	return &domain.DirectionsResult{
		Geometry:        best.Geometry,
		DurationSeconds: best.Duration,
		DistanceMeters:  best.Distance,
	}, nil
}
