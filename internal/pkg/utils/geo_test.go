package utils_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/accessnav-service/internal/pkg/utils"
)

func TestHaversineDistance(t *testing.T) {
	// New York City Hall to Times Square, roughly 5.3 km.
	d := utils.HaversineDistance(40.7128, -74.0060, 40.7580, -73.9855)
	assert.InDelta(t, 5.3, d, 0.3)

	assert.Zero(t, utils.HaversineDistance(40.7128, -74.0060, 40.7128, -74.0060))
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(40.7128, -74.0060))
	assert.True(t, utils.ValidateCoordinates(-90, 180))

	assert.False(t, utils.ValidateCoordinates(90.0001, 0))
	assert.False(t, utils.ValidateCoordinates(0, -180.0001))
	assert.False(t, utils.ValidateCoordinates(math.NaN(), 0))
	assert.False(t, utils.ValidateCoordinates(0, math.Inf(1)))
}
