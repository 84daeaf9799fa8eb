package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/accessnav-service/internal/domain"
)

type located struct {
	name string
	pt   domain.Point
}

func (l located) Location() domain.Point { return l.pt }

func TestFilterByProximity(t *testing.T) {
	ref := domain.Point{Lat: 0, Lng: 0}

	candidates := []located{
		{"inside", domain.Point{Lat: 0.05, Lng: 0.05}},
		{"lat outside", domain.Point{Lat: 0.2, Lng: 0.05}},
		{"lng outside", domain.Point{Lat: 0.05, Lng: -0.2}},
		{"exactly on boundary", domain.Point{Lat: 0.1, Lng: 0.05}},
		{"negative inside", domain.Point{Lat: -0.09, Lng: -0.09}},
	}

	kept := domain.FilterByProximity(ref, candidates, 0.1)

	assert.Len(t, kept, 2)
	assert.Equal(t, "inside", kept[0].name)
	assert.Equal(t, "negative inside", kept[1].name)
}

func TestFilterByProximityPreservesOrder(t *testing.T) {
	ref := domain.Point{Lat: 40.0, Lng: -74.0}
	candidates := []located{
		{"c", domain.Point{Lat: 40.05, Lng: -74.05}},
		{"a", domain.Point{Lat: 40.01, Lng: -74.01}},
		{"b", domain.Point{Lat: 40.03, Lng: -74.03}},
	}

	kept := domain.FilterByProximity(ref, candidates, 0.1)

	assert.Equal(t, []string{"c", "a", "b"}, []string{kept[0].name, kept[1].name, kept[2].name})
}

func TestFilterByProximityEmpty(t *testing.T) {
	kept := domain.FilterByProximity(domain.Point{}, []located{}, 0.1)
	assert.Empty(t, kept)
}
