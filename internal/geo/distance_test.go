package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceBetweenCoordinates_SamePoint(t *testing.T) {
	p := Coordinate{Latitude: -27.209205, Longitude: -49.640109}

	assert.Equal(t, 0.0, DistanceBetweenCoordinates(p, p))
}

func TestDistanceBetweenCoordinates_Symmetric(t *testing.T) {
	a := Coordinate{Latitude: -27.209205, Longitude: -49.640109}
	b := Coordinate{Latitude: -27.059205, Longitude: -49.400109}

	assert.Equal(t, DistanceBetweenCoordinates(a, b), DistanceBetweenCoordinates(b, a))
}

func TestDistanceBetweenCoordinates_KnownDistances(t *testing.T) {
	tests := []struct {
		name     string
		from     Coordinate
		to       Coordinate
		expected float64
		delta    float64
	}{
		{
			name:     "one degree of latitude",
			from:     Coordinate{Latitude: 0, Longitude: 0},
			to:       Coordinate{Latitude: 1, Longitude: 0},
			expected: 111.195,
			delta:    0.01,
		},
		{
			name:     "antipodal points",
			from:     Coordinate{Latitude: 0, Longitude: 0},
			to:       Coordinate{Latitude: 0, Longitude: 180},
			expected: 20015.087,
			delta:    0.01,
		},
		{
			name:     "gym and nearby user",
			from:     Coordinate{Latitude: -27.209205, Longitude: -49.640109},
			to:       Coordinate{Latitude: -27.204225, Longitude: -49.640449},
			expected: 0.554,
			delta:    0.005,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DistanceBetweenCoordinates(tt.from, tt.to), tt.delta)
		})
	}
}
