package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name       string
		lat1, lng1 float64
		lat2, lng2 float64
		expected   float64
		delta      float64
	}{
		{
			name: "same point is zero",
			lat1: 14.5995, lng1: 120.9842,
			lat2: 14.5995, lng2: 120.9842,
			expected: 0,
			delta:    1e-9,
		},
		{
			name: "Manila to Cebu City",
			lat1: 14.5995, lng1: 120.9842,
			lat2: 10.3157, lng2: 123.8854,
			expected: 571.0,
			delta:    1.0,
		},
		{
			name: "Manila to Quezon City",
			lat1: 14.5995, lng1: 120.9842,
			lat2: 14.6760, lng2: 121.0437,
			expected: 10.65,
			delta:    0.05,
		},
		{
			name: "one tenth of a degree north",
			lat1: 0, lng1: 0,
			lat2: 0.1, lng2: 0,
			expected: 11.119,
			delta:    0.01,
		},
		{
			name: "antipodal points are half the circumference",
			lat1: 0, lng1: 0,
			lat2: 0, lng2: 180,
			expected: EarthRadiusKm * math.Pi,
			delta:    0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DistanceKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			assert.InDelta(t, tt.expected, d, tt.delta)
			assert.GreaterOrEqual(t, d, 0.0)
		})
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	pairs := [][4]float64{
		{14.5995, 120.9842, 10.3157, 123.8854},
		{-33.8688, 151.2093, 51.5074, -0.1278},
		{89.9, 179.9, -89.9, -179.9},
		{0, 0, 0, 0},
	}

	for _, p := range pairs {
		forward := DistanceKm(p[0], p[1], p[2], p[3])
		backward := DistanceKm(p[2], p[3], p[0], p[1])
		assert.InDelta(t, forward, backward, 1e-9)
	}
}

func TestDistanceKm_NonFiniteInputsPoison(t *testing.T) {
	// Malformed input is the caller's problem; the formula just propagates it.
	assert.True(t, math.IsNaN(DistanceKm(math.NaN(), 0, 0, 0)))
	assert.True(t, math.IsNaN(DistanceKm(0, math.Inf(1), 0, 0)))
}
