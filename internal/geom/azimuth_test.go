package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jrossett/alpano/internal/geom"
)

func TestCanonicalizeAzimuth(t *testing.T) {
	// Canonical inputs come back unchanged.
	for _, a := range []float64{0, 1, math.Pi, geom.Pi2 - 1e-9} {
		assert.Equal(t, a, geom.CanonicalizeAzimuth(a))
		assert.True(t, geom.IsCanonicalAzimuth(a))
	}

	assert.InDelta(t, 0, geom.CanonicalizeAzimuth(geom.Pi2), 1e-12)
	assert.InDelta(t, math.Pi, geom.CanonicalizeAzimuth(-math.Pi), 1e-12)
	assert.InDelta(t, 1, geom.CanonicalizeAzimuth(1+3*geom.Pi2), 1e-12)
	assert.False(t, geom.IsCanonicalAzimuth(geom.Pi2))
	assert.False(t, geom.IsCanonicalAzimuth(-0.1))
}

func TestAzimuthMathRoundTrip(t *testing.T) {
	for _, a := range []float64{0, 0.5, math.Pi / 2, math.Pi, 5} {
		assert.InDelta(t, a, geom.AzimuthToMath(geom.AzimuthFromMath(a)), 1e-12)
		assert.InDelta(t, a, geom.AzimuthFromMath(geom.AzimuthToMath(a)), 1e-12)
	}
}

func TestAzimuthConversionPanicsOnNonCanonical(t *testing.T) {
	assert.Panics(t, func() { geom.AzimuthToMath(-0.1) })
	assert.Panics(t, func() { geom.AzimuthFromMath(geom.Pi2) })
}

func TestOctantString(t *testing.T) {
	tests := []struct {
		azimuth float64
		want    string
	}{
		{0, "N"},
		{math.Pi / 4, "NE"},
		{math.Pi / 2, "E"},
		{math.Pi, "S"},
		{3 * math.Pi / 2, "W"},
		{7 * math.Pi / 4, "NW"},
		{geom.Pi2 - 0.01, "N"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, geom.OctantString(tt.azimuth, "N", "E", "S", "W"))
	}
}
