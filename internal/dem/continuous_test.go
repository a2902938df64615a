package dem_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jrossett/alpano/internal/dem"
	"github.com/jrossett/alpano/internal/geom"
)

// gridPoint returns the geographic point whose fractional grid index is
// exactly (x, y).
func gridPoint(x, y float64) geom.GeoPoint {
	return geom.NewGeoPoint(x/dem.SamplesPerRadian, y/dem.SamplesPerRadian)
}

func TestContinuousElevationAtGridAlignedPoints(t *testing.T) {
	discrete := newGridModel(extent(0, 10, 0, 10), func(x, y int) float64 {
		return float64(100*x + y)
	})
	c := dem.NewContinuousModel(discrete)

	assert.InDelta(t, 0, c.ElevationAt(gridPoint(0, 0)), 1e-6)
	assert.InDelta(t, 304, c.ElevationAt(gridPoint(3, 4)), 1e-6)
	assert.InDelta(t, 1010, c.ElevationAt(gridPoint(10, 10)), 1e-6)
}

func TestContinuousElevationInterpolates(t *testing.T) {
	discrete := newGridModel(extent(0, 10, 0, 10), func(x, y int) float64 {
		return float64(x)
	})
	c := dem.NewContinuousModel(discrete)

	// Halfway between the columns x=2 and x=3.
	assert.InDelta(t, 2.5, c.ElevationAt(gridPoint(2.5, 5)), 1e-6)
}

func TestContinuousZeroFallbackOutsideExtent(t *testing.T) {
	discrete := newGridModel(extent(0, 10, 0, 10), func(x, y int) float64 {
		return 500
	})
	c := dem.NewContinuousModel(discrete)

	// Far outside the extent every neighbor reads 0.
	assert.InDelta(t, 0, c.ElevationAt(gridPoint(100, 100)), 1e-6)

	// At the eastern edge the +x neighbor reads 0, pulling the
	// interpolated value down.
	edge := c.ElevationAt(gridPoint(10, 5))
	assert.InDelta(t, 500, edge, 1e-3)
	justPast := c.ElevationAt(gridPoint(10.5, 5))
	assert.InDelta(t, 250, justPast, 1e-3)
}

func TestContinuousSlopeFlatTerrainIsZero(t *testing.T) {
	discrete := newGridModel(extent(0, 10, 0, 10), func(x, y int) float64 {
		return 1234
	})
	c := dem.NewContinuousModel(discrete)

	assert.InDelta(t, 0, c.SlopeAt(gridPoint(4, 4)), 1e-9)
}

func TestContinuousSlopeRampTerrain(t *testing.T) {
	// Terrain rising by the metric sample spacing per sample along +x has a
	// 45 degree slope in the x direction.
	spacing := geom.RadiansToMeters(1 / dem.SamplesPerRadian)
	discrete := newGridModel(extent(0, 10, 0, 10), func(x, y int) float64 {
		return float64(x) * spacing
	})
	c := dem.NewContinuousModel(discrete)

	assert.InDelta(t, math.Pi/4, c.SlopeAt(gridPoint(4, 4)), 1e-9)
}
