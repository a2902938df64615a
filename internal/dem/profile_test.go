package dem_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jrossett/alpano/internal/dem"
	"github.com/jrossett/alpano/internal/geom"
)

// flatModel returns a continuous model that is 0 everywhere over a large
// extent around the origin.
func flatModel() *dem.ContinuousModel {
	span := 20 * dem.SamplesPerDegree
	return dem.NewContinuousModel(newGridModel(extent(-span, span, -span, span), nil))
}

func TestElevationProfilePositionAtOrigin(t *testing.T) {
	origin := geom.NewGeoPoint(0.1, 0.2)
	p := dem.NewElevationProfile(flatModel(), origin, 0, 100_000)

	got := p.PositionAt(0)
	assert.InDelta(t, origin.Longitude(), got.Longitude(), 1e-9)
	assert.InDelta(t, origin.Latitude(), got.Latitude(), 1e-9)
}

func TestElevationProfileHeadingNorth(t *testing.T) {
	origin := geom.NewGeoPoint(0.1, 0.2)
	p := dem.NewElevationProfile(flatModel(), origin, 0, 100_000)

	for _, d := range []float64{1000, 4096, 10_000, 100_000} {
		got := p.PositionAt(d)
		assert.InDelta(t, origin.Latitude()+geom.MetersToRadians(d), got.Latitude(), 1e-7,
			"distance %g", d)
		assert.InDelta(t, origin.Longitude(), got.Longitude(), 1e-7, "distance %g", d)
	}
}

func TestElevationProfileHeadingEastOnEquator(t *testing.T) {
	origin := geom.NewGeoPoint(0, 0)
	p := dem.NewElevationProfile(flatModel(), origin, math.Pi/2, 50_000)

	got := p.PositionAt(30_000)
	assert.InDelta(t, geom.MetersToRadians(30_000), got.Longitude(), 1e-7)
	assert.InDelta(t, 0, got.Latitude(), 1e-7)
}

func TestElevationProfileFlatTerrain(t *testing.T) {
	p := dem.NewElevationProfile(flatModel(), geom.NewGeoPoint(0.1, 0.2), 1, 50_000)

	assert.InDelta(t, 0, p.ElevationAt(12_345), 1e-9)
	assert.InDelta(t, 0, p.SlopeAt(12_345), 1e-9)
}

func TestElevationProfilePreconditions(t *testing.T) {
	m := flatModel()
	origin := geom.NewGeoPoint(0, 0)

	assert.Panics(t, func() { dem.NewElevationProfile(m, origin, -0.1, 1000) })
	assert.Panics(t, func() { dem.NewElevationProfile(m, origin, geom.Pi2, 1000) })
	assert.Panics(t, func() { dem.NewElevationProfile(m, origin, 0, 0) })

	p := dem.NewElevationProfile(m, origin, 0, 1000)
	assert.Panics(t, func() { p.PositionAt(-1) })
	assert.Panics(t, func() { p.PositionAt(1001) })
	assert.NotPanics(t, func() { p.PositionAt(1000) })
}
