package pano_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrossett/alpano/internal/dem"
	"github.com/jrossett/alpano/internal/geom"
	"github.com/jrossett/alpano/internal/pano"
)

// flatSea is a discrete model reading 0 everywhere over a wide extent.
type flatSea struct {
	extent geom.Interval2D
}

func (f flatSea) Extent() geom.Interval2D { return f.extent }

func (f flatSea) ElevationSample(x, y int) float64 {
	if !f.extent.Contains(x, y) {
		panic(fmt.Sprintf("coordinate (%d, %d) outside test extent", x, y))
	}
	return 0
}

func (f flatSea) Close() error { return nil }

func seaModel() *dem.ContinuousModel {
	span := 60 * dem.SamplesPerDegree
	ext := geom.NewInterval2D(
		geom.NewInterval1D(-span, span),
		geom.NewInterval1D(-span, span))
	return dem.NewContinuousModel(flatSea{extent: ext})
}

// analyticHit solves h(x) = elev0 + x*tan(alt) + delta*x^2 = 0 for flat
// terrain, returning the nearer positive root.
func analyticHit(elev0, altitude float64) float64 {
	delta := (1 - 0.13) / (2 * geom.EarthRadius)
	b := math.Tan(altitude)
	disc := b*b - 4*delta*elev0
	return (-b - math.Sqrt(disc)) / (2 * delta)
}

func TestComputeFlatTerrain(t *testing.T) {
	params, err := pano.NewParameters(
		geom.NewGeoPoint(0.12, 0.2), 600,
		0, math.Pi/3, 30_000, 101, 101)
	require.NoError(t, err)

	p := pano.NewComputer(seaModel()).Compute(params)

	// Downward-looking rows hit the sea surface where the analytic
	// curvature-corrected ray equation says they should.
	for _, y := range []int{100, 85, 80, 70, 60, 56} {
		altitude := params.AltitudeForY(float64(y))
		want := analyticHit(600, altitude) / math.Cos(altitude)
		got := float64(p.DistanceAt(50, y))
		assert.InDelta(t, want, got, 6, "row %d", y)
		assert.InDelta(t, 0, float64(p.ElevationAt(50, y)), 1e-3, "row %d", y)
		assert.InDelta(t, 0, float64(p.SlopeAt(50, y)), 1e-6, "row %d", y)
	}

	// The horizon row and everything above it find no terrain within range.
	for _, y := range []int{0, 25, 50} {
		assert.True(t, math.IsInf(float64(p.DistanceAt(50, y)), 1), "row %d", y)
		assert.Zero(t, p.ElevationAt(50, y))
	}
}

func TestComputeHitDistancesGrowUpward(t *testing.T) {
	params, err := pano.NewParameters(
		geom.NewGeoPoint(0.12, 0.2), 600,
		0, math.Pi/3, 30_000, 11, 101)
	require.NoError(t, err)

	p := pano.NewComputer(seaModel()).Compute(params)

	prev := 0.0
	for y := 100; y >= 0; y-- {
		d := float64(p.DistanceAt(5, y))
		if math.IsInf(d, 1) {
			// Once a row misses, every row above it misses too.
			for ; y >= 0; y-- {
				assert.True(t, math.IsInf(float64(p.DistanceAt(5, y)), 1))
			}
			break
		}
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
}

func TestComputeHitPositionsLieAlongTheRay(t *testing.T) {
	params, err := pano.NewParameters(
		geom.NewGeoPoint(0.12, 0.2), 600,
		0, math.Pi/3, 30_000, 101, 101)
	require.NoError(t, err)

	p := pano.NewComputer(seaModel()).Compute(params)

	// The center column looks due north: hits keep the observer's
	// longitude and lie north of it.
	lon := float64(p.LongitudeAt(50, 90))
	lat := float64(p.LatitudeAt(50, 90))
	assert.InDelta(t, 0.12, lon, 1e-4)
	assert.Greater(t, lat, 0.2)
}
