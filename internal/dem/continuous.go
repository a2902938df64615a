package dem

import (
	"math"

	"github.com/jrossett/alpano/internal/geom"
)

// metricSampleSpacing is the ground distance in meters between two adjacent
// grid samples.
var metricSampleSpacing = geom.RadiansToMeters(1 / SamplesPerRadian)

// ContinuousModel turns a discrete raster into a smooth elevation and slope
// field by bilinear interpolation in fractional grid-index space.
//
// Samples outside the discrete extent read as elevation 0. This sea-level
// fallback biases slopes near data edges; it is intentional and kept for
// compatibility with reference outputs.
type ContinuousModel struct {
	dem DiscreteModel
}

// NewContinuousModel wraps the given discrete model.
func NewContinuousModel(dem DiscreteModel) *ContinuousModel {
	if dem == nil {
		panic("dem: nil discrete model")
	}
	return &ContinuousModel{dem: dem}
}

// ElevationAt returns the interpolated elevation in meters at p.
func (c *ContinuousModel) ElevationAt(p geom.GeoPoint) float64 {
	return c.interpolate(p, c.elevationSample)
}

// SlopeAt returns the interpolated slope at p, in radians, as the angle
// between the local terrain normal and the vertical.
func (c *ContinuousModel) SlopeAt(p geom.GeoPoint) float64 {
	return c.interpolate(p, c.slopeSample)
}

func (c *ContinuousModel) interpolate(p geom.GeoPoint, sample func(x, y int) float64) float64 {
	xIndex := SampleIndex(p.Longitude())
	yIndex := SampleIndex(p.Latitude())
	x0 := int(math.Floor(xIndex))
	y0 := int(math.Floor(yIndex))

	return geom.Bilerp(
		sample(x0, y0), sample(x0+1, y0),
		sample(x0, y0+1), sample(x0+1, y0+1),
		xIndex-float64(x0), yIndex-float64(y0))
}

// elevationSample reads one grid sample, substituting 0 outside the extent.
func (c *ContinuousModel) elevationSample(x, y int) float64 {
	if !c.dem.Extent().Contains(x, y) {
		return 0
	}
	return c.dem.ElevationSample(x, y)
}

// slopeSample derives the slope at one grid point from the elevation deltas
// toward its +x and +y neighbors, normalized to the metric grid spacing.
func (c *ContinuousModel) slopeSample(x, y int) float64 {
	here := c.elevationSample(x, y)
	dza := c.elevationSample(x+1, y) - here
	dzb := c.elevationSample(x, y+1) - here
	d := metricSampleSpacing
	return math.Acos(d / math.Sqrt(geom.Sq(dza)+geom.Sq(dzb)+geom.Sq(d)))
}
