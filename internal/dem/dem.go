// Package dem implements the elevation model layer: discrete raster models
// backed by HGT tiles, tile composition, the continuous bilinear wrapper and
// the per-ray elevation profile.
package dem

import (
	"fmt"
	"math"

	"github.com/jrossett/alpano/internal/geom"
)

const (
	// SamplesPerDegree is the raster resolution of the discrete models, one
	// sample every 1/3600 of a degree.
	SamplesPerDegree = 3600

	// SamplesPerRadian is the raster resolution expressed per radian.
	SamplesPerRadian = SamplesPerDegree * 180 / math.Pi
)

// SampleIndex returns the fractional grid index covering the given angle in
// radians.
func SampleIndex(angle float64) float64 {
	return angle * SamplesPerRadian
}

// DiscreteModel is a rectangular raster of elevation samples. Implementations
// own a backing resource released by Close; sampling a released model fails
// loudly instead of returning stale data.
type DiscreteModel interface {
	// Extent returns the rectangular index range of valid grid coordinates.
	Extent() geom.Interval2D

	// ElevationSample returns the elevation in meters at grid coordinate
	// (x, y). Panics when (x, y) lies outside the extent or the model has
	// been closed.
	ElevationSample(x, y int) float64

	// Close releases the backing resource. Safe to call more than once.
	Close() error
}

// Union composes two discrete models into one covering the union of their
// extents. It fails when the extents are not unionable (their union would
// leave gaps). Where the extents overlap the first model wins.
func Union(d1, d2 DiscreteModel) (DiscreteModel, error) {
	if !d1.Extent().IsUnionableWith(d2.Extent()) {
		return nil, fmt.Errorf("dem: extents %v and %v are not unionable", d1.Extent(), d2.Extent())
	}
	return &compositeModel{
		d1:     d1,
		d2:     d2,
		extent: d1.Extent().Union(d2.Extent()),
	}, nil
}
