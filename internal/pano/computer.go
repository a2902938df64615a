package pano

import (
	"math"

	"github.com/jrossett/alpano/internal/dem"
	"github.com/jrossett/alpano/internal/geom"
)

const (
	// coarseStep is the window size of the bracketing pass. A window this
	// wide can alias over a terrain spike, which is accepted given the
	// raster resolution.
	coarseStep = 64.0

	// fineStep is the bracket width the bisection refines down to.
	fineStep = 4.0

	// refractionCoefficient is the fraction of the earth curvature canceled
	// by standard atmospheric refraction.
	refractionCoefficient = 0.13

	// CurvatureDelta folds earth curvature and refraction into a single
	// quadratic correction, letting the search treat each ray as straight.
	CurvatureDelta = (1 - refractionCoefficient) / (2 * geom.EarthRadius)
)

// Computer runs the per-pixel visibility search over one continuous
// elevation model.
type Computer struct {
	dem *dem.ContinuousModel
}

// NewComputer returns a computer over the given terrain.
func NewComputer(model *dem.ContinuousModel) *Computer {
	if model == nil {
		panic("pano: nil elevation model")
	}
	return &Computer{dem: model}
}

// RayToGroundDistance returns the signed height of a ray above the terrain
// of profile as a function of the distance along the ray. The ray starts at
// elevation ray0 with slope raySlope; the quadratic term corrects for earth
// curvature and refraction.
func RayToGroundDistance(profile *dem.ElevationProfile, ray0, raySlope float64) func(float64) float64 {
	return func(x float64) float64 {
		return ray0 + x*raySlope - profile.ElevationAt(x) + CurvatureDelta*geom.Sq(x)
	}
}

// Compute fills a panorama for the given view parameters. Columns are
// independent; within a column rows are swept from the bottom of the image
// upward, so the carried minimum search distance only grows: a less steeply
// downward ray can only hit terrain at or beyond the previous hit. Once a
// ray finds no terrain, no higher ray in the column can either, and the
// column's remaining pixels keep their no-hit defaults.
func (c *Computer) Compute(params *Parameters) *Panorama {
	builder := NewBuilder(params)
	maxDistance := float64(params.MaxDistance())

	for x := 0; x < params.Width(); x++ {
		profile := dem.NewElevationProfile(c.dem, params.ObserverPosition(),
			params.AzimuthForX(float64(x)), maxDistance)
		minDistance := 0.0

		for y := params.Height() - 1; y >= 0; y-- {
			altitude := params.AltitudeForY(float64(y))
			distanceToGround := RayToGroundDistance(profile,
				float64(params.ObserverElevation()), math.Tan(altitude))

			lo := geom.FirstIntervalContainingRoot(distanceToGround,
				minDistance, maxDistance, coarseStep)
			if lo > maxDistance {
				break
			}

			hi := lo + coarseStep
			if hi > maxDistance {
				hi = maxDistance
			}
			hit := geom.ImproveRoot(distanceToGround, lo, hi, fineStep)
			position := profile.PositionAt(hit)

			builder.
				SetDistanceAt(x, y, float32(hit/math.Cos(altitude))).
				SetLongitudeAt(x, y, float32(position.Longitude())).
				SetLatitudeAt(x, y, float32(position.Latitude())).
				SetElevationAt(x, y, float32(profile.ElevationAt(hit))).
				SetSlopeAt(x, y, float32(profile.SlopeAt(hit)))

			minDistance = hit
		}
	}
	return builder.Build()
}
