package dem

import (
	"fmt"
	"math"

	"github.com/jrossett/alpano/internal/geom"
)

// profileStepExponent sets the spacing of the precomputed profile samples:
// one geographic position every 2^12 = 4096 meters along the ray.
const profileStepExponent = 12

// ElevationProfile caches geographic positions at regular distances along
// one great-circle ray, so that elevation, slope and position at an
// arbitrary distance reduce to a linear interpolation between two cached
// samples instead of a direct geodesic solve.
type ElevationProfile struct {
	model     *ContinuousModel
	length    float64
	positions []geom.GeoPoint
}

// NewElevationProfile builds the profile for the ray leaving origin at the
// given canonical azimuth, usable for distances in [0, length]. Panics when
// azimuth is not canonical or length is not positive; those arguments come
// from already-validated view parameters.
func NewElevationProfile(model *ContinuousModel, origin geom.GeoPoint, azimuth, length float64) *ElevationProfile {
	if model == nil {
		panic("dem: nil continuous model")
	}
	if !geom.IsCanonicalAzimuth(azimuth) {
		panic(fmt.Sprintf("dem: non-canonical profile azimuth %g", azimuth))
	}
	if length <= 0 {
		panic(fmt.Sprintf("dem: non-positive profile length %g", length))
	}

	n := int(math.Ldexp(length, -profileStepExponent)) + 2
	positions := make([]geom.GeoPoint, n)

	// Direct geodesic on the sphere: latitude from the spherical law of
	// cosines, longitude from the spherical law of sines.
	sinLat0 := math.Sin(origin.Latitude())
	cosLat0 := math.Cos(origin.Latitude())
	heading := geom.AzimuthToMath(azimuth)
	for i := range positions {
		arc := geom.MetersToRadians(math.Ldexp(float64(i), profileStepExponent))
		lat := math.Asin(sinLat0*math.Cos(arc) + cosLat0*math.Sin(arc)*math.Cos(heading))
		lon := geom.FloorMod(
			origin.Longitude()-math.Asin(math.Sin(arc)*math.Sin(heading)/math.Cos(lat))+math.Pi,
			geom.Pi2) - math.Pi
		positions[i] = geom.NewGeoPoint(lon, lat)
	}

	return &ElevationProfile{model: model, length: length, positions: positions}
}

// PositionAt returns the geographic position at distance x along the ray.
// Panics when x is outside [0, length].
func (p *ElevationProfile) PositionAt(x float64) geom.GeoPoint {
	p.checkDistance(x)
	i := math.Ldexp(x, -profileStepExponent)
	j := int(i)
	frac := i - float64(j)
	return geom.NewGeoPoint(
		geom.Lerp(p.positions[j].Longitude(), p.positions[j+1].Longitude(), frac),
		geom.Lerp(p.positions[j].Latitude(), p.positions[j+1].Latitude(), frac))
}

// ElevationAt returns the terrain elevation in meters at distance x along
// the ray. Panics when x is outside [0, length].
func (p *ElevationProfile) ElevationAt(x float64) float64 {
	return p.model.ElevationAt(p.PositionAt(x))
}

// SlopeAt returns the terrain slope in radians at distance x along the ray.
// Panics when x is outside [0, length].
func (p *ElevationProfile) SlopeAt(x float64) float64 {
	return p.model.SlopeAt(p.PositionAt(x))
}

func (p *ElevationProfile) checkDistance(x float64) {
	if x < 0 || x > p.length {
		panic(fmt.Sprintf("dem: profile distance %g outside [0, %g]", x, p.length))
	}
}
