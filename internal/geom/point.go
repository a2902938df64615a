package geom

import (
	"fmt"
	"math"
)

// GeoPoint is a point on the globe, in radians. Immutable.
type GeoPoint struct {
	longitude, latitude float64
}

// NewGeoPoint returns the point at the given longitude and latitude in
// radians. Panics when longitude is outside [-Pi, Pi] or latitude is outside
// [-Pi/2, Pi/2].
func NewGeoPoint(longitude, latitude float64) GeoPoint {
	if longitude < -math.Pi || longitude > math.Pi ||
		latitude < -math.Pi/2 || latitude > math.Pi/2 {
		panic(fmt.Sprintf("geom: coordinates (%g, %g) out of range", longitude, latitude))
	}
	return GeoPoint{longitude: longitude, latitude: latitude}
}

// Longitude returns the longitude in radians.
func (p GeoPoint) Longitude() float64 { return p.longitude }

// Latitude returns the latitude in radians.
func (p GeoPoint) Latitude() float64 { return p.latitude }

// DistanceTo returns the great-circle distance to that, in meters, using the
// haversine formula on the spherical Earth model.
func (p GeoPoint) DistanceTo(that GeoPoint) float64 {
	angle := 2 * math.Asin(math.Sqrt(
		Haversin(p.latitude-that.latitude)+
			math.Cos(p.latitude)*math.Cos(that.latitude)*Haversin(p.longitude-that.longitude)))
	return RadiansToMeters(angle)
}

// AzimuthTo returns the initial bearing from p to that as a canonical
// azimuth.
func (p GeoPoint) AzimuthTo(that GeoPoint) float64 {
	angle := math.Atan2(
		math.Sin(p.longitude-that.longitude)*math.Cos(that.latitude),
		math.Cos(p.latitude)*math.Sin(that.latitude)-
			math.Sin(p.latitude)*math.Cos(that.latitude)*math.Cos(p.longitude-that.longitude))
	return AzimuthFromMath(CanonicalizeAzimuth(angle))
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", p.longitude*180/math.Pi, p.latitude*180/math.Pi)
}
