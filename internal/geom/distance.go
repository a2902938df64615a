package geom

// EarthRadius is the mean Earth radius in meters of the spherical model all
// geodesic computations assume.
const EarthRadius = 6_371_000.0

// MetersToRadians converts a distance along the Earth surface to the angle
// it subtends at the Earth center.
func MetersToRadians(distanceInMeters float64) float64 {
	return distanceInMeters / EarthRadius
}

// RadiansToMeters converts an angle at the Earth center to the distance it
// subtends along the Earth surface.
func RadiansToMeters(distanceInRadians float64) float64 {
	return distanceInRadians * EarthRadius
}
