package geom

import (
	"fmt"
	"math"
)

// Azimuths are measured clockwise from geographic north, with the canonical
// range [0, Pi2). Mathematical angles grow counter-clockwise; the two
// conventions are mirror images of one another, so the conversion in both
// directions is the same negation.

// IsCanonicalAzimuth reports whether azimuth lies in [0, Pi2).
func IsCanonicalAzimuth(azimuth float64) bool {
	return azimuth >= 0 && azimuth < Pi2
}

// CanonicalizeAzimuth maps an arbitrary angle into [0, Pi2).
func CanonicalizeAzimuth(azimuth float64) float64 {
	if IsCanonicalAzimuth(azimuth) {
		return azimuth
	}
	azimuth = math.Mod(azimuth, Pi2)
	if azimuth < 0 {
		azimuth += Pi2
	}
	return azimuth
}

// AzimuthToMath converts a canonical azimuth to the counter-clockwise
// mathematical convention. Panics when azimuth is not canonical.
func AzimuthToMath(azimuth float64) float64 {
	checkCanonical(azimuth)
	return CanonicalizeAzimuth(-azimuth)
}

// AzimuthFromMath converts a canonical counter-clockwise angle to an
// azimuth. Panics when angle is not canonical.
func AzimuthFromMath(angle float64) float64 {
	checkCanonical(angle)
	return CanonicalizeAzimuth(-angle)
}

// OctantString returns the cardinal or intercardinal direction the azimuth
// points to, built from the four direction names. Panics when azimuth is not
// canonical.
func OctantString(azimuth float64, n, e, s, w string) string {
	checkCanonical(azimuth)
	octants := [8]string{n, n + e, e, s + e, s, s + w, w, n + w}
	shifted := FloorMod(azimuth+Pi2/16, Pi2)
	return octants[int(math.Floor(shifted/(Pi2/8)))]
}

func checkCanonical(azimuth float64) {
	if !IsCanonicalAzimuth(azimuth) {
		panic(fmt.Sprintf("geom: non-canonical azimuth %g", azimuth))
	}
}
