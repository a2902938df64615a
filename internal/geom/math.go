// Package geom provides the scalar, angular and interval primitives used by
// the elevation model and the panorama computer.
package geom

import (
	"fmt"
	"math"
)

// Pi2 is the full circle in radians.
const Pi2 = 2 * math.Pi

// Sq returns x squared.
func Sq(x float64) float64 {
	return x * x
}

// FloorMod returns the remainder of the floored division of x by y. Unlike
// math.Mod the result has the sign of y.
func FloorMod(x, y float64) float64 {
	return x - y*math.Floor(x/y)
}

// Haversin returns half the versine of x.
func Haversin(x float64) float64 {
	return Sq(math.Sin(x / 2))
}

// AngularDistance returns the signed shortest difference from angle a1 to
// angle a2, in (-Pi, Pi].
func AngularDistance(a1, a2 float64) float64 {
	return FloorMod(a2-a1+math.Pi, Pi2) - math.Pi
}

// Lerp linearly interpolates between y0 and y1. x is the fractional position
// between the two values.
func Lerp(y0, y1, x float64) float64 {
	return y0 + x*(y1-y0)
}

// Bilerp bilinearly interpolates between the four corner values of a unit
// cell. x and y are the fractional positions inside the cell.
func Bilerp(z00, z10, z01, z11, x, y float64) float64 {
	return Lerp(Lerp(z00, z10, x), Lerp(z01, z11, x), y)
}

// rootSlack absorbs floating point error when checking that a bracket holds a
// sign change.
const rootSlack = 1e-10

// FirstIntervalContainingRoot scans [minX, maxX] left to right in windows of
// size dx and returns the lower bound of the first window whose endpoints
// show a sign change of f. It returns +Inf when no such window exists before
// maxX; a trailing window that would extend past maxX is never evaluated.
// A root strictly inside a window with equal endpoint signs is missed; the
// window size must be chosen small against the variation of f.
//
// Panics when minX > maxX or dx <= 0.
func FirstIntervalContainingRoot(f func(float64) float64, minX, maxX, dx float64) float64 {
	if minX > maxX {
		panic(fmt.Sprintf("geom: inverted search range [%g, %g]", minX, maxX))
	}
	if dx <= 0 {
		panic(fmt.Sprintf("geom: non-positive search step %g", dx))
	}

	lo := minX
	f1 := f(lo)
	for lo < maxX {
		hi := lo + dx
		if hi > maxX {
			break
		}
		f2 := f(hi)
		if f1*f2 <= 0 {
			return lo
		}
		lo, f1 = hi, f2
	}
	return math.Inf(1)
}

// ImproveRoot narrows a bracket [x1, x2] known to contain a sign change of f
// by bisection until its width is at most epsilon, and returns its lower
// bound.
//
// Panics when f(x1)*f(x2) exceeds a small positive slack, i.e. when the
// bracket demonstrably holds no sign change.
func ImproveRoot(f func(float64) float64, x1, x2, epsilon float64) float64 {
	if f(x1)*f(x2) > rootSlack {
		panic(fmt.Sprintf("geom: no sign change of f on [%g, %g]", x1, x2))
	}

	for x2-x1 > epsilon {
		mid := (x1 + x2) / 2
		if f(mid)*f(x1) <= 0 {
			x2 = mid
		} else {
			x1 = mid
		}
	}
	return x1
}
