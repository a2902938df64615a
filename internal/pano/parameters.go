// Package pano computes terrain-visibility panoramas: for every pixel of a
// view raster it finds the first terrain intersection along the pixel's ray
// and records the hit's distance, position, elevation and slope.
package pano

import (
	"fmt"

	"github.com/jrossett/alpano/internal/geom"
)

// Parameters describes the observer pose and the output raster of one
// panorama, and maps pixel coordinates to view angles in both directions.
// Immutable once constructed.
type Parameters struct {
	observerPosition      geom.GeoPoint
	observerElevation     int
	centerAzimuth         float64
	horizontalFieldOfView float64
	verticalFieldOfView   float64
	maxDistance           int
	width, height         int

	anglePerPixel    float64
	pixelsPerRadian  float64
	horizontalCenter float64
	verticalCenter   float64
}

// NewParameters validates and derives the view geometry. centerAzimuth must
// be canonical, horizontalFieldOfView in (0, 2*Pi], maxDistance positive and
// width/height at least one pixel.
func NewParameters(observerPosition geom.GeoPoint, observerElevation int,
	centerAzimuth, horizontalFieldOfView float64, maxDistance, width, height int) (*Parameters, error) {

	if !geom.IsCanonicalAzimuth(centerAzimuth) {
		return nil, fmt.Errorf("pano: center azimuth %g is not canonical", centerAzimuth)
	}
	if horizontalFieldOfView <= 0 || horizontalFieldOfView > geom.Pi2 {
		return nil, fmt.Errorf("pano: horizontal field of view %g outside (0, 2*Pi]", horizontalFieldOfView)
	}
	if maxDistance <= 0 {
		return nil, fmt.Errorf("pano: non-positive max distance %d", maxDistance)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pano: non-positive raster size %dx%d", width, height)
	}

	p := &Parameters{
		observerPosition:      observerPosition,
		observerElevation:     observerElevation,
		centerAzimuth:         centerAzimuth,
		horizontalFieldOfView: horizontalFieldOfView,
		maxDistance:           maxDistance,
		width:                 width,
		height:                height,
	}
	// The vertical field of view follows from the aspect ratio at equal
	// angular pixel pitch.
	p.verticalFieldOfView = horizontalFieldOfView * float64(height-1) / float64(width-1)
	p.anglePerPixel = horizontalFieldOfView / float64(width-1)
	p.pixelsPerRadian = float64(width-1) / horizontalFieldOfView
	p.horizontalCenter = float64(width-1) / 2
	p.verticalCenter = float64(height-1) / 2
	return p, nil
}

// ObserverPosition returns the observer's geographic position.
func (p *Parameters) ObserverPosition() geom.GeoPoint { return p.observerPosition }

// ObserverElevation returns the observer's elevation in meters.
func (p *Parameters) ObserverElevation() int { return p.observerElevation }

// CenterAzimuth returns the azimuth of the view center.
func (p *Parameters) CenterAzimuth() float64 { return p.centerAzimuth }

// HorizontalFieldOfView returns the horizontal field of view in radians.
func (p *Parameters) HorizontalFieldOfView() float64 { return p.horizontalFieldOfView }

// VerticalFieldOfView returns the vertical field of view in radians.
func (p *Parameters) VerticalFieldOfView() float64 { return p.verticalFieldOfView }

// MaxDistance returns the maximum render distance in meters.
func (p *Parameters) MaxDistance() int { return p.maxDistance }

// Width returns the raster width in pixels.
func (p *Parameters) Width() int { return p.width }

// Height returns the raster height in pixels.
func (p *Parameters) Height() int { return p.height }

// AzimuthForX returns the canonical azimuth of the ray through horizontal
// pixel index x. Panics when x is outside [0, width-1].
func (p *Parameters) AzimuthForX(x float64) float64 {
	if x < 0 || x > float64(p.width-1) {
		panic(fmt.Sprintf("pano: pixel x %g outside [0, %d]", x, p.width-1))
	}
	return geom.CanonicalizeAzimuth(p.centerAzimuth + (x-p.horizontalCenter)*p.anglePerPixel)
}

// XForAzimuth returns the horizontal pixel index looking toward azimuth a.
// Panics when a lies outside the horizontal field of view.
func (p *Parameters) XForAzimuth(a float64) float64 {
	delta := geom.AngularDistance(p.centerAzimuth, a)
	if delta < -p.horizontalFieldOfView/2 || delta > p.horizontalFieldOfView/2 {
		panic(fmt.Sprintf("pano: azimuth %g outside the field of view", a))
	}
	return delta*p.pixelsPerRadian + p.horizontalCenter
}

// AltitudeForY returns the altitude angle (pitch) of the ray through
// vertical pixel index y, positive above the horizon. Panics when y is
// outside [0, height-1].
func (p *Parameters) AltitudeForY(y float64) float64 {
	if y < 0 || y > float64(p.height-1) {
		panic(fmt.Sprintf("pano: pixel y %g outside [0, %d]", y, p.height-1))
	}
	return (p.verticalCenter - y) * p.anglePerPixel
}

// YForAltitude returns the vertical pixel index of the given altitude angle.
// Panics when a lies outside the vertical field of view.
func (p *Parameters) YForAltitude(a float64) float64 {
	if a < -p.verticalFieldOfView/2 || a > p.verticalFieldOfView/2 {
		panic(fmt.Sprintf("pano: altitude %g outside the field of view", a))
	}
	return p.verticalCenter - a*p.pixelsPerRadian
}

// ValidSampleIndex reports whether (x, y) is a pixel of the raster.
func (p *Parameters) ValidSampleIndex(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// linearSampleIndex returns the row-major index of a valid pixel.
func (p *Parameters) linearSampleIndex(x, y int) int {
	if !p.ValidSampleIndex(x, y) {
		panic(fmt.Sprintf("pano: pixel (%d, %d) outside %dx%d raster", x, y, p.width, p.height))
	}
	return y*p.width + x
}
