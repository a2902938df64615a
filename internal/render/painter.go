// Package render turns a computed panorama into an image: per-channel
// painters, a default terrain coloring and summit labeling.
package render

import (
	"math"

	"github.com/jrossett/alpano/internal/geom"
	"github.com/jrossett/alpano/internal/pano"
)

// ChannelPainter yields one scalar per pixel. Painters are composed with
// the combinators below before being mapped to colors.
type ChannelPainter func(x, y int) float64

// Distance paints the distance channel of p.
func Distance(p *pano.Panorama) ChannelPainter {
	return func(x, y int) float64 { return float64(p.DistanceAt(x, y)) }
}

// Elevation paints the elevation channel of p.
func Elevation(p *pano.Panorama) ChannelPainter {
	return func(x, y int) float64 { return float64(p.ElevationAt(x, y)) }
}

// Slope paints the slope channel of p.
func Slope(p *pano.Panorama) ChannelPainter {
	return func(x, y int) float64 { return float64(p.SlopeAt(x, y)) }
}

// Opacity paints 1 where the ray hit terrain and 0 where it did not.
func Opacity(p *pano.Panorama) ChannelPainter {
	return func(x, y int) float64 {
		if math.IsInf(float64(p.DistanceAt(x, y)), 1) {
			return 0
		}
		return 1
	}
}

// MaxDistanceToNeighbors paints the largest distance among the pixel and its
// four direct neighbors, reading 0 past the raster edge. Used by edge-aware
// colorings to outline ridges.
func MaxDistanceToNeighbors(p *pano.Panorama) ChannelPainter {
	return func(x, y int) float64 {
		m := p.DistanceAtOr(x, y, 0)
		for _, n := range [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
			if d := p.DistanceAtOr(n[0], n[1], 0); d > m {
				m = d
			}
		}
		return float64(m)
	}
}

// Add shifts every value by c.
func (cp ChannelPainter) Add(c float64) ChannelPainter {
	return func(x, y int) float64 { return cp(x, y) + c }
}

// Sub shifts every value by -c.
func (cp ChannelPainter) Sub(c float64) ChannelPainter {
	return cp.Add(-c)
}

// Mul scales every value by c.
func (cp ChannelPainter) Mul(c float64) ChannelPainter {
	return func(x, y int) float64 { return cp(x, y) * c }
}

// Div scales every value by 1/c.
func (cp ChannelPainter) Div(c float64) ChannelPainter {
	return func(x, y int) float64 { return cp(x, y) / c }
}

// Clamped clamps values into [0, 1].
func (cp ChannelPainter) Clamped() ChannelPainter {
	return func(x, y int) float64 {
		return math.Max(0, math.Min(1, cp(x, y)))
	}
}

// Cycling wraps values into [0, 1).
func (cp ChannelPainter) Cycling() ChannelPainter {
	return func(x, y int) float64 { return geom.FloorMod(cp(x, y), 1) }
}

// Inverted maps v to 1-v.
func (cp ChannelPainter) Inverted() ChannelPainter {
	return func(x, y int) float64 { return 1 - cp(x, y) }
}

// Map applies f to every value.
func (cp ChannelPainter) Map(f func(float64) float64) ChannelPainter {
	return func(x, y int) float64 { return f(cp(x, y)) }
}
