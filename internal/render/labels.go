package render

import (
	"image"
	"image/color"
	"math"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jrossett/alpano/internal/geom"
	"github.com/jrossett/alpano/internal/pano"
	"github.com/jrossett/alpano/internal/summit"
)

// Label is a summit name anchored to the pixel where the summit appears.
type Label struct {
	Summit summit.Summit
	X, Y   int
}

const (
	// tickHeight is the length of the line drawn from the summit pixel up to
	// the label text.
	tickHeight = 20

	// labelSpacing keeps neighboring labels from overwriting each other.
	labelSpacing = 20

	// visibilityTolerance accepts a summit as visible when the panorama hit in
	// its direction reaches at least this fraction of the summit distance.
	// The slack absorbs sampling error near grazing rays.
	visibilityTolerance = 0.8
)

// PlaceLabels selects the summits visible in p and anchors a label to each.
// Summits are considered highest first; a summit too close horizontally to an
// already placed label, outside the field of view, beyond the maximum
// distance or hidden behind nearer terrain is dropped.
func PlaceLabels(p *pano.Panorama, summits []summit.Summit) []Label {
	params := p.Parameters()

	sorted := make([]summit.Summit, len(summits))
	copy(sorted, summits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Elevation > sorted[j].Elevation
	})

	var labels []Label
	occupied := make(map[int]bool)
	for _, s := range sorted {
		x, y, ok := projectSummit(params, s)
		if !ok || !visible(p, s, x, y) {
			continue
		}
		if tooClose(occupied, x) {
			continue
		}
		occupied[x] = true
		labels = append(labels, Label{Summit: s, X: x, Y: y})
	}
	return labels
}

// projectSummit maps a summit to its pixel in the view raster, reporting
// false when it falls outside the fields of view or beyond the maximum
// distance.
func projectSummit(params *pano.Parameters, s summit.Summit) (x, y int, ok bool) {
	observer := params.ObserverPosition()

	distance := observer.DistanceTo(s.Position)
	if distance > float64(params.MaxDistance()) {
		return 0, 0, false
	}

	azimuth := observer.AzimuthTo(s.Position)
	halfHFov := params.HorizontalFieldOfView() / 2
	if math.Abs(geom.AngularDistance(params.CenterAzimuth(), azimuth)) > halfHFov {
		return 0, 0, false
	}

	// The apparent altitude of the summit, lowered by earth curvature and
	// refraction over the distance.
	altitude := math.Atan2(float64(s.Elevation-params.ObserverElevation())-
		distance*distance*pano.CurvatureDelta, distance)
	if math.Abs(altitude) > params.VerticalFieldOfView()/2 {
		return 0, 0, false
	}

	x = int(math.Round(params.XForAzimuth(azimuth)))
	y = int(math.Round(params.YForAltitude(altitude)))
	if y < tickHeight+basicfont.Face7x13.Height {
		// No room to draw the label above the anchor.
		return 0, 0, false
	}
	return x, y, true
}

// visible reports whether the panorama ray through (x, y) reaches at least
// most of the way to the summit, i.e. the summit is not hidden behind nearer
// terrain.
func visible(p *pano.Panorama, s summit.Summit, x, y int) bool {
	observer := p.Parameters().ObserverPosition()
	distance := observer.DistanceTo(s.Position)
	hit := float64(p.DistanceAtOr(x, y, 0))
	return hit >= visibilityTolerance*distance
}

func tooClose(occupied map[int]bool, x int) bool {
	for placed := range occupied {
		if abs(placed-x) < labelSpacing {
			return true
		}
	}
	return false
}

// DrawLabels draws each label on img: a vertical tick rising from the summit
// pixel, topped by the summit name.
func DrawLabels(img *image.RGBA, labels []Label, c color.Color) {
	face := basicfont.Face7x13
	for _, l := range labels {
		for y := l.Y - tickHeight; y < l.Y; y++ {
			img.Set(l.X, y, c)
		}
		drawer := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(c),
			Face: face,
			Dot:  fixed.P(l.X+2, l.Y-tickHeight-2),
		}
		drawer.DrawString(l.Summit.Name)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
