package render_test

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrossett/alpano/internal/geom"
	"github.com/jrossett/alpano/internal/pano"
	"github.com/jrossett/alpano/internal/render"
	"github.com/jrossett/alpano/internal/summit"
)

// skyPanorama is a 201x201 view looking due north with nothing in the way:
// every ray keeps its +Inf no-hit distance, so any summit in the frame is
// visible.
func skyPanorama(t *testing.T) *pano.Panorama {
	t.Helper()
	params, err := pano.NewParameters(
		geom.NewGeoPoint(0, 0), 0, 0, math.Pi/2, 100_000, 201, 201)
	require.NoError(t, err)
	return pano.NewBuilder(params).Build()
}

// northSummit puts a summit due north of the origin observer.
func northSummit(name string, distance float64, elevation int) summit.Summit {
	return summit.Summit{
		Name:      name,
		Position:  geom.NewGeoPoint(0, distance/geom.EarthRadius),
		Elevation: elevation,
	}
}

func TestPlaceLabels(t *testing.T) {
	p := skyPanorama(t)
	summits := []summit.Summit{
		northSummit("DENT VISIBLE", 20_000, 1000),
		northSummit("TROP LOIN", 150_000, 4000),
	}

	labels := render.PlaceLabels(p, summits)
	require.Len(t, labels, 1)

	l := labels[0]
	assert.Equal(t, "DENT VISIBLE", l.Summit.Name)
	// Due north lands on the central column.
	assert.Equal(t, 100, l.X)
	// The summit sits slightly above the horizon row.
	assert.Less(t, l.Y, 100)
	assert.Greater(t, l.Y, 85)
}

func TestPlaceLabelsKeepsHighestOfOverlappingPair(t *testing.T) {
	p := skyPanorama(t)
	summits := []summit.Summit{
		northSummit("LOW", 20_000, 800),
		northSummit("HIGH", 21_000, 1200),
	}

	labels := render.PlaceLabels(p, summits)
	require.Len(t, labels, 1)
	assert.Equal(t, "HIGH", labels[0].Summit.Name)
}

func TestPlaceLabelsDropsHiddenSummit(t *testing.T) {
	params, err := pano.NewParameters(
		geom.NewGeoPoint(0, 0), 0, 0, math.Pi/2, 100_000, 201, 201)
	require.NoError(t, err)

	// Terrain 100 m away in every direction hides a summit at 20 km.
	b := pano.NewBuilder(params)
	for y := 0; y < 201; y++ {
		for x := 0; x < 201; x++ {
			b.SetDistanceAt(x, y, 100)
		}
	}
	p := b.Build()

	labels := render.PlaceLabels(p, []summit.Summit{
		northSummit("CACHE", 20_000, 1000),
	})
	assert.Empty(t, labels)
}

func TestDrawLabels(t *testing.T) {
	p := skyPanorama(t)
	labels := render.PlaceLabels(p, []summit.Summit{
		northSummit("DENT VISIBLE", 20_000, 1000),
	})
	require.Len(t, labels, 1)

	img := image.NewRGBA(image.Rect(0, 0, 201, 201))
	black := color.NRGBA{A: 255}
	render.DrawLabels(img, labels, black)

	// The tick line above the anchor pixel is drawn.
	l := labels[0]
	_, _, _, a := img.At(l.X, l.Y-1).RGBA()
	assert.NotZero(t, a)
	_, _, _, a = img.At(l.X, l.Y-10).RGBA()
	assert.NotZero(t, a)
}
