package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/jrossett/alpano/internal/pano"
)

// ImagePainter yields the final color of one pixel.
type ImagePainter func(x, y int) color.Color

// HSB combines hue (degrees), saturation, brightness and opacity channels
// into an image painter.
func HSB(hue, saturation, brightness, opacity ChannelPainter) ImagePainter {
	return func(x, y int) color.Color {
		r, g, b := hsbToRGB(hue(x, y), saturation(x, y), brightness(x, y))
		a := opacity(x, y)
		return color.NRGBA{
			R: uint8(math.Round(r * 255)),
			G: uint8(math.Round(g * 255)),
			B: uint8(math.Round(b * 255)),
			A: uint8(math.Round(a * 255)),
		}
	}
}

// TerrainPainter is the default coloring: hue cycles with distance,
// saturation fades out toward the horizon, brightness follows slope, and
// sky pixels stay transparent.
func TerrainPainter(p *pano.Panorama) ImagePainter {
	distance := Distance(p)
	hue := distance.Div(100_000).Cycling().Mul(360)
	saturation := distance.Div(200_000).Clamped().Inverted()
	brightness := Slope(p).Mul(2 / math.Pi).Inverted().Mul(0.7).Add(0.3)
	return HSB(hue, saturation, brightness, Opacity(p))
}

// GrayDistancePainter maps distance linearly to gray, nearest black,
// everything at or past maxDistance white. Useful for quick inspection.
func GrayDistancePainter(p *pano.Panorama) ImagePainter {
	maxDistance := float64(p.Parameters().MaxDistance())
	level := Distance(p).Div(maxDistance).Clamped()
	return func(x, y int) color.Color {
		v := uint8(math.Round(level(x, y) * 255))
		return color.NRGBA{R: v, G: v, B: v, A: 255}
	}
}

// Paint renders the painter over the full view raster.
func Paint(painter ImagePainter, params *pano.Parameters) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, params.Width(), params.Height()))
	for y := 0; y < params.Height(); y++ {
		for x := 0; x < params.Width(); x++ {
			img.Set(x, y, painter(x, y))
		}
	}
	return img
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// hsbToRGB converts hue in degrees and saturation/brightness in [0, 1] to
// RGB in [0, 1].
func hsbToRGB(h, s, b float64) (float64, float64, float64) {
	h = math.Mod(math.Mod(h, 360)+360, 360) / 60
	i := int(h)
	f := h - float64(i)
	p := b * (1 - s)
	q := b * (1 - s*f)
	t := b * (1 - s*(1-f))
	switch i {
	case 0:
		return b, t, p
	case 1:
		return q, b, p
	case 2:
		return p, b, t
	case 3:
		return p, q, b
	case 4:
		return t, p, b
	default:
		return b, p, q
	}
}
