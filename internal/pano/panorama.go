package pano

import "math"

// Panorama is the immutable result of a panorama computation: one dense
// float32 raster per channel. Pixels the search never reached keep their
// defaults: +Inf distance meaning "no terrain hit", 0 elsewhere.
type Panorama struct {
	params    *Parameters
	distance  []float32
	longitude []float32
	latitude  []float32
	elevation []float32
	slope     []float32
}

// Parameters returns the view parameters the panorama was computed with.
func (p *Panorama) Parameters() *Parameters { return p.params }

// DistanceAt returns the distance in meters along the viewing ray at pixel
// (x, y), +Inf when the ray hit no terrain. Panics on an invalid pixel.
func (p *Panorama) DistanceAt(x, y int) float32 {
	return p.distance[p.params.linearSampleIndex(x, y)]
}

// DistanceAtOr is like DistanceAt but returns def for out-of-range pixels,
// for edge-aware consumers walking pixel neighborhoods.
func (p *Panorama) DistanceAtOr(x, y int, def float32) float32 {
	if !p.params.ValidSampleIndex(x, y) {
		return def
	}
	return p.distance[p.params.linearSampleIndex(x, y)]
}

// LongitudeAt returns the hit longitude in radians at pixel (x, y).
func (p *Panorama) LongitudeAt(x, y int) float32 {
	return p.longitude[p.params.linearSampleIndex(x, y)]
}

// LatitudeAt returns the hit latitude in radians at pixel (x, y).
func (p *Panorama) LatitudeAt(x, y int) float32 {
	return p.latitude[p.params.linearSampleIndex(x, y)]
}

// ElevationAt returns the hit elevation in meters at pixel (x, y).
func (p *Panorama) ElevationAt(x, y int) float32 {
	return p.elevation[p.params.linearSampleIndex(x, y)]
}

// SlopeAt returns the hit slope in radians at pixel (x, y).
func (p *Panorama) SlopeAt(x, y int) float32 {
	return p.slope[p.params.linearSampleIndex(x, y)]
}

// Builder assembles a Panorama pixel by pixel. It is single-use: Build hands
// the backing arrays over to the result and leaves the builder unusable.
type Builder struct {
	params    *Parameters
	distance  []float32
	longitude []float32
	latitude  []float32
	elevation []float32
	slope     []float32
	built     bool
}

// NewBuilder returns a builder with all channels at their defaults.
func NewBuilder(params *Parameters) *Builder {
	size := params.width * params.height
	distance := make([]float32, size)
	for i := range distance {
		distance[i] = float32(math.Inf(1))
	}
	return &Builder{
		params:    params,
		distance:  distance,
		longitude: make([]float32, size),
		latitude:  make([]float32, size),
		elevation: make([]float32, size),
		slope:     make([]float32, size),
	}
}

// SetDistanceAt sets the distance channel at pixel (x, y). Panics on an
// invalid pixel or after Build.
func (b *Builder) SetDistanceAt(x, y int, distance float32) *Builder {
	b.checkNotBuilt()
	b.distance[b.params.linearSampleIndex(x, y)] = distance
	return b
}

// SetLongitudeAt sets the longitude channel at pixel (x, y).
func (b *Builder) SetLongitudeAt(x, y int, longitude float32) *Builder {
	b.checkNotBuilt()
	b.longitude[b.params.linearSampleIndex(x, y)] = longitude
	return b
}

// SetLatitudeAt sets the latitude channel at pixel (x, y).
func (b *Builder) SetLatitudeAt(x, y int, latitude float32) *Builder {
	b.checkNotBuilt()
	b.latitude[b.params.linearSampleIndex(x, y)] = latitude
	return b
}

// SetElevationAt sets the elevation channel at pixel (x, y).
func (b *Builder) SetElevationAt(x, y int, elevation float32) *Builder {
	b.checkNotBuilt()
	b.elevation[b.params.linearSampleIndex(x, y)] = elevation
	return b
}

// SetSlopeAt sets the slope channel at pixel (x, y).
func (b *Builder) SetSlopeAt(x, y int, slope float32) *Builder {
	b.checkNotBuilt()
	b.slope[b.params.linearSampleIndex(x, y)] = slope
	return b
}

// Build finalizes the panorama. The builder releases its backing arrays;
// any further use panics.
func (b *Builder) Build() *Panorama {
	b.checkNotBuilt()
	b.built = true
	p := &Panorama{
		params:    b.params,
		distance:  b.distance,
		longitude: b.longitude,
		latitude:  b.latitude,
		elevation: b.elevation,
		slope:     b.slope,
	}
	b.distance, b.longitude, b.latitude, b.elevation, b.slope = nil, nil, nil, nil, nil
	return p
}

func (b *Builder) checkNotBuilt() {
	if b.built {
		panic("pano: use of builder after Build")
	}
}
