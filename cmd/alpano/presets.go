package main

import (
	"fmt"
	"sort"
	"strings"
)

// Preset is a known-good observer pose. Angles are in degrees, elevations
// and distances in meters.
type Preset struct {
	Lon, Lat      float64
	Elevation     int
	Azimuth       float64
	FieldOfView   float64
	MaxDistance   int
	Width, Height int
}

// presets are panoramas of well-known viewpoints in and around the Swiss
// Alps, useful as smoke tests once a few tiles are on disk.
var presets = map[string]Preset{
	"niesen": {
		Lon: 7.65, Lat: 46.73, Elevation: 600,
		Azimuth: 180, FieldOfView: 110,
		MaxDistance: 300_000, Width: 2500, Height: 800,
	},
	"alpes-du-jura": {
		Lon: 6.8087, Lat: 47.0085, Elevation: 1380,
		Azimuth: 162, FieldOfView: 27,
		MaxDistance: 300_000, Width: 2500, Height: 800,
	},
	"mont-racine": {
		Lon: 6.82, Lat: 47.02, Elevation: 1500,
		Azimuth: 135, FieldOfView: 45,
		MaxDistance: 300_000, Width: 2500, Height: 800,
	},
	"finsteraarhorn": {
		Lon: 8.126, Lat: 46.5374, Elevation: 4300,
		Azimuth: 205, FieldOfView: 20,
		MaxDistance: 300_000, Width: 2500, Height: 800,
	},
	"tour-de-sauvabelin": {
		Lon: 6.6385, Lat: 46.5353, Elevation: 700,
		Azimuth: 135, FieldOfView: 100,
		MaxDistance: 300_000, Width: 2500, Height: 800,
	},
	"plage-du-pelican": {
		Lon: 6.5728, Lat: 46.5132, Elevation: 380,
		Azimuth: 135, FieldOfView: 60,
		MaxDistance: 300_000, Width: 2500, Height: 800,
	},
}

// lookupPreset resolves a preset by name, listing the known names on error.
func lookupPreset(name string) (Preset, error) {
	if p, ok := presets[name]; ok {
		return p, nil
	}
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return Preset{}, fmt.Errorf("unknown preset %q (known: %s)", name, strings.Join(names, ", "))
}
