package main

import (
	"image/color"
	"log"
	"math"
	"os"

	"github.com/spf13/cobra"
	"github.com/westphae/geomag/pkg/egm96"

	"github.com/jrossett/alpano/internal/geom"
	"github.com/jrossett/alpano/internal/pano"
	"github.com/jrossett/alpano/internal/render"
	"github.com/jrossett/alpano/internal/summit"
)

var labelColor = color.NRGBA{A: 255}

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Compute a panorama and write it as PNG",
	Long: `Compute a terrain panorama from an observer position and write it
as a PNG image.

The observer pose starts from a named preset and any flag overrides it.

Examples:
  alpano render --preset niesen --out niesen.png
  alpano render --preset niesen --azimuth 160 --fov 60
  alpano render --lat 46.73 --lon 7.65 --elevation 600 --azimuth 180 --fov 110

With --summits pointing at a gazetteer file, visible summits are labeled.
With --ellipsoidal, --elevation is taken above the WGS84 ellipsoid (as GPS
reports it) and converted to height above mean sea level via EGM96.`,
	Run: func(cmd *cobra.Command, args []string) {
		presetName, _ := cmd.Flags().GetString("preset")
		preset, err := lookupPreset(presetName)
		if err != nil {
			log.Fatal(err)
		}

		lon := getConfigFloat(cmd, "lon", "ALPANO_LON", preset.Lon)
		lat := getConfigFloat(cmd, "lat", "ALPANO_LAT", preset.Lat)
		elevation := getConfigInt(cmd, "elevation", "ALPANO_ELEVATION", preset.Elevation)
		azimuth := getConfigFloat(cmd, "azimuth", "ALPANO_AZIMUTH", preset.Azimuth)
		fov := getConfigFloat(cmd, "fov", "ALPANO_FOV", preset.FieldOfView)
		maxDistance := getConfigInt(cmd, "max-distance", "ALPANO_MAX_DISTANCE", preset.MaxDistance)
		width := getConfigInt(cmd, "width", "ALPANO_WIDTH", preset.Width)
		height := getConfigInt(cmd, "height", "ALPANO_HEIGHT", preset.Height)
		out, _ := cmd.Flags().GetString("out")

		if ellipsoidal, _ := cmd.Flags().GetBool("ellipsoidal"); ellipsoidal {
			loc := egm96.NewLocationGeodetic(lat, lon, float64(elevation))
			if msl, err := loc.HeightAboveMSL(); err == nil {
				elevation = int(math.Round(msl))
			} else {
				log.Printf("EGM96 conversion failed, keeping ellipsoidal height: %v", err)
			}
		}

		params, err := pano.NewParameters(
			geom.NewGeoPoint(lon*math.Pi/180, lat*math.Pi/180),
			elevation,
			geom.CanonicalizeAzimuth(azimuth*math.Pi/180),
			fov*math.Pi/180,
			maxDistance, width, height)
		if err != nil {
			log.Fatal(err)
		}

		// Load configuration and terrain
		cfg := LoadConfig(cmd)
		model, closeModel, err := cfg.LoadModel()
		if err != nil {
			log.Fatal(err)
		}
		defer closeModel()

		log.Printf("Computing %dx%d panorama from %.4f, %.4f", width, height, lat, lon)
		p := pano.NewComputer(model).Compute(params)

		img := render.Paint(render.TerrainPainter(p), params)

		if cfg.SummitsPath != "" {
			summits, err := summit.LoadSummits(cfg.SummitsPath)
			if err != nil {
				log.Fatal(err)
			}
			labels := render.PlaceLabels(p, summits)
			log.Printf("Labeling %d of %d summits", len(labels), len(summits))
			render.DrawLabels(img, labels, labelColor)
		}

		f, err := os.Create(out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := render.WritePNG(f, img); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %s", out)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().String("preset", "niesen", "Named observer preset to start from")
	renderCmd.Flags().Float64("lon", 0, "Observer longitude in degrees")
	renderCmd.Flags().Float64("lat", 0, "Observer latitude in degrees")
	renderCmd.Flags().Int("elevation", 0, "Observer elevation in meters")
	renderCmd.Flags().Float64("azimuth", 0, "Center azimuth in degrees, clockwise from north")
	renderCmd.Flags().Float64("fov", 0, "Horizontal field of view in degrees")
	renderCmd.Flags().Int("max-distance", 0, "Maximum render distance in meters")
	renderCmd.Flags().Int("width", 0, "Image width in pixels")
	renderCmd.Flags().Int("height", 0, "Image height in pixels")
	renderCmd.Flags().StringP("out", "o", "panorama.png", "Output PNG file")
	renderCmd.Flags().Bool("ellipsoidal", false, "Treat --elevation as WGS84 ellipsoidal height")
}
