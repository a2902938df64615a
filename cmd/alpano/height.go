package main

import (
	"fmt"
	"log"
	"math"

	"github.com/spf13/cobra"

	"github.com/jrossett/alpano/internal/geom"
)

// heightCmd represents the height command
var heightCmd = &cobra.Command{
	Use:   "height",
	Short: "Get terrain elevation at a location",
	Long: `Get terrain elevation and slope at a specific geographic coordinate.

Examples:
  alpano height --lat 46.5374 --lon 8.126
  alpano height --lat 46.5374 --lon 8.126 --dem-dir /data/srtm

The command outputs the interpolated elevation in meters and the terrain
slope in degrees.`,
	Run: func(cmd *cobra.Command, args []string) {
		lat, _ := cmd.Flags().GetFloat64("lat")
		lon, _ := cmd.Flags().GetFloat64("lon")

		if lat < -90 || lat > 90 {
			log.Fatal("Latitude must be between -90 and 90")
		}
		if lon < -180 || lon > 180 {
			log.Fatal("Longitude must be between -180 and 180")
		}

		cfg := LoadConfig(cmd)
		model, closeModel, err := cfg.LoadModel()
		if err != nil {
			log.Fatalf("Failed to load elevation model: %v", err)
		}
		defer closeModel()

		p := geom.NewGeoPoint(lon*math.Pi/180, lat*math.Pi/180)
		fmt.Printf("Location: %.6f, %.6f\n", lat, lon)
		fmt.Printf("Elevation: %.2f meters\n", model.ElevationAt(p))
		fmt.Printf("Slope: %.2f degrees\n", model.SlopeAt(p)*180/math.Pi)
	},
}

func init() {
	rootCmd.AddCommand(heightCmd)

	heightCmd.Flags().Float64("lat", 0, "Latitude (required)")
	heightCmd.Flags().Float64("lon", 0, "Longitude (required)")
	heightCmd.MarkFlagRequired("lat")
	heightCmd.MarkFlagRequired("lon")
}
