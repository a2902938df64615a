package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "alpano",
	Short: "Terrain panorama rendering and elevation service",
	Long: `Alpano computes terrain-visibility panoramas from SRTM elevation
tiles: for every pixel of a view it ray-marches over the terrain, corrected
for earth curvature and atmospheric refraction, and colors the first hit.

It provides CLI commands and an HTTP endpoint for:
- Render: compute a panorama from an observer position and write it as PNG
- Height Lookup: get terrain elevation and slope at a geographic coordinate

Configuration can be set via environment variables or command-line flags.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("dem-dir", "d", "./dem", "Directory holding .hgt elevation tiles")
	rootCmd.PersistentFlags().String("summits", "", "Gazetteer file for summit labels (optional)")
}
