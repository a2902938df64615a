package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jrossett/alpano/internal/dem"
)

// Config holds application configuration
type Config struct {
	DemDir      string
	SummitsPath string
}

// LoadConfig loads configuration from environment variables and command flags
// Flags take precedence over environment variables.
func LoadConfig(cmd *cobra.Command) Config {
	return Config{
		DemDir:      getConfigString(cmd, "dem-dir", "ALPANO_DEM_DIR", "./dem"),
		SummitsPath: getConfigString(cmd, "summits", "ALPANO_SUMMITS", ""),
	}
}

// LoadModel opens every .hgt tile under the DEM directory and composes them
// into one continuous elevation model. The returned closer releases the tile
// data.
func (c *Config) LoadModel() (*dem.ContinuousModel, func() error, error) {
	paths, err := filepath.Glob(filepath.Join(c.DemDir, "*.hgt"))
	if err != nil {
		return nil, nil, fmt.Errorf("listing tiles in %s: %w", c.DemDir, err)
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no .hgt tiles in %s", c.DemDir)
	}
	sort.Strings(paths)

	tiles := make([]dem.DiscreteModel, 0, len(paths))
	closeAll := func() error {
		var errs []error
		for _, t := range tiles {
			errs = append(errs, t.Close())
		}
		return errors.Join(errs...)
	}

	for _, p := range paths {
		tile, err := dem.NewHgtModel(p)
		if err != nil {
			_ = closeAll()
			return nil, nil, err
		}
		tiles = append(tiles, tile)
	}

	composed, err := dem.Fold(tiles)
	if err != nil {
		_ = closeAll()
		return nil, nil, err
	}
	return dem.NewContinuousModel(composed), composed.Close, nil
}

// getConfigString gets a string value from flag, then env, then default
func getConfigString(cmd *cobra.Command, flagName, envName, defaultValue string) string {
	if cmd.Flags().Changed(flagName) {
		val, _ := cmd.Flags().GetString(flagName)
		return val
	}
	if v := os.Getenv(envName); v != "" {
		return v
	}
	return defaultValue
}

// getConfigInt gets an int value from flag, then env, then default
func getConfigInt(cmd *cobra.Command, flagName, envName string, defaultValue int) int {
	if cmd.Flags().Changed(flagName) {
		val, _ := cmd.Flags().GetInt(flagName)
		return val
	}
	if v := os.Getenv(envName); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

// getConfigFloat gets a float64 value from flag, then env, then default
func getConfigFloat(cmd *cobra.Command, flagName, envName string, defaultValue float64) float64 {
	if cmd.Flags().Changed(flagName) {
		val, _ := cmd.Flags().GetFloat64(flagName)
		return val
	}
	if v := os.Getenv(envName); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
