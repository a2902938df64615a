package main

import (
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/jrossett/alpano/internal/server"
)

const (
	readTimeout  = 5 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 120 * time.Second
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP API server",
	Long: `Start an HTTP server that provides REST API endpoints for:
  - /height - Get terrain elevation and slope at a location
  - /health - Health check endpoint

Configuration can be provided via environment variables or command-line flags.
Flags take precedence over environment variables.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := LoadConfig(cmd)
		model, closeModel, err := cfg.LoadModel()
		if err != nil {
			log.Fatal(err)
		}
		defer closeModel()

		s := &server.Server{Model: model}
		mux := http.NewServeMux()
		s.Routes(mux)

		addr := getConfigString(cmd, "addr", "ADDR", ":8080")

		log.Printf("Starting server on %s", addr)
		log.Printf("  DEM dir: %s", cfg.DemDir)
		srv := &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		}
		log.Fatal(srv.ListenAndServe())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
}
