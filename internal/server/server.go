// Package server exposes terrain elevation queries over HTTP.
package server

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/jrossett/alpano/internal/dem"
	"github.com/jrossett/alpano/internal/geom"
)

// Server answers elevation queries against one continuous elevation model.
type Server struct {
	Model *dem.ContinuousModel
}

// Routes registers the server's endpoints on mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/height", s.HandleHeight)
	mux.HandleFunc("/health", s.HandleHealth)
}

// HandleHeight answers GET /height?lat=<deg>&lon=<deg> with the terrain
// elevation and slope at that point.
func (s *Server) HandleHeight(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		http.Error(w, "invalid lat", http.StatusBadRequest)
		return
	}
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		http.Error(w, "invalid lon", http.StatusBadRequest)
		return
	}
	if lat < -90 || lat > 90 {
		http.Error(w, "lat must be between -90 and 90", http.StatusBadRequest)
		return
	}
	if lon < -180 || lon > 180 {
		http.Error(w, "lon must be between -180 and 180", http.StatusBadRequest)
		return
	}

	p := geom.NewGeoPoint(lon*math.Pi/180, lat*math.Pi/180)
	resp := map[string]any{
		"lat":       lat,
		"lon":       lon,
		"elevation": s.Model.ElevationAt(p),
		"slope":     s.Model.SlopeAt(p),
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *Server) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
