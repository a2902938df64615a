package dem

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jrossett/alpano/internal/geom"
)

const (
	hgtSide       = SamplesPerDegree + 1
	hgtFileLength = 2 * hgtSide * hgtSide
	hgtNameLength = 11 // e.g. N46E007.hgt
)

// HgtModel is a discrete model backed by one SRTM HGT tile: a 3601x3601 grid
// of big-endian int16 elevations covering one degree of latitude by one
// degree of longitude, rows ordered north to south. The covered square is
// decoded from the file name.
type HgtModel struct {
	data   []byte
	extent geom.Interval2D
}

// NewHgtModel loads the HGT tile at path. It fails when the file name does
// not end in [N|S]DD[E|W]DDD.hgt, when the file length is not exactly
// 2*3601*3601 bytes, or when the file cannot be read.
func NewHgtModel(path string) (*HgtModel, error) {
	extent, err := parseHgtName(filepath.Base(path))
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dem: reading hgt tile: %w", err)
	}
	if len(data) != hgtFileLength {
		return nil, fmt.Errorf("dem: hgt tile %s has length %d, want %d",
			filepath.Base(path), len(data), hgtFileLength)
	}
	return &HgtModel{data: data, extent: extent}, nil
}

// Extent returns the one-degree square covered by the tile, in grid indices.
func (h *HgtModel) Extent() geom.Interval2D { return h.extent }

// ElevationSample returns the elevation in meters at grid coordinate (x, y).
// Panics when the coordinate is outside the tile or the tile has been
// closed.
func (h *HgtModel) ElevationSample(x, y int) float64 {
	if h.data == nil {
		panic("dem: elevation sample from closed hgt tile")
	}
	if !h.extent.Contains(x, y) {
		panic(fmt.Sprintf("dem: coordinate (%d, %d) outside extent %v", x, y, h.extent))
	}
	// Rows are stored north to south, so the y offset counts down from the
	// northern edge.
	ix := x - h.extent.IX().IncludedFrom()
	iy := h.extent.IY().IncludedTo() - y
	raw := binary.BigEndian.Uint16(h.data[2*(ix+iy*hgtSide):])
	return float64(int16(raw))
}

// Close releases the tile data. Further samples panic. Idempotent.
func (h *HgtModel) Close() error {
	h.data = nil
	return nil
}

// parseHgtName decodes the tile extent from the 11-character suffix of an
// HGT file name, e.g. N46E007.hgt covers latitudes 46..47 and longitudes
// 7..8. 'S' and 'W' negate the respective degrees.
func parseHgtName(base string) (geom.Interval2D, error) {
	var zero geom.Interval2D
	if len(base) < hgtNameLength {
		return zero, fmt.Errorf("dem: hgt file name %q too short", base)
	}
	name := base[len(base)-hgtNameLength:]

	if name[0] != 'N' && name[0] != 'S' {
		return zero, fmt.Errorf("dem: hgt file name %q: bad latitude letter", name)
	}
	if name[3] != 'E' && name[3] != 'W' {
		return zero, fmt.Errorf("dem: hgt file name %q: bad longitude letter", name)
	}
	if name[7:] != ".hgt" {
		return zero, fmt.Errorf("dem: hgt file name %q: bad extension", name)
	}

	lat, err := parseDegrees(name[1:3])
	if err != nil {
		return zero, fmt.Errorf("dem: hgt file name %q: bad latitude digits", name)
	}
	lon, err := parseDegrees(name[4:7])
	if err != nil {
		return zero, fmt.Errorf("dem: hgt file name %q: bad longitude digits", name)
	}
	if name[0] == 'S' {
		lat = -lat
	}
	if name[3] == 'W' {
		lon = -lon
	}

	lonIndex := lon * SamplesPerDegree
	latIndex := lat * SamplesPerDegree
	return geom.NewInterval2D(
		geom.NewInterval1D(lonIndex, lonIndex+SamplesPerDegree),
		geom.NewInterval1D(latIndex, latIndex+SamplesPerDegree),
	), nil
}

// parseDegrees parses a fixed-width, digits-only degree field.
func parseDegrees(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}
