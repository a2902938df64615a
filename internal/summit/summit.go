// Package summit loads named summits from alps gazetteer text files.
package summit

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/jrossett/alpano/internal/geom"
)

// Summit is a named point of the terrain with its elevation in meters.
type Summit struct {
	Name      string
	Position  geom.GeoPoint
	Elevation int
}

func (s Summit) String() string {
	return fmt.Sprintf("%s %v %d", s.Name, s.Position, s.Elevation)
}

// minLineFields is the number of leading data columns before the name.
const minLineFields = 7

// ReadSummits parses gazetteer lines of the form
//
//	lon lat elevation p4 p5 p6 name...
//
// where lon and lat are D:M:S sexagesimal degrees. Any malformed line fails
// the whole read.
func ReadSummits(r io.Reader) ([]Summit, error) {
	var summits []Summit
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		s, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("summit: line %d: %w", lineNo, err)
		}
		summits = append(summits, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("summit: reading gazetteer: %w", err)
	}
	return summits, nil
}

// LoadSummits reads a gazetteer file from disk.
func LoadSummits(path string) ([]Summit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("summit: opening gazetteer: %w", err)
	}
	defer f.Close()
	return ReadSummits(f)
}

func parseLine(line string) (Summit, error) {
	fields := strings.Fields(line)
	if len(fields) < minLineFields {
		return Summit{}, fmt.Errorf("expected at least %d fields, got %d", minLineFields, len(fields))
	}

	longitude, err := parseSexagesimal(fields[0])
	if err != nil {
		return Summit{}, fmt.Errorf("longitude: %w", err)
	}
	latitude, err := parseSexagesimal(fields[1])
	if err != nil {
		return Summit{}, fmt.Errorf("latitude: %w", err)
	}
	elevation, err := strconv.Atoi(fields[2])
	if err != nil {
		return Summit{}, fmt.Errorf("elevation: %w", err)
	}
	if elevation < 0 {
		return Summit{}, fmt.Errorf("negative elevation %d", elevation)
	}

	return Summit{
		Name:      strings.Join(fields[minLineFields-1:], " "),
		Position:  geom.NewGeoPoint(longitude, latitude),
		Elevation: elevation,
	}, nil
}

// parseSexagesimal converts a D:M:S angle to radians.
func parseSexagesimal(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("expected D:M:S, got %q", s)
	}
	var dms [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("bad angle component %q", p)
		}
		dms[i] = v
	}
	degrees := float64(dms[0]) + float64(dms[1])/60 + float64(dms[2])/3600
	return degrees * math.Pi / 180, nil
}
