// Package catalog holds the body and satellite records the simulation is
// built from: a built-in table of the nine classical planets and their major
// moons, optionally enriched from CSV files in the data directory.
package catalog

import (
	"encoding/csv"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iburimskiy/solar-explorer/internal/logging"
)

// Record describes one star-orbiting body.
type Record struct {
	Name        string
	Radius      float64 // display radius, scaled
	Distance    float64 // orbital distance from the star, scaled
	Speed       float64 // radians per simulated day
	Color       color.RGBA
	Image       string // base name of the optional texture image
	AxialTilt   float64 // degrees
	Inclination float64 // orbital inclination, degrees
	HasRings    bool
	Facts       string

	// Science holds the optional fields from planets.csv, keyed by column
	// name. Absent keys are simply not displayed.
	Science map[string]string
}

// SatelliteRecord describes one body-orbiting satellite.
type SatelliteRecord struct {
	Name     string
	Parent   string // name of the parent body
	Radius   float64
	Distance float64 // from the parent
	Speed    float64
	Color    color.RGBA
}

// Catalog is the full set of records loaded at startup.
type Catalog struct {
	Bodies     []Record
	Satellites []SatelliteRecord
}

// ScienceField pairs a planets.csv column with its display label.
type ScienceField struct {
	Key   string
	Label string
}

// ScienceFields lists the optional columns in display/export order.
var ScienceFields = []ScienceField{
	{"mass", "Mass (10^24 kg)"},
	{"diameter", "Diameter (km)"},
	{"density", "Density (kg/m^3)"},
	{"gravity", "Gravity (m/s^2)"},
	{"escape_velocity", "Escape Velocity (km/s)"},
	{"rotation_period", "Rotation Period (hours)"},
	{"length_of_day", "Length of Day (hours)"},
	{"perihelion", "Perihelion (10^6 km)"},
	{"aphelion", "Aphelion (10^6 km)"},
	{"orbital_period", "Orbital Period (days)"},
	{"orbital_velocity", "Orbital Velocity (km/s)"},
	{"orbital_eccentricity", "Orbital Eccentricity"},
	{"obliquity_to_orbit", "Obliquity to Orbit (deg)"},
	{"mean_temperature", "Mean Temperature (C)"},
	{"surface_pressure", "Surface Pressure (bars)"},
	{"has_ring_system", "Ring System"},
	{"has_global_magnetic_field", "Magnetic Field"},
}

// Load builds the catalog from the built-in tables and overlays the optional
// CSV files in dir. CSV problems degrade to the built-in data with a warning.
func Load(dir string, log *logging.Logger) *Catalog {
	cat := Builtin()

	if sci, err := readScience(filepath.Join(dir, "planets.csv")); err != nil {
		log.Warn("planets.csv not loaded: %v", err)
	} else if sci != nil {
		for i := range cat.Bodies {
			if fields, ok := sci[cat.Bodies[i].Name]; ok {
				cat.Bodies[i].Science = fields
			}
		}
		log.Info("science data merged for %d planets", len(sci))
	}

	if sats, err := readSatellites(filepath.Join(dir, "satellites.csv")); err != nil {
		log.Warn("satellites.csv not loaded: %v", err)
	} else if len(sats) > 0 {
		cat.Satellites = sats
		log.Info("satellite catalog replaced: %d entries", len(sats))
	}

	return cat
}

// Find returns the record index for name, or -1.
func (c *Catalog) Find(name string) int {
	for i := range c.Bodies {
		if c.Bodies[i].Name == name {
			return i
		}
	}
	return -1
}

// MoonCount returns the number of satellites owned by the named body.
func (c *Catalog) MoonCount(name string) int {
	n := 0
	for i := range c.Satellites {
		if c.Satellites[i].Parent == name {
			n++
		}
	}
	return n
}

// SatellitesOf returns the indexes of all satellites owned by the named body,
// in catalog order.
func (c *Catalog) SatellitesOf(name string) []int {
	var out []int
	for i := range c.Satellites {
		if c.Satellites[i].Parent == name {
			out = append(out, i)
		}
	}
	return out
}

// readScience loads planets.csv keyed by the "planet" column. Every other
// column lands in the per-planet science map as-is.
func readScience(path string) (map[string]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: no data rows", filepath.Base(path))
	}

	header := rows[0]
	nameCol := -1
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), "planet") {
			nameCol = i
			break
		}
	}
	if nameCol < 0 {
		return nil, fmt.Errorf("%s: missing planet column", filepath.Base(path))
	}

	out := make(map[string]map[string]string)
	for _, row := range rows[1:] {
		if nameCol >= len(row) || row[nameCol] == "" {
			continue
		}
		fields := make(map[string]string)
		for i, v := range row {
			if i == nameCol {
				continue
			}
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			fields[strings.ToLower(strings.TrimSpace(header[i]))] = v
		}
		out[row[nameCol]] = fields
	}
	return out, nil
}

// readSatellites loads satellites.csv: name,planet,radius,distance,speed,color.
func readSatellites(path string) ([]SatelliteRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: no data rows", filepath.Base(path))
	}

	col := make(map[string]int)
	for i, h := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "planet", "radius", "distance", "speed"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("%s: missing %s column", filepath.Base(path), required)
		}
	}

	var out []SatelliteRecord
	for n, row := range rows[1:] {
		get := func(key string) string {
			i, ok := col[key]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		radius, err1 := strconv.ParseFloat(get("radius"), 64)
		distance, err2 := strconv.ParseFloat(get("distance"), 64)
		speed, err3 := strconv.ParseFloat(get("speed"), 64)
		if get("name") == "" || err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("%s: bad row %d", filepath.Base(path), n+2)
		}
		c, err := ParseHexColor(get("color"))
		if err != nil {
			c = color.RGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF}
		}
		out = append(out, SatelliteRecord{
			Name:     get("name"),
			Parent:   get("planet"),
			Radius:   radius,
			Distance: distance,
			Speed:    speed,
			Color:    c,
		})
	}
	return out, nil
}

// ParseHexColor parses a "#RRGGBB" color string.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}, nil
}

// HexColor formats a color as "#RRGGBB".
func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
