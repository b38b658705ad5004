package catalog

import (
	"encoding/csv"
	"io"
	"strconv"
)

// exportHeader matches the column set of the original data export.
var exportHeader = []string{
	"Name", "Distance_from_Sun", "Radius", "Orbital_Speed",
	"Color", "Moons", "Axial_Tilt", "Orbital_Inclination", "Has_Rings",
}

// WriteCSV writes every body record plus derived fields (moon counts) as CSV.
// Kinematic state is deliberately not included.
func (c *Catalog) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for i := range c.Bodies {
		b := &c.Bodies[i]
		row := []string{
			b.Name,
			strconv.FormatFloat(b.Distance, 'g', -1, 64),
			strconv.FormatFloat(b.Radius, 'g', -1, 64),
			strconv.FormatFloat(b.Speed, 'g', -1, 64),
			HexColor(b.Color),
			strconv.Itoa(c.MoonCount(b.Name)),
			strconv.FormatFloat(b.AxialTilt, 'g', -1, 64),
			strconv.FormatFloat(b.Inclination, 'g', -1, 64),
			strconv.FormatBool(b.HasRings),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
