package catalog

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	cat := Builtin()
	var buf bytes.Buffer
	if err := cat.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading exported CSV: %v", err)
	}
	if len(rows) != 1+len(cat.Bodies) {
		t.Fatalf("rows=%d want %d", len(rows), 1+len(cat.Bodies))
	}
	if strings.Join(rows[0], ",") != strings.Join(exportHeader, ",") {
		t.Errorf("header = %v", rows[0])
	}

	// Spot-check Saturn: ringed, three moons in the built-in table.
	var saturn []string
	for _, row := range rows[1:] {
		if row[0] == "Saturn" {
			saturn = row
		}
	}
	if saturn == nil {
		t.Fatal("Saturn row missing")
	}
	if saturn[1] != "350" || saturn[5] != "3" || saturn[8] != "true" {
		t.Errorf("Saturn row = %v", saturn)
	}
}
