package catalog

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/solar-explorer/internal/logging"
)

func TestBuiltin(t *testing.T) {
	cat := Builtin()
	if len(cat.Bodies) != 9 {
		t.Fatalf("bodies=%d want 9", len(cat.Bodies))
	}
	earth := cat.Find("Earth")
	if earth < 0 {
		t.Fatal("Earth missing")
	}
	b := cat.Bodies[earth]
	if b.Distance != 150 || b.Speed != 0.02 || b.Inclination != 0 {
		t.Errorf("Earth record = %+v", b)
	}
	if cat.MoonCount("Jupiter") != 4 {
		t.Errorf("Jupiter moons=%d want 4", cat.MoonCount("Jupiter"))
	}
	if cat.MoonCount("Mercury") != 0 {
		t.Errorf("Mercury moons=%d want 0", cat.MoonCount("Mercury"))
	}
	for _, i := range cat.SatellitesOf("Mars") {
		if cat.Satellites[i].Parent != "Mars" {
			t.Errorf("SatellitesOf returned %q", cat.Satellites[i].Parent)
		}
	}
}

func TestFind_Unknown(t *testing.T) {
	if got := Builtin().Find("Vulcan"); got != -1 {
		t.Fatalf("Find(Vulcan)=%d want -1", got)
	}
}

func TestLoad_ScienceOverlay(t *testing.T) {
	dir := t.TempDir()
	csvData := "planet,mass,gravity,mean_temperature\n" +
		"Earth,5.97,9.8,15\n" +
		"Mars,0.642,3.7,\n"
	if err := os.WriteFile(filepath.Join(dir, "planets.csv"), []byte(csvData), 0o644); err != nil {
		t.Fatal(err)
	}

	cat := Load(dir, logging.Discard())

	earth := cat.Bodies[cat.Find("Earth")]
	if earth.Science["mass"] != "5.97" || earth.Science["gravity"] != "9.8" {
		t.Errorf("Earth science = %v", earth.Science)
	}
	mars := cat.Bodies[cat.Find("Mars")]
	if _, ok := mars.Science["mean_temperature"]; ok {
		t.Error("empty cell should stay absent, not become an empty value")
	}
	// Planets not in the CSV carry no science map.
	if venus := cat.Bodies[cat.Find("Venus")]; venus.Science != nil {
		t.Errorf("Venus science = %v, want nil", venus.Science)
	}
}

func TestLoad_SatelliteReplacement(t *testing.T) {
	dir := t.TempDir()
	csvData := "name,planet,radius,distance,speed,color\n" +
		"TestMoon,Earth,2,25,0.04,#102030\n"
	if err := os.WriteFile(filepath.Join(dir, "satellites.csv"), []byte(csvData), 0o644); err != nil {
		t.Fatal(err)
	}

	cat := Load(dir, logging.Discard())
	if len(cat.Satellites) != 1 {
		t.Fatalf("satellites=%d want 1", len(cat.Satellites))
	}
	s := cat.Satellites[0]
	if s.Name != "TestMoon" || s.Parent != "Earth" || s.Distance != 25 {
		t.Errorf("satellite = %+v", s)
	}
	if s.Color != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}) {
		t.Errorf("color = %v", s.Color)
	}
}

func TestLoad_MissingFilesKeepBuiltin(t *testing.T) {
	cat := Load(t.TempDir(), logging.Discard())
	builtin := Builtin()
	if len(cat.Bodies) != len(builtin.Bodies) || len(cat.Satellites) != len(builtin.Satellites) {
		t.Fatal("missing CSVs should fall back to the built-in tables")
	}
}

func TestLoad_BadSatelliteRowKeepsBuiltin(t *testing.T) {
	dir := t.TempDir()
	csvData := "name,planet,radius,distance,speed,color\n" +
		"Broken,Earth,notanumber,25,0.04,#102030\n"
	if err := os.WriteFile(filepath.Join(dir, "satellites.csv"), []byte(csvData), 0o644); err != nil {
		t.Fatal(err)
	}
	cat := Load(dir, logging.Discard())
	if len(cat.Satellites) != len(Builtin().Satellites) {
		t.Fatal("bad satellite file should not replace the built-in set")
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#FFC649", color.RGBA{R: 0xFF, G: 0xC6, B: 0x49, A: 0xFF}, false},
		{"6B93D6", color.RGBA{R: 0x6B, G: 0x93, B: 0xD6, A: 0xFF}, false},
		{" #AAAAAA ", color.RGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF}, false},
		{"#FFF", color.RGBA{}, true},
		{"#GGGGGG", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}
	for _, tc := range cases {
		got, err := ParseHexColor(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseHexColor(%q)=%v want %v", tc.in, got, tc.want)
		}
	}
}

func TestHexColorRoundTrip(t *testing.T) {
	c := color.RGBA{R: 0x4F, G: 0xD0, B: 0xE7, A: 0xFF}
	got, err := ParseHexColor(HexColor(c))
	if err != nil || got != c {
		t.Fatalf("round trip = %v, %v", got, err)
	}
}
