// Package config holds the fixed layout constants and the optional
// user settings file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1400
	WindowHeight = 900

	// Simulation canvas occupies the window left of the control panel.
	PanelWidth   = 250
	CanvasWidth  = WindowWidth - PanelWidth
	CanvasHeight = WindowHeight

	// Default projection center inside the canvas.
	CenterX = 700
	CenterY = 400

	// Scheduler tick interval (20 Hz).
	TickInterval = 50 * time.Millisecond

	// Starfield density.
	StarCount = 100

	// Zoom bounds applied by the view mutators.
	MinZoom  = 0.05
	MaxZoom  = 20.0
	ZoomStep = 1.1

	// Time scale bounds (simulated days per tick).
	MinTimeScale = 0.1
	MaxTimeScale = 5.0

	// Button dimensions for the control panel.
	ButtonWidth  = 110
	ButtonHeight = 32
)

// Settings are the user-adjustable knobs, loaded from an optional YAML file.
type Settings struct {
	Data  DataSettings  `yaml:"data"`
	View  ViewSettings  `yaml:"view"`
	Audio AudioSettings `yaml:"audio"`
}

// DataSettings point at the external catalog and image assets.
type DataSettings struct {
	Dir       string `yaml:"dir"`
	ImagesDir string `yaml:"images_dir"`
}

// ViewSettings seed the initial view state.
type ViewSettings struct {
	Zoom           float64 `yaml:"zoom"`
	TimeScale      float64 `yaml:"time_scale"`
	ShowOrbits     bool    `yaml:"show_orbits"`
	ShowNames      bool    `yaml:"show_names"`
	ShowSatellites bool    `yaml:"show_satellites"`
	ThreeD         bool    `yaml:"three_d"`
}

// AudioSettings control background music.
type AudioSettings struct {
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		Data: DataSettings{
			Dir:       ".",
			ImagesDir: "images",
		},
		View: ViewSettings{
			Zoom:           1.0,
			TimeScale:      1.0,
			ShowOrbits:     true,
			ShowNames:      true,
			ShowSatellites: true,
			ThreeD:         true,
		},
		Audio: AudioSettings{
			Volume: 0.5,
		},
	}
}

// Load reads settings from path, layering the file over the defaults.
// A missing file is not an error; malformed YAML is.
func Load(path string) (Settings, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), err
	}

	// Clamp anything that would degenerate the projection or the clock.
	if cfg.View.Zoom < MinZoom {
		cfg.View.Zoom = MinZoom
	}
	if cfg.View.Zoom > MaxZoom {
		cfg.View.Zoom = MaxZoom
	}
	if cfg.View.TimeScale < MinTimeScale {
		cfg.View.TimeScale = MinTimeScale
	}
	if cfg.View.TimeScale > MaxTimeScale {
		cfg.View.TimeScale = MaxTimeScale
	}
	if cfg.Audio.Volume < 0 {
		cfg.Audio.Volume = 0
	}
	if cfg.Audio.Volume > 1 {
		cfg.Audio.Volume = 1
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "."
	}
	if cfg.Data.ImagesDir == "" {
		cfg.Data.ImagesDir = "images"
	}

	return cfg, nil
}
