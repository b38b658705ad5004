package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/solar-explorer/internal/config"
	"github.com/iburimskiy/solar-explorer/internal/game"
	"github.com/iburimskiy/solar-explorer/internal/logging"
)

func main() {
	configPath := flag.String("config", "solar-explorer.yaml", "path to the settings file")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	log := logging.New(logging.ParseLevel(*logLevel))

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad settings file %s: %v\n", *configPath, err)
		os.Exit(1)
	}

	g := game.New(cfg, log)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Solar System Explorer")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
