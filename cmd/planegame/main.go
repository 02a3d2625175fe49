package main

import (
	"flag"
	"log"

	"planegame/internal/config"
	"planegame/internal/game"
)

var (
	settingsFlag  = flag.String("settings", config.DefaultSettingsFile, "TOML settings file")
	envFileFlag   = flag.String("env", config.DefaultEnvFile, "dotenv file with PLANE_* overrides")
	widthFlag     = flag.Int("width", 0, "window width in pixels")
	heightFlag    = flag.Int("height", 0, "window height in pixels")
	seedFlag      = flag.Uint64("seed", 0, "city seed (0 picks one from the clock)")
	muteFlag      = flag.Bool("mute", false, "disable sound")
	resetCityFlag = flag.Bool("reset-city", false, "regenerate the city on every restart")
	vsyncFlag     = flag.Bool("vsync", true, "sync buffer swaps to the display refresh")
)

func main() {
	log.SetPrefix("planegame: ")
	log.SetFlags(log.Ltime)
	flag.Parse()

	base, err := config.ReadSettings(*settingsFlag, config.Default())
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg, err := config.Load(base, *envFileFlag)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Flags given on the command line win over the environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *widthFlag
		case "height":
			cfg.Height = *heightFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "mute":
			cfg.Mute = *muteFlag
		case "reset-city":
			cfg.ResetCity = *resetCityFlag
		case "vsync":
			cfg.VSync = *vsyncFlag
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	log.Printf("starting %dx%d seed=%d mute=%t reset-city=%t",
		cfg.Width, cfg.Height, cfg.Seed, cfg.Mute, cfg.ResetCity)
	if err := game.RunDesktop(cfg); err != nil {
		log.Fatal(err)
	}
}
