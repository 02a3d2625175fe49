package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment keys. A value set in the process environment wins over the
// same key in the .env file.
const (
	EnvSeed      = "PLANE_SEED"
	EnvWidth     = "PLANE_WIDTH"
	EnvHeight    = "PLANE_HEIGHT"
	EnvMute      = "PLANE_MUTE"
	EnvResetCity = "PLANE_RESET_CITY"
	EnvVSync     = "PLANE_VSYNC"
)

const (
	DefaultEnvFile      = ".env"
	DefaultSettingsFile = "planegame.toml"
)

type Config struct {
	Seed      uint64 `toml:"seed"` // 0 picks a seed from the clock
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Mute      bool   `toml:"mute"`
	ResetCity bool   `toml:"reset_city"` // forget the building layout on every restart
	VSync     bool   `toml:"vsync"`
}

func Default() Config {
	return Config{
		Width:  1366,
		Height: 720,
		VSync:  true,
	}
}

// ReadSettings decodes a TOML settings file over base. Keys the file does
// not set keep their base value. A missing file returns base unchanged.
func ReadSettings(path string, base Config) (Config, error) {
	cfg := base
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return base, fmt.Errorf("read %s: %w", path, err)
	}
	return cfg, nil
}

// Load reads envFile if it exists and applies PLANE_* overrides on top of
// base. A missing file is not an error.
func Load(base Config, envFile string) (Config, error) {
	file := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			file = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return base, fmt.Errorf("read %s: %w", envFile, err)
		}
	}
	return Apply(base, func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	})
}

// Apply overrides cfg with every key lookup finds.
func Apply(cfg Config, lookup func(string) (string, bool)) (Config, error) {
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	for _, d := range []struct {
		key string
		dst *int
	}{
		{EnvWidth, &cfg.Width},
		{EnvHeight, &cfg.Height},
	} {
		v, ok := lookup(d.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = n
	}
	for _, f := range []struct {
		key string
		dst *bool
	}{
		{EnvMute, &cfg.Mute},
		{EnvResetCity, &cfg.ResetCity},
		{EnvVSync, &cfg.VSync},
	} {
		v, ok := lookup(f.key)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = b
	}
	return cfg, cfg.Validate()
}

var ErrWindowSize = errors.New("window size must be positive")

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", c.Width, c.Height, ErrWindowSize)
	}
	return nil
}
