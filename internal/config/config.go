// Package config loads runtime settings from the environment.
// A .env file in the working directory is read first when present.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the stage's runtime settings.
type Config struct {
	ScreenWidth  int    `env:"FOOTLIGHTS_SCREEN_WIDTH"  envDefault:"1280"`
	ScreenHeight int    `env:"FOOTLIGHTS_SCREEN_HEIGHT" envDefault:"720"`
	Title        string `env:"FOOTLIGHTS_TITLE"         envDefault:"Footlights"`
	PlayPath     string `env:"FOOTLIGHTS_PLAY"          envDefault:"data/plays/prologue.json"`
	PortraitDir  string `env:"FOOTLIGHTS_PORTRAIT_DIR"  envDefault:"data/portraits"`
	Resizable    bool   `env:"FOOTLIGHTS_RESIZABLE"     envDefault:"true"`
}

// Load reads the given .env files (".env" when none are named), then parses
// the environment into a Config. Missing .env files are not an error;
// variables already set in the environment win over file values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ScreenWidth <= 0 || cfg.ScreenHeight <= 0 {
		return Config{}, fmt.Errorf("invalid screen size: %dx%d", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	return cfg, nil
}
