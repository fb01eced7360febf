// Package config provides the scratchcard demo's TOML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Every field is a
// pointer so an unset value can be told apart from an explicit zero; CLI
// flags override config values.
type FileConfig struct {
	Card CardConfig `toml:"card"`
}

// CardConfig maps scratch-card settings.
type CardConfig struct {
	Brush                *float64  `toml:"brush"`
	Threshold            *float64  `toml:"threshold"`
	Triggers             []float64 `toml:"triggers"`
	AutoReveal           *bool     `toml:"auto-reveal"`
	AutoRevealOnComplete *bool     `toml:"auto-reveal-on-complete"`
	Haptics              *bool     `toml:"haptics"`
	Sound                *bool     `toml:"sound"`
	GridRows             *int      `toml:"grid-rows"`
	GridCols             *int      `toml:"grid-cols"`
	Prize                *string   `toml:"prize"`
	Image                *string   `toml:"image"`
}

// Load reads a TOML config from the given path. A missing file is not an
// error: the demo runs fine on defaults.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// DefaultPath returns the per-user config file location,
// e.g. ~/.config/scratchcard/config.toml on Linux.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "scratchcard", "config.toml")
}
