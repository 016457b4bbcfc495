// Package config provides YAML-based configuration loading for the game:
// presentation timing, UI toggles, the score database location, and custom
// board variants.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config is the root configuration.
type Config struct {
	Game     GameConfig      `yaml:"game"`
	UI       UIConfig        `yaml:"ui"`
	Storage  StorageConfig   `yaml:"storage"`
	Variants []VariantConfig `yaml:"variants"`
}

// GameConfig defines gameplay timing parameters.
type GameConfig struct {
	// SpawnDelayMs is how long the board rests after a move before the new
	// tile appears. Zero disables the delay.
	SpawnDelayMs int `yaml:"spawn_delay_ms"`
}

// UIConfig defines display toggles.
type UIConfig struct {
	HighlightSpawn bool `yaml:"highlight_spawn"`
	ShowHelp       bool `yaml:"show_help"`
}

// StorageConfig defines where scores and saved games live.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// VariantConfig defines a custom board preset registered at startup,
// alongside the built-in ones.
type VariantConfig struct {
	ID        string  `yaml:"id"`
	Title     string  `yaml:"title"`
	GridSize  int     `yaml:"grid_size"`
	WinTarget int     `yaml:"win_target"`
	SpawnBias float64 `yaml:"spawn_bias"`
}

// Validate checks the configuration for structural errors.
func (c Config) Validate() error {
	if c.Game.SpawnDelayMs < 0 {
		return fmt.Errorf("config: spawn_delay_ms must not be negative, got %d", c.Game.SpawnDelayMs)
	}
	for _, v := range c.Variants {
		if v.ID == "" {
			return fmt.Errorf("config: variant with empty id")
		}
		if v.GridSize < 2 {
			return fmt.Errorf("config: variant %q: grid_size must be >= 2, got %d", v.ID, v.GridSize)
		}
		if v.WinTarget < 2 {
			return fmt.Errorf("config: variant %q: win_target must be >= 2, got %d", v.ID, v.WinTarget)
		}
		if v.SpawnBias < 0 || v.SpawnBias > 1 {
			return fmt.Errorf("config: variant %q: spawn_bias must be in [0, 1], got %v", v.ID, v.SpawnBias)
		}
	}
	return nil
}

// DBPath returns the storage path with a leading ~ expanded to the user's
// home directory.
func (c Config) DBPath() string {
	return expandHome(c.Storage.Path)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
