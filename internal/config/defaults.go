package config

import (
	_ "embed"
)

//go:embed defaults/merge2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration, used when no config file is
// found and as the fallback for a broken embedded default.
func Default() Config {
	return Config{
		Game: GameConfig{
			SpawnDelayMs: 90,
		},
		UI: UIConfig{
			HighlightSpawn: true,
			ShowHelp:       true,
		},
		Storage: StorageConfig{
			Path: "~/.merge2048/merge2048.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file, for users who
// want a starting point to customize.
func DefaultYAML() []byte {
	return defaultYAML
}
