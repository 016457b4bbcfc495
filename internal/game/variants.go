package game

import (
	"github.com/dmelnik/merge2048/internal/engine"
	"github.com/dmelnik/merge2048/internal/registry"
)

// Built-in board presets. Custom ones can be layered on top via config.
func init() {
	registry.Register(registry.Variant{
		ID:        "classic",
		Title:     "Classic 4x4",
		GridSize:  4,
		WinTarget: 2048,
		SpawnBias: engine.DefaultBias,
	})
	registry.Register(registry.Variant{
		ID:        "big",
		Title:     "Big 5x5",
		GridSize:  5,
		WinTarget: 2048,
		SpawnBias: engine.DefaultBias,
	})
}
