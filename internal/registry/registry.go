// Package registry provides a global registry of board variants. Variants
// register themselves in init() functions, allowing the CLI and the TUI to
// discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Variant describes a playable board preset.
type Variant struct {
	// ID is a unique identifier used for CLI commands and score storage.
	ID string

	// Title is a human-readable name for display.
	Title string

	// GridSize is the board dimension n of the n x n grid. Must be >= 2.
	GridSize int

	// WinTarget is the tile value that counts as a win. The target is fixed
	// per variant, not scaled with the board size.
	WinTarget int

	// SpawnBias is the probability that a spawned tile has the base value 2
	// rather than 4. Must be in [0, 1].
	SpawnBias float64
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry. Typically called from an init()
// function. Panics on a duplicate ID or a structurally invalid variant; both
// are programming errors.
func Register(v Variant) {
	if v.ID == "" {
		panic("registry: variant with empty ID")
	}
	if v.GridSize < 2 {
		panic(fmt.Sprintf("registry: variant %q has grid size %d", v.ID, v.GridSize))
	}
	if v.SpawnBias < 0 || v.SpawnBias > 1 {
		panic(fmt.Sprintf("registry: variant %q has spawn bias %v", v.ID, v.SpawnBias))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	variants[v.ID] = v
}

// List returns all registered variants, sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the variant with the given ID.
func Get(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
