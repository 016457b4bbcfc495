package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpawnCardinality(t *testing.T) {
	tiles := tilesFromGrid([][]int{
		{2, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	rng := rand.New(rand.NewSource(1))
	ids := &Sequence{}

	out, spawned, ok := Spawn(tiles, 4, DefaultBias, rng, ids)

	require.True(t, ok)
	require.Len(t, out, len(tiles)+1)
	require.Contains(t, []int{2, 4}, spawned.Value)
	require.False(t, spawned.Merged)
	require.Len(t, tiles, 2, "input must not be mutated")

	// The spawned tile landed on a previously empty cell.
	view, err := NewBoardView(out, 4)
	require.NoError(t, err)
	require.NotZero(t, view[spawned.Row][spawned.Col])
}

func TestSpawnBiasExtremes(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	ids := &Sequence{}

	for i := 0; i < 50; i++ {
		_, spawned, ok := Spawn(nil, 4, 1.0, rng, ids)
		require.True(t, ok)
		require.Equal(t, 2, spawned.Value, "bias 1.0 always spawns the base value")
	}

	for i := 0; i < 50; i++ {
		_, spawned, ok := Spawn(nil, 4, 0.0, rng, ids)
		require.True(t, ok)
		require.Equal(t, 4, spawned.Value, "bias 0.0 always spawns the secondary value")
	}
}

func TestSpawnFullBoardIsNoOp(t *testing.T) {
	full := make([][]int, 4)
	for r := range full {
		full[r] = make([]int, 4)
		for c := range full[r] {
			full[r][c] = 2 << uint((r+c)%2)
		}
	}
	tiles := tilesFromGrid(full)
	rng := rand.New(rand.NewSource(1))
	ids := &Sequence{}

	out, _, ok := Spawn(tiles, 4, DefaultBias, rng, ids)

	require.False(t, ok)
	require.ElementsMatch(t, tiles, out)
}

func TestSpawnDeterministicWithSeed(t *testing.T) {
	tiles := tilesFromGrid([][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
	})

	out1, spawned1, _ := Spawn(tiles, 4, DefaultBias, rand.New(rand.NewSource(42)), &Sequence{})
	out2, spawned2, _ := Spawn(tiles, 4, DefaultBias, rand.New(rand.NewSource(42)), &Sequence{})

	require.Equal(t, spawned1, spawned2)
	require.Equal(t, out1, out2)
}

func TestSpawnIssuesFreshIdentities(t *testing.T) {
	ids := &Sequence{}
	rng := rand.New(rand.NewSource(3))

	var tiles []Tile
	seen := make(map[TileID]bool)
	for i := 0; i < 10; i++ {
		var spawned Tile
		var ok bool
		tiles, spawned, ok = Spawn(tiles, 4, DefaultBias, rng, ids)
		require.True(t, ok)
		require.False(t, seen[spawned.ID], "identity must never be reused")
		seen[spawned.ID] = true
	}
	require.Len(t, tiles, 10)
}
