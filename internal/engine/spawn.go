package engine

import "math/rand"

// DefaultBias is the default probability that a spawned tile has the base
// value 2 rather than 4.
const DefaultBias = 0.9

type cellPos struct {
	row, col int
}

// emptyCells returns the empty cells in row-major order.
func emptyCells(tiles []Tile, size int) []cellPos {
	occupied := make([]bool, size*size)
	for _, t := range tiles {
		occupied[t.Row*size+t.Col] = true
	}

	var cells []cellPos
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if !occupied[r*size+c] {
				cells = append(cells, cellPos{row: r, col: c})
			}
		}
	}
	return cells
}

// Spawn inserts one new tile into a uniformly random empty cell. The tile's
// value is 2 with probability bias and 4 otherwise; its identity comes from
// ids and Merged is false. On a full board the input is returned unchanged
// (as a copy) with ok=false; that is a no-op, never an error, since
// recognizing a stuck board is the terminal detector's job.
//
// Returns the new tile set, the spawned tile, and whether a spawn happened.
func Spawn(tiles []Tile, size int, bias float64, rng *rand.Rand, ids *Sequence) ([]Tile, Tile, bool) {
	out := make([]Tile, len(tiles), len(tiles)+1)
	copy(out, tiles)

	empty := emptyCells(tiles, size)
	if len(empty) == 0 {
		return out, Tile{}, false
	}

	cell := empty[rng.Intn(len(empty))]
	value := 2
	if rng.Float64() >= bias {
		value = 4
	}

	spawned := Tile{ID: ids.Next(), Row: cell.row, Col: cell.col, Value: value}
	out = append(out, spawned)
	return out, spawned, true
}
