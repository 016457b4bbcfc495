package engine

import "fmt"

// MoveResult is the outcome of applying a move to the board.
type MoveResult struct {
	Tiles  []Tile // the resulting tile set; fresh slice, input is untouched
	Moved  bool   // whether any tile moved or merged
	Gained int    // sum of values created by merges, used as score delta
}

// Apply slides the whole board in the given direction, merging equal adjacent
// tiles. Horizontal moves reduce each row independently, vertical moves each
// column; lines never exchange tiles, so their processing order is arbitrary.
//
// The input slice is never mutated. If Moved is false the returned set is
// equivalent to the input (same identities, positions, values) and the caller
// must treat the move as rejected and spawn nothing.
func Apply(tiles []Tile, size int, dir Direction) (MoveResult, error) {
	if size < 2 {
		return MoveResult{}, fmt.Errorf("%w: grid size %d", ErrInvalidBoard, size)
	}

	var horizontal bool
	var sign int
	switch dir {
	case DirLeft:
		horizontal, sign = true, -1
	case DirRight:
		horizontal, sign = true, +1
	case DirUp:
		horizontal, sign = false, -1
	case DirDown:
		horizontal, sign = false, +1
	default:
		return MoveResult{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}

	// Work on a private copy; grid cells point into it. The slice is never
	// grown, so the pointers stay valid.
	work := make([]Tile, len(tiles))
	copy(work, tiles)

	grid := make([][]*Tile, size)
	for r := range grid {
		grid[r] = make([]*Tile, size)
	}
	for i := range work {
		t := &work[i]
		t.Merged = false // the flag describes this move only
		if t.Row < 0 || t.Row >= size || t.Col < 0 || t.Col >= size {
			return MoveResult{}, fmt.Errorf("%w: tile %d at (%d,%d) outside %dx%d grid",
				ErrInvalidBoard, t.ID, t.Row, t.Col, size, size)
		}
		if t.Value < 2 {
			return MoveResult{}, fmt.Errorf("%w: tile %d has value %d", ErrInvalidBoard, t.ID, t.Value)
		}
		if grid[t.Row][t.Col] != nil {
			return MoveResult{}, fmt.Errorf("%w: two tiles occupy (%d,%d)", ErrInvalidBoard, t.Row, t.Col)
		}
		grid[t.Row][t.Col] = t
	}

	var res MoveResult
	line := make([]*Tile, size)
	for i := 0; i < size; i++ {
		if horizontal {
			copy(line, grid[i])
		} else {
			for j := 0; j < size; j++ {
				line[j] = grid[j][i]
			}
		}

		gained, moved := reduceLine(line, sign)
		res.Gained += gained
		res.Moved = res.Moved || moved

		for j := 0; j < size; j++ {
			t := line[j]
			if horizontal {
				grid[i][j] = t
				if t != nil {
					t.Row, t.Col = i, j
				}
			} else {
				grid[j][i] = t
				if t != nil {
					t.Row, t.Col = j, i
				}
			}
		}
	}

	// Collect survivors in row-major order for a deterministic result.
	res.Tiles = make([]Tile, 0, len(work))
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if grid[r][c] != nil {
				res.Tiles = append(res.Tiles, *grid[r][c])
			}
		}
	}

	return res, nil
}
