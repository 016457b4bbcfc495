package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidBoard reports a structurally broken tile set: duplicate cell
// occupancy, out-of-range coordinates, an impossible tile value, or a grid
// size below 2. This is a programming-error class, not a runtime failure to
// retry.
var ErrInvalidBoard = errors.New("engine: invalid board state")

// ErrInvalidDirection reports a direction outside the four defined values.
var ErrInvalidDirection = errors.New("engine: invalid direction")

// BoardView is a value-by-(row, col) lookup of the board. Zero means the cell
// is empty.
type BoardView [][]int

// NewBoardView builds a BoardView from a tile set, validating the board
// invariants along the way.
func NewBoardView(tiles []Tile, size int) (BoardView, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: grid size %d", ErrInvalidBoard, size)
	}

	view := make(BoardView, size)
	for r := range view {
		view[r] = make([]int, size)
	}

	for _, t := range tiles {
		if t.Row < 0 || t.Row >= size || t.Col < 0 || t.Col >= size {
			return nil, fmt.Errorf("%w: tile %d at (%d,%d) outside %dx%d grid",
				ErrInvalidBoard, t.ID, t.Row, t.Col, size, size)
		}
		if t.Value < 2 {
			return nil, fmt.Errorf("%w: tile %d has value %d", ErrInvalidBoard, t.ID, t.Value)
		}
		if view[t.Row][t.Col] != 0 {
			return nil, fmt.Errorf("%w: two tiles occupy (%d,%d)", ErrInvalidBoard, t.Row, t.Col)
		}
		view[t.Row][t.Col] = t.Value
	}

	return view, nil
}

// MaxValue returns the highest tile value in the set, or 0 for an empty board.
// Used by callers for the win check against a configured target.
func MaxValue(tiles []Tile) int {
	maxVal := 0
	for _, t := range tiles {
		if t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}

// SumValues returns the sum of all tile values.
func SumValues(tiles []Tile) int {
	sum := 0
	for _, t := range tiles {
		sum += t.Value
	}
	return sum
}
