package engine

// hasEmptyCell returns true if any cell of the view is empty.
func hasEmptyCell(view BoardView) bool {
	for _, row := range view {
		for _, v := range row {
			if v == 0 {
				return true
			}
		}
	}
	return false
}

// hasAdjacentPair returns true if any two horizontally or vertically adjacent
// cells hold equal values.
func hasAdjacentPair(view BoardView) bool {
	n := len(view)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := view[r][c]
			if v == 0 {
				continue
			}
			if c < n-1 && view[r][c+1] == v {
				return true
			}
			if r < n-1 && view[r+1][c] == v {
				return true
			}
		}
	}
	return false
}

// HasMovesRemaining reports whether any legal move remains: an empty cell, or
// an adjacent equal pair in either axis. False means the board is full and
// nothing can merge. Reaching the win target is an orthogonal caller-side
// check and does not stop play.
func HasMovesRemaining(view BoardView) bool {
	return hasEmptyCell(view) || hasAdjacentPair(view)
}
