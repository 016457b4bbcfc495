package engine

// reduceLine slides and merges a single line of cells toward one end.
// sign is -1 to slide toward index 0 and +1 to slide toward index len-1.
// Cells are mutated in place; removed (merged-away) tiles become nil.
// Returns the score gained from merges and whether anything moved.
//
// Source cells are processed starting from the end nearest the slide
// direction, so a tile already resting at the target edge is never disturbed
// by one processed later. A destination cell that received a merge is locked
// for the rest of the pass: a tile never merges twice in one move.
func reduceLine(line []*Tile, sign int) (gained int, moved bool) {
	n := len(line)
	locked := make([]bool, n)

	start, stop, step := 0, n, 1
	if sign > 0 {
		start, stop, step = n-1, -1, -1
	}

	for i := start; i != stop; i += step {
		t := line[i]
		if t == nil {
			continue
		}

		// Scan along the direction, stepping over empty cells, until the
		// edge or a non-empty cell.
		rest := i
		for {
			k := rest + sign
			if k < 0 || k >= n {
				break
			}
			if line[k] == nil {
				rest = k
				continue
			}
			if line[k].Value == t.Value && !locked[k] {
				// Merge: destination keeps its identity and doubles,
				// the source identity is retired.
				line[k].Value *= 2
				line[k].Merged = true
				locked[k] = true
				gained += line[k].Value
				line[i] = nil
				moved = true
				t = nil
			}
			break
		}

		if t != nil && rest != i {
			line[rest] = t
			line[i] = nil
			moved = true
		}
	}

	return gained, moved
}
