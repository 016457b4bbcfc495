package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// lineFromValues converts a value slice (0 = empty) into a line of tiles with
// sequential identities starting at 1.
func lineFromValues(values []int) []*Tile {
	line := make([]*Tile, len(values))
	var ids Sequence
	for i, v := range values {
		if v == 0 {
			continue
		}
		line[i] = &Tile{ID: ids.Next(), Row: 0, Col: i, Value: v}
	}
	return line
}

func lineValues(line []*Tile) []int {
	values := make([]int, len(line))
	for i, t := range line {
		if t != nil {
			values[i] = t.Value
		}
	}
	return values
}

func TestReduceLine(t *testing.T) {
	tests := []struct {
		name   string
		input  []int
		sign   int
		want   []int
		gained int
		moved  bool
	}{
		{
			name:   "simple merge toward start",
			input:  []int{2, 2, 4, 0},
			sign:   -1,
			want:   []int{4, 4, 0, 0},
			gained: 4,
			moved:  true,
		},
		{
			name:   "merge with trailing tile sliding adjacent",
			input:  []int{2, 0, 2, 2},
			sign:   -1,
			want:   []int{4, 2, 0, 0},
			gained: 4,
			moved:  true,
		},
		{
			name:   "three equal merge only first pair",
			input:  []int{2, 2, 2, 0},
			sign:   -1,
			want:   []int{4, 2, 0, 0},
			gained: 4,
			moved:  true,
		},
		{
			name:   "four equal merge pairwise",
			input:  []int{4, 4, 4, 4},
			sign:   -1,
			want:   []int{8, 8, 0, 0},
			gained: 16,
			moved:  true,
		},
		{
			name:   "merge toward end",
			input:  []int{2, 2, 4, 0},
			sign:   1,
			want:   []int{0, 0, 4, 4},
			gained: 4,
			moved:  true,
		},
		{
			name:   "three equal toward end merge the pair nearest the edge",
			input:  []int{0, 2, 2, 2},
			sign:   1,
			want:   []int{0, 0, 2, 4},
			gained: 4,
			moved:  true,
		},
		{
			name:  "packed line with no merge",
			input: []int{2, 4, 8, 16},
			sign:  -1,
			want:  []int{2, 4, 8, 16},
		},
		{
			name:  "empty line",
			input: []int{0, 0, 0, 0},
			sign:  -1,
			want:  []int{0, 0, 0, 0},
		},
		{
			name:  "already resting single tile",
			input: []int{4, 0, 0, 0},
			sign:  -1,
			want:  []int{4, 0, 0, 0},
		},
		{
			name:   "single tile slides over gaps",
			input:  []int{0, 0, 4, 0},
			sign:   -1,
			want:   []int{4, 0, 0, 0},
			moved:  true,
			gained: 0,
		},
		{
			name:   "five cell line",
			input:  []int{2, 0, 2, 4, 4},
			sign:   1,
			want:   []int{0, 0, 0, 4, 8},
			gained: 12,
			moved:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := lineFromValues(tt.input)
			gained, moved := reduceLine(line, tt.sign)

			require.Equal(t, tt.want, lineValues(line))
			require.Equal(t, tt.gained, gained, "gained")
			require.Equal(t, tt.moved, moved, "moved")
		})
	}
}

func TestReduceLineKeepsDestinationIdentity(t *testing.T) {
	// Two equal tiles sliding left: the one nearest the target edge is the
	// merge destination and keeps its identity; the source is retired.
	a := &Tile{ID: 1, Value: 2}
	b := &Tile{ID: 2, Col: 3, Value: 2}
	line := []*Tile{a, nil, nil, b}

	gained, moved := reduceLine(line, -1)

	require.True(t, moved)
	require.Equal(t, 4, gained)
	require.NotNil(t, line[0])
	require.Equal(t, TileID(1), line[0].ID, "destination identity survives the merge")
	require.True(t, line[0].Merged)
	require.Nil(t, line[3])
}

func TestReduceLineNoDoubleMergeOnLockedCell(t *testing.T) {
	// [4,2,2] toward start: 2+2 merge into a 4 at index 1; the pre-existing
	// 4 at index 0 must not absorb it in the same pass.
	line := lineFromValues([]int{4, 2, 2, 0})

	gained, moved := reduceLine(line, -1)

	require.True(t, moved)
	require.Equal(t, 4, gained)
	require.Equal(t, []int{4, 4, 0, 0}, lineValues(line))
}
