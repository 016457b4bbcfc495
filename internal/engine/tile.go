package engine

// TileID identifies a tile across moves. IDs are assigned at creation and
// never reused, so a renderer can correlate a tile between frames and tell a
// moved tile apart from one produced by a merge. The ID carries no ownership
// semantics.
type TileID uint64

// Tile is a single numbered tile on the board.
type Tile struct {
	ID     TileID
	Row    int
	Col    int
	Value  int  // power of two, >= 2
	Merged bool // true if this tile was the destination of a merge in the last move
}

// Sequence generates monotonically increasing tile IDs. The zero value is
// ready to use. One Sequence belongs to one game; reset by starting a new one.
type Sequence struct {
	next TileID
}

// Next returns a fresh, never-before-issued tile ID.
func (s *Sequence) Next() TileID {
	s.next++
	return s.next
}
