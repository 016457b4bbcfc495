// Package engine implements the sliding-tile merge board state machine:
// moving and merging tiles, spawning new ones, and detecting the terminal
// state. All operations are pure value-in/value-out transforms over an
// immutable tile set; the caller owns sequencing and presentation.
package engine

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
