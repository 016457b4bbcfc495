// Package game composes the engine primitives into a playable session: move
// sequencing, scoring, win and game-over tracking, and snapshot persistence.
// A Session is not safe for concurrent use; callers serialize moves into it.
package game

import (
	"math/rand"

	"github.com/dmelnik/merge2048/internal/engine"
	"github.com/dmelnik/merge2048/internal/registry"
)

// Session is the state of one game in progress.
type Session struct {
	variant registry.Variant
	rng     *rand.Rand
	ids     engine.Sequence

	tiles []engine.Tile
	score int
	best  int

	over         bool
	won          bool
	keepGoing    bool
	spawnPending bool
}

// Outcome reports what a single move did.
type Outcome struct {
	Moved  bool
	Gained int
	Won    bool // the win target was reached by this move (fires once per game)
}

// New starts a fresh session for the given variant, seeding the RNG for
// deterministic gameplay, and places the two opening tiles.
func New(v registry.Variant, seed int64) *Session {
	s := &Session{
		variant: v,
		rng:     rand.New(rand.NewSource(seed)),
	}
	s.tiles, _, _ = engine.Spawn(s.tiles, v.GridSize, v.SpawnBias, s.rng, &s.ids)
	s.tiles, _, _ = engine.Spawn(s.tiles, v.GridSize, v.SpawnBias, s.rng, &s.ids)
	return s
}

// Move applies one move to the board. A move that shifts or merges nothing is
// rejected: Outcome.Moved is false, the board is untouched and no spawn is
// staged. A successful move stages a spawn for the presentation layer to
// settle via Spawn after its display delay; if the next Move arrives first,
// the pending spawn is settled here.
//
// Moves are ignored once the session is over, and held while a win
// notification awaits ContinueAfterWin.
func (s *Session) Move(dir engine.Direction) (Outcome, error) {
	if s.over || (s.won && !s.keepGoing) {
		return Outcome{}, nil
	}
	if s.spawnPending {
		s.settle()
		if s.over {
			return Outcome{}, nil
		}
	}

	res, err := engine.Apply(s.tiles, s.variant.GridSize, dir)
	if err != nil {
		return Outcome{}, err
	}
	if !res.Moved {
		return Outcome{}, nil
	}

	s.tiles = res.Tiles
	s.score += res.Gained
	if s.score > s.best {
		s.best = s.score
	}

	out := Outcome{Moved: true, Gained: res.Gained}
	if !s.won && engine.MaxValue(s.tiles) >= s.variant.WinTarget {
		s.won = true
		out.Won = true
	}

	s.spawnPending = true
	return out, nil
}

// Spawn settles the spawn staged by the last successful move and re-runs the
// terminal check. Returns the spawned tile and true, or false when no spawn
// was pending.
func (s *Session) Spawn() (engine.Tile, bool) {
	if !s.spawnPending {
		return engine.Tile{}, false
	}
	return s.settle()
}

func (s *Session) settle() (engine.Tile, bool) {
	s.spawnPending = false

	tiles, spawned, ok := engine.Spawn(s.tiles, s.variant.GridSize, s.variant.SpawnBias, s.rng, &s.ids)
	s.tiles = tiles

	view, err := engine.NewBoardView(s.tiles, s.variant.GridSize)
	if err != nil {
		// The session only ever holds boards produced by the engine.
		panic(err)
	}
	if !engine.HasMovesRemaining(view) {
		s.over = true
	}

	return spawned, ok
}

// ContinueAfterWin lets play continue past the win target and suppresses any
// repeat win notification.
func (s *Session) ContinueAfterWin() {
	if s.won {
		s.keepGoing = true
	}
}

// SetBest seeds the best score, typically from storage. It never lowers it.
func (s *Session) SetBest(v int) {
	if v > s.best {
		s.best = v
	}
}

// Tiles returns a copy of the current tile set.
func (s *Session) Tiles() []engine.Tile {
	out := make([]engine.Tile, len(s.tiles))
	copy(out, s.tiles)
	return out
}

// Board returns the current board as a value-by-cell view.
func (s *Session) Board() engine.BoardView {
	view, err := engine.NewBoardView(s.tiles, s.variant.GridSize)
	if err != nil {
		panic(err)
	}
	return view
}

// Variant returns the preset this session was started with.
func (s *Session) Variant() registry.Variant { return s.variant }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Best returns the best score seen, including any seeded baseline.
func (s *Session) Best() int { return s.best }

// MaxTile returns the highest tile value on the board.
func (s *Session) MaxTile() int { return engine.MaxValue(s.tiles) }

// Over reports whether no moves remain. The session is frozen until a fresh
// game starts.
func (s *Session) Over() bool { return s.over }

// Won reports whether the win target has been reached at any point.
func (s *Session) Won() bool { return s.won }

// KeepGoing reports whether the player chose to continue past the win.
func (s *Session) KeepGoing() bool { return s.keepGoing }

// AwaitingSpawn reports whether a successful move is waiting for Spawn.
func (s *Session) AwaitingSpawn() bool { return s.spawnPending }
