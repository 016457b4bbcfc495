package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"

	"github.com/dmelnik/merge2048/internal/engine"
	"github.com/dmelnik/merge2048/internal/registry"
)

// ErrBadSnapshot reports a snapshot that cannot produce a valid session.
var ErrBadSnapshot = errors.New("game: bad snapshot")

// TileSnapshot is the persisted shape of one tile. Identity is presentation
// only and is regenerated on load, so it is not stored.
type TileSnapshot struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value int `json:"value"`
}

// Snapshot is the persisted shape of a session.
type Snapshot struct {
	GridSize  int            `json:"gridSize"`
	Tiles     []TileSnapshot `json:"tiles"`
	Score     int            `json:"score"`
	BestScore int            `json:"bestScore"`
	KeepGoing bool           `json:"keepGoing"`
}

// Snapshot captures the session for persistence. A pending spawn is settled
// first so the stored board is always a fully resolved state.
func (s *Session) Snapshot() Snapshot {
	if s.spawnPending {
		s.settle()
	}

	snap := Snapshot{
		GridSize:  s.variant.GridSize,
		Tiles:     make([]TileSnapshot, 0, len(s.tiles)),
		Score:     s.score,
		BestScore: s.best,
		KeepGoing: s.keepGoing,
	}
	for _, t := range s.tiles {
		snap.Tiles = append(snap.Tiles, TileSnapshot{Row: t.Row, Col: t.Col, Value: t.Value})
	}
	return snap
}

// Marshal encodes the snapshot as JSON.
func (snap Snapshot) Marshal() ([]byte, error) {
	return json.Marshal(snap)
}

// ParseSnapshot decodes a JSON snapshot.
func ParseSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	return snap, nil
}

// Restore rebuilds a session from a snapshot. Tile identities are generated
// fresh; won and over are recomputed from the tile set rather than trusted
// from storage.
func Restore(v registry.Variant, snap Snapshot, seed int64) (*Session, error) {
	if snap.GridSize != v.GridSize {
		return nil, fmt.Errorf("%w: grid size %d does not match variant %q (%d)",
			ErrBadSnapshot, snap.GridSize, v.ID, v.GridSize)
	}
	if len(snap.Tiles) == 0 {
		return nil, fmt.Errorf("%w: no tiles", ErrBadSnapshot)
	}

	s := &Session{
		variant:   v,
		rng:       rand.New(rand.NewSource(seed)),
		score:     snap.Score,
		best:      snap.BestScore,
		keepGoing: snap.KeepGoing,
	}
	if s.score > s.best {
		s.best = s.score
	}

	for _, t := range snap.Tiles {
		s.tiles = append(s.tiles, engine.Tile{
			ID:    s.ids.Next(),
			Row:   t.Row,
			Col:   t.Col,
			Value: t.Value,
		})
	}

	view, err := engine.NewBoardView(s.tiles, v.GridSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}

	if engine.MaxValue(s.tiles) >= v.WinTarget {
		s.won = true
	}
	if !engine.HasMovesRemaining(view) {
		s.over = true
	}

	return s, nil
}
