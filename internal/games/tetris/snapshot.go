package tetris

// StateType names the controller state.
type StateType string

const (
	StateActive      StateType = "active"
	StateGameOver    StateType = "game_over"
	StatePausedSmall StateType = "paused_small_window"
)

// PieceSnapshot is an immutable copy of a piece.
type PieceSnapshot struct {
	Kind  Kind
	Shape Mask
	X, Y  int
}

func snapshotPiece(p *Piece) PieceSnapshot {
	return PieceSnapshot{Kind: p.Kind, Shape: p.Shape.Clone(), X: p.X, Y: p.Y}
}

// Snapshot captures the complete game state for determinism testing and
// for read-only presentation.
type Snapshot struct {
	Tick    uint64
	Score   int
	Lines   int
	Pieces  int
	Grid    Cells
	Current PieceSnapshot
	Held    *PieceSnapshot
	State   StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StateActive
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	}

	snap := Snapshot{
		Tick:    g.tick,
		Score:   g.score,
		Lines:   g.lines,
		Pieces:  g.pieces,
		Grid:    g.grid.Snapshot(),
		Current: snapshotPiece(g.current),
		State:   state,
	}
	if g.held != nil {
		held := snapshotPiece(g.held)
		snap.Held = &held
	}
	return snap
}
