// Package tetris implements the falling-block puzzle: the shape catalog,
// pieces, the grid, collision checks and the controller that ties them
// together. It has no terminal dependencies; the platform feeds it actions
// and renders it through core.Screen.
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// LineBonus is the flat score awarded per cleared row.
const LineBonus = 10

// PieceSource picks the kind of every newly spawned piece.
type PieceSource interface {
	Next() Kind
}

// randomSource draws kinds independently and uniformly.
type randomSource struct {
	rng *rand.Rand
}

func (s randomSource) Next() Kind {
	return Kind(s.rng.Intn(KindCount))
}

// Game is the controller and the whole mutable game state.
type Game struct {
	rng    *rand.Rand
	source PieceSource
	tick   uint64

	grid    *Grid
	current *Piece
	held    *Piece
	score   int
	lines   int
	pieces  int

	gameOver bool
	events   []core.Event

	// Presentation options
	screenW   int
	screenH   int
	showGhost bool
	tooSmall  bool
	best      int
	hasBest   bool
}

// New creates a game. Reset must be called before play.
func New() *Game {
	return &Game{
		grid: NewGrid(),
	}
}

// ID returns the game identifier used for the session ledger.
func (g *Game) ID() string {
	return "blocks"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blocks"
}

// SetPieceSource replaces the random piece picker. Takes effect from the
// next spawn; Reset keeps a source set here.
func (g *Game) SetPieceSource(src PieceSource) {
	g.source = src
}

// SetSessionBest sets the best score shown in the game-over overlay.
func (g *Game) SetSessionBest(score int) {
	g.best = score
	g.hasBest = true
}

// SetGhost toggles the landing preview in Render.
func (g *Game) SetGhost(on bool) {
	g.showGhost = on
}

// Reset starts a new game: empty grid, zero score, empty hold slot and a
// freshly spawned piece.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	if _, random := g.source.(randomSource); random || g.source == nil {
		g.source = randomSource{rng: g.rng}
	}
	g.tick = 0
	g.grid = NewGrid()
	g.held = nil
	g.score = 0
	g.lines = 0
	g.pieces = 0
	g.gameOver = false
	g.events = nil
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.current = Spawn(g.source.Next())
}

// Resize records the screen size used by Render.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Handle applies a single player action and reports the resulting state and
// any events. Gameplay actions are ignored once the game is over and while
// the window is too small to show the board.
func (g *Game) Handle(a core.Action) core.StepResult {
	g.events = g.events[:0]

	if g.gameOver || g.tooSmall || !a.IsGameplay() {
		return g.result()
	}

	switch a {
	case core.ActionLeft:
		g.MoveHorizontal(-1)
	case core.ActionRight:
		g.MoveHorizontal(1)
	case core.ActionSoftDrop:
		g.SoftDrop()
	case core.ActionRotate:
		g.Rotate()
	case core.ActionHardDrop:
		g.HardDrop()
	case core.ActionHold:
		g.HoldSwap()
	}

	return g.result()
}

// Step advances the redraw clock, which stands still while the window is too
// small. There is no gravity: pieces only move in response to actions.
func (g *Game) Step() core.StepResult {
	g.events = g.events[:0]
	if !g.gameOver && !g.tooSmall {
		g.tick++
	}
	return g.result()
}

func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) emit(kind core.EventKind, count int) {
	g.events = append(g.events, core.Event{Kind: kind, Count: count})
}

// MoveHorizontal shifts the active piece by dir columns, reverting when the
// new position collides. Returns whether the piece moved.
func (g *Game) MoveHorizontal(dir int) bool {
	if g.gameOver {
		return false
	}
	g.current.X += dir
	if Collides(g.current, g.grid) {
		g.current.X -= dir
		return false
	}
	return true
}

// SoftDrop moves the active piece one row down. When it cannot move it is
// locked in place. Returns true if the piece moved, false if it locked.
func (g *Game) SoftDrop() bool {
	if g.gameOver {
		return false
	}
	g.current.Y++
	if Collides(g.current, g.grid) {
		g.current.Y--
		g.lock()
		return false
	}
	return true
}

// HardDrop drops the active piece as far as it goes and locks it.
// Returns the number of rows travelled.
func (g *Game) HardDrop() int {
	if g.gameOver {
		return 0
	}
	start := g.current.Y
	g.current.Y = g.landingY(g.current)
	dropped := g.current.Y - start
	g.lock()
	return dropped
}

// landingY returns the lowest row p can reach from its current row.
func (g *Game) landingY(p *Piece) int {
	probe := p.Clone()
	for !Collides(probe, g.grid) {
		probe.Y++
	}
	return probe.Y - 1
}

// Rotate turns the active piece clockwise unless the rotated mask collides
// at the current position; no kicks are attempted. Returns whether the
// rotation was accepted.
func (g *Game) Rotate() bool {
	if g.gameOver {
		return false
	}
	original := g.current.Shape
	g.current.Shape = g.current.Rotated()
	if Collides(g.current, g.grid) {
		g.current.Shape = original
		return false
	}
	return true
}

// HoldSwap moves the active piece to the hold slot. With an empty slot a new
// piece is spawned; otherwise the held piece becomes active as stored, with
// no collision check. The newly held piece always rests at the origin.
func (g *Game) HoldSwap() bool {
	if g.gameOver {
		return false
	}

	if g.held == nil {
		g.held = g.current
		g.spawn()
	} else {
		g.held, g.current = g.current, g.held
	}
	g.held.X = 0
	g.held.Y = 0
	g.emit(core.EventHold, 0)
	return true
}

// lock merges the active piece, clears rows and spawns the next piece.
func (g *Game) lock() {
	g.grid.Place(g.current)
	g.pieces++
	g.emit(core.EventLock, 0)

	if n := g.grid.ClearFullRows(); n > 0 {
		g.score += n * LineBonus
		g.lines += n
		g.emit(core.EventLineClear, n)
	}

	g.spawn()
}

// spawn makes a new random piece active and ends the game if it does not fit.
func (g *Game) spawn() {
	g.current = Spawn(g.source.Next())
	if Collides(g.current, g.grid) {
		g.gameOver = true
		g.emit(core.EventGameOver, 0)
	}
}

// GhostY returns the row the active piece would lock on after a hard drop.
func (g *Game) GhostY() int {
	return g.landingY(g.current)
}

// State returns the current game summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		Pieces:   g.pieces,
		GameOver: g.gameOver,
	}
}

// GameOver reports whether the game has ended.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Grid returns the playfield. Callers must treat it as read-only.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Current returns a copy of the active piece.
func (g *Game) Current() Piece {
	return *g.current.Clone()
}

// Held returns a copy of the held piece, if any.
func (g *Game) Held() (Piece, bool) {
	if g.held == nil {
		return Piece{}, false
	}
	return *g.held.Clone(), true
}
