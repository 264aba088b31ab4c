package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// scriptedSource replays a fixed sequence of kinds, cycling when exhausted.
type scriptedSource struct {
	kinds []Kind
	i     int
}

func (s *scriptedSource) Next() Kind {
	k := s.kinds[s.i%len(s.kinds)]
	s.i++
	return k
}

func newTestGame(t *testing.T, kinds ...Kind) *Game {
	t.Helper()
	g := New()
	g.SetPieceSource(&scriptedSource{kinds: kinds})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1})
	return g
}

func TestResetInitialState(t *testing.T) {
	g := newTestGame(t, KindT)

	assert.True(t, g.Grid().Empty())
	assert.Equal(t, core.GameState{}, g.State())
	assert.Equal(t, KindT, g.Current().Kind)
	_, held := g.Held()
	assert.False(t, held)
}

func TestMoveHorizontalThenBackRestoresPosition(t *testing.T) {
	g := newTestGame(t, KindL)
	start := g.Current()

	require.True(t, g.MoveHorizontal(1))
	require.True(t, g.MoveHorizontal(-1))
	assert.Equal(t, start, g.Current())

	require.True(t, g.MoveHorizontal(-1))
	require.True(t, g.MoveHorizontal(1))
	assert.Equal(t, start, g.Current())
}

func TestMoveHorizontalBlockedByWall(t *testing.T) {
	g := newTestGame(t, KindO)

	for g.MoveHorizontal(-1) {
	}
	assert.Equal(t, 0, g.Current().X)

	assert.False(t, g.MoveHorizontal(-1))
	assert.Equal(t, 0, g.Current().X)

	for g.MoveHorizontal(1) {
	}
	assert.Equal(t, Cols-2, g.Current().X)
}

func TestMoveHorizontalBlockedBySettledCell(t *testing.T) {
	g := newTestGame(t, KindO)
	g.grid.Set(1, 6, 1)

	assert.False(t, g.MoveHorizontal(1))
	assert.Equal(t, 4, g.Current().X)
}

func TestRotateFourTimesRestoresMask(t *testing.T) {
	for _, k := range AllKinds() {
		t.Run(k.String(), func(t *testing.T) {
			g := newTestGame(t, k)
			g.current.Y = 5
			original := g.Current().Shape

			for i := 0; i < 4; i++ {
				require.True(t, g.Rotate(), "rotation %d rejected", i+1)
			}
			assert.True(t, original.Equal(g.Current().Shape))
		})
	}
}

func TestRotateRejectedKeepsMaskAndPosition(t *testing.T) {
	g := newTestGame(t, KindI)
	g.current.Y = Rows - 1 // vertical I would poke through the floor
	before := g.Current()

	assert.False(t, g.Rotate())
	assert.Equal(t, before, g.Current())
}

func TestSoftDropMovesThenLocks(t *testing.T) {
	g := newTestGame(t, KindO, KindT)

	for i := 0; i < Rows-2; i++ {
		require.True(t, g.SoftDrop(), "step %d", i)
	}
	assert.Equal(t, Rows-2, g.Current().Y)

	res := g.Handle(core.ActionSoftDrop)

	assert.True(t, res.Has(core.EventLock))
	assert.Equal(t, 1, res.State.Pieces)
	assert.Equal(t, KindT, g.Current().Kind)
	assert.Equal(t, uint8(KindO.ColorIndex()+1), g.Grid().Cell(Rows-1, 4))
}

func TestHardDropOLandsOnFloor(t *testing.T) {
	g := newTestGame(t, KindO, KindJ)

	res := g.Handle(core.ActionHardDrop)

	want := uint8(KindO.ColorIndex() + 1)
	for _, row := range []int{18, 19} {
		for _, col := range []int{4, 5} {
			assert.Equal(t, want, g.Grid().Cell(row, col), "cell (%d,%d)", row, col)
		}
	}
	assert.Equal(t, uint8(0), g.Grid().Cell(18, 3))
	assert.Equal(t, uint8(0), g.Grid().Cell(17, 4))

	assert.False(t, res.State.GameOver)
	assert.True(t, res.Has(core.EventLock))
	assert.False(t, res.Has(core.EventLineClear))

	cur := g.Current()
	assert.Equal(t, KindJ, cur.Kind)
	assert.Equal(t, 4, cur.X)
	assert.Equal(t, 0, cur.Y)
}

func TestHardDropReturnsDistance(t *testing.T) {
	g := newTestGame(t, KindO)
	assert.Equal(t, Rows-2, g.HardDrop())
}

func TestHardDropCompletesBottomRow(t *testing.T) {
	g := newTestGame(t, KindI, KindT)
	// Leave exactly the four columns under the spawned horizontal I.
	fillRow(g.grid, Rows-1, 2, 3, 4, 5, 6)
	g.grid.Set(Rows-2, 0, 5) // survives the clear and shifts down

	res := g.Handle(core.ActionHardDrop)

	assert.True(t, res.Has(core.EventLineClear))
	assert.Equal(t, LineBonus, res.State.Score)
	assert.Equal(t, 1, res.State.Lines)
	assert.Equal(t, uint8(5), g.Grid().Cell(Rows-1, 0))
	for col := 1; col < Cols; col++ {
		assert.Equal(t, uint8(0), g.Grid().Cell(Rows-1, col), "col %d", col)
	}
	assert.Equal(t, [Cols]uint8{}, g.Grid().Snapshot()[Rows-2])
}

func TestMultipleRowsScoreEach(t *testing.T) {
	g := newTestGame(t, KindI, KindO)
	g.current.Shape = g.current.Rotated() // vertical I
	g.current.X = 0
	for row := Rows - 4; row < Rows; row++ {
		fillRow(g.grid, row, 1, 0)
	}

	res := g.Handle(core.ActionHardDrop)

	assert.Equal(t, 4*LineBonus, res.State.Score)
	assert.Equal(t, 4, res.State.Lines)
	assert.True(t, g.Grid().Empty())
	for _, e := range res.Events {
		if e.Kind == core.EventLineClear {
			assert.Equal(t, 4, e.Count)
		}
	}
}

func TestHoldSwap(t *testing.T) {
	g := newTestGame(t, KindI, KindT, KindZ)
	g.MoveHorizontal(-2)
	g.current.Y = 3

	res := g.Handle(core.ActionHold)
	require.True(t, res.Has(core.EventHold))

	held, ok := g.Held()
	require.True(t, ok)
	assert.Equal(t, KindI, held.Kind)
	assert.Equal(t, 0, held.X)
	assert.Equal(t, 0, held.Y)

	active := g.Current()
	assert.Equal(t, KindT, active.Kind)
	assert.Equal(t, 4, active.X)

	g.Handle(core.ActionHold)

	held, ok = g.Held()
	require.True(t, ok)
	assert.Equal(t, KindT, held.Kind)
	assert.Equal(t, 0, held.X)
	assert.Equal(t, 0, held.Y)

	active = g.Current()
	assert.Equal(t, KindI, active.Kind)
	assert.Equal(t, 0, active.X, "swapped-in piece keeps its stored position")
	assert.Equal(t, 0, active.Y)
}

func TestHoldSwapSpawnCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, KindO, KindT)
	g.current.Y = 10
	g.grid.Set(1, 4, 1)

	res := g.Handle(core.ActionHold)

	assert.True(t, res.State.GameOver)
	assert.True(t, res.Has(core.EventGameOver))
}

func TestGameOverWhenSpawnCollides(t *testing.T) {
	g := newTestGame(t, KindO)
	// Column 4-5 tower reaching row 2; rows stay incomplete.
	for row := 2; row < Rows; row++ {
		g.grid.Set(row, 4, 1)
		g.grid.Set(row, 5, 1)
	}

	res := g.Handle(core.ActionHardDrop)

	require.True(t, res.State.GameOver)
	assert.True(t, res.Has(core.EventGameOver))
	assert.True(t, g.GameOver())
	assert.Equal(t, StateGameOver, g.Snapshot().State)
}

func TestActionsIgnoredAfterGameOver(t *testing.T) {
	g := newTestGame(t, KindO)
	for row := 2; row < Rows; row++ {
		g.grid.Set(row, 4, 1)
	}
	g.Handle(core.ActionHardDrop)
	require.True(t, g.GameOver())

	before := g.Snapshot()
	for _, a := range core.GameplayActions() {
		res := g.Handle(a)
		assert.Empty(t, res.Events, "%v produced events after game over", a)
	}
	assert.False(t, g.MoveHorizontal(1))
	assert.False(t, g.SoftDrop())
	assert.False(t, g.Rotate())
	assert.False(t, g.HoldSwap())
	assert.Equal(t, 0, g.HardDrop())
	g.Step()

	assert.Equal(t, before, g.Snapshot())
}

func TestGameOverEventEmittedOnce(t *testing.T) {
	g := newTestGame(t, KindO)
	for row := 2; row < Rows; row++ {
		g.grid.Set(row, 5, 1)
	}

	count := 0
	for i := 0; i < 5; i++ {
		res := g.Handle(core.ActionHardDrop)
		for _, e := range res.Events {
			if e.Kind == core.EventGameOver {
				count++
			}
		}
	}
	assert.Equal(t, 1, count)
}

func TestNonGameplayActionsAreNoops(t *testing.T) {
	g := newTestGame(t, KindT)
	before := g.Snapshot()

	for _, a := range []core.Action{core.ActionNone, core.ActionRestart, core.ActionScoreboard, core.ActionQuit} {
		res := g.Handle(a)
		assert.Empty(t, res.Events)
	}
	assert.Equal(t, before, g.Snapshot())
}

func TestGhostY(t *testing.T) {
	g := newTestGame(t, KindO)
	assert.Equal(t, Rows-2, g.GhostY())

	g.grid.Set(10, 4, 1)
	assert.Equal(t, 8, g.GhostY())
	assert.Equal(t, 0, g.Current().Y, "ghost probe must not move the piece")
}

func TestSameSeedSameGame(t *testing.T) {
	play := func() Snapshot {
		g := New()
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42})
		actions := []core.Action{
			core.ActionLeft, core.ActionRotate, core.ActionHardDrop,
			core.ActionRight, core.ActionRight, core.ActionHardDrop,
			core.ActionHold, core.ActionSoftDrop, core.ActionHardDrop,
		}
		for i := 0; i < 6; i++ {
			for _, a := range actions {
				g.Handle(a)
			}
		}
		return g.Snapshot()
	}

	assert.Equal(t, play(), play())
}

func TestResetClearsState(t *testing.T) {
	g := newTestGame(t, KindO)
	g.Handle(core.ActionHold)
	g.Handle(core.ActionHardDrop)
	require.NotZero(t, g.State().Pieces)

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 9})

	assert.True(t, g.Grid().Empty())
	assert.Equal(t, core.GameState{}, g.State())
	_, held := g.Held()
	assert.False(t, held)
}

func TestStepCountsTicks(t *testing.T) {
	g := newTestGame(t, KindT)
	g.Step()
	g.Step()
	assert.Equal(t, uint64(2), g.Snapshot().Tick)
}

func TestRenderBoardAndPanels(t *testing.T) {
	g := newTestGame(t, KindO, KindT)
	g.Handle(core.ActionHardDrop)
	g.Handle(core.ActionHold)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "Blocks")
	assert.Contains(t, out, "HOLD")
	assert.Contains(t, out, "SCORE")
	assert.Contains(t, out, "██")
	assert.NotContains(t, out, "GAME OVER")

	found := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.GetCell(x, y).Color == core.PieceColor(KindO.ColorIndex()) {
				found = true
			}
		}
	}
	assert.True(t, found, "settled O should be drawn in its palette slot")
}

func TestRenderGhost(t *testing.T) {
	g := newTestGame(t, KindO)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	assert.NotContains(t, screen.String(), "░")

	g.SetGhost(true)
	g.Render(screen)
	assert.Contains(t, screen.String(), "░░")
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(t, KindO)
	for row := 2; row < Rows; row++ {
		g.grid.Set(row, 4, 1)
	}
	g.Handle(core.ActionHardDrop)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.Contains(t, screen.String(), "GAME OVER")
	assert.Contains(t, screen.String(), "Score: 0")
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, KindO)
	g.Resize(30, 10)

	screen := core.NewScreen(30, 10)
	g.Render(screen)

	assert.True(t, strings.Contains(screen.String(), "Window too small"))
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)
}

func TestSmallWindowPausesPlay(t *testing.T) {
	g := newTestGame(t, KindO)
	before := g.Snapshot()

	g.Resize(20, 10)
	for _, a := range core.GameplayActions() {
		res := g.Handle(a)
		assert.Empty(t, res.Events, "action %v", a)
	}
	g.Step()

	paused := g.Snapshot()
	assert.Equal(t, StatePausedSmall, paused.State)
	assert.Equal(t, before.Current, paused.Current)
	assert.Nil(t, paused.Held)
	assert.Zero(t, paused.Pieces)
	assert.Equal(t, before.Tick, paused.Tick)

	g.Resize(80, 24)
	res := g.Handle(core.ActionHardDrop)
	assert.True(t, res.Has(core.EventLock))
	assert.Equal(t, StateActive, g.Snapshot().State)
}

func TestGameOverOverlayShowsSessionBest(t *testing.T) {
	g := newTestGame(t, KindO)
	for row := 2; row < Rows; row++ {
		g.grid.Set(row, 4, 1)
	}
	g.Handle(core.ActionHardDrop)
	require.True(t, g.GameOver())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.NotContains(t, screen.String(), "Best:")

	g.SetSessionBest(120)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Best:  120")
}

func TestSidePanelHasNoKeyHints(t *testing.T) {
	g := newTestGame(t, KindO)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "PIECES")
	assert.NotContains(t, out, "hold ")
	assert.NotContains(t, out, "quit")
}
