package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

// Game is the contract the model drives. Actions are applied synchronously
// through Handle; Step only advances the redraw counter.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Handle(a core.Action) core.StepResult
	Step() core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	SetSessionBest(score int)
}

// helpHeight is the number of rows reserved under the board for the help bar.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Settings carries everything the model needs besides the game itself.
type Settings struct {
	Runtime  core.RuntimeConfig
	Bindings map[core.Action][]string
	Palette  []string
}

// Model is the Bubble Tea model for a blocks session.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	fixedSeed  bool
	keys       KeyMap
	help       help.Model
	palette    Palette
	gameState  core.GameState
	scores     *scoreboard
	ticking    bool
	quitting   bool
	scoreSaved bool // Whether the result has been recorded for the current game over
}

// NewModel creates a new Bubble Tea model for the given game. store and
// logger may be nil.
func NewModel(game Game, store *storage.Store, logger *log.Logger, s Settings) Model {
	cfg := s.Runtime
	fixed := cfg.Seed != 0
	// Use time-based seed if not specified
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		store:     store,
		logger:    logger,
		config:    cfg,
		fixedSeed: fixed,
		keys:      NewKeyMap(s.Bindings),
		help:      h,
		palette:   NewPalette(s.Palette),
		ticking:   true, // Init schedules the first tick
	}

	// Reset here rather than in Init so the first View has a board.
	m.game.Reset(m.boardConfig())
	m.gameState = m.game.State()
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return m
}

// Init starts the redraw tick.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores != nil {
		return m.handleScoreboardKey(msg, action)
	}

	switch {
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			return m.restart()
		}
	case action == core.ActionScoreboard:
		if m.gameState.GameOver {
			m.scores = newScoreboard(m.store, m.game.ID(), m.keys, m.config.ScreenW, m.config.ScreenH)
		}
	case action.IsGameplay():
		m.apply(m.game.Handle(action))
	}

	return m, nil
}

// handleScoreboardKey routes keys while the scoreboard is open.
func (m Model) handleScoreboardKey(msg tea.KeyMsg, action core.Action) (tea.Model, tea.Cmd) {
	switch {
	case action == core.ActionScoreboard, msg.String() == "esc":
		m.scores = nil
		return m, nil
	case action == core.ActionRestart:
		m.scores = nil
		return m.restart()
	}

	return m, m.scores.update(msg)
}

// handleResize processes window resize events. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, boardHeight(msg.Height))
	m.game.Resize(msg.Width, boardHeight(msg.Height))
	m.help.Width = msg.Width
	if m.scores != nil {
		m.scores.resize(msg.Width, msg.Height)
	}
	return m, nil
}

// handleTick advances the redraw counter. The tick is not rescheduled once
// the game is over.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.apply(m.game.Step())
	if m.gameState.GameOver {
		m.ticking = false
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// restart begins a new game and resumes the tick.
func (m Model) restart() (tea.Model, tea.Cmd) {
	// A fixed seed replays the same piece sequence.
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.boardConfig())
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.logger.Info("game restarted", "seed", m.config.Seed)

	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// apply records the result of an action or tick.
func (m *Model) apply(res core.StepResult) {
	m.gameState = res.State
	for _, ev := range res.Events {
		switch ev.Kind {
		case core.EventLineClear:
			m.logger.Debug("rows cleared", "count", ev.Count, "score", res.State.Score)
		case core.EventGameOver:
			m.recordGameOver()
		}
	}
}

// recordGameOver logs the final score and saves it to the session ledger once.
func (m *Model) recordGameOver() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	st := m.gameState
	m.logger.Info("game over", "score", st.Score, "lines", st.Lines, "pieces", st.Pieces)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		GameID: m.game.ID(),
		Score:  st.Score,
		Lines:  st.Lines,
		Pieces: st.Pieces,
		Seed:   m.config.Seed,
	})
	if err != nil {
		m.logger.Warn("could not record result", "err", err)
		return
	}

	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read session best", "err", err)
		return
	}
	m.game.SetSessionBest(best)
}

// boardConfig is the runtime config with the help bar rows taken off.
func (m Model) boardConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = boardHeight(cfg.ScreenH)
	return cfg
}

func boardHeight(screenH int) int {
	return max(0, screenH-helpHeight)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Ticking reports whether a redraw tick is scheduled.
func (m Model) Ticking() bool {
	return m.ticking
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.scores != nil {
		return m.scores.view()
	}

	m.game.Render(m.screen)

	bar := m.help.View(m.keys)
	if m.gameState.GameOver {
		bar = m.help.ShortHelpView(m.keys.GameOverHelp())
	}
	return RenderScreen(m.screen, m.palette) + "\n" + helpStyle.Render(bar)
}

// Run starts the Bubble Tea program and returns the final game state.
func Run(game Game, store *storage.Store, logger *log.Logger, s Settings) (core.GameState, error) {
	model := NewModel(game, store, logger, s)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return model.State(), nil
}
