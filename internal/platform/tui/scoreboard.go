package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores    = 100 // Max results to load
	tableMinRows = 3
	chromeHeight = 8 // Title, stats line, help and margins
	scoreTitle   = "SESSION SCORES"
	noLedgerText = "Scores are unavailable: the session ledger could not be opened."
)

// scoreboardKeys is the help.KeyMap shown under the table.
type scoreboardKeys struct {
	Up      key.Binding
	Down    key.Binding
	Back    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Restart, k.Quit}}
}

func newScoreboardKeys(km KeyMap) scoreboardKeys {
	back := km.Binding(core.ActionScoreboard)
	return scoreboardKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys(append(append([]string(nil), back.Keys()...), "esc")...),
			key.WithHelp(back.Help().Key+"/esc", "back"),
		),
		Restart: km.Binding(core.ActionRestart),
		Quit:    km.Binding(core.ActionQuit),
	}
}

// scoreboard lists the results recorded during this session.
type scoreboard struct {
	store   *storage.Store
	gameID  string
	results []storage.Result
	stats   *storage.Stats
	loadErr error
	table   table.Model
	help    help.Model
	keys    scoreboardKeys
	width   int
	height  int
}

func newScoreboard(store *storage.Store, gameID string, km KeyMap, width, height int) *scoreboard {
	h := help.New()
	h.Width = width

	sb := &scoreboard{
		store:  store,
		gameID: gameID,
		help:   h,
		keys:   newScoreboardKeys(km),
		width:  width,
		height: height,
	}
	sb.table = sb.createTable()
	sb.load()
	return sb
}

// createTable creates a new table with appropriate columns.
func (sb *scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Lines", Width: 7},
		{Title: "Pieces", Width: 8},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(tableMinRows, sb.height-chromeHeight)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads results and aggregate stats from the ledger.
func (sb *scoreboard) load() {
	sb.results = nil
	sb.stats = nil
	sb.loadErr = nil

	if sb.store != nil {
		results, err := sb.store.TopResults(sb.gameID, maxScores)
		if err != nil {
			sb.loadErr = err
		} else {
			sb.results = results
		}
		if stats, err := sb.store.SessionStats(sb.gameID); err == nil {
			sb.stats = stats
		}
	}
	sb.updateTableRows()
}

// updateTableRows updates the table with current results.
func (sb *scoreboard) updateTableRows() {
	rows := make([]table.Row, len(sb.results))
	for i, r := range sb.results {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Lines),
			fmt.Sprintf("%d", r.Pieces),
			r.CreatedAt.Local().Format("15:04:05"),
		}
	}
	sb.table.SetRows(rows)
	sb.table.GotoTop()
}

func (sb *scoreboard) resize(width, height int) {
	sb.width = width
	sb.height = height
	sb.help.Width = width
	sb.table = sb.createTable()
	sb.updateTableRows()
}

// update passes scroll keys to the table.
func (sb *scoreboard) update(msg tea.KeyMsg) tea.Cmd {
	if !key.Matches(msg, sb.keys.Up) && !key.Matches(msg, sb.keys.Down) {
		return nil
	}
	var cmd tea.Cmd
	sb.table, cmd = sb.table.Update(msg)
	return cmd
}

// view renders the scoreboard.
func (sb *scoreboard) view() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	mutedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	b.WriteString(titleStyle.Render(centerText(scoreTitle, sb.width)))
	b.WriteString("\n\n")

	switch {
	case sb.store == nil:
		b.WriteString(mutedStyle.Render(noLedgerText))
		b.WriteString("\n")
	case sb.loadErr != nil:
		b.WriteString(mutedStyle.Render("Could not load scores: " + sb.loadErr.Error()))
		b.WriteString("\n")
	case len(sb.results) == 0:
		b.WriteString(mutedStyle.Render("No games finished yet."))
		b.WriteString("\n")
	default:
		if sb.stats != nil {
			b.WriteString(mutedStyle.Render(fmt.Sprintf(
				"Games: %d   Best: %d   Avg: %.1f   Lines: %d",
				sb.stats.GamesCount, sb.stats.HighScore, sb.stats.AvgScore, sb.stats.TotalLines,
			)))
			b.WriteString("\n\n")
		}
		b.WriteString(sb.table.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(sb.help.View(sb.keys)))
	return b.String()
}

// centerText pads text so it appears centered within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
