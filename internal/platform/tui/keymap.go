package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// actionOrder fixes lookup and help order.
var actionOrder = []core.Action{
	core.ActionLeft,
	core.ActionRight,
	core.ActionSoftDrop,
	core.ActionRotate,
	core.ActionHardDrop,
	core.ActionHold,
	core.ActionRestart,
	core.ActionScoreboard,
	core.ActionQuit,
}

var actionHelp = map[core.Action]string{
	core.ActionLeft:       "left",
	core.ActionRight:      "right",
	core.ActionSoftDrop:   "drop",
	core.ActionRotate:     "rotate",
	core.ActionHardDrop:   "hard drop",
	core.ActionHold:       "hold",
	core.ActionRestart:    "restart",
	core.ActionScoreboard: "scores",
	core.ActionQuit:       "quit",
}

var keyLabels = map[string]string{
	" ":     "space",
	"left":  "←",
	"right": "→",
	"up":    "↑",
	"down":  "↓",
}

// KeyMap translates Bubble Tea key messages to game actions.
// It also implements help.KeyMap for the help bar.
type KeyMap struct {
	bindings map[core.Action]key.Binding
}

// DefaultBindings returns the classic arrow/space/c layout.
func DefaultBindings() map[core.Action][]string {
	return map[core.Action][]string{
		core.ActionLeft:       {"left"},
		core.ActionRight:      {"right"},
		core.ActionSoftDrop:   {"down"},
		core.ActionRotate:     {"up"},
		core.ActionHardDrop:   {" "},
		core.ActionHold:       {"c"},
		core.ActionRestart:    {"r"},
		core.ActionScoreboard: {"s"},
		core.ActionQuit:       {"q", "ctrl+c"},
	}
}

// NewKeyMap builds a key map from action bindings. Actions missing from
// bindings keep their default keys; ctrl+c always quits.
func NewKeyMap(bindings map[core.Action][]string) KeyMap {
	defaults := DefaultBindings()
	km := KeyMap{bindings: make(map[core.Action]key.Binding, len(actionOrder))}

	for _, a := range actionOrder {
		keys, ok := bindings[a]
		if !ok || len(keys) == 0 {
			keys = defaults[a]
		}
		if a == core.ActionQuit && !slices.Contains(keys, "ctrl+c") {
			keys = append(append([]string(nil), keys...), "ctrl+c")
		}
		km.bindings[a] = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(label(keys), actionHelp[a]),
		)
	}
	return km
}

// Action returns the action bound to msg, or ActionNone.
func (km KeyMap) Action(msg tea.KeyMsg) core.Action {
	for _, a := range actionOrder {
		if key.Matches(msg, km.bindings[a]) {
			return a
		}
	}
	return core.ActionNone
}

// Binding returns the binding for an action.
func (km KeyMap) Binding(a core.Action) key.Binding {
	return km.bindings[a]
}

// ShortHelp returns key bindings for the short help view.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.bindings[core.ActionLeft],
		km.bindings[core.ActionRight],
		km.bindings[core.ActionRotate],
		km.bindings[core.ActionHardDrop],
		km.bindings[core.ActionHold],
		km.bindings[core.ActionQuit],
	}
}

// FullHelp returns key bindings for the full help view.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.bindings[core.ActionLeft], km.bindings[core.ActionRight], km.bindings[core.ActionSoftDrop]},
		{km.bindings[core.ActionRotate], km.bindings[core.ActionHardDrop], km.bindings[core.ActionHold]},
		{km.bindings[core.ActionRestart], km.bindings[core.ActionScoreboard], km.bindings[core.ActionQuit]},
	}
}

// GameOverHelp returns the bindings that matter once the game has ended.
func (km KeyMap) GameOverHelp() []key.Binding {
	return []key.Binding{
		km.bindings[core.ActionRestart],
		km.bindings[core.ActionScoreboard],
		km.bindings[core.ActionQuit],
	}
}

// label renders keys for the help bar, e.g. "space" or "q/ctrl+c".
func label(keys []string) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		if l, ok := keyLabels[k]; ok {
			parts[i] = l
		} else {
			parts[i] = k
		}
	}
	return strings.Join(parts, "/")
}
