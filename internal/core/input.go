package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// Key bindings live in the platform; the game only sees actions.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow - shift piece one column left
	ActionRight            // Right arrow - shift piece one column right
	ActionSoftDrop         // Down arrow - one row down, lock on landing
	ActionRotate           // Up arrow - rotate 90° clockwise
	ActionHardDrop         // Space - drop to the floor and lock
	ActionHold             // C - hold/swap the active piece
	ActionRestart          // R - new game after game over
	ActionScoreboard       // S - session scoreboard after game over
	ActionQuit             // Q, Ctrl+C - exit
)

var actionNames = map[Action]string{
	ActionNone:       "none",
	ActionLeft:       "left",
	ActionRight:      "right",
	ActionSoftDrop:   "soft_drop",
	ActionRotate:     "rotate",
	ActionHardDrop:   "hard_drop",
	ActionHold:       "hold",
	ActionRestart:    "restart",
	ActionScoreboard: "scoreboard",
	ActionQuit:       "quit",
}

// String returns the config name of the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction converts a config name (e.g. "hard_drop") to an Action.
// Returns ActionNone and false for unknown names.
func ParseAction(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if a != ActionNone && n == name {
			return a, true
		}
	}
	return ActionNone, false
}

// GameplayActions lists the actions that mutate the board, in help order.
func GameplayActions() []Action {
	return []Action{
		ActionLeft,
		ActionRight,
		ActionSoftDrop,
		ActionRotate,
		ActionHardDrop,
		ActionHold,
	}
}

// IsGameplay reports whether the action mutates grid or piece state.
func (a Action) IsGameplay() bool {
	return a >= ActionLeft && a <= ActionHold
}
