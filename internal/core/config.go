package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Redraw ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic piece selection
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the summary the platform reads after every action.
type GameState struct {
	Score    int  // Current score
	Lines    int  // Rows cleared this game
	Pieces   int  // Pieces locked this game
	GameOver bool // Whether the game has ended
}

// EventKind identifies something that happened while handling an action.
type EventKind int

const (
	EventLock     EventKind = iota // Piece merged into the grid
	EventLineClear                 // One or more rows removed
	EventHold                      // Hold slot changed
	EventGameOver                  // Spawned piece collided; terminal
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventLock:
		return "lock"
	case EventLineClear:
		return "line_clear"
	case EventHold:
		return "hold"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event carries an EventKind with an optional count (rows for EventLineClear).
type Event struct {
	Kind  EventKind
	Count int
}

// StepResult is returned after each handled action or redraw tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the result contains an event of the given kind.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
