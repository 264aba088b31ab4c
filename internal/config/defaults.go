package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors the embedded
// defaults/blocks.yaml and is used when the embed cannot be parsed.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			FPS:     30,
			Ghost:   false,
			Palette: []string{"197", "45", "48", "201", "208", "220", "33"},
		},
		Game: GameConfig{
			Seed: 0,
		},
		Keys: map[string][]string{
			"left":       {"left"},
			"right":      {"right"},
			"soft_drop":  {"down"},
			"rotate":     {"up"},
			"hard_drop":  {" "},
			"hold":       {"c"},
			"restart":    {"r"},
			"scoreboard": {"s"},
			"quit":       {"q", "ctrl+c"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
