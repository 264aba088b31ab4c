// Package config provides YAML-based configuration loading for blocks:
// display options, the piece palette, the RNG seed and key bindings.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all configuration for the game.
type Config struct {
	Display DisplayConfig       `yaml:"display"`
	Game    GameConfig          `yaml:"game"`
	Keys    map[string][]string `yaml:"keys"`
}

// DisplayConfig defines presentation parameters.
type DisplayConfig struct {
	FPS     int      `yaml:"fps"`
	Ghost   bool     `yaml:"ghost"`
	Palette []string `yaml:"palette"` // ANSI 256 codes, one per piece kind
}

// GameConfig defines gameplay parameters.
type GameConfig struct {
	Seed int64 `yaml:"seed"` // 0 = time-based
}

// Validate checks ranges, the palette and the key table.
func (c Config) Validate() error {
	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		return fmt.Errorf("%w: display.fps must be in [1, 240], got %d", ErrInvalid, c.Display.FPS)
	}

	if len(c.Display.Palette) != core.PieceSlots {
		return fmt.Errorf("%w: display.palette needs %d colors, got %d",
			ErrInvalid, core.PieceSlots, len(c.Display.Palette))
	}
	for i, code := range c.Display.Palette {
		n, err := strconv.Atoi(code)
		if err != nil || n < 0 || n > 255 {
			return fmt.Errorf("%w: display.palette[%d] = %q is not an ANSI 256 code", ErrInvalid, i, code)
		}
	}

	owner := make(map[string]string)
	for _, name := range sortedKeys(c.Keys) {
		if _, ok := core.ParseAction(name); !ok {
			return fmt.Errorf("%w: keys: unknown action %q", ErrInvalid, name)
		}
		if len(c.Keys[name]) == 0 {
			return fmt.Errorf("%w: keys.%s has no bindings", ErrInvalid, name)
		}
		for _, k := range c.Keys[name] {
			if k == "" {
				return fmt.Errorf("%w: keys.%s contains an empty key", ErrInvalid, name)
			}
			if prev, dup := owner[k]; dup {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, k, prev, name)
			}
			owner[k] = name
		}
	}

	for _, a := range core.GameplayActions() {
		if len(c.Keys[a.String()]) == 0 {
			return fmt.Errorf("%w: keys.%s is required", ErrInvalid, a)
		}
	}

	return nil
}

// Bindings returns the key table resolved to actions.
// Call after Validate; unknown action names are skipped.
func (c Config) Bindings() map[core.Action][]string {
	out := make(map[core.Action][]string, len(c.Keys))
	for name, keys := range c.Keys {
		if a, ok := core.ParseAction(name); ok {
			out[a] = append([]string(nil), keys...)
		}
	}
	return out
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
