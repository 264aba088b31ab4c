// blocks is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blocks play              - Play a game
//	blocks config            - Print the effective configuration
//	blocks keys              - Print the key bindings
//
// Global flags:
//
//	--config <path> - Config file (default search: ~/.blocks/config.yaml, ./configs/blocks.yaml)
//	--fps <rate>    - Redraw rate (default: from config)
//	--seed <value>  - RNG seed for reproducible piece sequences
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Blocks - a falling-block puzzle in your terminal",
	Long: `Blocks is a terminal falling-block puzzle game. Steer, rotate and
drop pieces onto a 10x20 board; every completed row is cleared for 10 points.

Available commands:
  play     - Start a game
  config   - Print the effective configuration as YAML
  keys     - Show the key bindings

Examples:
  blocks play
  blocks play --seed 42 --ghost
  blocks play --log-file /tmp/blocks.log
  blocks config > ~/.blocks/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Redraw rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, then time-based)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
}
