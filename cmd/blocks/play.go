package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/tetris"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var (
	flagLogFile string
	flagGhost   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of blocks.

Controls (defaults, see 'blocks keys'):
  Left/Right - Move
  Down       - Soft drop
  Up         - Rotate
  Space      - Hard drop
  C          - Hold
  R          - Restart (after game over)
  S          - Session scores (after game over)
  Q/Ctrl+C   - Quit

Examples:
  blocks play
  blocks play --seed 7
  blocks play --ghost --fps 60
  blocks play --config ./my-blocks.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	playCmd.Flags().BoolVar(&flagGhost, "ghost", false, "Show where the active piece will land")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("config loaded", "source", source)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.FPS,
		Seed:     cfg.Game.Seed,
	}
	if flagFPS > 0 {
		runtime.TickRate = flagFPS
	}
	if flagSeed != 0 {
		runtime.Seed = flagSeed
	}

	ghost := cfg.Display.Ghost
	if cmd.Flags().Changed("ghost") {
		ghost = flagGhost
	}

	game := tetris.New()
	game.SetGhost(ghost)

	// Open the session ledger
	store, err := storage.OpenSession()
	if err != nil {
		logger.Warn("could not open session ledger", "err", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open session ledger: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	final, err := tui.Run(game, store, logger, tui.Settings{
		Runtime:  runtime,
		Bindings: cfg.Bindings(),
		Palette:  cfg.Display.Palette,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	printSummary(cmd.OutOrStdout(), store, game.ID(), final)
	return nil
}

// printSummary reports the session once the terminal is restored.
func printSummary(w io.Writer, store *storage.Store, gameID string, last core.GameState) {
	if store != nil {
		if stats, err := store.SessionStats(gameID); err == nil && stats.GamesCount > 0 {
			fmt.Fprintf(w, "Games: %d  Best: %d  Avg: %.1f  Lines: %d\n",
				stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalLines)
			return
		}
	}
	fmt.Fprintf(w, "Score: %d  Lines: %d  Pieces: %d\n", last.Score, last.Lines, last.Pieces)
}

// newLogger returns a logger writing to path, or discarding output when path
// is empty. The TUI owns the terminal, so logs never go to stderr.
func newLogger(path string) (*log.Logger, func(), error) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "blocks",
	}
	if path == "" {
		return log.NewWithOptions(io.Discard, opts), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	opts.Level = log.DebugLevel
	return log.NewWithOptions(f, opts), func() { f.Close() }, nil
}
