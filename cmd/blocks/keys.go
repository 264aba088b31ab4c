package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the key bindings",
	Long:  `Shows the key bound to every action, after applying the configuration.`,
	Args:  cobra.NoArgs,
	RunE:  runKeys,
}

func runKeys(cmd *cobra.Command, _ []string) error {
	cfg, _, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	km := tui.NewKeyMap(cfg.Bindings())
	out := cmd.OutOrStdout()

	// Calculate column widths
	maxKeyLen := 3 // "Key" header
	rows := km.FullHelp()
	for _, col := range rows {
		for _, b := range col {
			maxKeyLen = max(maxKeyLen, len([]rune(b.Help().Key)))
		}
	}

	// Print header
	fmt.Fprintf(out, "  %s  %s\n", pad("Key", maxKeyLen), "Action")
	fmt.Fprintf(out, "  %s  %s\n", pad("---", maxKeyLen), "------")

	for _, col := range rows {
		for _, b := range col {
			h := b.Help()
			fmt.Fprintf(out, "  %s  %s\n", pad(h.Key, maxKeyLen), h.Desc)
		}
	}
	return nil
}

// pad right-pads s to width runes; %-*s counts bytes, which breaks arrows.
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
