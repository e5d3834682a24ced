package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/window"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play a level in a desktop window",
	Long: `Open a desktop window and play a level with real key-up events.

Controls:
  A/D, Left/Right  - Walk
  Shift/X          - Run
  Space/W/Up       - Jump
  P                - Pause
  R                - Restart (after the level ends)
  Esc/Q            - Quit

Examples:
  platformer window
  platformer window --level 02-ledges --scale 3`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID to play")
	windowCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Path to a level file to play")
	windowCmd.Flags().IntVar(&flagScale, "scale", 2, "Window pixels per world pixel")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := newLogger("platformer")

	lvl, err := resolveLevel(flagLevel, flagLevelFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	err = window.Run(lvl, window.Options{
		Scale:    flagScale,
		TickRate: flagFPS,
		Store:    store,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("window closed with error", "error", err)
	}
}
