package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var (
	flagLevel     string
	flagLevelFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Start playing a level in the terminal.

Controls:
  A/D, Left/Right        - Walk
  Shift+Arrow, X, A/D    - Run (capital letter or X while walking)
  Space/W/Up             - Jump
  P                      - Pause
  R                      - Restart (after the level ends)
  Esc/B                  - Back (while paused or after the level ends)
  Ctrl+S                 - Save a screenshot
  Q/Ctrl+C               - Quit

Difficulty options:
  easy   - Enemies start slow and speed up over time
  normal - Enemies start at 30% of the extra speed
  hard   - Enemies start at 70% of the extra speed
  fixed  - No progression, stays at config's initial level

Examples:
  platformer play
  platformer play --level 02-ledges
  platformer play --level-file ./my-level.yaml
  platformer play --difficulty hard --config ./tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID to play")
	playCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Path to a level file to play")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger("platformer")

	lvl, err := resolveLevel(flagLevel, flagLevelFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'platformer levels' to see available levels.")
		os.Exit(1)
	}

	store := openStore(logger)

	_, runErr := tui.Run(platformer.NewWithLevel(lvl), store, logger, runtimeConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
