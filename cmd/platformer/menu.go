package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var flagMono bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a level, Tab for the
scoreboard. When a level ends, press Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play level
  Tab          - Scoreboard
  Q            - Quit

Examples:
  platformer menu
  platformer menu --fps 30
  platformer menu --levels-dir ./levels`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMono, "mono", false, "Use a grayscale menu theme")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger("platformer")

	if flagMono {
		tui.SetTheme(tui.MonochromeTheme())
	}

	all, err := loadLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	kinds := platformer.LoadConfig().Enemies.Kinds

	for {
		menuResult, err := tui.RunMenu(all, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(all, store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		lvl := *menuResult.Level
		if err := lvl.Validate(kinds); err != nil {
			logger.Error("level cannot be played", "level", lvl.ID, "error", err)
			continue
		}

		cfg.Seed = time.Now().UnixNano()

		backToMenu, err := tui.Run(platformer.NewWithLevel(lvl), store, logger, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}
}
