// platformer is a side-scrolling platformer for the terminal, SSH and a
// desktop window.
//
// Usage:
//
//	platformer levels          - List available levels
//	platformer play [--level]  - Play a level
//	platformer menu            - Pick levels interactively
//	platformer scores <level>  - Show the best runs of a level
//	platformer serve           - Start SSH server for remote play
//	platformer sim             - Run a level headless with scripted input
//	platformer window          - Play a level in a desktop window
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed
//	--db <path>           - Set database path (default: ~/.platformer/runs.db)
//	--config <path>       - Custom tuning YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--levels-dir <path>   - Load levels from a directory instead of the built-in set
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - run, jump and stomp in your terminal",
	Long: `Platformer is a side-scrolling platform game for the terminal.

Walk and jump across the level, stomp enemies, bump item boxes for a star
that makes you bouncy, and reach the flag.

Available commands:
  levels   - Show all available levels
  play     - Play a level directly
  menu     - Interactive level picker
  scores   - View the best runs of a level
  serve    - Start SSH server for remote play
  sim      - Run a level headless with scripted input
  window   - Play in a desktop window

Examples:
  platformer levels
  platformer play --level 01-meadow
  platformer play --level-file ./my-level.yaml
  platformer menu --difficulty hard
  platformer serve --ssh :2222
  platformer sim --level 01-meadow --script "right:240,right+jump:1,right:600"`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		applyGameSettings()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of level files (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(windowCmd)
}
