package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the built-in levels, or the levels found in --levels-dir.
Files that fail to parse or validate are skipped.`,
	Run: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	all, err := levelLoader().LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range all {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "ID", "Name", "Size (tiles)")
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "--", "----", "------------")

	for _, l := range all {
		size := fmt.Sprintf("%.0fx%.0f", l.Width/float64(l.TileSize), l.Height/float64(l.TileSize))
		fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, l.ID, l.Name, size)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play --level <id>' to play a level.")
}
