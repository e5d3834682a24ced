package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show the best runs of a level",
	Long: `Display the top 10 runs for the specified level, best score first.

Examples:
  platformer scores 01-meadow
  platformer scores 02-ledges --db ./runs.db`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	levelID := args[0]

	lvl, err := levelLoader().LoadByID(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'platformer levels' to see available levels.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best Runs - %s\n", lvl.Name)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'platformer play --level %s' to set the first record!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "Rank", "Score", "Time", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "----", "-----", "----", "------", "----")

	for i, r := range runs {
		result := "died"
		if r.Finished {
			result = "finished"
		}
		fmt.Printf("  %-4d  %-8d  %-8s  %-8s  %s\n",
			i+1, r.Score, fmt.Sprintf("%.1fs", float64(r.DurationMS)/1000), result,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, ok, err := store.BestTime(levelID); err == nil && ok {
		fmt.Printf("Best time: %.1fs\n", float64(best)/1000)
	}
	if stats, err := store.GetLevelStats(levelID); err == nil {
		fmt.Printf("Finished %d of %d runs\n", stats.Finishes, stats.Runs)
	}
}
