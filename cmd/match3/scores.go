package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show best results",
	Long: `Display the top 10 passed results for a campaign level. Without an argument
the interactive results board opens.

Examples:
  match3 scores
  match3 scores 3
  match3 scores 08-grand-finale`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening results database: %v", err)
	}
	defer store.Close()

	if len(args) == 0 {
		levels, err := levelPack("")
		if err != nil {
			fail("%v", err)
		}
		cfg := terminalConfig()
		if _, err := tui.RunScoreboard(levels, store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fail("%v", err)
		}
		return
	}

	lvl, err := campaignLevel(args[0])
	if err != nil {
		fail("%v", err)
	}

	results, err := store.TopResults(lvl.ID, 10)
	if err != nil {
		fail("retrieving results: %v", err)
	}
	stats, err := store.Stats(lvl.ID)
	if err != nil {
		fail("retrieving stats: %v", err)
	}

	fmt.Printf("Best Results - %s\n", lvl.Title())
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No passed results yet.")
		fmt.Println()
		fmt.Printf("Play 'match3 play --level %s' to set the first one!\n", args[0])
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-12s  %s\n", "Rank", "Score", "Moves", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-12s  %s\n", "----", "-----", "-----", "----", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-8d  %-6d  %-12d  %s\n", i+1, r.Score, r.MovesUsed, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Played %d, passed %d (%.0f%%), fewest moves %d\n",
		stats.Plays, stats.Passes, 100*stats.PassRate(), stats.FewestMoves)
}
