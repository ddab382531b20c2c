package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long: `Shows the built-in campaign, or the levels found under --dir, with your
best result on each.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "dir", "", "Directory of level files to list instead of the campaign")
}

// objectivesText formats objectives as "Red 10, Blue 5".
func objectivesText(l config.Level) string {
	parts := make([]string, len(l.Objectives))
	for i, o := range l.Objectives {
		parts[i] = fmt.Sprintf("%s %d", o.Color, o.Remaining)
	}
	return strings.Join(parts, ", ")
}

func runLevels(cmd *cobra.Command, args []string) {
	levels, err := levelPack(flagLevelsDir)
	if err != nil {
		fail("%v", err)
	}
	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	var stats map[string]*storage.LevelStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.AllStats()
		store.Close()
	}

	maxIDLen := 2 // "ID" header
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-3s  %-*s  %-16s  %-5s  %-6s  %-5s  %-24s  %s\n", "#", maxIDLen, "ID", "Name", "Board", "Colors", "Moves", "Objectives", "Best")
	fmt.Printf("  %-3s  %-*s  %-16s  %-5s  %-6s  %-5s  %-24s  %s\n", "-", maxIDLen, "--", "----", "-----", "------", "-----", "----------", "----")

	for i, l := range levels {
		best := "-"
		if st, ok := stats[l.ID]; ok && st.Passes > 0 {
			best = fmt.Sprintf("%d", st.BestScore)
		}
		board := fmt.Sprintf("%dx%d", l.Rows, l.Cols)
		fmt.Printf("  %-3d  %-*s  %-16s  %-5s  %-6d  %-5d  %-24s  %s\n",
			i+1, maxIDLen, l.ID, l.Title(), board, l.Colors, l.Moves, objectivesText(l), best)
	}

	fmt.Println()
	fmt.Println("Run 'match3 play --level <#>' to play a level.")
}
