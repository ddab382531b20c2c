package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check level files",
	Long: `Load each level file and report the first problem found. Exits with
status 1 when any file is invalid.

Examples:
  match3 validate my-level.json
  match3 validate levels/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	failed := 0
	for _, path := range args {
		lvl, err := config.LoadFile(path)
		if err != nil {
			failed++
			var verr *config.ValidationError
			if errors.As(err, &verr) {
				fmt.Printf("FAIL  %s  %s: %s\n", path, verr.Code, verr.Message)
			} else {
				fmt.Printf("FAIL  %s  %v\n", path, err)
			}
			continue
		}
		fmt.Printf("ok    %s  %s, %dx%d, %d colours, %d moves, %s\n",
			path, lvl.Title(), lvl.Rows, lvl.Cols, lvl.Colors, lvl.Moves, objectivesText(lvl))
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d of %d files invalid\n", failed, len(args))
		os.Exit(1)
	}
}
