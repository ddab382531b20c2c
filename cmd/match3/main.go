// match3 is a terminal match-3 puzzle game.
//
// Usage:
//
//	match3 play              - Play a level
//	match3 menu              - Pick a campaign level interactively
//	match3 levels            - List campaign levels
//	match3 validate <file>   - Check level files
//	match3 simulate          - Autoplay a level over many seeds
//	match3 scores [level]    - Show best results
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 30)
//	--seed <value>         - Set RNG seed for reproducible boards
//	--db <path>            - Set database path (default: ~/.match3/results.db)
//	--config <path>        - Play a level file instead of the campaign
//	--level <n|id>         - Campaign level by number or ID
//	--difficulty <preset>  - easy, normal or hard
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-match3/internal/games/match3"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevel      string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match 3 - swap figures, clear objectives",
	Long: `Match 3 is a terminal puzzle game. Swap neighbouring figures to line up
three or more of a colour, build boosters from longer lines, squares and T
shapes, and clear each level's colour objectives before the moves run out.

Available commands:
  play      - Play a level directly
  menu      - Interactive level picker
  levels    - List campaign levels
  validate  - Check level files
  simulate  - Autoplay a level over many seeds
  scores    - View best results

Examples:
  match3 play --level 3
  match3 play --config ./my-level.json --seed 42
  match3 simulate --level 8 --runs 50
  match3 validate levels/*.json`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a level file (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Campaign level number or ID")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger returns the stderr logger at the --log-level level.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "value", flagLogLevel)
	}
	return logger
}

// fail prints an error the way every command reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
