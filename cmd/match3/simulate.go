package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagRuns   int
	flagSave   bool
	flagEvents bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Autoplay a level over many seeds",
	Long: `Play the selected level headlessly, always taking the first legal move,
once per seed starting at --seed (or 1). Prints the pass rate and scores.

Examples:
  match3 simulate --level 8 --runs 100
  match3 simulate --config my-level.json --seed 42 --runs 1 --events --log-level debug
  match3 simulate --level 2 --runs 10 --save`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 20, "Number of seeds to play")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Store results in the database")
	simulateCmd.Flags().BoolVar(&flagEvents, "events", false, "Log every engine event at debug level")
}

// simulation sums up a batch of autoplayed games.
type simulation struct {
	Runs      int
	Passes    int
	BestScore int
	AvgScore  float64
	AvgMoves  float64
}

// simulate plays lvl once per seed in [first, first+runs).
func simulate(lvl config.Level, first int64, runs int, events *log.Logger) ([]match3.Result, simulation) {
	results := make([]match3.Result, 0, runs)
	sum := simulation{Runs: runs}
	totalScore, totalMoves := 0, 0

	for i := range runs {
		res := match3.PlayLevel(lvl, first+int64(i), events)
		results = append(results, res)
		if res.Passed() {
			sum.Passes++
		}
		sum.BestScore = max(sum.BestScore, res.Score)
		totalScore += res.Score
		totalMoves += res.MovesUsed
	}
	if runs > 0 {
		sum.AvgScore = float64(totalScore) / float64(runs)
		sum.AvgMoves = float64(totalMoves) / float64(runs)
	}
	return results, sum
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger := newLogger()
	if flagRuns <= 0 {
		fail("--runs must be positive")
	}

	lvl, err := resolveLevel()
	if err != nil {
		fail("%v", err)
	}

	var events *log.Logger
	if flagEvents {
		events = logger
	}
	first := flagSeed
	if first == 0 {
		first = 1
	}

	results, sum := simulate(lvl, first, flagRuns, events)
	for _, r := range results {
		logger.Info("run finished", "level_id", r.LevelID, "seed", r.Seed, "status", r.Status, "score", r.Score, "moves", r.MovesUsed)
	}

	if flagSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fail("opening results database: %v", err)
		}
		session := storage.NewSessionID()
		for _, r := range results {
			status := storage.StatusAbandoned
			switch r.Status {
			case engine.Passed:
				status = storage.StatusPassed
			case engine.Failed:
				status = storage.StatusFailed
			}
			if _, err := store.SaveResult(storage.Result{
				SessionID: session,
				LevelID:   r.LevelID,
				Status:    status,
				Score:     r.Score,
				MovesUsed: r.MovesUsed,
				Seed:      r.Seed,
			}); err != nil {
				store.Close()
				fail("saving result: %v", err)
			}
		}
		store.Close()
		logger.Info("results saved", "session", session, "count", len(results))
	}

	fmt.Printf("Level     %s (%s)\n", lvl.Title(), lvl.ID)
	fmt.Printf("Runs      %d (seeds %d..%d)\n", sum.Runs, first, first+int64(sum.Runs)-1)
	fmt.Printf("Passed    %d (%.0f%%)\n", sum.Passes, 100*float64(sum.Passes)/float64(sum.Runs))
	fmt.Printf("Score     best %d, avg %.1f\n", sum.BestScore, sum.AvgScore)
	fmt.Printf("Moves     avg %.1f of %d\n", sum.AvgMoves, lvl.Moves)
}
