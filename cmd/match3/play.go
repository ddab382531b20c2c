package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var flagEventLog string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Start playing a level. Without --config or --level the level is loaded from
~/.match3/configs/level.json, then ./configs/level.json, then the built-in default.

Controls:
  Arrows/hjkl/WASD  - Move the cursor
  Space/Enter       - Select; select a neighbour to swap
  Mouse click       - Select the clicked cell
  Esc               - Drop the selection
  ?                 - Show a hint
  P                 - Pause
  R                 - Replay (after the level ends)
  Q/Ctrl+C          - Quit

Examples:
  match3 play
  match3 play --level 4 --difficulty hard
  match3 play --config ./my-level.yaml --seed 7
  match3 play --event-log events.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagEventLog, "event-log", "", "Write engine events to this file")
}

// terminalConfig reads the terminal size, falling back to 80x24.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the results database, or returns nil with a warning.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		return nil
	}
	return store
}

// openEventLog routes engine events to the --event-log file. The returned
// function closes it.
func openEventLog() (func(), error) {
	if flagEventLog == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(flagEventLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open event log: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
		Level:           log.DebugLevel,
	})
	match3.SetEventLogger(logger)
	return func() {
		match3.SetEventLogger(nil)
		f.Close()
	}, nil
}

// playLevel runs one level in the TUI and logs its result.
func playLevel(lvl config.Level, store *storage.Store, sessionID string, cfg core.RuntimeConfig, logger *log.Logger) error {
	match3.SetLevel(lvl)
	game, err := registry.Create(match3.GameID)
	if err != nil {
		return err
	}

	res, err := tui.Run(game, store, sessionID, cfg)
	if err != nil {
		return err
	}
	if res != nil {
		logger.Info("level finished", "level_id", res.LevelID, "status", res.Status, "score", res.Score, "moves", res.MovesUsed)
	}
	return nil
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()

	lvl, err := resolveLevel()
	if err != nil {
		fail("%v", err)
	}

	closeLog, err := openEventLog()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := playLevel(lvl, store, storage.NewSessionID(), terminalConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}
