package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var flagLevelsDir string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level interactively",
	Long: `Open the level picker. After a level ends you return to the picker;
Tab opens the results board.

Examples:
  match3 menu
  match3 menu --dir ./my-levels --difficulty easy
  match3 menu --event-log events.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagLevelsDir, "dir", "", "Directory of level files to use instead of the campaign")
	menuCmd.Flags().StringVar(&flagEventLog, "event-log", "", "Write engine events to this file")
}

// levelPack returns the levels from --dir, or the campaign.
func levelPack(dir string) ([]config.Level, error) {
	if dir != "" {
		return config.LoadDir(dir)
	}
	return config.Campaign()
}

func runMenu(cmd *cobra.Command, args []string) {
	logger := newLogger()

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}
	levels, err := levelPack(flagLevelsDir)
	if err != nil {
		fail("%v", err)
	}
	if len(levels) == 0 {
		fail("no levels found")
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

	session := storage.NewSessionID()
	cfg := terminalConfig()
	for {
		res, err := tui.RunMenu(levels, store, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			os.Exit(1)
		}
		cfg.ScreenW, cfg.ScreenH = res.Config.ScreenW, res.Config.ScreenH

		switch {
		case res.Quit:
			return

		case res.WantsScoreboard:
			back, err := tui.RunScoreboard(levels, store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "error", err)
				os.Exit(1)
			}
			if !back {
				return
			}

		case res.Level != nil:
			if err := playLevel(preset.Apply(*res.Level), store, session, cfg, logger); err != nil {
				logger.Error("game failed", "error", err)
				os.Exit(1)
			}
		}
	}
}
