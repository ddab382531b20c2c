package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

func TestCampaignLevel(t *testing.T) {
	byNumber, err := campaignLevel("1")
	if err != nil {
		t.Fatalf("campaignLevel(1) failed: %v", err)
	}
	byID, err := campaignLevel(byNumber.ID)
	if err != nil {
		t.Fatalf("campaignLevel(%q) failed: %v", byNumber.ID, err)
	}
	if byID.ID != byNumber.ID {
		t.Errorf("campaignLevel(%q).ID = %q", byNumber.ID, byID.ID)
	}

	for _, ref := range []string{"0", "99", "no-such-level"} {
		if _, err := campaignLevel(ref); err == nil {
			t.Errorf("campaignLevel(%q) succeeded, expected an error", ref)
		}
	}
}

func TestResolveLevelAppliesDifficulty(t *testing.T) {
	defer func() { flagLevel, flagDifficulty = "", "" }()

	flagLevel = "1"
	normal, err := resolveLevel()
	if err != nil {
		t.Fatalf("resolveLevel() failed: %v", err)
	}

	flagDifficulty = "easy"
	easy, err := resolveLevel()
	if err != nil {
		t.Fatalf("resolveLevel() failed: %v", err)
	}
	if easy.Moves <= normal.Moves {
		t.Errorf("easy Moves = %d, expected more than %d", easy.Moves, normal.Moves)
	}

	flagDifficulty = "brutal"
	if _, err := resolveLevel(); err == nil {
		t.Error("resolveLevel() accepted an unknown preset")
	}
}

func TestObjectivesText(t *testing.T) {
	l := config.Level{Objectives: []engine.Objective{{Color: engine.Red, Remaining: 10}, {Color: engine.Blue, Remaining: 5}}}
	if got := objectivesText(l); got != "Red 10, Blue 5" {
		t.Errorf("objectivesText() = %q, expected %q", got, "Red 10, Blue 5")
	}
}

func TestSimulate(t *testing.T) {
	lvl, err := config.CampaignLevel(1)
	if err != nil {
		t.Fatalf("CampaignLevel(1) failed: %v", err)
	}

	results, sum := simulate(lvl, 1, 3, nil)
	if len(results) != 3 || sum.Runs != 3 {
		t.Fatalf("simulate() returned %d results, expected 3", len(results))
	}
	for i, r := range results {
		if r.Seed != int64(i+1) {
			t.Errorf("results[%d].Seed = %d, expected %d", i, r.Seed, i+1)
		}
		if !r.Status.Terminal() {
			t.Errorf("results[%d] did not finish: %+v", i, r)
		}
	}

	again, _ := simulate(lvl, 1, 3, nil)
	for i := range results {
		if again[i] != results[i] {
			t.Errorf("run %d differs between identical batches: %+v vs %+v", i, results[i], again[i])
		}
	}
}

func TestEventLogFlag(t *testing.T) {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		if cmd.Flags().Lookup("event-log") == nil {
			t.Errorf("%s has no --event-log flag", cmd.Name())
		}
	}

	defer func() { flagEventLog = "" }()
	path := filepath.Join(t.TempDir(), "events.log")
	if err := menuCmd.Flags().Set("event-log", path); err != nil {
		t.Fatalf("Set(event-log) failed: %v", err)
	}
	closeLog, err := openEventLog()
	if err != nil {
		t.Fatalf("openEventLog() failed: %v", err)
	}
	closeLog()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("event log was not created: %v", err)
	}
}
