package config

import (
	"testing"

	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}
	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr || got != tc.expected {
			t.Errorf("ParseDifficulty(%q) = %q, %v; expected %q", tc.in, got, err, tc.expected)
		}
	}
}

func TestDifficultyApply(t *testing.T) {
	base := Level{
		Moves:      20,
		Objectives: []engine.Objective{{Color: engine.Red, Remaining: 10}, {Color: engine.Blue, Remaining: 1}},
	}

	tests := []struct {
		preset     DifficultyPreset
		moves      int
		objectives []int
	}{
		{DifficultyEasy, 30, []int{10, 1}},
		{DifficultyNormal, 20, []int{10, 1}},
		{DifficultyHard, 15, []int{13, 2}},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			got := tc.preset.Apply(base)
			if got.Moves != tc.moves {
				t.Errorf("Moves = %d, expected %d", got.Moves, tc.moves)
			}
			for i, o := range got.Objectives {
				if o.Remaining != tc.objectives[i] {
					t.Errorf("Objectives[%d] = %d, expected %d", i, o.Remaining, tc.objectives[i])
				}
			}
		})
	}
	if base.Objectives[0].Remaining != 10 || base.Moves != 20 {
		t.Error("Apply() must not modify its input")
	}

	if got := DifficultyHard.Apply(Level{Moves: 1}); got.Moves != 1 {
		t.Errorf("hard Moves = %d, expected at least 1", got.Moves)
	}
}
