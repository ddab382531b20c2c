package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/storage"
)

func TestScoreboardLoadsPerLevel(t *testing.T) {
	store := testStore(t)
	for _, r := range []storage.Result{
		{LevelID: "a", Status: storage.StatusPassed, Score: 100, MovesUsed: 4},
		{LevelID: "a", Status: storage.StatusPassed, Score: 250, MovesUsed: 3},
		{LevelID: "a", Status: storage.StatusFailed, Score: 999, MovesUsed: 4},
		{LevelID: "c", Status: storage.StatusPassed, Score: 70, MovesUsed: 2},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	m := NewScoreboardModel(menuLevels(), store, 100, 30)
	if len(m.results) != 2 || m.results[0].Score != 250 {
		t.Fatalf("results for a = %+v, expected the two passes best first", m.results)
	}
	if m.stats.Plays != 3 {
		t.Errorf("stats.Plays = %d, expected 3", m.stats.Plays)
	}
	view := m.View()
	if !strings.Contains(view, "BEST RESULTS - Alpha") {
		t.Error("View() is missing the level title")
	}
	if !strings.Contains(view, "Fewest moves 3") {
		t.Error("View() is missing the fewest moves summary")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(ScoreboardModel)
	if m.cursor != 1 || len(m.results) != 0 {
		t.Errorf("cursor %d with %d results, expected empty level b", m.cursor, len(m.results))
	}
	if !strings.Contains(m.View(), "No passed results yet") {
		t.Error("an empty level should say so")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.(ScoreboardModel).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.cursor != 2 || len(m.results) != 1 {
		t.Errorf("cursor %d with %d results, expected level c", m.cursor, len(m.results))
	}
}

func TestScoreboardExit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		back bool
		quit bool
	}{
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEscape}, true, false},
		{"q quits", runeKey('q'), false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewScoreboardModel(menuLevels(), nil, 60, 20)
			next, cmd := m.Update(tc.msg)
			m = next.(ScoreboardModel)
			if cmd == nil {
				t.Error("expected a quit command")
			}
			if m.IsGoingBack() != tc.back || m.IsQuitting() != tc.quit {
				t.Errorf("IsGoingBack() = %v, IsQuitting() = %v", m.IsGoingBack(), m.IsQuitting())
			}
		})
	}
}
