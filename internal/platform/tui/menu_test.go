package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

func menuLevels() []config.Level {
	a, b, c := testLevel("a"), testLevel("b"), testLevel("c")
	a.Name, b.Name, c.Name = "Alpha", "Bravo", "Charlie"
	return []config.Level{a, b, c}
}

func sendMenu(m MenuModel, msgs ...tea.Msg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(menuLevels(), nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 2 {
		t.Errorf("cursor = %d after wrapping up, expected 2", m.cursor)
	}
	m = sendMenu(m, runeKey('j'))
	if m.cursor != 0 {
		t.Errorf("cursor = %d after wrapping down, expected 0", m.cursor)
	}

	m = sendMenu(m, runeKey('j'), tea.KeyMsg{Type: tea.KeyEnter})
	res := m.Result()
	if res.Level == nil || res.Level.ID != "b" || res.Index != 1 {
		t.Errorf("Result() = %+v, expected level b", res)
	}
}

func TestMenuResultKinds(t *testing.T) {
	tests := []struct {
		name       string
		msg        tea.Msg
		scoreboard bool
		quit       bool
	}{
		{"tab opens results", tea.KeyMsg{Type: tea.KeyTab}, true, false},
		{"q quits", runeKey('q'), false, true},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEscape}, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := sendMenu(NewMenuModel(menuLevels(), nil, core.DefaultConfig()), tc.msg)
			res := m.Result()
			if res.WantsScoreboard != tc.scoreboard || res.Quit != tc.quit || res.Level != nil {
				t.Errorf("Result() = %+v", res)
			}
		})
	}
}

func TestMenuShowsStats(t *testing.T) {
	store := testStore(t)
	for _, r := range []storage.Result{
		{LevelID: "b", Status: storage.StatusPassed, Score: 310, MovesUsed: 3},
		{LevelID: "b", Status: storage.StatusFailed, Score: 90, MovesUsed: 4},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	m := NewMenuModel(menuLevels(), store, core.RuntimeConfig{ScreenW: 100, ScreenH: 24})
	if st := m.items[1].Stats; st.Plays != 2 || st.Passes != 1 {
		t.Errorf("stats for b = %+v, expected 2 plays and 1 pass", st)
	}

	view := m.View()
	for _, want := range []string{"Alpha", "Bravo", "Charlie", "best 310", "Select a level"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() is missing %q", want)
		}
	}

	m = sendMenu(m, runeKey('j'))
	if !strings.Contains(m.View(), "Played 2  Passed 1 (50%)") {
		t.Error("View() should summarise the highlighted level")
	}
}

func TestMenuResize(t *testing.T) {
	m := sendMenu(NewMenuModel(menuLevels(), nil, core.DefaultConfig()), tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() = %+v after resize", cfg)
	}
}
