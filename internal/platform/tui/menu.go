package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// MenuItem is one level in the picker.
type MenuItem struct {
	Level config.Level
	Stats storage.LevelStats
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a picker over levels. Stats come from store when it
// is not nil.
func NewMenuModel(levels []config.Level, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var stats map[string]*storage.LevelStats
	if store != nil {
		//nolint:errcheck // Missing stats only hide the best-score column
		stats, _ = store.AllStats()
	}

	items := make([]MenuItem, len(levels))
	for i, l := range levels {
		items[i] = MenuItem{Level: l, Stats: storage.LevelStats{LevelID: l.ID}}
		if st, ok := stats[l.ID]; ok {
			items[i].Stats = *st
		}
	}

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = core.Wrap(m.cursor-1, len(m.items))

	case MenuActionDown:
		m.cursor = core.Wrap(m.cursor+1, len(m.items))

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuPassedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	menuMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// itemLine formats one level row without styling.
func itemLine(i int, it MenuItem) string {
	l := it.Level
	best := "-"
	if it.Stats.Passes > 0 {
		best = fmt.Sprintf("%d", it.Stats.BestScore)
	}
	return fmt.Sprintf("%2d. %-16s %2dx%-2d %d colours %2d moves  best %s",
		i+1, l.Title(), l.Rows, l.Cols, l.Colors, l.Moves, best)
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("  M A T C H   3  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", m.width))
	b.WriteString("\n\n")

	width := 0
	lines := make([]string, len(m.items))
	for i, it := range m.items {
		lines[i] = itemLine(i, it)
		width = max(width, len([]rune(lines[i])))
	}
	pad := max((m.width-width-2)/2, 0)

	for i, line := range lines {
		line = fmt.Sprintf("%-*s", width, line)
		switch {
		case i == m.cursor:
			line = menuActiveStyle.Render("> " + line)
		case m.items[i].Stats.Passes > 0:
			line = menuPassedStyle.Render("  " + line)
		default:
			line = "  " + line
		}
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		st := m.items[m.cursor].Stats
		b.WriteString("\n")
		info := fmt.Sprintf("Played %d  Passed %d (%.0f%%)", st.Plays, st.Passes, 100*st.PassRate())
		b.WriteString(menuMutedStyle.Render(centerText(info, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Results  |  Q: Quit"
	b.WriteString(menuMutedStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Level           *config.Level
	Index           int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.selected != nil:
		lvl := m.selected.Level
		result.Level = &lvl
		result.Index = m.cursor
	default:
		result.Quit = true
	}
	return result
}

// RunMenu runs the level picker and returns the selection.
func RunMenu(levels []config.Level, store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(levels, store, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
