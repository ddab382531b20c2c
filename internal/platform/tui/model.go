package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// helpHeight is the number of rows kept below the game for the help bar.
const helpHeight = 1

// outcomer is implemented by games whose results are persisted.
type outcomer interface {
	Outcome() match3.Result
}

// Model is the Bubble Tea model for playing a level.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sessionID  string
	config     core.RuntimeConfig
	fixedSeed  bool
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	quitting   bool
	saved      bool // result of the current deal already stored
	lastResult *storage.Result
}

// NewModel creates a model for game. A zero cfg.Seed picks a time-based seed
// for every deal; any other seed is replayed on restart.
func NewModel(game registry.Game, store *storage.Store, sessionID string, cfg core.RuntimeConfig) Model {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if sessionID == "" {
		sessionID = storage.NewSessionID()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		store:      store,
		sessionID:  sessionID,
		config:     cfg,
		fixedSeed:  fixed,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
	}
	gc := m.gameConfig()
	m.screen = core.NewScreen(gc.ScreenW, gc.ScreenH)
	return m
}

// gameConfig is the runtime config handed to the game: the help bar is
// taken off the screen height.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)
	return cfg
}

// Init deals the first board and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.inputFrame.SetClick(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
	case core.ActionQuit:
		m.saveResult()
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(cfg.ScreenW, cfg.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(cfg)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.saved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if m.gameState.GameOver {
		m.saveResult()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveResult stores the outcome of the current deal once. A deal quit before
// its end is stored as abandoned if at least one move was made.
func (m *Model) saveResult() {
	if m.saved {
		return
	}
	oc, ok := m.game.(outcomer)
	if !ok {
		return
	}
	out := oc.Outcome()

	status := storage.StatusAbandoned
	switch out.Status {
	case engine.Passed:
		status = storage.StatusPassed
	case engine.Failed:
		status = storage.StatusFailed
	default:
		if out.MovesUsed == 0 {
			return
		}
	}

	r := storage.Result{
		SessionID: m.sessionID,
		LevelID:   out.LevelID,
		Status:    status,
		Score:     out.Score,
		MovesUsed: out.MovesUsed,
		Seed:      out.Seed,
	}
	m.saved = true
	m.lastResult = &r
	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveResult(r)
	}
}

// LastResult returns the most recently recorded result, or nil.
func (m Model) LastResult() *storage.Result {
	return m.lastResult
}

// saveScreenshot writes the current screen as text to ~/.match3/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".match3", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the game above the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	bar := m.help.View(m.keys)
	if m.help.ShowAll {
		return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), helpStyle.Render(bar))
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(centerText(bar, m.config.ScreenW))
}

// Run plays game until the user quits and returns the last stored result.
func Run(game registry.Game, store *storage.Store, sessionID string, cfg core.RuntimeConfig) (*storage.Result, error) {
	model := NewModel(game, store, sessionID, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := final.(Model); ok {
		return m.LastResult(), nil
	}
	return nil, nil
}
