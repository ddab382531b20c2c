// Package match3 adapts the match-3 engine to the terminal platform: it maps
// cursor input onto cell selections, keeps the score and draws the board.
package match3

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// GameID is the registry identifier.
const GameID = "match3"

// PointsPerFigure is awarded for every destroyed figure.
const PointsPerFigure = 10

const (
	flashTicks = 8  // how long destroyed cells stay highlighted
	hintTicks  = 45 // how long a hint stays visible
)

// Package-level selection, applied by the next Reset.
var (
	selectedLevel *config.Level
	eventLogger   *log.Logger
)

// SetLevel selects the level played by games created afterwards.
func SetLevel(l config.Level) {
	selectedLevel = &l
}

// SetEventLogger makes every game log engine events at debug level.
// Pass nil to disable.
func SetEventLogger(l *log.Logger) {
	eventLogger = l
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game is one match-3 level bound to the platform's input and screen.
type Game struct {
	level    config.Level
	hasLevel bool
	logger   *log.Logger

	ctrl *engine.Controller
	seed int64
	tick uint64

	score  int
	cursor engine.Index

	flash      []engine.Index
	flashLeft  int
	hint       [2]engine.Index
	hintLeft   int
	noMoveHint bool

	// Screen dimensions and derived board placement
	screenW  int
	screenH  int
	boardBox core.Rect
	paused   bool
	tooSmall bool
}

// New creates a game for the selected level, or the default level when none
// was selected.
func New() *Game {
	g := &Game{logger: eventLogger}
	if selectedLevel != nil {
		g.level, g.hasLevel = *selectedLevel, true
	}
	return g
}

// NewWithLevel creates a game for the given level.
func NewWithLevel(l config.Level) *Game {
	return &Game{level: l, hasLevel: true, logger: eventLogger}
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Match 3" }

// Level returns the level being played.
func (g *Game) Level() config.Level { return g.level }

// Controller exposes the engine, mainly for tests and the autoplayer.
func (g *Game) Controller() *engine.Controller { return g.ctrl }

// Score returns the points collected so far.
func (g *Game) Score() int { return g.score }

// Cursor returns the highlighted cell.
func (g *Game) Cursor() engine.Index { return g.cursor }

// Reset deals a fresh board for the level using cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.hasLevel {
		lvl, err := config.Default()
		if err != nil {
			lvl = config.Level{ID: "fallback", Rows: 8, Cols: 8, Colors: 5, Moves: 20,
				Objectives: []engine.Objective{{Color: engine.Red, Remaining: 15}}}
		}
		g.level, g.hasLevel = lvl, true
	}

	g.seed = cfg.Seed
	g.tick = 0
	g.score = 0
	g.flash, g.flashLeft = nil, 0
	g.hintLeft, g.noMoveHint = 0, false
	g.paused = false

	g.ctrl = engine.NewController(g.level.Settings(), rand.New(rand.NewSource(cfg.Seed)))
	g.ctrl.Notifier().Subscribe(g.onEvent)
	if g.logger != nil {
		g.ctrl.Notifier().Subscribe(NewEventLogger(g.logger, g.level.ID).Handle)
	}
	g.ctrl.Start()

	g.cursor = engine.At(g.level.Rows/2, g.level.Cols/2)
	g.resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to a new screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.resize(w, h)
}

func (g *Game) onEvent(e engine.Event) {
	switch ev := e.(type) {
	case engine.FigureDestroyed:
		g.score += PointsPerFigure
	case engine.ItemsDestroyed:
		g.flash = append(g.flash[:0], ev.Indices...)
		g.flashLeft = flashTicks
	}
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.flashLeft > 0 {
		g.flashLeft--
	}
	if g.hintLeft > 0 {
		g.hintLeft--
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.ctrl.Status().Terminal() {
		return core.StepResult{State: g.State()}
	}

	rows, cols := g.level.Rows, g.level.Cols
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Clamp(g.cursor.Row-1, 0, rows-1)
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Clamp(g.cursor.Row+1, 0, rows-1)
	case in.Has(core.ActionLeft):
		g.cursor.Col = core.Clamp(g.cursor.Col-1, 0, cols-1)
	case in.Has(core.ActionRight):
		g.cursor.Col = core.Clamp(g.cursor.Col+1, 0, cols-1)
	}

	if in.Has(core.ActionCancel) {
		g.ctrl.Cancel()
	}
	if in.Has(core.ActionHint) {
		g.showHint()
	}

	selected := in.Has(core.ActionSelect)
	if x, y, ok := in.Click(); ok {
		if i, hit := g.cellAt(x, y); hit {
			g.cursor = i
			selected = true
		}
	}

	turn := false
	if selected {
		g.hintLeft = 0
		turn = g.ctrl.Select(g.cursor)
	}
	return core.StepResult{State: g.State(), Turn: turn}
}

func (g *Game) showHint() {
	a, z, ok := g.ctrl.Hint()
	g.noMoveHint = !ok
	g.hint = [2]engine.Index{a, z}
	g.hintLeft = hintTicks
}

// Outcome summarises the game so far. Frames counts every Step since Reset.
func (g *Game) Outcome() Result {
	r := Result{LevelID: g.level.ID, Seed: g.seed, Score: g.score, Frames: int(g.tick)}
	if g.ctrl != nil {
		r.Status = g.ctrl.Status()
		r.MovesUsed = g.ctrl.MovesUsed()
	}
	return r
}

// State returns the platform view of the game.
func (g *Game) State() core.GameState {
	status := engine.NotStarted
	if g.ctrl != nil {
		status = g.ctrl.Status()
	}
	return core.GameState{
		Score:    g.score,
		GameOver: status.Terminal(),
		Won:      status == engine.Passed,
		Paused:   g.paused || g.tooSmall,
	}
}
