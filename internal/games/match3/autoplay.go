package match3

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// Result is the outcome of an autoplayed level.
type Result struct {
	LevelID   string
	Seed      int64
	Status    engine.Status
	Score     int
	MovesUsed int
	Frames    int
}

// Passed reports whether the level was cleared.
func (r Result) Passed() bool { return r.Status == engine.Passed }

// Autoplay drives g through the platform input path: every frame it moves the
// cursor one cell towards the next hinted cell or selects it. It stops when
// the level ends, when no hint is available or after maxFrames frames.
func Autoplay(g *Game, maxFrames int) Result {
	var queue []engine.Index
	frames := 0

	for frames < maxFrames && !g.ctrl.Status().Terminal() && !g.tooSmall {
		if len(queue) == 0 {
			a, z, ok := g.ctrl.Hint()
			if !ok {
				break
			}
			g.ctrl.Cancel()
			queue = []engine.Index{a, z}
		}

		in := core.NewInputFrame()
		next := queue[0]
		switch {
		case g.cursor.Row < next.Row:
			in.Set(core.ActionDown)
		case g.cursor.Row > next.Row:
			in.Set(core.ActionUp)
		case g.cursor.Col < next.Col:
			in.Set(core.ActionRight)
		case g.cursor.Col > next.Col:
			in.Set(core.ActionLeft)
		default:
			in.Set(core.ActionSelect)
			queue = queue[1:]
		}
		g.Step(in)
		frames++
	}

	res := g.Outcome()
	res.Frames = frames
	return res
}

// PlayLevel deals l with seed and autoplays it to the end. Engine events go
// to logger when it is not nil.
func PlayLevel(l config.Level, seed int64, logger *log.Logger) Result {
	g := NewWithLevel(l)
	g.logger = logger
	g.Reset(core.RuntimeConfig{
		ScreenW: 80,
		ScreenH: l.Rows + 2*hudHeight + 4,
		Seed:    seed,
	})
	maxFrames := (l.Moves + 1) * 2 * (l.Rows + l.Cols + 2)
	return Autoplay(g, maxFrames)
}
