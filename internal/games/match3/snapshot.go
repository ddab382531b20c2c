package match3

import "github.com/vovakirdan/tui-match3/internal/games/match3/engine"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Level      string
	Seed       int64
	Board      string // engine.Board.String()
	Cursor     engine.Index
	Pending    engine.Index
	Score      int
	MovesLeft  int
	MovesUsed  int
	Objectives []engine.Objective
	Status     engine.Status
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		Level:      g.level.ID,
		Seed:       g.seed,
		Board:      g.ctrl.Board().String(),
		Cursor:     g.cursor,
		Pending:    g.ctrl.Pending(),
		Score:      g.score,
		MovesLeft:  g.ctrl.MovesLeft(),
		MovesUsed:  g.ctrl.MovesUsed(),
		Objectives: g.ctrl.Objectives().List(),
		Status:     g.ctrl.Status(),
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if len(s.Objectives) != len(o.Objectives) {
		return false
	}
	for i := range s.Objectives {
		if s.Objectives[i] != o.Objectives[i] {
			return false
		}
	}
	return s.Tick == o.Tick && s.Level == o.Level && s.Seed == o.Seed &&
		s.Board == o.Board && s.Cursor == o.Cursor && s.Pending == o.Pending &&
		s.Score == o.Score && s.MovesLeft == o.MovesLeft && s.MovesUsed == o.MovesUsed &&
		s.Status == o.Status
}
