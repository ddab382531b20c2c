package match3

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// EventLogger writes engine events to a logger. Per-piece events go out at
// debug level, level outcomes at info.
type EventLogger struct {
	logger *log.Logger
}

// NewEventLogger returns a logger tagged with the level ID.
func NewEventLogger(l *log.Logger, levelID string) *EventLogger {
	return &EventLogger{logger: l.With("level_id", levelID)}
}

// Handle is an engine.Handler.
func (e *EventLogger) Handle(ev engine.Event) {
	switch ev := ev.(type) {
	case engine.FigureDestroyed:
		e.logger.Debug("figure destroyed", "at", ev.At, "color", ev.Color)
	case engine.ItemsDestroyed:
		e.logger.Debug("items destroyed", "count", len(ev.Indices))
	case engine.ItemsSwapped:
		e.logger.Debug("items swapped", "a", ev.A, "b", ev.B)
	case engine.BoosterCreated:
		e.logger.Debug("booster created", "kind", ev.Kind, "at", ev.At)
	case engine.ColumnsDropped:
		e.logger.Debug("columns dropped", "columns", ev.Columns)
	case engine.NewItemsDropped:
		e.logger.Debug("new items dropped", "count", len(ev.Items))
	case engine.Shuffled:
		e.logger.Debug("board shuffled", "attempt", ev.Attempt, "redealt", ev.Redealt)
	case engine.ObjectivesCompleted:
		e.logger.Debug("objectives completed")
	case engine.LevelPassed:
		e.logger.Info("level passed")
	case engine.LevelFailed:
		e.logger.Info("level failed")
	}
}
