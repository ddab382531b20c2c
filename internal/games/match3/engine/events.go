package engine

// Event is a notification emitted by the controller. Listeners never influence
// the simulation.
type Event interface {
	event()
}

// FigureDestroyed is emitted once per figure removed from the board.
type FigureDestroyed struct {
	At    Index
	Color Color
}

// ItemsDestroyed lists the cells cleared by one match or one booster chain.
type ItemsDestroyed struct {
	Indices []Index
}

// ItemsSwapped is emitted for every performed swap, swap-backs included.
type ItemsSwapped struct {
	A, B Index
}

// BoosterCreated is emitted when an oversized match leaves a booster behind.
type BoosterCreated struct {
	Kind BoosterKind
	At   Index
}

// ColumnsDropped lists the columns compacted after a clear, ascending.
type ColumnsDropped struct {
	Columns []int
}

// Spawn is one figure placed by a refill.
type Spawn struct {
	Piece Piece
	At    Index
}

// NewItemsDropped lists the figures added by one refill pass.
type NewItemsDropped struct {
	Items []Spawn
}

// Shuffled is emitted after each reshuffle of a stuck board.
type Shuffled struct {
	// Attempt counts reshuffles within the current settle, starting at 1.
	Attempt int
	// Redealt is true when the board was dealt afresh instead.
	Redealt bool
}

// ObjectivesCompleted is emitted when the last objective reaches zero.
type ObjectivesCompleted struct{}

// LevelPassed is emitted on the in-progress to passed transition.
type LevelPassed struct{}

// LevelFailed is emitted on the in-progress to failed transition.
type LevelFailed struct{}

func (FigureDestroyed) event()     {}
func (ItemsDestroyed) event()      {}
func (ItemsSwapped) event()        {}
func (BoosterCreated) event()      {}
func (ColumnsDropped) event()      {}
func (NewItemsDropped) event()     {}
func (Shuffled) event()            {}
func (ObjectivesCompleted) event() {}
func (LevelPassed) event()         {}
func (LevelFailed) event()         {}

// Handler receives events synchronously.
type Handler func(Event)

// Notifier fans events out to handlers in subscription order.
// A disabled notifier drops events; state changes happen regardless.
type Notifier struct {
	handlers []Handler
	disabled bool
}

// NewNotifier returns an enabled notifier with no handlers.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe appends h to the handler list.
func (n *Notifier) Subscribe(h Handler) {
	if h == nil {
		return
	}
	n.handlers = append(n.handlers, h)
}

// Enable turns delivery on.
func (n *Notifier) Enable() { n.disabled = false }

// Disable turns delivery off.
func (n *Notifier) Disable() { n.disabled = true }

// Enabled reports whether events are delivered.
func (n *Notifier) Enabled() bool { return !n.disabled }

// Emit delivers e to every handler when enabled.
func (n *Notifier) Emit(e Event) {
	if n.disabled {
		return
	}
	for _, h := range n.handlers {
		h(e)
	}
}
