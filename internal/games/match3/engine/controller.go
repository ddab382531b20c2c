package engine

import (
	"math/rand"
	"slices"
)

// Status is the level state. NotStarted moves to InProgress once; InProgress
// ends in Passed or Failed, both terminal.
type Status uint8

const (
	NotStarted Status = iota
	InProgress
	Passed
	Failed
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case InProgress:
		return "in-progress"
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == Passed || s == Failed
}

// DefaultMaxReshuffles bounds the reshuffle loop before the board is dealt
// afresh.
const DefaultMaxReshuffles = 100

// Settings describes one level. Values are expected to come from a validated
// level configuration.
type Settings struct {
	Rows       int
	Cols       int
	Colors     int
	Moves      int
	Objectives []Objective
	// MaxReshuffles caps consecutive reshuffles of a stuck board.
	// Zero selects DefaultMaxReshuffles.
	MaxReshuffles int
}

// Controller owns the board and runs the turn state machine. It is not safe
// for concurrent use; each Select call runs a whole turn to completion.
type Controller struct {
	board      *Board
	matcher    *Matcher
	objectives *Objectives
	notifier   *Notifier
	rng        *rand.Rand
	palette    []Color

	moves         int
	movesUsed     int
	maxReshuffles int
	status        Status
	pending       Index
}

// NewController builds a controller with an empty board. Call Start to deal
// the board and begin the level.
func NewController(s Settings, rng *rand.Rand) *Controller {
	colors := min(max(s.Colors, 1), MaxColors)
	reshuffles := s.MaxReshuffles
	if reshuffles <= 0 {
		reshuffles = DefaultMaxReshuffles
	}
	return &Controller{
		board:         NewBoard(s.Rows, s.Cols),
		matcher:       NewMatcher(),
		objectives:    NewObjectives(s.Objectives),
		notifier:      NewNotifier(),
		rng:           rng,
		palette:       Palette(colors),
		moves:         s.Moves,
		maxReshuffles: reshuffles,
		pending:       NoIndex,
	}
}

// Board returns the live board. Callers must not mutate it.
func (c *Controller) Board() *Board { return c.board }

// Matcher returns the matcher used for turns and lookahead.
func (c *Controller) Matcher() *Matcher { return c.matcher }

// Notifier returns the event fan-out; subscribe before Start to see every event.
func (c *Controller) Notifier() *Notifier { return c.notifier }

// Objectives returns the level goals.
func (c *Controller) Objectives() *Objectives { return c.objectives }

// Palette returns the colours in play.
func (c *Controller) Palette() []Color { return slices.Clone(c.palette) }

// Status returns the level state.
func (c *Controller) Status() Status { return c.status }

// MovesLeft returns the remaining move budget.
func (c *Controller) MovesLeft() int { return c.moves }

// MovesUsed returns the number of completed turns.
func (c *Controller) MovesUsed() int { return c.movesUsed }

// Pending returns the first half of a selection, or NoIndex.
func (c *Controller) Pending() Index { return c.pending }

// Start deals a board with no matches and at least one legal move, then moves
// the level to InProgress. Events are suppressed while dealing.
func (c *Controller) Start() {
	if c.status != NotStarted {
		return
	}
	enabled := c.notifier.Enabled()
	c.notifier.Disable()
	c.fill()
	c.ensureMoves()
	if enabled {
		c.notifier.Enable()
	}
	c.setStatus(InProgress)
}

// Select feeds one cell selection into the turn protocol and reports whether
// it completed a turn, consuming a move.
//
// The first selection is remembered. A second selection adjacent to it swaps
// the two cells: a swap that activates a booster or produces a match runs the
// turn, any other swap is undone. Selecting the same booster twice fires it in
// place. Every other second selection just clears the pending one.
func (c *Controller) Select(i Index) bool {
	if c.status != InProgress || !c.board.InBounds(i) {
		return false
	}
	if c.pending == NoIndex {
		c.pending = i
		return false
	}
	prev := c.pending
	c.pending = NoIndex

	if !c.board.CanSwap(prev, i) {
		if prev != i || !c.board.Get(i).IsBooster() {
			return false
		}
		c.fire(i)
		c.finishTurn()
		return true
	}

	c.swap(prev, i)
	a, z := c.board.Get(prev), c.board.Get(i)
	switch {
	case a.IsBooster() && z.IsBooster():
		c.swap(prev, i)
		return false

	case a.IsBooster() || z.IsBooster():
		at, other := prev, i
		if z.IsBooster() {
			at, other = i, prev
		}
		c.fire(at)
		if m, ok := c.matcher.Match(c.board, other); ok {
			c.resolve(m, other)
		}

	default:
		m1, ok1 := c.matcher.Match(c.board, prev)
		if ok1 {
			c.resolve(m1, prev)
		}
		m2, ok2 := c.matcher.Match(c.board, i)
		if ok2 {
			c.resolve(m2, i)
		}
		if !ok1 && !ok2 {
			c.swap(prev, i)
			return false
		}
	}

	c.finishTurn()
	return true
}

// Cancel drops the pending selection, if any.
func (c *Controller) Cancel() { c.pending = NoIndex }

// HasMoves reports whether any booster is on the board or any adjacent pair
// would match if swapped.
func (c *Controller) HasMoves() bool {
	_, _, ok := c.Hint()
	return ok
}

// Hint returns the first legal move in row-major order. A booster is reported
// as a double selection of its own cell.
func (c *Controller) Hint() (a, z Index, ok bool) {
	rows, cols := c.board.Rows(), c.board.Cols()
	for raw := 0; raw < c.board.Size(); raw++ {
		i := c.board.IndexOf(raw)
		if c.board.Get(i).IsBooster() {
			return i, i, true
		}
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cur := Index{Row: row, Col: col}
			if right := cur.Offset(0, 1); c.board.InBounds(right) && c.matcher.ProxyMatch(c.board, cur, right) {
				return cur, right, true
			}
			if below := cur.Offset(1, 0); c.board.InBounds(below) && c.matcher.ProxyMatch(c.board, cur, below) {
				return cur, below, true
			}
		}
	}
	return NoIndex, NoIndex, false
}

func (c *Controller) setStatus(s Status) {
	switch {
	case c.status == NotStarted && s == InProgress:
		c.status = s
	case c.status == InProgress && s == Passed:
		c.status = s
		c.pending = NoIndex
		c.notifier.Emit(LevelPassed{})
	case c.status == InProgress && s == Failed:
		c.status = s
		c.pending = NoIndex
		c.notifier.Emit(LevelFailed{})
	}
}

func (c *Controller) swap(a, z Index) {
	if c.board.Swap(a, z) {
		c.notifier.Emit(ItemsSwapped{A: a, B: z})
	}
}

// destroyed is called for every piece removed by a match or a blast.
func (c *Controller) destroyed(at Index, p Piece) {
	color, ok := p.Color()
	if !ok {
		return
	}
	c.notifier.Emit(FigureDestroyed{At: at, Color: color})
	if c.status != InProgress {
		return
	}
	if c.objectives.Decrease(color) && c.objectives.Completed() {
		c.notifier.Emit(ObjectivesCompleted{})
		c.setStatus(Passed)
	}
}

// fire activates the booster at i, compacts the blasted columns and resolves
// any match the drop produced.
func (c *Controller) fire(at Index) {
	impact := NewImpact()
	Activate(c.board, at, impact, c.destroyed)
	c.notifier.Emit(ItemsDestroyed{Indices: impact.Indices()})
	c.cascade(c.dropColumns(impact.Columns()))
}

// resolve clears m and keeps clearing matches formed by the pieces it dropped.
func (c *Controller) resolve(m Match, anchor Index) {
	c.cascade(c.clear(m, anchor))
}

func (c *Controller) cascade(moved []Index) {
	for len(moved) > 0 {
		at := moved[0]
		moved = moved[1:]
		if m, ok := c.matcher.Match(c.board, at); ok {
			moved = append(moved, c.clear(m, at)...)
		}
	}
}

// clear destroys the matched cells, leaves a booster at anchor for oversized
// matches and compacts the touched columns. It returns the cells that received
// a dropped piece.
func (c *Controller) clear(m Match, anchor Index) []Index {
	for _, i := range m.Indices {
		if p, ok := c.board.Destroy(i); ok {
			c.destroyed(i, p)
		}
	}
	c.notifier.Emit(ItemsDestroyed{Indices: slices.Clone(m.Indices)})

	if m.Len() > MinMatch {
		kind := BoosterFor(m.Pattern)
		c.board.Place(Booster(kind), anchor)
		c.notifier.Emit(BoosterCreated{Kind: kind, At: anchor})
	}
	return c.dropColumns(distinctColumns(m.Indices))
}

func (c *Controller) dropColumns(cols []int) []Index {
	if len(cols) == 0 {
		return nil
	}
	var moved []Index
	for _, col := range cols {
		moved = append(moved, c.board.DropColumn(col)...)
	}
	c.notifier.Emit(ColumnsDropped{Columns: cols})
	return moved
}

// clearAll clears every match on the board in one row-major sweep and reports
// whether any was found.
func (c *Controller) clearAll() bool {
	found := false
	for raw := 0; raw < c.board.Size(); raw++ {
		at := c.board.IndexOf(raw)
		if m, ok := c.matcher.Match(c.board, at); ok {
			c.clear(m, at)
			found = true
		}
	}
	return found
}

// settle refills empty cells and clears the matches this creates until the
// board is full and match free.
func (c *Controller) settle() {
	for {
		empty := c.board.EmptyTiles()
		if len(empty) == 0 {
			return
		}
		spawned := make([]Spawn, 0, len(empty))
		for _, at := range empty {
			p := Figure(c.palette[c.rng.Intn(len(c.palette))])
			c.board.Place(p, at)
			spawned = append(spawned, Spawn{Piece: p, At: at})
		}
		c.notifier.Emit(NewItemsDropped{Items: spawned})
		c.clearAll()
	}
}

// ensureMoves reshuffles a stuck board until a move exists. After
// maxReshuffles failed attempts the board is dealt afresh.
func (c *Controller) ensureMoves() {
	for attempt := 1; !c.HasMoves(); attempt++ {
		if attempt > c.maxReshuffles {
			c.redeal(attempt)
			return
		}
		c.board.Shuffle(c.rng)
		c.notifier.Emit(Shuffled{Attempt: attempt})
		c.clearAll()
		c.settle()
	}
}

// redeal replaces every piece with a fresh match-free fill. If even that has
// no move, an area-clear booster is placed in the middle of the board.
func (c *Controller) redeal(attempt int) {
	c.board.Clear()
	c.fill()
	c.notifier.Emit(Shuffled{Attempt: attempt, Redealt: true})
	if !c.HasMoves() {
		mid := Index{Row: c.board.Rows() / 2, Col: c.board.Cols() / 2}
		c.board.Place(Booster(AreaClear), mid)
		c.notifier.Emit(BoosterCreated{Kind: AreaClear, At: mid})
	}
}

// fill places a figure in every empty cell, row-major, choosing for each a
// colour that completes no match. Filling in this order leaves at most two
// colours blocked per cell, so three colours always suffice.
func (c *Controller) fill() {
	for raw := 0; raw < c.board.Size(); raw++ {
		at := c.board.IndexOf(raw)
		if !c.board.Get(at).IsEmpty() {
			continue
		}
		for _, k := range c.rng.Perm(len(c.palette)) {
			c.board.Place(Figure(c.palette[k]), at)
			if _, ok := c.matcher.Match(c.board, at); !ok {
				break
			}
		}
	}
}

func (c *Controller) finishTurn() {
	c.settle()
	c.ensureMoves()
	c.movesUsed++
	if c.moves > 0 {
		c.moves--
	}
	if c.moves == 0 {
		c.setStatus(Failed)
	}
}
