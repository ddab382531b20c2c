package engine

import (
	"math/rand"
	"testing"
)

func TestStartDealsPlayableBoard(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		c := NewController(Settings{
			Rows: 7, Cols: 7, Colors: 3, Moves: 10,
			Objectives: []Objective{{Color: Blue, Remaining: 10}},
		}, rand.New(rand.NewSource(seed)))
		events := recordEvents(c)

		c.Start()

		b := c.Board()
		if n := len(b.EmptyTiles()); n != 0 {
			t.Fatalf("seed %d: %d empty tiles after Start", seed, n)
		}
		for raw := 0; raw < b.Size(); raw++ {
			if m, ok := c.Matcher().Match(b, b.IndexOf(raw)); ok {
				t.Fatalf("seed %d: dealt board contains %v at %v:\n%s", seed, m.Pattern, b.IndexOf(raw), b)
			}
		}
		if !c.HasMoves() {
			t.Fatalf("seed %d: dealt board has no move:\n%s", seed, b)
		}
		if c.Status() != InProgress {
			t.Errorf("seed %d: Status() = %v, expected in-progress", seed, c.Status())
		}
		if len(*events) != 0 {
			t.Errorf("seed %d: Start emitted %d events, expected none", seed, len(*events))
		}
		if !c.Notifier().Enabled() {
			t.Errorf("seed %d: notifier left disabled after Start", seed)
		}
		if c.Objectives().Remaining(Blue) != 10 {
			t.Errorf("seed %d: dealing changed objectives", seed)
		}
	}
}

func TestStartOnlyOnce(t *testing.T) {
	c := NewController(Settings{Rows: 7, Cols: 7, Colors: 4, Moves: 3}, rand.New(rand.NewSource(3)))
	c.Start()
	dealt := c.Board().Clone()
	c.Start()
	if !c.Board().Equal(dealt) {
		t.Error("second Start() redealt the board")
	}
}

func TestSelectPendingSelection(t *testing.T) {
	c := startedController(t, Settings{Moves: 5}, stuckBoard...)

	if c.Select(At(9, 9)) || c.Pending() != NoIndex {
		t.Fatal("out-of-range selection should be ignored")
	}
	if c.Select(At(2, 2)) {
		t.Fatal("first selection should not complete a turn")
	}
	if c.Pending() != At(2, 2) {
		t.Fatalf("Pending() = %v, expected (2,2)", c.Pending())
	}
	if c.Select(At(5, 5)) {
		t.Fatal("non-adjacent selection should not complete a turn")
	}
	if c.Pending() != NoIndex {
		t.Errorf("Pending() = %v after non-adjacent selection, expected none", c.Pending())
	}
	if c.Select(At(1, 1)) || c.Select(At(1, 1)) {
		t.Error("double selection of a figure should not complete a turn")
	}
	if c.MovesLeft() != 5 {
		t.Errorf("MovesLeft() = %d, expected 5", c.MovesLeft())
	}
}

func TestSwapWithoutEffectIsUndone(t *testing.T) {
	c := startedController(t, Settings{Moves: 5}, stuckBoard...)
	orig := c.Board().Clone()
	events := recordEvents(c)

	c.Select(At(0, 0))
	if c.Select(At(0, 1)) {
		t.Fatal("swap without a match should not complete a turn")
	}
	if !c.Board().Equal(orig) {
		t.Errorf("board changed after undone swap:\n%s", c.Board())
	}
	if c.MovesLeft() != 5 || c.MovesUsed() != 0 {
		t.Errorf("moves = %d left / %d used, expected 5 / 0", c.MovesLeft(), c.MovesUsed())
	}
	if len(*events) != 2 {
		t.Fatalf("got %d events, expected swap and swap back", len(*events))
	}
	for _, e := range *events {
		if _, ok := e.(ItemsSwapped); !ok {
			t.Errorf("unexpected event %T", e)
		}
	}
}

func TestSwapMatchCreatesBooster(t *testing.T) {
	c := startedController(t, Settings{
		Moves:      5,
		Objectives: []Objective{{Color: Green, Remaining: 100}},
	}, withCell(stuckBoard, At(0, 2), 'G')...)
	events := recordEvents(c)

	c.Select(At(0, 3))
	if !c.Select(At(1, 3)) {
		t.Fatal("swap completing a row of four should complete a turn")
	}

	var destroyed *ItemsDestroyed
	var created *BoosterCreated
	for _, e := range *events {
		switch ev := e.(type) {
		case ItemsDestroyed:
			if destroyed == nil {
				destroyed = &ev
			}
		case BoosterCreated:
			if created == nil {
				created = &ev
			}
		}
	}
	want := []Index{At(0, 3), At(0, 2), At(0, 1), At(0, 4)}
	if destroyed == nil || !sameIndexSet(destroyed.Indices, want) {
		t.Errorf("first ItemsDestroyed = %v, expected %v", destroyed, want)
	}
	if created == nil || created.Kind != ColumnClear || created.At != At(0, 3) {
		t.Errorf("BoosterCreated = %v, expected column-clear at (0,3)", created)
	}
	if c.Board().Count(Piece.IsBooster) < 1 {
		t.Error("the created booster is gone")
	}
	if n := len(c.Board().EmptyTiles()); n != 0 {
		t.Errorf("%d empty tiles after the turn", n)
	}
	if got := c.Objectives().Remaining(Green); got > 96 {
		t.Errorf("Remaining(Green) = %d, expected at most 96", got)
	}
	if c.MovesLeft() != 4 || c.MovesUsed() != 1 {
		t.Errorf("moves = %d left / %d used, expected 4 / 1", c.MovesLeft(), c.MovesUsed())
	}
}

func TestBoosterDoubleSelection(t *testing.T) {
	c := startedController(t, Settings{Moves: 5}, withCell(stuckBoard, At(3, 3), '-')...)
	events := recordEvents(c)

	c.Select(At(3, 3))
	if !c.Select(At(3, 3)) {
		t.Fatal("selecting a booster twice should fire it")
	}

	var figures int
	var first ItemsDestroyed
	var dropped ColumnsDropped
	for _, e := range *events {
		if _, ok := e.(FigureDestroyed); ok {
			figures++
			continue
		}
		if ev, ok := e.(ItemsDestroyed); ok {
			first = ev
			break
		}
		t.Fatalf("unexpected %T before ItemsDestroyed", e)
	}
	for _, e := range *events {
		if ev, ok := e.(ColumnsDropped); ok {
			dropped = ev
			break
		}
	}
	if figures != 6 {
		t.Errorf("%d FigureDestroyed events before ItemsDestroyed, expected 6", figures)
	}
	if len(first.Indices) != 7 {
		t.Errorf("ItemsDestroyed has %d indices, expected 7", len(first.Indices))
	}
	for _, i := range first.Indices {
		if i.Row != 3 {
			t.Errorf("row clear hit %v outside row 3", i)
		}
	}
	if len(dropped.Columns) != 7 {
		t.Errorf("ColumnsDropped = %v, expected all 7 columns", dropped.Columns)
	}
	if c.MovesUsed() != 1 {
		t.Errorf("MovesUsed() = %d, expected 1", c.MovesUsed())
	}
}

func TestSwapTwoBoostersIsRejected(t *testing.T) {
	rows := withCell(withCell(stuckBoard, At(3, 3), '-'), At(3, 4), '|')
	c := startedController(t, Settings{Moves: 5}, rows...)
	orig := c.Board().Clone()

	c.Select(At(3, 3))
	if c.Select(At(3, 4)) {
		t.Fatal("swapping two boosters should not complete a turn")
	}
	if !c.Board().Equal(orig) {
		t.Error("board changed after rejected booster swap")
	}
	if c.MovesLeft() != 5 || c.Pending() != NoIndex {
		t.Errorf("MovesLeft() = %d, Pending() = %v, expected 5 and none", c.MovesLeft(), c.Pending())
	}
}

func TestSwapIntoBoosterFiresAtNewPosition(t *testing.T) {
	c := startedController(t, Settings{Moves: 5}, withCell(stuckBoard, At(3, 3), '-')...)
	events := recordEvents(c)

	c.Select(At(2, 3))
	if !c.Select(At(3, 3)) {
		t.Fatal("swapping a figure with a booster should complete a turn")
	}
	for _, e := range *events {
		ev, ok := e.(ItemsDestroyed)
		if !ok {
			continue
		}
		if len(ev.Indices) != 7 {
			t.Fatalf("blast hit %d cells, expected 7", len(ev.Indices))
		}
		for _, i := range ev.Indices {
			if i.Row != 2 {
				t.Errorf("booster fired at the old row: hit %v", i)
			}
		}
		return
	}
	t.Fatal("no ItemsDestroyed event")
}

func TestMoveBudgetExhaustionFails(t *testing.T) {
	c := NewController(Settings{
		Rows: 7, Cols: 7, Colors: 3, Moves: 1,
		Objectives: []Objective{{Color: Blue, Remaining: 1000}},
	}, rand.New(rand.NewSource(11)))
	c.Start()
	events := recordEvents(c)

	a, z, ok := c.Hint()
	if !ok {
		t.Fatal("Hint() found no move on a dealt board")
	}
	c.Select(a)
	if !c.Select(z) {
		t.Fatalf("hinted move %v -> %v did not complete a turn", a, z)
	}
	if c.Status() != Failed {
		t.Errorf("Status() = %v, expected failed", c.Status())
	}
	if c.MovesLeft() != 0 {
		t.Errorf("MovesLeft() = %d, expected 0", c.MovesLeft())
	}

	failed := 0
	for _, e := range *events {
		if _, ok := e.(LevelFailed); ok {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("LevelFailed emitted %d times, expected 1", failed)
	}

	before := c.Board().Clone()
	a, z, _ = c.Hint()
	c.Select(a)
	if c.Select(z) || !c.Board().Equal(before) {
		t.Error("turns must be ignored after the level ends")
	}
}

func TestObjectivesCompletionPasses(t *testing.T) {
	c := startedController(t, Settings{
		Moves:      1,
		Objectives: []Objective{{Color: Blue, Remaining: 1}},
	}, withCell(stuckBoard, At(3, 3), '-')...)
	events := recordEvents(c)

	c.Select(At(3, 3))
	c.Select(At(3, 3))

	if c.Status() != Passed {
		t.Fatalf("Status() = %v, expected passed", c.Status())
	}
	var order []string
	for _, e := range *events {
		switch e.(type) {
		case ObjectivesCompleted:
			order = append(order, "objectives")
		case LevelPassed:
			order = append(order, "passed")
		case LevelFailed:
			order = append(order, "failed")
		}
	}
	if len(order) != 2 || order[0] != "objectives" || order[1] != "passed" {
		t.Errorf("status events = %v, expected [objectives passed]", order)
	}
	if c.MovesLeft() != 0 {
		t.Errorf("MovesLeft() = %d, expected 0", c.MovesLeft())
	}
}

func TestObjectivesIgnoredBeforeStart(t *testing.T) {
	c := NewController(Settings{
		Rows: 7, Cols: 7, Colors: 3, Moves: 3,
		Objectives: []Objective{{Color: Blue, Remaining: 5}},
	}, rand.New(rand.NewSource(5)))
	c.board = boardFrom(t, withCell(stuckBoard, At(3, 3), '-')...)

	c.fire(At(3, 3))

	if got := c.Objectives().Remaining(Blue); got != 5 {
		t.Errorf("Remaining(Blue) = %d, destructions before start must not count", got)
	}
}

func TestObjectivesIgnoredAfterPass(t *testing.T) {
	c := startedController(t, Settings{
		Moves:      3,
		Objectives: []Objective{{Color: Blue, Remaining: 5}},
	}, withCell(stuckBoard, At(3, 3), '-')...)
	c.setStatus(Passed)
	events := recordEvents(c)

	c.fire(At(3, 3))

	if got := c.Objectives().Remaining(Blue); got != 5 {
		t.Errorf("Remaining(Blue) = %d, destructions after passing must not count", got)
	}
	if c.Status() != Passed {
		t.Errorf("Status() = %v, expected passed", c.Status())
	}
	figures := 0
	for _, e := range *events {
		switch e.(type) {
		case FigureDestroyed:
			figures++
		case ObjectivesCompleted, LevelPassed, LevelFailed:
			t.Errorf("unexpected status event %#v after passing", e)
		}
	}
	if figures != 6 {
		t.Errorf("FigureDestroyed emitted %d times, expected 6", figures)
	}
}

// destroyedSets returns the cells of every ItemsDestroyed event in order.
func destroyedSets(events []Event) [][]Index {
	var out [][]Index
	for _, e := range events {
		if ev, ok := e.(ItemsDestroyed); ok {
			out = append(out, ev.Indices)
		}
	}
	return out
}

func TestResolveCascadesIntoDroppedPieces(t *testing.T) {
	run := []Index{At(3, 2), At(3, 3), At(3, 4)}
	rows := paint(stuckBoard, 'V', run...)
	rows = paint(rows, 'R', At(2, 3), At(4, 3), At(5, 3))
	c := startedController(t, Settings{Moves: 5}, rows...)
	events := recordEvents(c)

	m, ok := c.Matcher().Match(c.Board(), At(3, 3))
	if !ok {
		t.Fatalf("Match(3,3) found nothing on\n%s", c.Board())
	}
	c.resolve(m, At(3, 3))

	got := destroyedSets(*events)
	if len(got) != 2 {
		t.Fatalf("ItemsDestroyed emitted %d times, expected 2: %v", len(got), got)
	}
	if !sameIndexSet(got[0], run) {
		t.Errorf("first clear = %v, expected %v", got[0], run)
	}
	dropped := []Index{At(3, 3), At(4, 3), At(5, 3)}
	if !sameIndexSet(got[1], dropped) {
		t.Errorf("second clear = %v, expected %v", got[1], dropped)
	}
	if n := len(c.Board().EmptyTiles()); n != 6 {
		t.Errorf("EmptyTiles() = %d cells, expected 6 before refill", n)
	}
}

func TestBoosterSwapMatchesMovedFigure(t *testing.T) {
	rows := withCell(stuckBoard, At(3, 3), '|')
	rows = paint(rows, 'O', At(4, 3))
	rows = paint(rows, 'R', At(5, 3))
	c := startedController(t, Settings{Moves: 5}, rows...)
	events := recordEvents(c)

	c.Select(At(3, 3))
	if !c.Select(At(3, 2)) {
		t.Fatal("swapping a booster with a figure should complete a turn")
	}

	got := destroyedSets(*events)
	if len(got) < 2 {
		t.Fatalf("ItemsDestroyed emitted %d times, expected at least 2", len(got))
	}
	for _, i := range got[0] {
		if i.Col != 2 {
			t.Errorf("booster fired outside column 2: hit %v", i)
		}
	}
	run := []Index{At(2, 3), At(3, 3), At(4, 3)}
	if !sameIndexSet(got[1], run) {
		t.Errorf("second clear = %v, expected the moved figure's run %v", got[1], run)
	}
	if c.MovesLeft() != 4 {
		t.Errorf("MovesLeft() = %d, expected 4", c.MovesLeft())
	}
}

func TestStuckBoardIsReshuffled(t *testing.T) {
	c := startedController(t, Settings{Moves: 5}, stuckBoard...)
	events := recordEvents(c)

	if c.HasMoves() {
		t.Fatal("HasMoves() = true on the stuck board")
	}
	if a, z, ok := c.Hint(); ok || a != NoIndex || z != NoIndex {
		t.Errorf("Hint() = %v, %v, %v, expected nothing", a, z, ok)
	}

	c.ensureMoves()

	if !c.HasMoves() {
		t.Fatal("no move after ensureMoves")
	}
	if len(*events) == 0 {
		t.Fatal("no events from reshuffling")
	}
	if ev, ok := (*events)[0].(Shuffled); !ok || ev.Attempt != 1 {
		t.Errorf("first event = %#v, expected Shuffled attempt 1", (*events)[0])
	}
}

func TestRedealProducesPlayableBoard(t *testing.T) {
	c := startedController(t, Settings{Moves: 5}, stuckBoard...)
	c.redeal(DefaultMaxReshuffles + 1)

	b := c.Board()
	for raw := 0; raw < b.Size(); raw++ {
		if _, ok := c.Matcher().Match(b, b.IndexOf(raw)); ok {
			t.Fatalf("redealt board has a match:\n%s", b)
		}
	}
	if !c.HasMoves() {
		t.Errorf("redealt board has no move:\n%s", b)
	}
}

func TestSameSeedSameGame(t *testing.T) {
	play := func() *Controller {
		c := NewController(Settings{
			Rows: 8, Cols: 9, Colors: 5, Moves: 6,
			Objectives: []Objective{{Color: Violet, Remaining: 50}},
		}, rand.New(rand.NewSource(42)))
		c.Start()
		for c.Status() == InProgress {
			a, z, ok := c.Hint()
			if !ok {
				t.Fatal("no move on a settled board")
			}
			c.Select(a)
			c.Select(z)
		}
		return c
	}
	first, second := play(), play()
	if !first.Board().Equal(second.Board()) {
		t.Errorf("boards differ for the same seed:\n%s\n\n%s", first.Board(), second.Board())
	}
	if first.Status() != second.Status() || first.MovesUsed() != second.MovesUsed() {
		t.Error("outcomes differ for the same seed")
	}
}
