package engine

import (
	"math/rand"
	"testing"
)

// boardFrom builds a board from one string per row using the Piece.Rune
// alphabet: colour initials, '-' '|' '*' for boosters and '.' for empty.
func boardFrom(t *testing.T, rows ...string) *Board {
	t.Helper()
	b := NewBoard(len(rows), len(rows[0]))
	for r, line := range rows {
		if len(line) != b.Cols() {
			t.Fatalf("row %d has %d cells, expected %d", r, len(line), b.Cols())
		}
		for c, ch := range line {
			b.Place(pieceFromRune(t, ch), At(r, c))
		}
	}
	return b
}

func pieceFromRune(t *testing.T, ch rune) Piece {
	t.Helper()
	switch ch {
	case '.':
		return Empty
	case '-':
		return Booster(RowClear)
	case '|':
		return Booster(ColumnClear)
	case '*':
		return Booster(AreaClear)
	}
	for i, name := range colorNames {
		if rune(name[0]) == ch {
			return Figure(Color(i))
		}
	}
	t.Fatalf("unknown piece rune %q", ch)
	return Empty
}

// stuckBoard is a 7x7 three-colour board with no match and no legal move.
var stuckBoard = []string{
	"BGOBGOB",
	"GOBGOBG",
	"OBGOBGO",
	"BGOBGOB",
	"GOBGOBG",
	"OBGOBGO",
	"BGOBGOB",
}

// withCell returns a copy of rows with one cell replaced.
func withCell(rows []string, at Index, ch byte) []string {
	out := make([]string, len(rows))
	copy(out, rows)
	line := []byte(out[at.Row])
	line[at.Col] = ch
	out[at.Row] = string(line)
	return out
}

// startedController returns an in-progress controller playing on the given
// layout instead of a dealt board.
func startedController(t *testing.T, s Settings, rows ...string) *Controller {
	t.Helper()
	s.Rows, s.Cols = len(rows), len(rows[0])
	if s.Colors == 0 {
		s.Colors = 3
	}
	c := NewController(s, rand.New(rand.NewSource(1)))
	c.board = boardFrom(t, rows...)
	c.setStatus(InProgress)
	return c
}

func recordEvents(c *Controller) *[]Event {
	var events []Event
	c.Notifier().Subscribe(func(e Event) {
		events = append(events, e)
	})
	return &events
}

func sameIndexSet(a, b []Index) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[Index]int, len(a))
	for _, i := range a {
		seen[i]++
	}
	for _, i := range b {
		seen[i]--
		if seen[i] < 0 {
			return false
		}
	}
	return true
}
