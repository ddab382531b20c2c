package engine

import (
	"math/rand"
	"strings"
)

// Board size limits accepted by level configuration.
const (
	MinSize = 7
	MaxSize = 10
)

// Board is a rows x cols grid of pieces stored in row-major order:
// raw index = row*cols + col.
//
// A board also carries a speculative overlay of proxy colours used by move
// lookahead. Proxies change what ColorAt reports and nothing else.
type Board struct {
	rows    int
	cols    int
	cells   []Piece
	proxies map[Index]Color
}

// NewBoard creates an empty board. Dimensions are validated by the level
// loader, not here.
func NewBoard(rows, cols int) *Board {
	return &Board{
		rows:    rows,
		cols:    cols,
		cells:   make([]Piece, rows*cols),
		proxies: make(map[Index]Color),
	}
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Size returns the number of cells.
func (b *Board) Size() int { return len(b.cells) }

// InBounds reports whether i addresses a cell of this board.
func (b *Board) InBounds(i Index) bool {
	return i.Row >= 0 && i.Row < b.rows && i.Col >= 0 && i.Col < b.cols
}

// Raw converts an index to its row-major slot. The index must be in bounds.
func (b *Board) Raw(i Index) int {
	return i.Row*b.cols + i.Col
}

// IndexOf converts a row-major slot back to an index.
func (b *Board) IndexOf(raw int) Index {
	return Index{Row: raw / b.cols, Col: raw % b.cols}
}

// Get returns the occupant of i, or Empty when i is out of bounds.
func (b *Board) Get(i Index) Piece {
	if !b.InBounds(i) {
		return Empty
	}
	return b.cells[b.Raw(i)]
}

// Place puts p at i, replacing whatever was there.
func (b *Board) Place(p Piece, i Index) {
	if !b.InBounds(i) {
		return
	}
	b.cells[b.Raw(i)] = p
}

// Destroy empties i and returns the removed piece.
// ok is false when i is out of bounds or already empty.
func (b *Board) Destroy(i Index) (removed Piece, ok bool) {
	if !b.InBounds(i) {
		return Empty, false
	}
	raw := b.Raw(i)
	removed = b.cells[raw]
	if removed.IsEmpty() {
		return Empty, false
	}
	b.cells[raw] = Empty
	return removed, true
}

// CanSwap reports whether a and z are distinct, in bounds and 4-adjacent.
// It says nothing about whether the swap would produce a match.
func (b *Board) CanSwap(a, z Index) bool {
	return b.InBounds(a) && b.InBounds(z) && a.Adjacent(z)
}

// Swap exchanges the occupants of a and z. It returns false, leaving the board
// untouched, when CanSwap does.
func (b *Board) Swap(a, z Index) bool {
	if !b.CanSwap(a, z) {
		return false
	}
	ra, rz := b.Raw(a), b.Raw(z)
	b.cells[ra], b.cells[rz] = b.cells[rz], b.cells[ra]
	return true
}

// DropColumn applies gravity to one column: occupied cells slide down until
// none has an empty cell below it. It returns the destination of every piece
// that moved, bottom-most first.
func (b *Board) DropColumn(col int) []Index {
	if col < 0 || col >= b.cols {
		return nil
	}
	var moved []Index
	write := b.rows - 1
	for row := b.rows - 1; row >= 0; row-- {
		src := Index{Row: row, Col: col}
		p := b.cells[b.Raw(src)]
		if p.IsEmpty() {
			continue
		}
		if row != write {
			dst := Index{Row: write, Col: col}
			b.cells[b.Raw(dst)] = p
			b.cells[b.Raw(src)] = Empty
			moved = append(moved, dst)
		}
		write--
	}
	return moved
}

// EmptyTiles lists every unoccupied cell in row-major order.
func (b *Board) EmptyTiles() []Index {
	var out []Index
	for raw, p := range b.cells {
		if p.IsEmpty() {
			out = append(out, b.IndexOf(raw))
		}
	}
	return out
}

// Count returns the number of cells satisfying pred.
func (b *Board) Count(pred func(Piece) bool) int {
	n := 0
	for _, p := range b.cells {
		if pred(p) {
			n++
		}
	}
	return n
}

// AddProxy overlays colour c on i for lookahead.
func (b *Board) AddProxy(c Color, i Index) {
	if !b.InBounds(i) {
		return
	}
	b.proxies[i] = c
}

// RemoveProxy drops the overlay at i, if any.
func (b *Board) RemoveProxy(i Index) {
	delete(b.proxies, i)
}

// IsProxy reports whether i currently carries an overlay.
func (b *Board) IsProxy(i Index) bool {
	_, ok := b.proxies[i]
	return ok
}

// ProxyColor returns the overlay colour at i.
func (b *Board) ProxyColor(i Index) (Color, bool) {
	c, ok := b.proxies[i]
	return c, ok
}

// ProxyCount returns the number of live overlays.
func (b *Board) ProxyCount() int {
	return len(b.proxies)
}

// ColorAt is the colour the matchers see at i: the proxy colour when one is
// installed, else the figure colour. ok is false for boosters, empty cells and
// out-of-range indices.
func (b *Board) ColorAt(i Index) (Color, bool) {
	if !b.InBounds(i) {
		return 0, false
	}
	if c, ok := b.proxies[i]; ok {
		return c, true
	}
	return b.cells[b.Raw(i)].Color()
}

// Shuffle applies a uniform random permutation to every slot, empties
// included. The result may have no legal move.
func (b *Board) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(b.cells), func(i, j int) {
		b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
	})
}

// Clear empties every cell and drops all proxies.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
	clear(b.proxies)
}

// Clone returns a deep copy of the occupants. Proxies are not copied.
func (b *Board) Clone() *Board {
	c := NewBoard(b.rows, b.cols)
	copy(c.cells, b.cells)
	return c
}

// Equal reports whether both boards have the same dimensions and occupants.
func (b *Board) Equal(other *Board) bool {
	if b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i, p := range b.cells {
		if p != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders one line per row using Piece.Rune.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(len(b.cells) + b.rows)
	for row := 0; row < b.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.cols; col++ {
			sb.WriteRune(b.cells[row*b.cols+col].Rune())
		}
	}
	return sb.String()
}
