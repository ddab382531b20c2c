package engine

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Targets returns the cells a booster of kind k at i blasts, excluding i.
func (k BoosterKind) Targets(b *Board, at Index) []Index {
	var out []Index
	switch k {
	case RowClear:
		for col := 0; col < b.Cols(); col++ {
			if col != at.Col {
				out = append(out, Index{Row: at.Row, Col: col})
			}
		}
	case ColumnClear:
		for row := 0; row < b.Rows(); row++ {
			if row != at.Row {
				out = append(out, Index{Row: row, Col: at.Col})
			}
		}
	case AreaClear:
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				if n := at.Offset(dr, dc); b.InBounds(n) {
					out = append(out, n)
				}
			}
		}
	}
	return out
}

// Impact accumulates the cells hit by one activation chain.
// Indices are kept in first-hit order without duplicates.
type Impact struct {
	seen  mapset.Set[Index]
	order []Index
}

// NewImpact returns an empty impact set.
func NewImpact() *Impact {
	return &Impact{seen: mapset.New[Index]()}
}

// Add records i and reports whether it was new.
func (im *Impact) Add(i Index) bool {
	if im.seen.Has(i) {
		return false
	}
	im.seen.Put(i)
	im.order = append(im.order, i)
	return true
}

// Has reports whether i was hit.
func (im *Impact) Has(i Index) bool { return im.seen.Has(i) }

// Len returns the number of distinct cells hit.
func (im *Impact) Len() int { return im.seen.Size() }

// Indices returns the hit cells in first-hit order.
func (im *Impact) Indices() []Index {
	out := make([]Index, len(im.order))
	copy(out, im.order)
	return out
}

// Columns returns the distinct columns of the hit cells in ascending order.
func (im *Impact) Columns() []int {
	return distinctColumns(im.order)
}

// Activate fires the booster at i. Its own cell joins the impact set and is
// destroyed, then every target cell joins the set: boosters found there are
// fired in turn with the same set, anything else is destroyed. destroyed is
// called for every piece removed, boosters included. A cell already in the
// set is never processed twice.
func Activate(b *Board, at Index, impact *Impact, destroyed func(Index, Piece)) {
	if !b.Get(at).IsBooster() {
		return
	}
	impact.Add(at)
	stack := []Index{at}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		self, ok := b.Destroy(cur)
		if !ok {
			continue
		}
		if destroyed != nil {
			destroyed(cur, self)
		}
		kind, _ := self.Kind()
		for _, t := range kind.Targets(b, cur) {
			if !impact.Add(t) {
				continue
			}
			if b.Get(t).IsBooster() {
				stack = append(stack, t)
				continue
			}
			if p, ok := b.Destroy(t); ok && destroyed != nil {
				destroyed(t, p)
			}
		}
	}
}

func distinctColumns(indices []Index) []int {
	seen := mapset.New[int]()
	var cols []int
	for _, i := range indices {
		if seen.Has(i.Col) {
			continue
		}
		seen.Put(i.Col)
		cols = append(cols, i.Col)
	}
	slices.Sort(cols)
	return cols
}
