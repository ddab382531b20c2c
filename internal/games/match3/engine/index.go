// Package engine implements the match-3 simulation: board storage and gravity,
// pattern matching, boosters, objectives and the turn state machine.
// It has no terminal, storage or logging dependencies.
package engine

import "fmt"

// Index addresses a board cell by row and column.
// Whether an index is usable depends on the board it is applied to.
type Index struct {
	Row int
	Col int
}

// NoIndex is the "nothing selected" sentinel.
var NoIndex = Index{Row: -1, Col: -1}

// At is shorthand for Index{Row: row, Col: col}.
func At(row, col int) Index {
	return Index{Row: row, Col: col}
}

// Offset returns the index shifted by dr rows and dc columns.
func (i Index) Offset(dr, dc int) Index {
	return Index{Row: i.Row + dr, Col: i.Col + dc}
}

// Adjacent reports whether o is a 4-neighbour of i.
func (i Index) Adjacent(o Index) bool {
	dr := i.Row - o.Row
	dc := i.Col - o.Col
	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}

func (i Index) String() string {
	return fmt.Sprintf("(%d,%d)", i.Row, i.Col)
}
