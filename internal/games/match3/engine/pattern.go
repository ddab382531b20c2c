package engine

// PatternKind tags the geometry that produced a match.
type PatternKind uint8

const (
	RunHorizontal PatternKind = iota
	RunVertical
	Square
	TShape
)

func (k PatternKind) String() string {
	switch k {
	case RunHorizontal:
		return "run-horizontal"
	case RunVertical:
		return "run-vertical"
	case Square:
		return "square"
	case TShape:
		return "t-shape"
	default:
		return "unknown"
	}
}

// MinMatch is the smallest number of cells forming a match.
const MinMatch = 3

// Match is the result of a successful pattern evaluation: the pattern tag and
// the duplicate-free cells it covers, origin first.
type Match struct {
	Pattern PatternKind
	Indices []Index
}

// Len returns the number of matched cells.
func (m Match) Len() int { return len(m.Indices) }

// Pattern is one geometric match strategy.
type Pattern interface {
	Kind() PatternKind
	// Match evaluates the board at an origin whose real occupant must be a figure.
	Match(b *Board, at Index) (Match, bool)
	// Probe evaluates the board at an origin carrying a proxy colour, without
	// reading the origin's real occupant.
	Probe(b *Board, at Index) bool
}

// originColor returns the colour a real match at i starts from.
func originColor(b *Board, at Index) (Color, bool) {
	if !b.Get(at).IsFigure() {
		return 0, false
	}
	return b.ColorAt(at)
}

func sameColor(b *Board, i Index, c Color) bool {
	got, ok := b.ColorAt(i)
	return ok && got == c
}

// RunPattern matches three or more same-coloured cells in a straight line.
type RunPattern struct {
	dr, dc int
	kind   PatternKind
}

// HorizontalRun scans the origin's row.
func HorizontalRun() RunPattern { return RunPattern{dc: 1, kind: RunHorizontal} }

// VerticalRun scans the origin's column.
func VerticalRun() RunPattern { return RunPattern{dr: 1, kind: RunVertical} }

func (p RunPattern) Kind() PatternKind { return p.kind }

func (p RunPattern) Match(b *Board, at Index) (Match, bool) {
	c, ok := originColor(b, at)
	if !ok {
		return Match{}, false
	}
	return p.match(b, at, c)
}

func (p RunPattern) Probe(b *Board, at Index) bool {
	c, ok := b.ProxyColor(at)
	if !ok {
		return false
	}
	_, matched := p.match(b, at, c)
	return matched
}

func (p RunPattern) match(b *Board, at Index, c Color) (Match, bool) {
	cells := []Index{at}
	for i := at.Offset(-p.dr, -p.dc); sameColor(b, i, c); i = i.Offset(-p.dr, -p.dc) {
		cells = append(cells, i)
	}
	for i := at.Offset(p.dr, p.dc); sameColor(b, i, c); i = i.Offset(p.dr, p.dc) {
		cells = append(cells, i)
	}
	if len(cells) < MinMatch {
		return Match{}, false
	}
	return Match{Pattern: p.kind, Indices: cells}, true
}

// SquarePattern matches a 2x2 block containing the origin. The left neighbour
// is tried before the right one, and for each the row above before the row
// below.
type SquarePattern struct{}

func (SquarePattern) Kind() PatternKind { return Square }

func (p SquarePattern) Match(b *Board, at Index) (Match, bool) {
	c, ok := originColor(b, at)
	if !ok {
		return Match{}, false
	}
	return p.match(b, at, c)
}

func (p SquarePattern) Probe(b *Board, at Index) bool {
	c, ok := b.ProxyColor(at)
	if !ok {
		return false
	}
	_, matched := p.match(b, at, c)
	return matched
}

func (SquarePattern) match(b *Board, at Index, c Color) (Match, bool) {
	for _, dc := range [2]int{-1, 1} {
		n := at.Offset(0, dc)
		if !sameColor(b, n, c) {
			continue
		}
		for _, dr := range [2]int{-1, 1} {
			i1, i2 := at.Offset(dr, 0), n.Offset(dr, 0)
			if sameColor(b, i1, c) && sameColor(b, i2, c) {
				return Match{Pattern: Square, Indices: []Index{at, n, i1, i2}}, true
			}
		}
	}
	return Match{}, false
}

// TPattern matches a two-cell base extending the origin along one axis
// combined with one tail cell on each side of the origin along the other axis,
// so the origin sits at the junction of the T. The result has five cells.
//
// TPattern has no speculative form: any T reachable by a swap also contains a
// run that the run probes find.
type TPattern struct{}

func (TPattern) Kind() PatternKind { return TShape }

func (TPattern) Probe(*Board, Index) bool { return false }

func (TPattern) Match(b *Board, at Index) (Match, bool) {
	c, ok := originColor(b, at)
	if !ok {
		return Match{}, false
	}
	// Horizontal base with vertical tails, then vertical base with horizontal tails.
	axes := [2]struct{ br, bc, tr, tc int }{
		{br: 0, bc: 1, tr: 1, tc: 0},
		{br: 1, bc: 0, tr: 0, tc: 1},
	}
	for _, ax := range axes {
		base, ok := tBase(b, at, c, ax.br, ax.bc)
		if !ok {
			continue
		}
		t1, t2 := at.Offset(-ax.tr, -ax.tc), at.Offset(ax.tr, ax.tc)
		if sameColor(b, t1, c) && sameColor(b, t2, c) {
			return Match{Pattern: TShape, Indices: []Index{at, base[0], base[1], t1, t2}}, true
		}
	}
	return Match{}, false
}

// tBase looks for two same-coloured cells on one side of the origin, the
// negative side first.
func tBase(b *Board, at Index, c Color, dr, dc int) ([2]Index, bool) {
	for _, s := range [2]int{-1, 1} {
		i1 := at.Offset(s*dr, s*dc)
		i2 := at.Offset(2*s*dr, 2*s*dc)
		if sameColor(b, i1, c) && sameColor(b, i2, c) {
			return [2]Index{i1, i2}, true
		}
	}
	return [2]Index{}, false
}
