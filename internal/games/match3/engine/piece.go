package engine

// Color is a figure colour. The order is fixed; a level with N colours uses the
// first N.
type Color int8

const (
	Blue Color = iota
	Green
	Orange
	Red
	Violet
)

// MaxColors is the size of the canonical palette.
const MaxColors = 5

var colorNames = [MaxColors]string{"Blue", "Green", "Orange", "Red", "Violet"}

func (c Color) String() string {
	if c < 0 || int(c) >= MaxColors {
		return "Undefined"
	}
	return colorNames[c]
}

// Valid reports whether c is one of the canonical colours.
func (c Color) Valid() bool {
	return c >= 0 && int(c) < MaxColors
}

// ParseColor maps a colour name ("Red") to its Color.
func ParseColor(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return 0, false
}

// Palette returns the first n canonical colours.
func Palette(n int) []Color {
	if n > MaxColors {
		n = MaxColors
	}
	p := make([]Color, 0, n)
	for i := 0; i < n; i++ {
		p = append(p, Color(i))
	}
	return p
}

// BoosterKind selects a booster's blast geometry.
type BoosterKind uint8

const (
	RowClear BoosterKind = iota
	ColumnClear
	AreaClear
)

func (k BoosterKind) String() string {
	switch k {
	case RowClear:
		return "row-clear"
	case ColumnClear:
		return "column-clear"
	case AreaClear:
		return "area-clear"
	default:
		return "unknown"
	}
}

// BoosterFor returns the booster created from an oversized match of the given
// pattern. The blast axis runs across the consumed run.
func BoosterFor(p PatternKind) BoosterKind {
	switch p {
	case RunHorizontal:
		return ColumnClear
	case RunVertical:
		return RowClear
	case Square, TShape:
		return AreaClear
	default:
		return AreaClear
	}
}

type pieceKind uint8

const (
	pieceEmpty pieceKind = iota
	pieceFigure
	pieceBooster
)

// Piece is the occupant of a cell. The zero value is an empty cell.
type Piece struct {
	kind    pieceKind
	color   Color
	booster BoosterKind
}

// Empty is the empty cell.
var Empty = Piece{}

// Figure returns a plain coloured piece.
func Figure(c Color) Piece {
	return Piece{kind: pieceFigure, color: c}
}

// Booster returns a booster piece of the given kind.
func Booster(k BoosterKind) Piece {
	return Piece{kind: pieceBooster, booster: k}
}

func (p Piece) IsEmpty() bool   { return p.kind == pieceEmpty }
func (p Piece) IsFigure() bool  { return p.kind == pieceFigure }
func (p Piece) IsBooster() bool { return p.kind == pieceBooster }

// Color returns the figure colour; ok is false for boosters and empty cells.
func (p Piece) Color() (c Color, ok bool) {
	if p.kind != pieceFigure {
		return 0, false
	}
	return p.color, true
}

// Kind returns the booster kind; ok is false for figures and empty cells.
func (p Piece) Kind() (k BoosterKind, ok bool) {
	if p.kind != pieceBooster {
		return 0, false
	}
	return p.booster, true
}

// Rune is a one-character representation used by Board.String and text renderers.
// Figures use the first letter of their colour, boosters use '-', '|' and '*'.
func (p Piece) Rune() rune {
	switch p.kind {
	case pieceFigure:
		return rune(colorNames[p.color][0])
	case pieceBooster:
		switch p.booster {
		case RowClear:
			return '-'
		case ColumnClear:
			return '|'
		default:
			return '*'
		}
	default:
		return '.'
	}
}

func (p Piece) String() string {
	switch p.kind {
	case pieceFigure:
		return p.color.String()
	case pieceBooster:
		return p.booster.String()
	default:
		return "empty"
	}
}
