package match3

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

const (
	cellWidth = 3 // marker, glyph, marker
	hudHeight = 3
	minWidth  = 40
)

var figureColors = [engine.MaxColors]core.Color{
	engine.Blue:   core.ColorBlue,
	engine.Green:  core.ColorGreen,
	engine.Orange: core.ColorOrange,
	engine.Red:    core.ColorRed,
	engine.Violet: core.ColorViolet,
}

// FigureColor maps an engine colour to a screen colour.
func FigureColor(c engine.Color) core.Color {
	if !c.Valid() {
		return core.ColorDefault
	}
	return figureColors[c]
}

// Glyph returns the rune and colour used to draw a piece.
func Glyph(p engine.Piece) (rune, core.Color) {
	switch {
	case p.IsFigure():
		c, _ := p.Color()
		return '●', FigureColor(c)
	case p.IsBooster():
		k, _ := p.Kind()
		switch k {
		case engine.RowClear:
			return '↔', core.ColorBrightWhite
		case engine.ColumnClear:
			return '↕', core.ColorBrightWhite
		case engine.AreaClear:
			return '✹', core.ColorBrightWhite
		}
	}
	return '·', core.ColorDim
}

// resize recomputes where the board sits on a w x h screen.
func (g *Game) resize(w, h int) {
	g.screenW, g.screenH = w, h
	boardW := g.level.Cols*cellWidth + 2
	boardH := g.level.Rows + 2

	g.boardBox = core.NewRect((w-boardW)/2, hudHeight+1, boardW, boardH)
	g.tooSmall = w < max(boardW, minWidth) || h < g.boardBox.Bottom()+2
}

// cellAt maps a screen position to the board cell drawn there.
func (g *Game) cellAt(x, y int) (engine.Index, bool) {
	inner := core.NewRect(g.boardBox.X+1, g.boardBox.Y+1, g.level.Cols*cellWidth, g.level.Rows)
	if !inner.Contains(x, y) {
		return engine.NoIndex, false
	}
	return engine.At(y-inner.Y, (x-inner.X)/cellWidth), true
}

// cellOrigin returns the screen position of the left marker of cell i.
func (g *Game) cellOrigin(i engine.Index) (int, int) {
	return g.boardBox.X + 1 + i.Col*cellWidth, g.boardBox.Y + 1 + i.Row
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(g.boardBox, core.ColorGray)
	g.renderBoard(dst)
	g.renderStatusLine(dst)

	if g.ctrl.Status().Terminal() {
		g.renderOutcome(dst)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	need := fmt.Sprintf("Need at least %dx%d", max(g.boardBox.W, minWidth), g.boardBox.Bottom()+2)
	dst.DrawTextCentered(y+1, need, core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, "MATCH 3 · "+g.level.Title(), core.ColorBrightWhite)
	dst.DrawTextCentered(1, fmt.Sprintf("Moves: %d   Score: %d", g.ctrl.MovesLeft(), g.score), core.ColorDefault)

	type segment struct {
		text  string
		color core.Color
	}
	var segs []segment
	width := 0
	for i, o := range g.ctrl.Objectives().List() {
		if i > 0 {
			segs = append(segs, segment{"   ", core.ColorDefault})
		}
		count := fmt.Sprintf(" %d", o.Remaining)
		if o.Done() {
			count = " ✓"
		}
		segs = append(segs, segment{"● " + o.Color.String(), FigureColor(o.Color)}, segment{count, core.ColorDefault})
	}
	for _, s := range segs {
		width += len([]rune(s.text))
	}
	x := (g.screenW - width) / 2
	for _, s := range segs {
		dst.DrawTextColored(x, 2, s.text, s.color)
		x += len([]rune(s.text))
	}
}

func (g *Game) renderBoard(dst *core.Screen) {
	b := g.ctrl.Board()
	flashing := g.flashLeft > 0

	for raw := 0; raw < b.Size(); raw++ {
		i := b.IndexOf(raw)
		x, y := g.cellOrigin(i)
		r, c := Glyph(b.Get(i))
		if flashing && slices.Contains(g.flash, i) {
			r, c = '✶', core.ColorYellow
		}
		dst.SetColored(x+1, y, r, c)
	}

	if g.hintLeft > 0 && !g.noMoveHint {
		g.mark(dst, g.hint[0], '(', ')', core.ColorGreen)
		g.mark(dst, g.hint[1], '(', ')', core.ColorGreen)
	}
	if p := g.ctrl.Pending(); p != engine.NoIndex {
		g.mark(dst, p, '<', '>', core.ColorCyan)
	}
	if !g.ctrl.Status().Terminal() {
		g.mark(dst, g.cursor, '[', ']', core.ColorYellow)
	}
}

func (g *Game) mark(dst *core.Screen, i engine.Index, left, right rune, c core.Color) {
	x, y := g.cellOrigin(i)
	dst.SetColored(x, y, left, c)
	dst.SetColored(x+cellWidth-1, y, right, c)
}

func (g *Game) renderStatusLine(dst *core.Screen) {
	y := g.boardBox.Bottom()
	var msg string
	switch {
	case g.paused:
		msg = "PAUSED"
	case g.hintLeft > 0 && g.noMoveHint:
		msg = "No moves available"
	case g.ctrl.Pending() != engine.NoIndex:
		msg = "Pick a neighbour to swap with"
	}
	if msg != "" {
		dst.DrawTextCentered(y, msg, core.ColorGray)
	}
}

func (g *Game) renderOutcome(dst *core.Screen) {
	title, color := "OUT OF MOVES", core.ColorRed
	if g.ctrl.Status() == engine.Passed {
		title, color = "LEVEL PASSED", core.ColorGreen
	}
	lines := []string{
		title,
		fmt.Sprintf("Score %d in %d moves", g.score, g.ctrl.MovesUsed()),
		"R replay   Q quit",
	}

	box := core.NewRect(0, 0, 28, len(lines)+2).CenterIn(g.boardBox)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, color)
	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		x := box.X + (box.W-len([]rune(line)))/2
		dst.DrawTextColored(x, box.Y+1+i, line, c)
	}
}
