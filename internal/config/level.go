// Package config loads and validates match-3 level definitions.
//
// A level file uses this layout (JSON, which also parses as YAML):
//
//	{
//	  "Name": "Warm-up",
//	  "Board": {"Rows": 8, "Cols": 8},
//	  "Colors": 4,
//	  "Objectives": {"Red": 10, "Blue": 12},
//	  "Moves": 20
//	}
//
// Numbers may also be given as strings holding an integer. Name and the
// optional Reshuffles cap are extensions; everything else is required.
package config

import (
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// Limits enforced by Parse.
const (
	MinColors     = 3
	MaxColors     = engine.MaxColors
	MinObjectives = 1
	MaxObjectives = 3
)

// Level is a validated level definition.
type Level struct {
	ID         string // file name without extension
	Name       string
	Rows       int
	Cols       int
	Colors     int
	Moves      int
	Objectives []engine.Objective // in file order
	Reshuffles int                // 0 selects the engine default
	Source     string             // path it was read from, or "embedded"
}

// Title returns Name, falling back to ID.
func (l Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// Settings converts the level into controller settings.
func (l Level) Settings() engine.Settings {
	return engine.Settings{
		Rows:          l.Rows,
		Cols:          l.Cols,
		Colors:        l.Colors,
		Moves:         l.Moves,
		Objectives:    slices.Clone(l.Objectives),
		MaxReshuffles: l.Reshuffles,
	}
}

// levelDoc mirrors the file layout. Values are kept as nodes so that missing
// keys, quoted numbers and objective order can be told apart.
type levelDoc struct {
	Name       string    `yaml:"Name"`
	Board      yaml.Node `yaml:"Board"`
	Colors     yaml.Node `yaml:"Colors"`
	Objectives yaml.Node `yaml:"Objectives"`
	Moves      yaml.Node `yaml:"Moves"`
	Reshuffles yaml.Node `yaml:"Reshuffles"`
}

// Parse decodes and validates a level document. Checks run in a fixed order
// (board size, colours, objectives, moves) and the first failure is returned
// as a *ValidationError.
func Parse(data []byte) (Level, error) {
	var doc levelDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Level{}, invalid(ErrMalformed, "cannot parse level: %v", err)
	}

	lvl := Level{Name: strings.TrimSpace(doc.Name)}
	var err error
	if lvl.Rows, lvl.Cols, err = parseBoard(&doc.Board); err != nil {
		return Level{}, err
	}
	if lvl.Colors, err = parseColors(&doc.Colors); err != nil {
		return Level{}, err
	}
	if lvl.Objectives, err = parseObjectives(&doc.Objectives, lvl.Colors); err != nil {
		return Level{}, err
	}
	if lvl.Moves, err = parseMoves(&doc.Moves); err != nil {
		return Level{}, err
	}
	if doc.Reshuffles.Kind != 0 {
		if lvl.Reshuffles, err = uintValue(&doc.Reshuffles); err != nil {
			return Level{}, invalid(ErrNotPositive, "Reshuffles: %q is not a positive integer", doc.Reshuffles.Value)
		}
	}
	return lvl, nil
}

func parseBoard(n *yaml.Node) (rows, cols int, err error) {
	if n.Kind != yaml.MappingNode {
		return 0, 0, invalid(ErrMalformed, "Board must be an object with Rows and Cols")
	}
	rn, cn := child(n, "Rows"), child(n, "Cols")
	if rn == nil || cn == nil {
		return 0, 0, invalid(ErrMalformed, "Board must define Rows and Cols")
	}
	if rows, err = uintValue(rn); err != nil {
		return 0, 0, invalid(ErrNotPositive, "Board.Rows: %q is not a positive integer", rn.Value)
	}
	if cols, err = uintValue(cn); err != nil {
		return 0, 0, invalid(ErrNotPositive, "Board.Cols: %q is not a positive integer", cn.Value)
	}
	if !sizeOK(rows) || !sizeOK(cols) {
		return 0, 0, invalid(ErrBoardSize, "board size %dx%d: each side must be between %d and %d",
			rows, cols, engine.MinSize, engine.MaxSize)
	}
	return rows, cols, nil
}

func sizeOK(n int) bool {
	return n >= engine.MinSize && n <= engine.MaxSize
}

func parseColors(n *yaml.Node) (int, error) {
	colors, err := uintValue(n)
	if err != nil || colors < MinColors || colors > MaxColors {
		return 0, invalid(ErrFiguresCount, "Colors must be between %d and %d, got %q", MinColors, MaxColors, n.Value)
	}
	return colors, nil
}

func parseObjectives(n *yaml.Node, colors int) ([]engine.Objective, error) {
	if n.Kind != yaml.MappingNode {
		return nil, invalid(ErrMalformed, "Objectives must be an object mapping colors to counts")
	}
	palette := engine.Palette(colors)
	var out []engine.Objective
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		c, ok := engine.ParseColor(key.Value)
		if !ok || !slices.Contains(palette, c) {
			return nil, invalid(ErrObjectiveColor, "objective color %q is not one of %v", key.Value, palette)
		}
		if slices.ContainsFunc(out, func(o engine.Objective) bool { return o.Color == c }) {
			return nil, invalid(ErrObjectiveColor, "objective color %q is listed twice", key.Value)
		}
		count, err := uintValue(val)
		if err != nil {
			return nil, invalid(ErrNotPositive, "Objectives.%s: %q is not a positive integer", key.Value, val.Value)
		}
		if count == 0 {
			return nil, invalid(ErrObjectiveCount, "Objectives.%s: count must be greater than 0", key.Value)
		}
		out = append(out, engine.Objective{Color: c, Remaining: count})
	}
	if len(out) < MinObjectives || len(out) > MaxObjectives {
		return nil, invalid(ErrObjectivesTotal, "a level needs %d to %d objectives, got %d",
			MinObjectives, MaxObjectives, len(out))
	}
	return out, nil
}

func parseMoves(n *yaml.Node) (int, error) {
	moves, err := uintValue(n)
	if err != nil || moves == 0 {
		return 0, invalid(ErrMovesCount, "Moves must be a positive integer, got %q", n.Value)
	}
	return moves, nil
}

// child returns the value node for key in a mapping node.
func child(n *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

// uintValue reads a non-negative integer from a scalar node. Quoted integers
// are accepted.
func uintValue(n *yaml.Node) (int, error) {
	if n.Kind != yaml.ScalarNode {
		return 0, ErrNotPositive
	}
	v, err := strconv.ParseUint(strings.TrimSpace(n.Value), 10, 31)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
