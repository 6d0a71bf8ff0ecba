package grid

import (
	"fmt"
	"strings"
)

// symbols is the plain ASCII form of each kind, used by Parse and String.
// Colors and glyphs for terminals belong to renderers, not to this package.
var symbols = [...]rune{
	Wall:         '#',
	Open:         '.',
	Start:        'S',
	Goal:         'G',
	Reward:       '$',
	Hazard:       'x',
	SolutionMark: '*',
	VisitedMark:  ':',
	Actor:        '@',
}

// Symbol returns the ASCII rune for k, or '?' for an unknown kind.
func (k Kind) Symbol() rune {
	if int(k) < len(symbols) {
		return symbols[k]
	}
	return '?'
}

// KindOf maps an ASCII rune back to its kind.
func KindOf(r rune) (Kind, bool) {
	for k, s := range symbols {
		if s == r {
			return Kind(k), true
		}
	}
	return Wall, false
}

// Parse builds a grid from ASCII rows, one string per row.
// Returns ErrEmptyGrid, ErrNonRectangular or a wrapped ErrUnknownSymbol.
//
//	g, _ := grid.Parse(
//	    "#####",
//	    "#S.G#",
//	    "#####",
//	)
func Parse(lines ...string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len([]rune(lines[0]))
	g, err := New(len(lines), width, Wall)
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		row := []rune(line)
		if len(row) != width {
			return nil, ErrNonRectangular
		}
		for c, sym := range row {
			k, ok := KindOf(sym)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownSymbol, sym, r, c)
			}
			g.Set(Position{Row: r, Col: c}, k)
		}
	}
	return g, nil
}

// String renders the grid as ASCII rows separated by newlines.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.Height * (g.Width + 1))
	for r := 0; r < g.Height; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.Width; c++ {
			b.WriteRune(g.At(Position{Row: r, Col: c}).Symbol())
		}
	}
	return b.String()
}
