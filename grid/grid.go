package grid

// offsets is the fixed neighbor enumeration order: right, down, left, up.
// DFS stack order and heap tie-breaks depend on it; do not reorder.
var offsets = [4]Position{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// New builds a height×width grid with every cell set to fill.
// Returns ErrEmptyGrid if either dimension is smaller than one.
// Complexity: O(W×H) time and memory.
func New(height, width int, fill Kind) (*Grid, error) {
	if height < 1 || width < 1 {
		return nil, ErrEmptyGrid
	}
	cells := make([]Kind, height*width)
	if fill != Wall {
		for i := range cells {
			cells[i] = fill
		}
	}

	return &Grid{Height: height, Width: width, cells: cells}, nil
}

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// index maps p to its row-major slot.
func (g *Grid) index(p Position) int {
	return p.Row*g.Width + p.Col
}

// At returns the kind stored at p. p must be in bounds.
func (g *Grid) At(p Position) Kind {
	return g.cells[g.index(p)]
}

// Set stores k at p. p must be in bounds.
func (g *Grid) Set(p Position, k Kind) {
	g.cells[g.index(p)] = k
}

// Clone returns a deep copy that shares no storage with g.
func (g *Grid) Clone() *Grid {
	cells := make([]Kind, len(g.cells))
	copy(cells, g.cells)

	return &Grid{Height: g.Height, Width: g.Width, cells: cells}
}

// Find returns the first position holding k in row-major order.
func (g *Grid) Find(k Kind) (Position, bool) {
	for i, c := range g.cells {
		if c == k {
			return Position{Row: i / g.Width, Col: i % g.Width}, true
		}
	}
	return Position{}, false
}

// Cells returns every position holding k, row-major.
func (g *Grid) Cells(k Kind) []Position {
	var out []Position
	for i, c := range g.cells {
		if c == k {
			out = append(out, Position{Row: i / g.Width, Col: i % g.Width})
		}
	}
	return out
}

// Count returns how many cells hold k.
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, c := range g.cells {
		if c == k {
			n++
		}
	}
	return n
}

// Neighbors returns the in-bounds, non-Wall orthogonal neighbors of p, each
// paired with the cost of stepping onto it, in the order right, down, left, up.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) []Neighbor {
	out := make([]Neighbor, 0, len(offsets))
	for _, d := range offsets {
		q := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if !g.InBounds(q) {
			continue
		}
		k := g.At(q)
		if k == Wall {
			continue
		}
		out = append(out, Neighbor{Pos: q, Cost: CostOf(k)})
	}
	return out
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
// Admissible and consistent here because the cheapest step costs 1.
func Manhattan(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
