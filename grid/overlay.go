package grid

import "fmt"

// MarkPath returns a copy of g with every cell of p painted SolutionMark.
// Start and Goal cells keep their markers. g is not modified.
// Complexity: O(W×H + len(p)).
func MarkPath(g *Grid, p Path) *Grid {
	return Overlay(g, p, SolutionMark)
}

// Overlay returns a copy of g with each in-bounds cell of cells set to k,
// skipping Start and Goal cells. g is not modified.
func Overlay(g *Grid, cells []Position, k Kind) *Grid {
	out := g.Clone()
	for _, p := range cells {
		if !out.InBounds(p) {
			continue
		}
		if c := out.At(p); c == Start || c == Goal {
			continue
		}
		out.Set(p, k)
	}
	return out
}

// ValidatePath checks that p is non-empty, stays in bounds, never enters a
// Wall and only moves between orthogonal neighbors.
// Errors wrap ErrEmptyPath, ErrOutOfBounds, ErrWallCell or ErrNotAdjacent.
func (g *Grid) ValidatePath(p Path) error {
	if len(p) == 0 {
		return ErrEmptyPath
	}
	for i, pos := range p {
		if !g.InBounds(pos) {
			return fmt.Errorf("%w: step %d at %v", ErrOutOfBounds, i, pos)
		}
		if g.At(pos) == Wall {
			return fmt.Errorf("%w: step %d at %v", ErrWallCell, i, pos)
		}
		if i > 0 && Manhattan(p[i-1], pos) != 1 {
			return fmt.Errorf("%w: step %d %v→%v", ErrNotAdjacent, i, p[i-1], pos)
		}
	}
	return nil
}

// PathCost returns the summed entry cost of every step of p after its first
// position. The path is validated first.
func (g *Grid) PathCost(p Path) (int, error) {
	if err := g.ValidatePath(p); err != nil {
		return 0, err
	}
	total := 0
	for _, pos := range p[1:] {
		total += CostOf(g.At(pos))
	}
	return total, nil
}
