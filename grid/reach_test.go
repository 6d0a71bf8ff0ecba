package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/labyrinth/grid"
)

// braided is a small maze whose lower-right region is reachable only through
// the hazard at (3,7).
var braided = []string{
	"#########",
	"#...#...#",
	"#.#.#.#.#",
	"#.#...#x#",
	"#.#####.#",
	"#...#...#",
	"#####.#.#",
	"#########",
}

// TestReachable_HazardPolicy checks that hazards block only when asked to.
func TestReachable_HazardPolicy(t *testing.T) {
	g, _ := grid.Parse(braided...)
	from := grid.Position{Row: 1, Col: 1}
	to := grid.Position{Row: 5, Col: 5}

	assert.True(t, g.Reachable(from, to, false))
	assert.False(t, g.Reachable(from, to, true))
	// a hazard target is unreachable when hazards are walls
	assert.False(t, g.Reachable(from, grid.Position{Row: 3, Col: 7}, true))
	// the dead end at (6,7) hangs off (5,7)
	assert.True(t, g.Reachable(from, grid.Position{Row: 6, Col: 7}, false))
}

// TestReachable_SameCellAndBounds covers trivial inputs.
func TestReachable_SameCellAndBounds(t *testing.T) {
	g, _ := grid.Parse(braided...)
	p := grid.Position{Row: 1, Col: 1}
	assert.True(t, g.Reachable(p, p, true))
	assert.False(t, g.Reachable(p, grid.Position{Row: 99, Col: 0}, false))
}

// TestReachable_Symmetric checks reachable(a,b) == reachable(b,a) over all
// pairs of non-wall cells, for both hazard policies.
func TestReachable_Symmetric(t *testing.T) {
	g, _ := grid.Parse(braided...)
	var cells []grid.Position
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := grid.Position{Row: r, Col: c}
			if k := g.At(p); k != grid.Wall && k != grid.Hazard {
				cells = append(cells, p)
			}
		}
	}
	for _, hazardsAsWalls := range []bool{false, true} {
		for _, a := range cells {
			for _, b := range cells {
				if g.Reachable(a, b, hazardsAsWalls) != g.Reachable(b, a, hazardsAsWalls) {
					t.Fatalf("asymmetric reachability %v↔%v (hazardsAsWalls=%v)", a, b, hazardsAsWalls)
				}
			}
		}
	}
}

// TestReachableFrom_Region compares region sizes for both policies.
func TestReachableFrom_Region(t *testing.T) {
	g, _ := grid.Parse(braided...)
	start := grid.Position{Row: 1, Col: 1}

	open := g.ReachableFrom(start, false)
	closed := g.ReachableFrom(start, true)
	total := len(g.Cells(grid.Open)) + len(g.Cells(grid.Hazard))

	assert.Equal(t, total, open.Size())
	assert.Less(t, closed.Size(), open.Size())
	assert.True(t, closed.Has(start))
	assert.False(t, closed.Has(grid.Position{Row: 3, Col: 7}))
}
