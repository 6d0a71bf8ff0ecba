package search_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/grid"
)

func mustParse(t testing.TB, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(rows...)
	require.NoError(t, err)
	return g
}

// randomGrid fills an h×w grid with roughly 25% walls and 15% hazards and
// picks start and goal among the traversable cells. Start may equal goal.
func randomGrid(rng *rand.Rand, h, w int) (*grid.Grid, grid.Position, grid.Position) {
	g, _ := grid.New(h, w, grid.Open)
	var free []grid.Position
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			p := grid.Position{Row: r, Col: c}
			switch x := rng.Float64(); {
			case x < 0.25:
				g.Set(p, grid.Wall)
			case x < 0.40:
				g.Set(p, grid.Hazard)
				free = append(free, p)
			default:
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		g.Set(grid.Position{}, grid.Open)
		free = append(free, grid.Position{})
	}
	return g, free[rng.Intn(len(free))], free[rng.Intn(len(free))]
}

// bruteForceCost enumerates every simple path from start to goal and returns
// the cheapest cost, or false when none exists.
func bruteForceCost(g *grid.Grid, start, goal grid.Position) (int, bool) {
	best := math.MaxInt
	onPath := map[grid.Position]bool{start: true}

	var walk func(p grid.Position, cost int)
	walk = func(p grid.Position, cost int) {
		if cost >= best {
			return
		}
		if p == goal {
			best = cost
			return
		}
		for _, nb := range g.Neighbors(p) {
			if onPath[nb.Pos] {
				continue
			}
			onPath[nb.Pos] = true
			walk(nb.Pos, cost+nb.Cost)
			delete(onPath, nb.Pos)
		}
	}
	walk(start, 0)

	return best, best != math.MaxInt
}
