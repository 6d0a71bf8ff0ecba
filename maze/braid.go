package maze

import "github.com/katalvlaran/labyrinth/grid"

// braid opens interior walls at random to add loops to the perfect maze.
//
// A wall is eligible when it has at least two Wall neighbors and one or two
// Open neighbors. Requiring an Open neighbor keeps every opened cell attached
// to the carved region. Cells are scanned row-major and see earlier openings.
func (gen *generator) braid() {
	g := gen.grid
	for r := 1; r < g.Height-1; r++ {
		for c := 1; c < g.Width-1; c++ {
			p := grid.Position{Row: r, Col: c}
			if g.At(p) != grid.Wall {
				continue
			}
			walls, open := 0, 0
			for _, d := range directions {
				switch g.At(offset(p, d, 1)) {
				case grid.Wall:
					walls++
				case grid.Open:
					open++
				}
			}
			if walls >= 2 && open >= 1 && open <= 2 && chance(gen.rng, gen.opts.BraidChance) {
				g.Set(p, grid.Open)
				gen.stats.BraidedWalls++
			}
		}
	}
}
