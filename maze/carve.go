package maze

import (
	"slices"

	"github.com/katalvlaran/labyrinth/grid"
)

// frontierWall is a wall between a carved cell and a not-yet-carved one.
type frontierWall struct {
	wall, far grid.Position
}

// isCarveCell reports whether p has odd coordinates strictly inside the border.
func (gen *generator) isCarveCell(p grid.Position) bool {
	return p.Row >= 1 && p.Row <= gen.grid.Height-2 &&
		p.Col >= 1 && p.Col <= gen.grid.Width-2 &&
		p.Row%2 == 1 && p.Col%2 == 1
}

// carve grows a spanning tree over the carve cells with randomized Prim.
//
// Steps:
//  1. Open a random carve cell and push its frontier walls.
//  2. Remove a uniformly random frontier entry.
//  3. If its far cell is still Wall, open the wall and the far cell and push
//     the far cell's frontier walls.
//  4. Repeat until the frontier is empty.
//
// Every carve cell ends up Open and connected by exactly one route.
func (gen *generator) carve() {
	first := grid.Position{
		Row: 1 + 2*gen.rng.Intn(carveRows(gen.grid.Height)),
		Col: 1 + 2*gen.rng.Intn(carveRows(gen.grid.Width)),
	}
	gen.grid.Set(first, grid.Open)

	var frontier []frontierWall
	push := func(p grid.Position) {
		for _, d := range directions {
			if far := offset(p, d, 2); gen.isCarveCell(far) {
				frontier = append(frontier, frontierWall{wall: offset(p, d, 1), far: far})
			}
		}
	}
	push(first)

	for len(frontier) > 0 {
		i := gen.rng.Intn(len(frontier))
		fw := frontier[i]
		frontier = slices.Delete(frontier, i, i+1)
		if gen.grid.At(fw.far) != grid.Wall {
			continue
		}
		gen.grid.Set(fw.wall, grid.Open)
		gen.grid.Set(fw.far, grid.Open)
		push(fw.far)
	}
}
