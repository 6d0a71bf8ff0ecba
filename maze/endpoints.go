package maze

import "github.com/katalvlaran/labyrinth/grid"

// pickEndpoints samples two distinct Open cells until they are connected
// (hazards count as open, none exist yet). After EndpointAttempts failures it
// samples once more and carves a direct corridor between the pair.
func (gen *generator) pickEndpoints() {
	open := gen.grid.Cells(grid.Open)
	for i := 0; i < gen.opts.EndpointAttempts; i++ {
		gen.stats.EndpointAttempts++
		a, b := gen.samplePair(open)
		if gen.grid.Reachable(a, b, false) {
			gen.start, gen.goal = a, b
			return
		}
	}

	gen.start, gen.goal = gen.samplePair(open)
	gen.carveCorridor(gen.start, gen.goal)
	gen.stats.CorridorFallback = true
	gen.log.WithField("attempts", gen.stats.EndpointAttempts).Debug("maze: endpoints joined by corridor")
}

// samplePair draws two distinct cells uniformly; len(cells) must be ≥ 2.
func (gen *generator) samplePair(cells []grid.Position) (grid.Position, grid.Position) {
	i := gen.rng.Intn(len(cells))
	j := gen.rng.Intn(len(cells) - 1)
	if j >= i {
		j++
	}
	return cells[i], cells[j]
}

// carveCorridor opens a's row across the column span, then b's column across
// the row span.
func (gen *generator) carveCorridor(a, b grid.Position) {
	for c := min(a.Col, b.Col); c <= max(a.Col, b.Col); c++ {
		gen.grid.Set(grid.Position{Row: a.Row, Col: c}, grid.Open)
	}
	for r := min(a.Row, b.Row); r <= max(a.Row, b.Row); r++ {
		gen.grid.Set(grid.Position{Row: r, Col: b.Col}, grid.Open)
	}
}
