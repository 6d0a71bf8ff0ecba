package maze

import "github.com/katalvlaran/labyrinth/grid"

// placeHazards converts random Open cells into hazards.
//
// Candidates exclude start and goal and are visited in shuffled order. Each
// converts with HazardChance until Height*Width/HazardDivisor are placed. A
// conversion that disconnects start from goal, with hazards as walls, is
// reverted and counted in Stats.HazardsRejected.
func (gen *generator) placeHazards() {
	g := gen.grid
	limit := g.Height * g.Width / gen.opts.HazardDivisor

	candidates := gen.openCandidates()
	shuffle(candidates, gen.rng)
	for _, p := range candidates {
		if gen.stats.HazardsPlaced >= limit {
			break
		}
		if !chance(gen.rng, gen.opts.HazardChance) {
			continue
		}
		g.Set(p, grid.Hazard)
		if !g.Reachable(gen.start, gen.goal, true) {
			g.Set(p, grid.Open)
			gen.stats.HazardsRejected++
			continue
		}
		gen.stats.HazardsPlaced++
	}
}
