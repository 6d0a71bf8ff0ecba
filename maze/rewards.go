package maze

import "github.com/katalvlaran/labyrinth/grid"

// placeRewards turns up to gen.rewards random Open cells into rewards. Only
// cells reachable from start (hazards passable) qualify; fewer are placed
// when fewer qualify.
func (gen *generator) placeRewards() {
	candidates := gen.openCandidates()
	shuffle(candidates, gen.rng)
	for _, p := range candidates {
		if len(gen.placed) >= gen.rewards {
			break
		}
		if !gen.grid.Reachable(gen.start, p, false) {
			continue
		}
		gen.grid.Set(p, grid.Reward)
		gen.placed = append(gen.placed, p)
	}
	gen.stats.RewardsPlaced = len(gen.placed)
}
