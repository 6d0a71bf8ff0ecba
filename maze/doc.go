// Package maze generates rectangular grid mazes ready for the search package.
//
// Generation runs in fixed phases, each gated on the previous one:
//
//	Unopened → SpanningTreeCarved → Braided → StartGoalFixed →
//	HazardsPlaced → RewardsPlaced → Final
//
//  1. Carving: randomized Prim on odd interior coordinates. The frontier holds
//     (wall, far cell) pairs; a uniformly random pair is removed, and when the
//     far cell is still Wall both cells are opened. The result is a perfect
//     maze (a spanning tree) and the border stays Wall.
//  2. Braiding: each interior Wall with at least two Wall neighbors and one or
//     two Open neighbors is opened with probability BraidChance, adding loops.
//  3. Start/goal: two distinct Open cells, resampled until connected, with a
//     straight corridor as the last resort.
//  4. Hazards: Open cells are visited in random order and converted with
//     probability HazardChance, up to area/HazardDivisor. A hazard that would
//     cut start from goal (hazards treated as walls) is reverted and counted.
//  5. Rewards: up to N Open cells reachable from start.
//  6. Final: Start and Goal are written into the grid.
//
// Every random choice draws from the caller's *rand.Rand, so the same seed,
// dimensions and options reproduce the same maze.
//
// Example:
//
//	res, err := maze.Generate(21, 41, 5, maze.NewRNG(7))
//	if err != nil { ... }
//	path, m, _ := search.Solve(search.AStar, res.Grid, res.Start, res.Goal)
//
// Complexity: carving and braiding are O(H·W); hazard placement runs one
// O(H·W) reachability check per converted cell.
package maze
