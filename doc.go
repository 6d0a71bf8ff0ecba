// Package labyrinth generates grid mazes and compares path-search strategies
// on them.
//
// Packages:
//
//   - grid:   the cell model, costs, neighbors, Manhattan heuristic,
//     reachability, path overlay and validation, ASCII form.
//   - search: A*, Dijkstra, Greedy, Best-First, DFS and IDA* behind one
//     Solve call, each reporting uniform Metrics.
//   - maze:   seeded randomized-Prim generator with braiding, hazards and
//     rewards.
//   - config: environment and .env settings for the runnable programs.
//
// Quick start:
//
//	res, _ := maze.Generate(21, 41, 5, maze.NewRNG(7))
//	reports, _ := search.SolveAll(res.Grid, res.Start, res.Goal)
//	for _, r := range reports {
//		fmt.Println(r.Metrics.Algorithm, r.Metrics.TotalCost, r.Metrics.VisitedCount)
//	}
//
// Costs: entering a Hazard costs 6 (one step plus a penalty of 5), entering
// any other traversable cell costs 1. Walls are never entered.
//
// Runnable program: examples/compare_strategies.
package labyrinth
