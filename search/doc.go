// Package search finds paths through a grid.Grid with six classic strategies
// and reports uniform metrics for each run.
//
// Strategies:
//
//	| Strategy   | Frontier           | Priority key        | Revisit policy            | Optimal |
//	|------------|--------------------|---------------------|---------------------------|---------|
//	| AStar      | min-heap           | (g+h, g, position)  | relax on smaller g        | yes     |
//	| Dijkstra   | min-heap           | (g, position)       | relax on smaller g        | yes     |
//	| Greedy     | min-heap           | (h, position)       | first discovery wins      | no      |
//	| BestFirst  | min-heap           | (h + g/2, position) | first discovery wins      | no      |
//	| DFS        | LIFO stack         | insertion order     | first discovery wins      | no      |
//	| IDAStar    | bounded recursion  | g+h vs. bound       | per-branch, undone on pop | yes     |
//
// h is grid.Manhattan to the goal; g is the accumulated step cost, where
// entering a Hazard costs 6 and any other traversable cell costs 1.
//
// Visit accounting differs on purpose and is part of the reported metrics:
// AStar and Dijkstra count a cell when it is relaxed, Greedy, BestFirst and
// DFS count it when first discovered, IDAStar counts every cell it expands
// in any iteration. The start cell is always counted.
//
// API:
//
//	path, m, err := search.Solve(search.AStar, g, start, goal)
//	reports, err := search.SolveAll(g, start, goal)
//
// Errors:
//
//   - ErrNilGrid, ErrInvalidEndpoint: both wrap ErrContractViolation.
//   - ErrUnknownStrategy: a Strategy outside the closed set.
//
// An unreachable goal is not an error: the path is nil and Metrics.Found is false.
//
// Thread safety: a Grid may be searched concurrently by several goroutines as
// long as nobody mutates it; each call keeps its own state.
package search
