package search

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// solver is the contract shared by all six strategies. Inputs are validated
// by Solve before a solver runs.
type solver func(g *grid.Grid, start, goal grid.Position) (grid.Path, Metrics)

// solvers is the closed dispatch table, indexed by Strategy.
var solvers = [...]solver{
	AStar:     solveAStar,
	Dijkstra:  solveDijkstra,
	Greedy:    solveGreedy,
	BestFirst: solveBestFirst,
	DFS:       solveDFS,
	IDAStar:   solveIDAStar,
}

// Solve runs strategy s on g from start to goal.
//
// Returns:
//
//   - path:    start..goal inclusive, or nil when the goal is unreachable.
//   - metrics: always populated, including when no path exists.
//   - err:     ErrUnknownStrategy, or an error wrapping ErrContractViolation
//     (ErrNilGrid, ErrInvalidEndpoint) for malformed input.
//
// An unreachable goal is a normal outcome: path == nil, Found == false,
// err == nil. g is read-only for the duration of the call.
func Solve(s Strategy, g *grid.Grid, start, goal grid.Position) (grid.Path, Metrics, error) {
	if s < 0 || int(s) >= len(solvers) {
		return nil, Metrics{}, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	if err := validate(g, start, goal); err != nil {
		return nil, Metrics{}, err
	}

	path, m := solvers[s](g, start, goal)
	return path, m, nil
}

// SolveAll runs every strategy in Strategies() order on the same input.
func SolveAll(g *grid.Grid, start, goal grid.Position) ([]Report, error) {
	if err := validate(g, start, goal); err != nil {
		return nil, err
	}
	all := Strategies()
	out := make([]Report, 0, len(all))
	for _, s := range all {
		path, m := solvers[s](g, start, goal)
		out = append(out, Report{Strategy: s, Path: path, Metrics: m})
	}
	return out, nil
}

// validate enforces the preconditions shared by every strategy.
func validate(g *grid.Grid, start, goal grid.Position) error {
	if g == nil {
		return ErrNilGrid
	}
	for _, ep := range [...]struct {
		name string
		pos  grid.Position
	}{{"start", start}, {"goal", goal}} {
		if !g.InBounds(ep.pos) {
			return fmt.Errorf("%w: %s %v: %w", ErrInvalidEndpoint, ep.name, ep.pos, grid.ErrOutOfBounds)
		}
		if g.At(ep.pos) == grid.Wall {
			return fmt.Errorf("%w: %s %v: %w", ErrInvalidEndpoint, ep.name, ep.pos, grid.ErrWallCell)
		}
	}
	return nil
}
