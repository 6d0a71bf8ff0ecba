package search

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/grid"
)

// collect builds the Metrics record for one run from its raw trace.
// TotalCost is costs[goal] only when a path was found; HeuristicDistance is
// always measured between the requested start and goal.
func collect(
	path grid.Path,
	costs map[grid.Position]int,
	visited mapset.Set[grid.Position],
	began, ended time.Time,
	start, goal grid.Position,
	s Strategy,
) Metrics {
	m := Metrics{
		Found:             path != nil,
		VisitedCount:      visited.Size(),
		Elapsed:           ended.Sub(began),
		HeuristicDistance: grid.Manhattan(start, goal),
		Algorithm:         s.String(),
	}
	if path != nil {
		m.TotalCost = costs[goal]
		m.PathLength = len(path) - 1
	}
	return m
}

// trace is the mutable bookkeeping every strategy accumulates while running.
type trace struct {
	strategy    Strategy
	start, goal grid.Position
	began       time.Time
	costs       map[grid.Position]int     // accumulated cost per position
	visited     mapset.Set[grid.Position] // visited under the strategy's policy
}

// newTrace starts the clock and seeds start as visited with cost 0.
func newTrace(s Strategy, start, goal grid.Position) *trace {
	t := &trace{
		strategy: s,
		start:    start,
		goal:     goal,
		began:    time.Now(),
		costs:    map[grid.Position]int{start: 0},
		visited:  mapset.New[grid.Position](),
	}
	t.visited.Put(start)
	return t
}

// finish stops the clock and returns path together with its metrics.
// A nil path means the frontier was exhausted.
func (t *trace) finish(path grid.Path) (grid.Path, Metrics) {
	return path, collect(path, t.costs, t.visited, t.began, time.Now(), t.start, t.goal, t.strategy)
}

// reconstruct walks predecessor links back from goal and reverses them.
func reconstruct(prev map[grid.Position]grid.Position, start, goal grid.Position) grid.Path {
	path := grid.Path{goal}
	for at := goal; at != start; {
		at = prev[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
