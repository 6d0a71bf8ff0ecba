package search

import (
	"math"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/grid"
)

// frame is one DFS stack entry: a cell and the path that discovered it.
type frame struct {
	pos  grid.Position
	path grid.Path
}

// solveDFS runs depth-first search with an explicit LIFO stack.
//
// Neighbors are pushed in right, down, left, up order, so up is expanded
// first. A cell is counted visited when pushed and never pushed twice.
// The path is neither shortest nor cheapest in general.
//
// Time: O(N), Memory: O(N·L) for the carried paths, L = path length.
func solveDFS(g *grid.Grid, start, goal grid.Position) (grid.Path, Metrics) {
	t := newTrace(DFS, start, goal)

	stack := []frame{{pos: start, path: grid.Path{start}}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.pos == goal {
			return t.finish(top.path)
		}
		for _, nb := range g.Neighbors(top.pos) {
			if t.visited.Has(nb.Pos) {
				continue
			}
			t.visited.Put(nb.Pos)
			t.costs[nb.Pos] = t.costs[top.pos] + nb.Cost
			stack = append(stack, frame{
				pos:  nb.Pos,
				path: append(slices.Clip(top.path), nb.Pos),
			})
		}
	}

	return t.finish(nil)
}

// unbounded marks an IDA* iteration that pruned nothing.
const unbounded = math.MaxInt

// idaWalker holds the state of one IDA* run.
type idaWalker struct {
	grid *grid.Grid
	goal grid.Position
	tr   *trace

	path   grid.Path                 // current branch, root first
	onPath mapset.Set[grid.Position] // cells of path, for O(1) cycle checks
	best   map[grid.Position]int     // cheapest g entered this iteration

	solution grid.Path
	goalCost int
}

// solveIDAStar runs iterative-deepening A*.
//
// The bound starts at h(start). Each iteration is a depth-first search that
// prunes any cell with f = g+h above the bound and reports the smallest
// pruned f, which becomes the next bound. Cells are expanded once per
// iteration at their cheapest g; a cheaper branch still re-enters them.
//
// Time: O(I·N) for I iterations, Memory: O(N).
func solveIDAStar(g *grid.Grid, start, goal grid.Position) (grid.Path, Metrics) {
	w := &idaWalker{
		grid:   g,
		goal:   goal,
		tr:     newTrace(IDAStar, start, goal),
		onPath: mapset.New[grid.Position](),
	}

	bound := grid.Manhattan(start, goal)
	for {
		w.best = make(map[grid.Position]int)
		next := w.search(start, 0, bound)
		if w.solution != nil {
			w.tr.costs[goal] = w.goalCost
			return w.tr.finish(w.solution)
		}
		if next == unbounded {
			return w.tr.finish(nil)
		}
		bound = next
	}
}

// enter pushes p onto the current branch and returns the matching pop.
// Callers defer the release so siblings never see each other's markers.
func (w *idaWalker) enter(p grid.Position) (release func()) {
	w.onPath.Put(p)
	w.path = append(w.path, p)

	return func() {
		w.path = w.path[:len(w.path)-1]
		w.onPath.Remove(p)
	}
}

// search explores p at cost g under bound. It returns f of p when pruned,
// otherwise the minimum pruned f below p, or unbounded.
func (w *idaWalker) search(p grid.Position, g, bound int) int {
	f := g + grid.Manhattan(p, w.goal)
	if f > bound {
		return f
	}
	defer w.enter(p)()

	w.tr.visited.Put(p)
	if p == w.goal {
		w.solution = slices.Clone(w.path)
		w.goalCost = g
		return f
	}
	w.best[p] = g

	lowest := unbounded
	for _, nb := range w.grid.Neighbors(p) {
		if w.onPath.Has(nb.Pos) {
			continue
		}
		ng := g + nb.Cost
		if seen, ok := w.best[nb.Pos]; ok && ng >= seen {
			continue
		}
		sub := w.search(nb.Pos, ng, bound)
		if w.solution != nil {
			return sub
		}
		if sub < lowest {
			lowest = sub
		}
	}
	return lowest
}
