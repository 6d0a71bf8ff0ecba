package search

import "github.com/katalvlaran/labyrinth/grid"

// priorityFunc ranks a discovered cell from its heuristic h and cost g.
type priorityFunc func(h, g int) int

// greedyPriority ignores cost entirely.
func greedyPriority(h, _ int) int { return h }

// hybridPriority orders by h + g/2, compared exactly as 2h + g.
// The blend favors the heuristic and is not optimal; keep it as is.
func hybridPriority(h, g int) int { return 2*h + g }

// solveGreedy runs greedy best-first search ordered by h alone.
func solveGreedy(g *grid.Grid, start, goal grid.Position) (grid.Path, Metrics) {
	return firstDiscovery(Greedy, greedyPriority, g, start, goal)
}

// solveBestFirst runs the heuristic/cost hybrid ordered by h + g/2.
func solveBestFirst(g *grid.Grid, start, goal grid.Position) (grid.Path, Metrics) {
	return firstDiscovery(BestFirst, hybridPriority, g, start, goal)
}

// firstDiscovery is the shared loop of Greedy and Best-First.
//
// A cell is counted visited when first pushed (discovery), not when popped,
// and is never relaxed afterwards: the first parent wins. g is carried along
// that discovery tree, so costs[goal] is the real cost of the returned path.
//
// Time: O(N log N), Memory: O(N).
func firstDiscovery(s Strategy, rank priorityFunc, g *grid.Grid, start, goal grid.Position) (grid.Path, Metrics) {
	t := newTrace(s, start, goal)
	prev := make(map[grid.Position]grid.Position)

	var open openList
	open.push(start, 0, rank(grid.Manhattan(start, goal), 0), 0)
	for open.Len() > 0 {
		cur := open.pop()
		if cur.pos == goal {
			return t.finish(reconstruct(prev, start, goal))
		}
		for _, nb := range g.Neighbors(cur.pos) {
			if t.visited.Has(nb.Pos) {
				continue
			}
			t.visited.Put(nb.Pos)
			prev[nb.Pos] = cur.pos
			ng := t.costs[cur.pos] + nb.Cost
			t.costs[nb.Pos] = ng
			open.push(nb.Pos, ng, rank(grid.Manhattan(nb.Pos, goal), ng), 0)
		}
	}

	return t.finish(nil)
}
