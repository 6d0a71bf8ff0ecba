package search

import "github.com/katalvlaran/labyrinth/grid"

// solveAStar runs A* with the Manhattan heuristic.
//
// Frontier: min-heap on (f = g+h, g, position).
// A neighbor is relaxed, and counted visited, only on a strictly smaller g.
// The goal test happens on pop, so the returned cost is optimal.
//
// Time: O(N log N), Memory: O(N), N = W×H.
func solveAStar(g *grid.Grid, start, goal grid.Position) (grid.Path, Metrics) {
	t := newTrace(AStar, start, goal)
	prev := make(map[grid.Position]grid.Position)

	var open openList
	open.push(start, 0, grid.Manhattan(start, goal), 0)
	for open.Len() > 0 {
		cur := open.pop()
		if cur.g > t.costs[cur.pos] {
			continue // stale entry superseded by a cheaper relaxation
		}
		if cur.pos == goal {
			return t.finish(reconstruct(prev, start, goal))
		}
		for _, nb := range g.Neighbors(cur.pos) {
			ng := cur.g + nb.Cost
			if old, seen := t.costs[nb.Pos]; seen && ng >= old {
				continue
			}
			t.visited.Put(nb.Pos)
			t.costs[nb.Pos] = ng
			prev[nb.Pos] = cur.pos
			open.push(nb.Pos, ng, ng+grid.Manhattan(nb.Pos, goal), ng)
		}
	}

	return t.finish(nil)
}

// solveDijkstra runs uniform-cost search.
//
// Frontier: min-heap on (g, position). Relaxation and visit accounting match
// solveAStar; only the priority key differs.
//
// Time: O(N log N), Memory: O(N).
func solveDijkstra(g *grid.Grid, start, goal grid.Position) (grid.Path, Metrics) {
	t := newTrace(Dijkstra, start, goal)
	prev := make(map[grid.Position]grid.Position)

	var open openList
	open.push(start, 0, 0, 0)
	for open.Len() > 0 {
		cur := open.pop()
		if cur.g > t.costs[cur.pos] {
			continue
		}
		if cur.pos == goal {
			return t.finish(reconstruct(prev, start, goal))
		}
		for _, nb := range g.Neighbors(cur.pos) {
			ng := cur.g + nb.Cost
			if old, seen := t.costs[nb.Pos]; seen && ng >= old {
				continue
			}
			t.visited.Put(nb.Pos)
			t.costs[nb.Pos] = ng
			prev[nb.Pos] = cur.pos
			open.push(nb.Pos, ng, ng, 0)
		}
	}

	return t.finish(nil)
}
