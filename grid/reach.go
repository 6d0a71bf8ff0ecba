package grid

import "github.com/zyedidia/generic/mapset"

// passable reports whether the cell at p may be entered under the hazard policy.
func (g *Grid) passable(p Position, hazardsAsWalls bool) bool {
	k := g.At(p)
	if k == Wall {
		return false
	}
	return !(hazardsAsWalls && k == Hazard)
}

// Reachable reports whether to can be reached from from by orthogonal moves.
// With hazardsAsWalls, Hazard cells block movement like Walls.
//
// The source cell itself is never tested, so a search may leave a Hazard it
// stands on; every other cell entered, including to, must be passable.
// from == to is always reachable.
//
// Time: O(W×H), Memory: O(W×H).
func (g *Grid) Reachable(from, to Position, hazardsAsWalls bool) bool {
	if from == to {
		return true
	}
	if !g.InBounds(from) || !g.InBounds(to) {
		return false
	}

	seen := mapset.New[Position]()
	seen.Put(from)
	queue := []Position{from}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range offsets {
			v := Position{Row: u.Row + d.Row, Col: u.Col + d.Col}
			if !g.InBounds(v) || seen.Has(v) || !g.passable(v, hazardsAsWalls) {
				continue
			}
			if v == to {
				return true
			}
			seen.Put(v)
			queue = append(queue, v)
		}
	}
	return false
}

// ReachableFrom returns every position reachable from from, from included,
// under the same rules as Reachable.
//
// Time: O(W×H), Memory: O(W×H).
func (g *Grid) ReachableFrom(from Position, hazardsAsWalls bool) mapset.Set[Position] {
	seen := mapset.New[Position]()
	if !g.InBounds(from) {
		return seen
	}
	seen.Put(from)
	queue := []Position{from}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range offsets {
			v := Position{Row: u.Row + d.Row, Col: u.Col + d.Col}
			if !g.InBounds(v) || seen.Has(v) || !g.passable(v, hazardsAsWalls) {
				continue
			}
			seen.Put(v)
			queue = append(queue, v)
		}
	}
	return seen
}
