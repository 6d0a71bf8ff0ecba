package search

import (
	"container/heap"

	"github.com/katalvlaran/labyrinth/grid"
)

// node is one frontier entry. Entries are ordered by (primary, secondary),
// then by position row-major, then by insertion sequence.
type node struct {
	pos       grid.Position
	g         int // cost from start when pushed
	primary   int
	secondary int
	seq       int
}

// nodePQ is a min-heap of *node. Like the lazy decrease-key heaps of the
// shortest-path strategies, stale duplicates stay in the heap and are skipped
// by the caller on pop.
type nodePQ []*node

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.primary != b.primary {
		return a.primary < b.primary
	}
	if a.secondary != b.secondary {
		return a.secondary < b.secondary
	}
	if a.pos != b.pos {
		return a.pos.Less(b.pos)
	}
	return a.seq < b.seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be *node.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*node)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// openList wraps nodePQ with the insertion counter used as the final tie-break.
type openList struct {
	pq  nodePQ
	seq int
}

func (o *openList) push(pos grid.Position, g, primary, secondary int) {
	o.seq++
	heap.Push(&o.pq, &node{pos: pos, g: g, primary: primary, secondary: secondary, seq: o.seq})
}

func (o *openList) pop() *node { return heap.Pop(&o.pq).(*node) }

func (o *openList) Len() int { return o.pq.Len() }
