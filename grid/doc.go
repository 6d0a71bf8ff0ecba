// Package grid treats a rectangular maze of typed cells as a 4-connected graph.
//
// What:
//
//   - Grid holds a Height×Width array of Kind values (Wall, Open, Hazard, ...).
//   - Neighbors enumerates traversable orthogonal neighbors with their step cost,
//     always in the order right, down, left, up.
//   - Manhattan is the admissible, consistent heuristic for this grid.
//   - Reachable / ReachableFrom answer connectivity questions by BFS, optionally
//     treating hazards as impassable.
//   - MarkPath / Overlay produce independent copies with a path or a set of
//     cells painted over; the source grid is never modified.
//
// Costs:
//
//   - Entering any non-Wall cell costs StepCost (1), except Hazard which costs
//     HazardCost (6 = 1 step + 5 penalty). Cost depends on the destination only.
//
// Complexity:
//
//   - Neighbors:     O(1).
//   - Reachable:     O(W×H), Memory: O(W×H).
//   - Clone/Overlay: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:      a dimension is smaller than one.
//   - ErrNonRectangular: Parse input rows of differing lengths.
//   - ErrUnknownSymbol:  Parse input contains a rune outside the alphabet.
//   - ErrOutOfBounds, ErrWallCell, ErrNotAdjacent, ErrEmptyPath: path validation.
package grid
