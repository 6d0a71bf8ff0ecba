// Package grid defines the cell alphabet, positions, cost constants and
// sentinel errors shared by search strategies and the maze generator.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates text rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownSymbol indicates a rune that maps to no cell kind.
	ErrUnknownSymbol = errors.New("grid: unknown cell symbol")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrWallCell indicates a position that lies on a Wall.
	ErrWallCell = errors.New("grid: position is a wall")
	// ErrNotAdjacent indicates two consecutive path positions that are not orthogonal neighbors.
	ErrNotAdjacent = errors.New("grid: consecutive path positions are not adjacent")
	// ErrEmptyPath indicates a path with no positions.
	ErrEmptyPath = errors.New("grid: path is empty")
)

// Movement costs. A step's cost depends only on the kind of the cell entered.
const (
	// StepCost is the cost of entering any traversable non-hazard cell.
	StepCost = 1
	// HazardPenalty is the surcharge for entering a Hazard.
	HazardPenalty = 5
	// HazardCost is the full cost of entering a Hazard.
	HazardCost = StepCost + HazardPenalty
	// KnockbackSteps is how many prior moves a player loses on stepping onto a
	// Hazard during interactive play. Search strategies never read it.
	KnockbackSteps = 5
)

// Kind is the type of a single grid cell.
type Kind uint8

// Cell kinds. Start, Goal and Reward are traversable like Open; SolutionMark,
// VisitedMark and Actor only appear on overlay copies.
const (
	Wall Kind = iota
	Open
	Start
	Goal
	Reward
	Hazard
	SolutionMark
	VisitedMark
	Actor
)

var kindNames = [...]string{
	Wall:         "Wall",
	Open:         "Open",
	Start:        "Start",
	Goal:         "Goal",
	Reward:       "Reward",
	Hazard:       "Hazard",
	SolutionMark: "SolutionMark",
	VisitedMark:  "VisitedMark",
	Actor:        "Actor",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Passable reports whether a cell of this kind can be entered.
func (k Kind) Passable() bool { return k != Wall }

// CostOf returns the cost of entering a cell of kind k.
// The result is meaningless for Wall, which can never be entered.
func CostOf(k Kind) int {
	if k == Hazard {
		return HazardCost
	}
	return StepCost
}

// Position is a (row, column) cell coordinate.
type Position struct {
	Row, Col int
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Less orders positions row-major; used to break priority ties.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Path is an ordered sequence of positions from start to goal.
type Path []Position

// Neighbor is a traversable orthogonal neighbor and the cost of stepping onto it.
type Neighbor struct {
	Pos  Position
	Cost int
}

// Grid is a rectangular array of cell kinds. Dimensions are fixed once built.
// Strategies treat a Grid as read-only; overlays work on Clone copies.
type Grid struct {
	Height, Width int
	cells         []Kind // row-major
}
