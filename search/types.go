// Package search defines the strategy identifiers, the metrics record and the
// sentinel errors shared by every search strategy.
package search

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors returned by Solve.
var (
	// ErrContractViolation is the root of every precondition failure.
	// Test for it with errors.Is to catch all malformed-input cases.
	ErrContractViolation = errors.New("search: contract violation")

	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = fmt.Errorf("%w: grid is nil", ErrContractViolation)

	// ErrInvalidEndpoint indicates a start or goal outside the grid or on a Wall.
	ErrInvalidEndpoint = fmt.Errorf("%w: invalid endpoint", ErrContractViolation)

	// ErrUnknownStrategy indicates a Strategy value outside the closed set.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
)

// Strategy identifies one of the six search algorithms.
type Strategy int

const (
	// AStar expands by f = g + h, then g, then position; relaxes on strictly smaller g.
	AStar Strategy = iota
	// Dijkstra expands by g, then position; relaxes on strictly smaller g.
	Dijkstra
	// Greedy expands by h only; first discovery wins.
	Greedy
	// BestFirst expands by h + g/2; first discovery wins.
	BestFirst
	// DFS expands last-in first-out; first discovery wins.
	DFS
	// IDAStar runs depth-first searches under an increasing f bound.
	IDAStar
)

var strategyNames = [...]string{
	AStar:     "A*",
	Dijkstra:  "Dijkstra",
	Greedy:    "Greedy",
	BestFirst: "Best-First",
	DFS:       "DFS",
	IDAStar:   "IDA*",
}

// String returns the display name used in Metrics.Algorithm.
func (s Strategy) String() string {
	if s >= 0 && int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Strategies returns every strategy in a fixed order.
func Strategies() []Strategy {
	return []Strategy{AStar, Dijkstra, Greedy, BestFirst, DFS, IDAStar}
}

// ParseStrategy resolves a display name (case-insensitive) to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Metrics summarizes one search run. Values are derived by the collector;
// callers never build one by hand.
type Metrics struct {
	Found             bool          // a path from start to goal was returned
	TotalCost         int           // accumulated cost at goal; 0 when not found
	PathLength        int           // number of moves in the path; 0 when not found
	VisitedCount      int           // cells counted visited under the strategy's policy
	Elapsed           time.Duration // wall time spent in the search
	HeuristicDistance int           // Manhattan distance from start to goal
	Algorithm         string        // Strategy display name
}

// Report pairs one strategy with its outcome; produced by SolveAll.
type Report struct {
	Strategy Strategy
	Path     grid.Path
	Metrics  Metrics
}
