package maze

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/grid"
)

// directions lists the unit moves in right, down, left, up order,
// the same order grid.Neighbors enumerates.
var directions = [4]grid.Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: -1, Col: 0}}

// generator carries the state of one Generate call across phases.
type generator struct {
	grid *grid.Grid
	rng  *rand.Rand
	opts Options
	log  logrus.FieldLogger

	phase   Phase
	rewards int // requested reward count

	start, goal grid.Position
	placed      []grid.Position
	stats       Stats
}

// Generate builds a height×width maze with up to rewards reward cells.
//
// rng is the only source of randomness; nil selects the NewRNG(0) stream.
// The returned grid holds exactly one Start and one Goal, a path between
// them that avoids hazards, and only rewards reachable from Start.
//
// Errors: ErrDimensions, ErrNegativeRewards, ErrOptionViolation.
func Generate(height, width, rewards int, rng *rand.Rand, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if height < 3 || width < 3 || carveRows(height)*carveRows(width) < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, height, width)
	}
	if rewards < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeRewards, rewards)
	}
	if rng == nil {
		rng = NewRNG(0)
	}

	g, err := grid.New(height, width, grid.Wall)
	if err != nil {
		return nil, err
	}
	gen := &generator{
		grid:    g,
		rng:     rng,
		opts:    o,
		log:     o.Logger.WithFields(logrus.Fields{"height": height, "width": width}),
		rewards: rewards,
	}

	steps := [...]struct {
		phase Phase
		run   func()
	}{
		{SpanningTreeCarved, gen.carve},
		{Braided, gen.braid},
		{StartGoalFixed, gen.pickEndpoints},
		{HazardsPlaced, gen.placeHazards},
		{RewardsPlaced, gen.placeRewards},
		{Final, gen.finalize},
	}
	for _, s := range steps {
		if err = gen.advance(s.phase, s.run); err != nil {
			return nil, err
		}
	}

	gen.log.WithFields(logrus.Fields{
		"start":             gen.start.String(),
		"goal":              gen.goal.String(),
		"braided_walls":     gen.stats.BraidedWalls,
		"endpoint_attempts": gen.stats.EndpointAttempts,
		"corridor_fallback": gen.stats.CorridorFallback,
		"hazards_placed":    gen.stats.HazardsPlaced,
		"hazards_rejected":  gen.stats.HazardsRejected,
		"rewards_placed":    gen.stats.RewardsPlaced,
	}).Debug("maze: generated")

	return &Result{
		Grid:    g,
		Start:   gen.start,
		Goal:    gen.goal,
		Rewards: gen.placed,
		Stats:   gen.stats,
	}, nil
}

// advance runs step as phase next. next must directly follow the current
// phase, otherwise ErrPhaseOrder is returned and step does not run.
func (gen *generator) advance(next Phase, step func()) error {
	if next != gen.phase+1 {
		return fmt.Errorf("%w: %s after %s", ErrPhaseOrder, next, gen.phase)
	}
	step()
	gen.phase = next
	gen.log.WithField("phase", next.String()).Debug("maze: phase complete")
	return nil
}

// carveRows counts odd coordinates strictly inside [0, n).
func carveRows(n int) int {
	if n < 3 {
		return 0
	}
	return (n - 1) / 2
}

// offset returns p moved k steps along d.
func offset(p, d grid.Position, k int) grid.Position {
	return grid.Position{Row: p.Row + k*d.Row, Col: p.Col + k*d.Col}
}

// openCandidates lists Open cells other than start and goal, row-major.
func (gen *generator) openCandidates() []grid.Position {
	cells := gen.grid.Cells(grid.Open)
	out := cells[:0]
	for _, p := range cells {
		if p != gen.start && p != gen.goal {
			out = append(out, p)
		}
	}
	return out
}

// finalize writes the endpoints into the grid.
func (gen *generator) finalize() {
	gen.grid.Set(gen.start, grid.Start)
	gen.grid.Set(gen.goal, grid.Goal)
}
