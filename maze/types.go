package maze

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors returned by Generate.
var (
	// ErrDimensions is returned when the grid has fewer than two carve cells
	// (odd interior coordinates), so no distinct start and goal exist.
	ErrDimensions = errors.New("maze: dimensions too small")

	// ErrNegativeRewards is returned for a negative reward count.
	ErrNegativeRewards = errors.New("maze: negative reward count")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")

	// ErrPhaseOrder reports a phase run out of order. It indicates a bug in
	// the generator, never bad input.
	ErrPhaseOrder = errors.New("maze: phase out of order")
)

// Defaults of the runnable program.
const (
	DefaultHeight  = 20
	DefaultWidth   = 80
	DefaultRewards = 5
)

// Phase is a generation stage. Phases advance strictly in declaration order.
type Phase int

const (
	Unopened Phase = iota
	SpanningTreeCarved
	Braided
	StartGoalFixed
	HazardsPlaced
	RewardsPlaced
	Final
)

var phaseNames = [...]string{
	Unopened:           "Unopened",
	SpanningTreeCarved: "SpanningTreeCarved",
	Braided:            "Braided",
	StartGoalFixed:     "StartGoalFixed",
	HazardsPlaced:      "HazardsPlaced",
	RewardsPlaced:      "RewardsPlaced",
	Final:              "Final",
}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Stats counts what each phase did.
type Stats struct {
	BraidedWalls     int  // walls opened by braiding
	EndpointAttempts int  // start/goal samples drawn
	CorridorFallback bool // true when a direct corridor joined start and goal
	HazardsPlaced    int
	HazardsRejected  int // conversions reverted because they cut start from goal
	RewardsPlaced    int
}

// Result is a finished maze.
type Result struct {
	Grid    *grid.Grid
	Start   grid.Position
	Goal    grid.Position
	Rewards []grid.Position // in placement order
	Stats   Stats
}

// Option configures Generate via functional arguments.
// An invalid value is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunables of one generation run.
type Options struct {
	// BraidChance is the probability of opening an eligible wall, in [0, 1].
	BraidChance float64

	// HazardChance is the probability of converting a candidate cell, in [0, 1].
	HazardChance float64

	// HazardDivisor caps hazards at Height*Width/HazardDivisor; must be ≥ 1.
	HazardDivisor int

	// EndpointAttempts bounds start/goal sampling before the corridor
	// fallback; must be ≥ 1.
	EndpointAttempts int

	// Logger receives phase diagnostics at Debug level.
	Logger logrus.FieldLogger

	err error
}

// DefaultOptions returns the stock tunables and a silent logger.
func DefaultOptions() Options {
	return Options{
		BraidChance:      0.4,
		HazardChance:     0.05,
		HazardDivisor:    40,
		EndpointAttempts: 50,
		Logger:           discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// WithBraidChance sets the braiding probability.
//
//	0 ≤ p ≤ 1: accepted; 0 keeps the perfect maze
//	otherwise: ErrOptionViolation
func WithBraidChance(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: BraidChance must be in [0,1] (%v)", ErrOptionViolation, p)
			return
		}
		o.BraidChance = p
	}
}

// WithHazardChance sets the per-cell hazard probability.
func WithHazardChance(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: HazardChance must be in [0,1] (%v)", ErrOptionViolation, p)
			return
		}
		o.HazardChance = p
	}
}

// WithHazardDivisor sets the area divisor of the hazard cap.
func WithHazardDivisor(d int) Option {
	return func(o *Options) {
		if d < 1 {
			o.err = fmt.Errorf("%w: HazardDivisor must be positive (%d)", ErrOptionViolation, d)
			return
		}
		o.HazardDivisor = d
	}
}

// WithEndpointAttempts sets how many start/goal pairs are sampled.
func WithEndpointAttempts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: EndpointAttempts must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.EndpointAttempts = n
	}
}

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
