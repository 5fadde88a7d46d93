package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qroute/matrix"
	"github.com/katalvlaran/qroute/qubo"
)

// Sentinel errors returned by Solve and Decode.
var (
	// ErrNilSampler indicates that Solve was given a nil sampler.
	ErrNilSampler = errors.New("solver: nil sampler")

	// ErrNoSamples indicates that the sampler returned an empty sample set;
	// decode is not attempted and the solve call fails.
	ErrNoSamples = errors.New("solver: sampler returned no samples")

	// ErrUnknownModel indicates an Options.Model outside the declared enum.
	ErrUnknownModel = errors.New("solver: unknown model")

	// ErrInfeasibleSample is the umbrella decode error: the bit assignment
	// violates the one-hot structure of the variable space. The specific
	// violation sentinels below all match it via errors.Is.
	ErrInfeasibleSample = errors.New("solver: infeasible sample")
)

// Specific one-hot violations; each wraps ErrInfeasibleSample so callers can
// match either the umbrella or the precise condition via errors.Is.
var (
	// ErrStepUnassigned — a step selected no destination at all.
	ErrStepUnassigned = fmt.Errorf("%w: step has no selected destination", ErrInfeasibleSample)

	// ErrStepConflict — a step selected more than one destination.
	ErrStepConflict = fmt.Errorf("%w: step has multiple selected destinations", ErrInfeasibleSample)

	// ErrDestUnrouted — a non-depot destination was never selected.
	ErrDestUnrouted = fmt.Errorf("%w: destination not routed", ErrInfeasibleSample)

	// ErrDestRepeated — a non-depot destination was selected more than once.
	ErrDestRepeated = fmt.Errorf("%w: destination routed more than once", ErrInfeasibleSample)
)

// Sampler is the annealing boundary consumed by Solve.
//
// Sample receives the combined QUBO and returns one or more complete bit
// assignments over its variable space, ordered by the sampler's own notion
// of energy, best first. Solve only ever consumes the first assignment.
// Implementations must not mutate q.
type Sampler interface {
	Sample(q qubo.QUBO) ([]qubo.Assignment, error)
}

// Model selects the objective encoder used by Solve.
type Model int

const (
	// VRP encodes the plain routing objective (no capacity term).
	VRP Model = iota

	// CVRP adds the soft quadratic capacity penalty to the objective.
	CVRP
)

// String returns the canonical upper-case name of the model.
func (m Model) String() string {
	switch m {
	case VRP:
		return "VRP"
	case CVRP:
		return "CVRP"
	default:
		return "unknown"
	}
}

// Options configures Solve.
//
// Model           – objective variant (VRP or CVRP).
// Metric          – distance metric for the coordinate list.
// CostConst       – objective multiplier, forwarded to the encoders.
// ConstraintConst – one-hot penalty multiplier, forwarded to the encoders.
type Options struct {
	Model           Model         // objective variant
	Metric          matrix.Metric // pairwise distance metric
	CostConst       float64       // objective multiplier
	ConstraintConst float64       // constraint multiplier
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithModel selects the objective variant.
func WithModel(m Model) Option {
	return func(o *Options) {
		o.Model = m
	}
}

// WithMetric selects the distance metric.
func WithMetric(m matrix.Metric) Option {
	return func(o *Options) {
		o.Metric = m
	}
}

// WithCostConst overrides the objective multiplier.
func WithCostConst(c float64) Option {
	return func(o *Options) {
		o.CostConst = c
	}
}

// WithConstraintConst overrides the one-hot penalty multiplier.
func WithConstraintConst(c float64) Option {
	return func(o *Options) {
		o.ConstraintConst = c
	}
}

// DefaultOptions returns the canonical solve configuration: CVRP model,
// Euclidean metric, qubo default constants; optionally adjusted by
// functional options.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		Model:           CVRP,
		Metric:          matrix.Euclidean,
		CostConst:       qubo.DefaultCostConst,
		ConstraintConst: qubo.DefaultConstraintConst,
	}

	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return o
}
