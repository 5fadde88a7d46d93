package qubo

import "errors"

// Sentinel errors returned by the encoders and option validation.
var (
	// ErrNilDistances indicates that a nil distance matrix was supplied.
	ErrNilDistances = errors.New("qubo: nil distance matrix")

	// ErrDimensionMismatch indicates that the distance matrix order does not
	// match the problem's location count.
	ErrDimensionMismatch = errors.New("qubo: distance matrix does not match problem size")

	// ErrNonPositiveConst indicates a zero or negative encoding constant.
	ErrNonPositiveConst = errors.New("qubo: encoding constants must be positive")

	// ErrConstraintTooWeak indicates ConstraintConst <= CostConst, an ordering
	// under which constraint violations may become energetically favorable.
	ErrConstraintTooWeak = errors.New("qubo: constraint constant must exceed cost constant")
)

// Default encoding constants. The constraint multiplier must dwarf the cost
// multiplier so that no distance saving can pay for a one-hot violation.
const (
	// DefaultCostConst is the default objective (distance) multiplier.
	DefaultCostConst = 1.0

	// DefaultConstraintConst is the default one-hot penalty multiplier.
	DefaultConstraintConst = 1e7
)

// Var is a binary decision variable: "destination Dest is visited at Step".
// Step ∈ [0..NumVehicles*MaxDeliveries), Dest ∈ [0..Locations).
type Var struct {
	Step int // route slot index across all vehicles
	Dest int // location index, depot included
}

// Pair is a canonical unordered pair of variables: A ≤ B under (Step, Dest)
// lexicographic order. The diagonal pair (v, v) carries the linear term of v.
// Build pairs with NewPair; never construct them by hand in new code.
type Pair struct {
	A, B Var
}

// NewPair returns the canonical Pair for the unordered variable pair {a, b}.
// Complexity: O(1).
func NewPair(a, b Var) Pair {
	if less(b, a) {
		a, b = b, a
	}

	return Pair{A: a, B: b}
}

// less orders variables lexicographically by (Step, Dest).
// Complexity: O(1).
func less(a, b Var) bool {
	if a.Step != b.Step {
		return a.Step < b.Step
	}

	return a.Dest < b.Dest
}

// QUBO is a sparse symmetric quadratic form over binary variables, keyed by
// canonical unordered pairs. Absent pairs denote coefficient zero; entries
// are additive across derivations (see Add).
type QUBO map[Pair]float64

// Add accumulates w into the coefficient of the unordered pair {a, b}.
// Contributions from both orderings of a cross pair land on the same
// canonical key and sum, matching the sampler-side convention of summing
// (i, j) and (j, i) entries.
// Complexity: O(1) amortized.
func (q QUBO) Add(a, b Var, w float64) {
	q[NewPair(a, b)] += w
}

// At returns the coefficient of the unordered pair {a, b}, zero when absent.
// Complexity: O(1).
func (q QUBO) At(a, b Var) float64 {
	return q[NewPair(a, b)]
}

// Assignment maps every variable of a QUBO to a bit value {0, 1}.
// Samplers return assignments ordered best-first by their own energy notion.
type Assignment map[Var]int

// Options holds the encoding constants shared by all encoders.
//
// CostConst       – multiplier for objective (distance, capacity) terms.
// ConstraintConst – multiplier for one-hot penalty terms; must exceed
// CostConst (and, in practice, the largest distance·CostConst product).
type Options struct {
	CostConst       float64 // objective multiplier (B in the literature)
	ConstraintConst float64 // constraint multiplier (A in the literature)
}

// Option is a functional option for configuring encoders.
type Option func(*Options)

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

// DefaultOptions returns the canonical constant set (CostConst 1,
// ConstraintConst 1e7), optionally adjusted by functional options.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		CostConst:       DefaultCostConst,
		ConstraintConst: DefaultConstraintConst,
	}

	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return o
}

// validateOptions rejects constant sets under which the encoding is
// meaningless (non-positive multipliers) or unsafe (constraints that do not
// dominate the objective scale at all).
// Complexity: O(1).
func validateOptions(o Options) error {
	if o.CostConst <= 0 || o.ConstraintConst <= 0 {
		return ErrNonPositiveConst
	}
	if o.ConstraintConst <= o.CostConst {
		return ErrConstraintTooWeak
	}

	return nil
}

// Energy evaluates the quadratic form of q at assignment a:
// Σ over canonical pairs of Q[{u,v}]·x_u·x_v, the diagonal contributing the
// linear term (x² = x). Variables absent from a are treated as zero.
// Complexity: O(|q|).
func Energy(q QUBO, a Assignment) float64 {
	var (
		sum float64
		p   Pair
		w   float64
	)
	for p, w = range q {
		if a[p.A] == 0 || a[p.B] == 0 {
			continue
		}
		sum += w
	}

	return sum
}
