// Package qubo - one-hot constraint encoder.
//
// Implements the standard binary quadratic expansion of (Σx − 1)²:
//
//	(Σx − 1)² = Σxᵢ + 2·Σ_{i<j} xᵢxⱼ − 2·Σxᵢ + 1   (using xᵢ² = xᵢ)
//
// dropped constant omitted. Each variable of a one-hot family receives
// −2·ConstraintConst on its diagonal, and every ordered pair drawn from the
// family (i = j included, reinforcing the diagonal) receives
// +ConstraintConst. On the canonical unordered keys this accumulates to
// −ConstraintConst per diagonal and +2·ConstraintConst per off-diagonal
// family pair, so a satisfied family contributes −ConstraintConst and any
// violation costs at least +ConstraintConst relative to it.
package qubo

import "github.com/katalvlaran/qroute/cvrp"

// Constraints encodes the two one-hot penalty families of p:
//
//  1. every non-depot destination is assigned to exactly one step across the
//     whole step range;
//  2. every step selects exactly one destination, the depot included
//     ("stay at the depot" is a legal selection).
//
// Both families accumulate additively into one fresh map; overlapping keys
// (e.g. a diagonal present in both families) sum rather than overwrite.
//
// Contracts: p must pass cvrp.Validate, opts must pass option validation.
//
// Errors: cvrp validation sentinels, ErrNonPositiveConst, ErrConstraintTooWeak.
//
// Complexity: O(L·S² + S·L²) time, S = p.Steps(), L = locations; the output
// holds the same order of entries.
func Constraints(p cvrp.Problem, opts Options) (QUBO, error) {
	// Stage 1: validation before any allocation.
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if err := cvrp.Validate(p); err != nil {
		return nil, err
	}

	var (
		q         = make(QUBO)
		c         = opts.ConstraintConst
		steps     = p.Steps()
		locations = p.Locations()
		family    []Var // scratch: variables of the current one-hot family
		dest      int
		step      int
	)
	family = make([]Var, 0, max(steps, locations))

	// Family 1: each non-depot destination visited exactly once over all steps.
	for dest = 0; dest < locations; dest++ {
		if dest == p.DepotIdx {
			continue // the depot may be "visited" any number of times
		}
		family = family[:0]
		for step = 0; step < steps; step++ {
			family = append(family, Var{Step: step, Dest: dest})
		}
		addOneHot(q, family, c)
	}

	// Family 2: each step assigned exactly one destination (depot included).
	for step = 0; step < steps; step++ {
		family = family[:0]
		for dest = 0; dest < locations; dest++ {
			family = append(family, Var{Step: step, Dest: dest})
		}
		addOneHot(q, family, c)
	}

	return q, nil
}

// addOneHot accumulates the (Σx − 1)² expansion of one family into q:
// −2c on every diagonal, +c on every ordered pair (i = j included).
// Complexity: O(n²) for a family of n variables.
func addOneHot(q QUBO, family []Var, c float64) {
	var i, j int
	for i = 0; i < len(family); i++ {
		q.Add(family[i], family[i], -2*c)
	}
	for i = 0; i < len(family); i++ {
		for j = 0; j < len(family); j++ {
			q.Add(family[i], family[j], c)
		}
	}
}
