// Package qubo - objective encoders (routing cost, capacity penalty).
//
// Both encoders share validateInputs (problem + distance matrix + constants)
// and a routing-cost core; CVRPObjective layers the soft capacity penalty on
// top. Deterministic, side-effect free, sentinel errors only.
package qubo

import (
	"github.com/katalvlaran/qroute/cvrp"
	"github.com/katalvlaran/qroute/matrix"
)

// VRPObjective encodes the travel-distance objective of p over dist.
//
// For each vehicle block [first..last] of MaxDeliveries steps:
//
//   - every adjacent step pair (s, s+1) and destination pair (d1, d2) gets
//     dist[d1][d2]·CostConst on the cross pair ((s,d1),(s+1,d2)) — the
//     transition cost between consecutively visited destinations;
//   - every destination d gets dist[depot][d]·CostConst on the diagonal of
//     (first, d) — the depot→first-stop leg as a linear term (x² = x) — and
//     dist[d][depot]·CostConst on the diagonal of (last, d) for the
//     last-stop→depot leg.
//
// The transition terms only model actual travel in combination with the
// one-hot Constraints that force exactly one destination per step.
//
// Contracts:
//   - p must pass cvrp.Validate; dist must pass matrix.ValidateDistances and
//     have order len(p.Coords).
//   - opts must pass validation (positive, dominant ConstraintConst).
//
// Errors: cvrp/matrix validation sentinels, ErrNilDistances,
// ErrDimensionMismatch, ErrNonPositiveConst, ErrConstraintTooWeak.
//
// Complexity: O(NumVehicles·MaxDeliveries·L²) time; output holds the same
// order of entries.
func VRPObjective(p cvrp.Problem, dist matrix.Matrix, opts Options) (QUBO, error) {
	// Stage 1: unified validation before any combinatorial work.
	locations, err := validateInputs(p, dist, opts)
	if err != nil {
		return nil, err
	}

	// Stage 2: per-block accumulation into a fresh map.
	var (
		q       = make(QUBO)
		vehicle int
		first   int // first step of the current block
		last    int // last step of the current block
		step    int
		d1, d2  int
		w       float64
	)
	for vehicle = 0; vehicle < p.NumVehicles; vehicle++ {
		first = vehicle * p.MaxDeliveries
		last = first + p.MaxDeliveries - 1

		// Transition cost between consecutive steps of the block.
		for step = first; step < last; step++ {
			for d1 = 0; d1 < locations; d1++ {
				for d2 = 0; d2 < locations; d2++ {
					w, err = dist.At(d1, d2)
					if err != nil {
						return nil, ErrDimensionMismatch
					}
					q.Add(Var{Step: step, Dest: d1}, Var{Step: step + 1, Dest: d2}, w*opts.CostConst)
				}
			}
		}

		// Depot ingress (block's first step) and egress (block's last step)
		// as diagonal linear terms.
		for d1 = 0; d1 < locations; d1++ {
			w, err = dist.At(p.DepotIdx, d1)
			if err != nil {
				return nil, ErrDimensionMismatch
			}
			q.Add(Var{Step: first, Dest: d1}, Var{Step: first, Dest: d1}, w*opts.CostConst)

			w, err = dist.At(d1, p.DepotIdx)
			if err != nil {
				return nil, ErrDimensionMismatch
			}
			q.Add(Var{Step: last, Dest: d1}, Var{Step: last, Dest: d1}, w*opts.CostConst)
		}
	}

	return q, nil
}

// CVRPObjective encodes the capacitated objective: VRPObjective plus a soft
// quadratic capacity penalty.
//
// For every unordered pair of distinct non-depot destinations (d1, d2) and
// every unordered pair of distinct steps (s1, s2) within the same vehicle
// block, both cross pairs ((s1,d1),(s2,d2)) and ((s1,d2),(s2,d1)) receive
// CostConst·Demands[d1]·Demands[d2]/VehicleCapacity².
//
// Rationale: co-occurrence of two high-demand destinations on one vehicle is
// penalized proportionally to the product of their demands normalized by
// capacity squared. This is a soft surrogate — it biases the annealer away
// from overloaded assignments but does not hard-enforce the capacity bound,
// and decoded routes are NOT checked against VehicleCapacity (see the
// formulation notes in DESIGN.md).
//
// Contracts and errors: as VRPObjective.
//
// Complexity: O(NumVehicles·MaxDeliveries²·L²) time.
func CVRPObjective(p cvrp.Problem, dist matrix.Matrix, opts Options) (QUBO, error) {
	// Stage 1: routing core (also performs all validation).
	q, err := VRPObjective(p, dist, opts)
	if err != nil {
		return nil, err
	}

	// Stage 2: capacity penalty per vehicle block.
	var (
		locations = p.Locations()
		capSq     = float64(p.VehicleCapacity) * float64(p.VehicleCapacity)
		vehicle   int
		first     int
		last      int
		d1, d2    int
		s1, s2    int
		w         float64
	)
	for vehicle = 0; vehicle < p.NumVehicles; vehicle++ {
		first = vehicle * p.MaxDeliveries
		last = first + p.MaxDeliveries - 1

		for d1 = 0; d1 < locations; d1++ {
			if d1 == p.DepotIdx {
				continue // depot has no demand
			}
			for d2 = d1 + 1; d2 < locations; d2++ {
				if d2 == p.DepotIdx {
					continue
				}
				w = opts.CostConst * float64(p.Demands[d1]) * float64(p.Demands[d2]) / capSq
				if w == 0 {
					continue // zero-demand pair contributes nothing
				}
				for s1 = first; s1 <= last; s1++ {
					for s2 = s1 + 1; s2 <= last; s2++ {
						q.Add(Var{Step: s1, Dest: d1}, Var{Step: s2, Dest: d2}, w)
						q.Add(Var{Step: s1, Dest: d2}, Var{Step: s2, Dest: d1}, w)
					}
				}
			}
		}
	}

	return q, nil
}

// validateInputs verifies problem + distance matrix + constants and returns
// the location count on success. All validation happens here, before any
// encoder allocates its accumulator.
//
// Complexity: O(L²) (distance matrix scan dominates).
func validateInputs(p cvrp.Problem, dist matrix.Matrix, opts Options) (int, error) {
	// Stage 1: constants.
	if err := validateOptions(opts); err != nil {
		return 0, err
	}

	// Stage 2: problem structure.
	if err := cvrp.Validate(p); err != nil {
		return 0, err
	}

	// Stage 3: distance matrix shape and values.
	if dist == nil {
		return 0, ErrNilDistances
	}
	if err := matrix.ValidateDistances(dist); err != nil {
		return 0, err
	}
	locations := p.Locations()
	if dist.Rows() != locations {
		return 0, ErrDimensionMismatch
	}

	return locations, nil
}
