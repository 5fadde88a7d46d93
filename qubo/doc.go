// Package qubo builds the Quadratic Unconstrained Binary Optimization form
// of a (C)VRP instance: a sparse symmetric coefficient map over binary
// decision variables, ready to hand to an annealing-style sampler.
//
// Variable space:
//
//	A variable Var{Step, Dest} means "the vehicle owning Step visits Dest at
//	that slot". Steps run 0..NumVehicles*MaxDeliveries-1 and partition into
//	contiguous blocks of MaxDeliveries, one block per vehicle, in increasing
//	order. Dest ranges over all location indices, depot included ("stay at
//	the depot").
//
// Coefficient map:
//
//	A QUBO maps a canonical unordered pair of variables to a float64
//	coefficient. The diagonal pair (v, v) carries the linear term, using the
//	binary identity x² = x. Entries are strictly additive: every encoder
//	contribution sums into the pair's coefficient, and an absent pair means
//	zero. Each encoder returns its own fresh accumulator; Combine merges
//	accumulators by addition — no shared mutable map anywhere.
//
// Encoders:
//
//   - VRPObjective  — travel-distance cost between consecutive steps of each
//     vehicle block plus depot ingress/egress diagonal terms.
//   - CVRPObjective — VRPObjective plus a soft quadratic capacity penalty
//     proportional to demand[d1]·demand[d2]/capacity² for co-occurring
//     destinations within one block. It biases the search away from
//     overloaded vehicles; it does NOT hard-enforce the capacity bound.
//   - Constraints   — one-hot penalties via the expansion
//     (Σx−1)² = Σx + 2·Σ_{i<j} x_i·x_j − 2·Σx (with x²=x), scaled by
//     Options.ConstraintConst: each non-depot destination is visited exactly
//     once, and each step selects exactly one destination.
//
// ConstraintConst must dominate the objective's cost magnitude so that no
// routing-cost saving can ever pay for a constraint violation; the defaults
// (1 and 1e7) preserve that ordering for geographic instances.
//
// All encoders are pure functions of their inputs: for a fixed problem,
// distance matrix and constants the produced map is bit-reproducible.
package qubo
