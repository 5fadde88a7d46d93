// Package solver orchestrates the full encode → sample → decode pipeline and
// owns the sampler boundary.
//
// The sampler (simulated or quantum annealer) is an external collaborator:
// anything implementing Sampler may be plugged in. Solve builds the distance
// matrix, encodes the objective (VRP or CVRP model) and one-hot constraints,
// combines them into one QUBO, hands it to the sampler and decodes the first
// (best) returned assignment. Encode and decode are idempotent pure
// functions of their inputs, so callers are free to wrap the sampler call in
// timeouts or retry loops without affecting correctness; Solve itself never
// retries — an unreachable sampler or an empty sample set is fatal for the
// call and reported to the caller.
//
// Decoding treats sample feasibility as a checked precondition: an
// assignment that violates the one-hot structure (a step with zero or
// several selected destinations, a destination never routed or routed twice)
// is surfaced as ErrInfeasibleSample — never silently turned into a
// malformed route. Cost and per-route demand totals are recomputed from the
// problem's distance and demand tables and are authoritative; the sampler's
// reported energy is never consulted.
package solver
