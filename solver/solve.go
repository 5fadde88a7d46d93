// Package solver - unified entry point for the encode → sample → decode
// pipeline.
package solver

import (
	"fmt"

	"github.com/katalvlaran/qroute/cvrp"
	"github.com/katalvlaran/qroute/matrix"
	"github.com/katalvlaran/qroute/qubo"
)

// Solve runs the full pipeline for p against sampler s:
//
//	validate → distance matrix → objective + constraints → Combine →
//	s.Sample → Decode(first assignment)
//
// The QUBO is built once per call and discarded after sampling. Only the
// first (best) assignment is decoded; sampler failure or an empty sample set
// aborts the call (ErrNoSamples) and is never retried here — retry policy
// belongs to the caller, for whom encode/decode idempotence makes wrapping
// safe.
//
// Errors: ErrNilSampler, ErrUnknownModel, validation sentinels from cvrp /
// matrix / qubo, a wrapped sampler error, ErrNoSamples, and the decode
// feasibility sentinels.
//
// Complexity: encoding dominates at O(NumVehicles·MaxDeliveries²·L²) for the
// CVRP model (O(NumVehicles·MaxDeliveries·L²) for VRP), plus whatever the
// sampler costs.
func Solve(p cvrp.Problem, s Sampler, opts Options) (cvrp.Solution, error) {
	// Stage 1: boundary checks.
	if s == nil {
		return cvrp.Solution{}, ErrNilSampler
	}
	if err := cvrp.Validate(p); err != nil {
		return cvrp.Solution{}, err
	}

	// Stage 2: distance matrix (leaf dependency of the encoders).
	dist, err := matrix.Distances(p.Coords, opts.Metric)
	if err != nil {
		return cvrp.Solution{}, err
	}

	// Stage 3: encode objective + constraints, then combine.
	qopts := qubo.DefaultOptions(
		qubo.WithCostConst(opts.CostConst),
		qubo.WithConstraintConst(opts.ConstraintConst),
	)

	var objective qubo.QUBO
	switch opts.Model {
	case VRP:
		objective, err = qubo.VRPObjective(p, dist, qopts)
	case CVRP:
		objective, err = qubo.CVRPObjective(p, dist, qopts)
	default:
		return cvrp.Solution{}, ErrUnknownModel
	}
	if err != nil {
		return cvrp.Solution{}, err
	}

	constraints, err := qubo.Constraints(p, qopts)
	if err != nil {
		return cvrp.Solution{}, err
	}
	q := qubo.Combine(objective, constraints)

	// Stage 4: the single blocking boundary — the sampler call.
	assignments, err := s.Sample(q)
	if err != nil {
		return cvrp.Solution{}, fmt.Errorf("solver: sample: %w", err)
	}
	if len(assignments) == 0 {
		return cvrp.Solution{}, ErrNoSamples
	}

	// Stage 5: decode the best assignment into routes.
	return Decode(p, dist, assignments[0])
}
