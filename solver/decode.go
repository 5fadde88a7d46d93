// Package solver - solution decoding with feasibility as a checked
// precondition.
//
// A bit assignment is only meaningful when it honors the one-hot structure
// the constraints encode; a malformed sample must surface as a typed decode
// error, never as a silently malformed route. Cost and per-route demand
// totals are recomputed here from the problem tables — the sampler's energy
// is never trusted.
package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qroute/cvrp"
	"github.com/katalvlaran/qroute/matrix"
	"github.com/katalvlaran/qroute/qubo"
)

// roundScale controls cost stabilization precision (1e-9). Keeps recomputed
// costs stable across platforms without affecting route reconstruction.
const roundScale = 1e9

// Decode reconstructs the per-vehicle routes selected by asg and recomputes
// their total cost and per-route demand sums.
//
// Feasibility precondition (checked, not assumed):
//   - every step selects exactly one destination (depot allowed), otherwise
//     ErrStepUnassigned / ErrStepConflict;
//   - every non-depot destination is selected exactly once across all steps,
//     otherwise ErrDestUnrouted / ErrDestRepeated.
//
// All four sentinels match ErrInfeasibleSample via errors.Is. Variables
// absent from asg count as zero bits.
//
// Reconstruction: steps are scanned in increasing order within each
// vehicle's block; a non-depot selection appends a stop, a depot selection
// leaves the slot idle. Each route is closed with the depot at both ends, so
// an idle vehicle yields [depot, depot]. Cost sums distance legs over every
// route (depot legs included, 1e-9 rounding); TotalDemands sums interior
// stop demands per route.
//
// Decode is a pure function of (p, dist, asg): decoding the same assignment
// twice yields identical routes, cost and demand totals.
//
// Errors: cvrp/matrix validation sentinels, qubo.ErrDimensionMismatch, the
// feasibility sentinels above.
//
// Complexity: O(S·L) time, S = p.Steps(), L = locations.
func Decode(p cvrp.Problem, dist matrix.Matrix, asg qubo.Assignment) (cvrp.Solution, error) {
	// Stage 1: boundary validation (cheap compared to what follows).
	if err := cvrp.Validate(p); err != nil {
		return cvrp.Solution{}, err
	}
	if dist == nil {
		return cvrp.Solution{}, qubo.ErrNilDistances
	}
	if err := matrix.ValidateDistances(dist); err != nil {
		return cvrp.Solution{}, err
	}
	var (
		steps     = p.Steps()
		locations = p.Locations()
	)
	if dist.Rows() != locations {
		return cvrp.Solution{}, qubo.ErrDimensionMismatch
	}

	// Stage 2: per-step one-hot check; chosen[s] is the single destination
	// selected at step s.
	var (
		chosen   = make([]int, steps)
		step     int
		dest     int
		selected int // count of set bits at the current step
		pick     int // destination of the last set bit at the current step
	)
	for step = 0; step < steps; step++ {
		selected = 0
		pick = -1
		for dest = 0; dest < locations; dest++ {
			if asg[qubo.Var{Step: step, Dest: dest}] == 1 {
				selected++
				pick = dest
			}
		}
		if selected == 0 {
			return cvrp.Solution{}, fmt.Errorf("decode step %d: %w", step, ErrStepUnassigned)
		}
		if selected > 1 {
			return cvrp.Solution{}, fmt.Errorf("decode step %d: %w", step, ErrStepConflict)
		}
		chosen[step] = pick
	}

	// Stage 3: per-destination one-hot check (depot exempt — any number of
	// steps may stay at the depot).
	visits := make([]int, locations)
	for step = 0; step < steps; step++ {
		visits[chosen[step]]++
	}
	for dest = 0; dest < locations; dest++ {
		if dest == p.DepotIdx {
			continue
		}
		if visits[dest] == 0 {
			return cvrp.Solution{}, fmt.Errorf("decode destination %d: %w", dest, ErrDestUnrouted)
		}
		if visits[dest] > 1 {
			return cvrp.Solution{}, fmt.Errorf("decode destination %d: %w", dest, ErrDestRepeated)
		}
	}

	// Stage 4: route reconstruction per vehicle block, depot at both ends.
	var (
		routes  = make([][]int, 0, p.NumVehicles)
		route   []int
		vehicle int
		first   int
		last    int
	)
	for vehicle = 0; vehicle < p.NumVehicles; vehicle++ {
		first = vehicle * p.MaxDeliveries
		last = first + p.MaxDeliveries - 1

		route = make([]int, 0, p.MaxDeliveries+2)
		route = append(route, p.DepotIdx)
		for step = first; step <= last; step++ {
			if chosen[step] != p.DepotIdx {
				route = append(route, chosen[step])
			}
		}
		route = append(route, p.DepotIdx)
		routes = append(routes, route)
	}

	// Stage 5: recompute cost and per-route demand totals (authoritative).
	var (
		cost    float64
		demands = make([]int, 0, p.NumVehicles)
		load    int
		leg     float64
		err     error
		i       int
	)
	for vehicle = 0; vehicle < p.NumVehicles; vehicle++ {
		route = routes[vehicle]
		load = 0
		for i = 0; i < len(route)-1; i++ {
			leg, err = dist.At(route[i], route[i+1])
			if err != nil {
				return cvrp.Solution{}, qubo.ErrDimensionMismatch
			}
			cost += leg
		}
		for i = 1; i < len(route)-1; i++ { // interior stops only
			load += p.Demands[route[i]]
		}
		demands = append(demands, load)
	}

	return cvrp.Solution{
		ProblemIdentifier: p.Identifier,
		Routes:            routes,
		Cost:              round1e9(cost),
		TotalDemands:      demands,
	}, nil
}

// round1e9 returns x rounded to 1e-9 absolute precision, keeping recomputed
// costs stable across platforms.
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
