package solver_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/qroute/anneal"
	"github.com/katalvlaran/qroute/cvrp"
	"github.com/katalvlaran/qroute/matrix"
	"github.com/katalvlaran/qroute/qubo"
	"github.com/katalvlaran/qroute/solver"
	"github.com/stretchr/testify/require"
)

// fakeSampler returns canned assignments (or a canned error) and records the
// QUBO it was handed.
type fakeSampler struct {
	assignments []qubo.Assignment
	err         error
	got         qubo.QUBO
}

func (f *fakeSampler) Sample(q qubo.QUBO) ([]qubo.Assignment, error) {
	f.got = q

	return f.assignments, f.err
}

// TestSolve_DecodesFirstAssignment: the pipeline hands the combined QUBO to
// the sampler and decodes only the first returned assignment.
func TestSolve_DecodesFirstAssignment(t *testing.T) {
	p := crossProblem()

	best := assignmentOf(p, []int{1, 2, 3, 4})
	worse := assignmentOf(p, []int{2, 1, 4, 3})
	fs := &fakeSampler{assignments: []qubo.Assignment{best, worse}}

	sol, err := solver.Solve(p, fs, solver.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, [][]int{{0, 1, 2, 0}, {0, 3, 4, 0}}, sol.Routes)
	require.Equal(t, 8.0, sol.Cost)

	// The sampler saw the combined map: objective + constraint coefficients
	// on a non-empty key set.
	require.NotEmpty(t, fs.got)
	require.Negative(t, fs.got.At(qubo.Var{Step: 0, Dest: 1}, qubo.Var{Step: 0, Dest: 1}))
}

// TestSolve_ModelSelectsEncoder: VRP and CVRP hand different maps to the
// sampler — the capacity term couples non-adjacent steps only under CVRP.
func TestSolve_ModelSelectsEncoder(t *testing.T) {
	p := crossProblem()
	asg := assignmentOf(p, []int{1, 2, 3, 4})

	var (
		s1d1 = qubo.Var{Step: 0, Dest: 1}
		s2d2 = qubo.Var{Step: 1, Dest: 2}
	)

	vrpSampler := &fakeSampler{assignments: []qubo.Assignment{asg}}
	_, err := solver.Solve(p, vrpSampler, solver.DefaultOptions(solver.WithModel(solver.VRP)))
	require.NoError(t, err)

	cvrpSampler := &fakeSampler{assignments: []qubo.Assignment{asg}}
	_, err = solver.Solve(p, cvrpSampler, solver.DefaultOptions(solver.WithModel(solver.CVRP)))
	require.NoError(t, err)

	// demand 1 * demand 2 / 10² = 0.02 on top of the routing coefficient.
	require.InDelta(t, 0.02,
		cvrpSampler.got.At(s1d1, s2d2)-vrpSampler.got.At(s1d1, s2d2), 1e-12)
}

// TestSolve_Errors covers every abort path ahead of and around the sampler.
func TestSolve_Errors(t *testing.T) {
	p := crossProblem()

	// Nil sampler.
	_, err := solver.Solve(p, nil, solver.DefaultOptions())
	require.ErrorIs(t, err, solver.ErrNilSampler)

	// Malformed problem.
	bad := p
	bad.VehicleCapacity = -1
	_, err = solver.Solve(bad, &fakeSampler{}, solver.DefaultOptions())
	require.ErrorIs(t, err, cvrp.ErrBadCapacity)

	// Unknown model.
	_, err = solver.Solve(p, &fakeSampler{}, solver.DefaultOptions(solver.WithModel(solver.Model(42))))
	require.ErrorIs(t, err, solver.ErrUnknownModel)

	// Weak constraint multiplier surfaces from the encoder.
	_, err = solver.Solve(p, &fakeSampler{},
		solver.DefaultOptions(solver.WithCostConst(2), solver.WithConstraintConst(1)))
	require.ErrorIs(t, err, qubo.ErrConstraintTooWeak)

	// Sampler failure is wrapped, not swallowed.
	boom := errors.New("hardware on fire")
	_, err = solver.Solve(p, &fakeSampler{err: boom}, solver.DefaultOptions())
	require.ErrorIs(t, err, boom)

	// Empty sample set.
	_, err = solver.Solve(p, &fakeSampler{assignments: nil}, solver.DefaultOptions())
	require.ErrorIs(t, err, solver.ErrNoSamples)

	// Infeasible best sample propagates the decode sentinel.
	infeasible := assignmentOf(p, []int{1, 2, 3, 4})
	infeasible[qubo.Var{Step: 0, Dest: 1}] = 0
	_, err = solver.Solve(p, &fakeSampler{assignments: []qubo.Assignment{infeasible}}, solver.DefaultOptions())
	require.ErrorIs(t, err, solver.ErrInfeasibleSample)
}

// TestSolve_EndToEndAnneal runs the whole pipeline against the real annealer
// on a 2-delivery instance small enough that the default schedule reliably
// reaches the feasible ground basin, and checks the decoded solution is the
// true optimum.
func TestSolve_EndToEndAnneal(t *testing.T) {
	p := cvrp.Problem{
		Identifier: "e2e",
		Coords: []matrix.Coord{
			{Lat: 0, Lng: 0},
			{Lat: 3, Lng: 0},
			{Lat: 0, Lng: 4},
		},
		VehicleCapacity: 10,
		NumVehicles:     1,
		Demands:         []int{0, 2, 3},
		MaxDeliveries:   2,
		DepotIdx:        0,
	}

	sampler, err := anneal.New(anneal.DefaultOptions(anneal.WithSeed(7)))
	require.NoError(t, err)

	sol, err := solver.Solve(p, sampler, solver.DefaultOptions())
	require.NoError(t, err)

	// Either visiting order covers both stops; both are optimal at
	// 3 + 5 + 4 = 12.
	require.Len(t, sol.Routes, 1)
	require.ElementsMatch(t, []int{0, 1, 2, 0}, sol.Routes[0])
	require.Equal(t, 12.0, sol.Cost)
	require.Equal(t, []int{5}, sol.TotalDemands)

	// Deterministic: the same seed reproduces the same solution.
	again, err := solver.Solve(p, sampler, solver.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, sol, again)
}
