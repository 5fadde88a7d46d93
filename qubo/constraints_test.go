package qubo_test

import (
	"testing"

	"github.com/katalvlaran/qroute/cvrp"
	"github.com/katalvlaran/qroute/matrix"
	"github.com/katalvlaran/qroute/qubo"
	"github.com/stretchr/testify/require"
)

// TestConstraints_TinyExpansion hand-checks the (Σx−1)² expansion on the
// smallest interesting instance: 1 vehicle, 2 steps, depot + 1 destination.
//
// Families: destination 1 over steps {0,1}; step 0 over destinations {0,1};
// step 1 over destinations {0,1}. With multiplier c, each family puts −c on
// its member diagonals and +2c on its member cross pairs; overlapping
// diagonals accumulate.
func TestConstraints_TinyExpansion(t *testing.T) {
	p := cvrp.Problem{
		Identifier: "tiny",
		Coords: []matrix.Coord{
			{Lat: 0, Lng: 0},
			{Lat: 0, Lng: 1},
		},
		VehicleCapacity: 5,
		NumVehicles:     1,
		Demands:         []int{0, 1},
		MaxDeliveries:   2,
		DepotIdx:        0,
	}
	const c = 5.0
	opts := qubo.DefaultOptions(qubo.WithConstraintConst(c))

	q, err := qubo.Constraints(p, opts)
	require.NoError(t, err)

	var (
		s0d0 = qubo.Var{Step: 0, Dest: 0}
		s0d1 = qubo.Var{Step: 0, Dest: 1}
		s1d0 = qubo.Var{Step: 1, Dest: 0}
		s1d1 = qubo.Var{Step: 1, Dest: 1}
	)

	// Depot diagonals: only the step family touches them → −c.
	require.Equal(t, -c, q.At(s0d0, s0d0))
	require.Equal(t, -c, q.At(s1d0, s1d0))

	// Destination-1 diagonals: destination family (−c) + step family (−c).
	require.Equal(t, -2*c, q.At(s0d1, s0d1))
	require.Equal(t, -2*c, q.At(s1d1, s1d1))

	// Cross pairs within one family: +2c.
	require.Equal(t, 2*c, q.At(s0d1, s1d1)) // destination family
	require.Equal(t, 2*c, q.At(s0d0, s0d1)) // step-0 family
	require.Equal(t, 2*c, q.At(s1d0, s1d1)) // step-1 family

	// Variables sharing no family stay uncoupled.
	require.Equal(t, 0.0, q.At(s0d0, s1d1))
	require.Equal(t, 0.0, q.At(s0d0, s1d0))

	// 4 diagonals + 3 family cross pairs.
	require.Len(t, q, 7)
}

// TestConstraints_SatisfiedFamilyEnergy: a satisfied one-hot family
// contributes exactly −c, and every violation costs at least +c relative to
// it — the property that makes constraint domination work.
func TestConstraints_SatisfiedFamilyEnergy(t *testing.T) {
	p := cvrp.Problem{
		Identifier: "one-family",
		Coords: []matrix.Coord{
			{Lat: 0, Lng: 0},
			{Lat: 0, Lng: 1},
		},
		VehicleCapacity: 5,
		NumVehicles:     1,
		Demands:         []int{0, 1},
		MaxDeliveries:   2,
		DepotIdx:        0,
	}
	const c = 7.0
	q, err := qubo.Constraints(p, qubo.DefaultOptions(qubo.WithConstraintConst(c)))
	require.NoError(t, err)

	// Fully feasible: destination 1 at step 0, depot at step 1.
	// 3 satisfied families (dest-1, step-0, step-1) → energy −3c.
	feasible := qubo.Assignment{
		{Step: 0, Dest: 1}: 1,
		{Step: 1, Dest: 0}: 1,
	}
	require.Equal(t, -3*c, qubo.Energy(q, feasible))

	// Step 1 empty: its family contributes 0 instead of −c.
	missing := qubo.Assignment{
		{Step: 0, Dest: 1}: 1,
	}
	require.Equal(t, -2*c, qubo.Energy(q, missing))

	// Destination 1 doubled: dest family (2 set) contributes
	// 2·(−c) + 2c = 0; both step families satisfied → −2c overall.
	doubled := qubo.Assignment{
		{Step: 0, Dest: 1}: 1,
		{Step: 1, Dest: 1}: 1,
	}
	require.Equal(t, -2*c, qubo.Energy(q, doubled))
}

// TestConstraints_DominanceDefaults asserts the default constant ordering:
// the minimum constraint-violation penalty (2·constraintConst relative
// swing) exceeds the maximum achievable objective swing — here bounded by
// the sum of all absolute objective coefficients — for a realistic
// geographic instance.
func TestConstraints_DominanceDefaults(t *testing.T) {
	p := cvrp.Problem{
		Identifier: "geo",
		Coords: []matrix.Coord{
			{Lat: 51.5074, Lng: -0.1278},
			{Lat: 51.5300, Lng: -0.0900},
			{Lat: 51.4700, Lng: -0.2000},
			{Lat: 51.5500, Lng: -0.1500},
		},
		VehicleCapacity: 10,
		NumVehicles:     1,
		Demands:         []int{0, 2, 3, 4},
		MaxDeliveries:   3,
		DepotIdx:        0,
	}
	dist, err := matrix.Distances(p.Coords, matrix.Haversine)
	require.NoError(t, err)

	opts := qubo.DefaultOptions()
	objective, err := qubo.CVRPObjective(p, dist, opts)
	require.NoError(t, err)

	var objectiveSwing float64
	for _, w := range objective {
		if w < 0 {
			w = -w
		}
		objectiveSwing += w
	}

	require.Less(t, objectiveSwing, 2*opts.ConstraintConst)
}

// TestConstraints_ValidationFailures: bad problems and constants are
// rejected before any accumulation.
func TestConstraints_ValidationFailures(t *testing.T) {
	p := cvrp.Problem{
		Coords:          []matrix.Coord{{Lat: 0, Lng: 0}},
		VehicleCapacity: 1,
		NumVehicles:     0, // invalid
		Demands:         []int{0},
		MaxDeliveries:   1,
	}
	_, err := qubo.Constraints(p, qubo.DefaultOptions())
	require.ErrorIs(t, err, cvrp.ErrBadVehicles)

	p.NumVehicles = 1
	_, err = qubo.Constraints(p, qubo.Options{CostConst: 1, ConstraintConst: -1})
	require.ErrorIs(t, err, qubo.ErrNonPositiveConst)
}
