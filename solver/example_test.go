package solver_test

import (
	"fmt"

	"github.com/katalvlaran/qroute/cvrp"
	"github.com/katalvlaran/qroute/matrix"
	"github.com/katalvlaran/qroute/qubo"
	"github.com/katalvlaran/qroute/solver"
)

// ExampleSolve encodes a 1-vehicle instance, samples it with a canned
// sampler and prints the decoded route. A real caller plugs in the anneal
// package (or any other solver.Sampler) in place of the canned one.
func ExampleSolve() {
	p := cvrp.Problem{
		Identifier: "demo",
		Coords: []matrix.Coord{
			{Lat: 0, Lng: 0}, // depot
			{Lat: 3, Lng: 0},
			{Lat: 0, Lng: 4},
		},
		VehicleCapacity: 10,
		NumVehicles:     1,
		Demands:         []int{0, 2, 3},
		MaxDeliveries:   2,
		DepotIdx:        0,
	}

	// The optimal visiting order, handed back verbatim.
	sampler := &fakeSampler{assignments: []qubo.Assignment{{
		{Step: 0, Dest: 1}: 1,
		{Step: 1, Dest: 2}: 1,
	}}}

	sol, err := solver.Solve(p, sampler, solver.DefaultOptions())
	if err != nil {
		fmt.Println("solve:", err)
		return
	}

	fmt.Println("route:", sol.Routes[0])
	fmt.Println("cost:", sol.Cost)
	fmt.Println("load:", sol.TotalDemands[0])
	// Output:
	// route: [0 1 2 0]
	// cost: 12
	// load: 5
}
