package cvrp

import (
	"errors"

	"github.com/katalvlaran/qroute/matrix"
)

// Sentinel errors returned by problem validation and instance loading.
var (
	// ErrNoLocations indicates an empty coordinate list (the depot alone is
	// the minimum legal instance).
	ErrNoLocations = errors.New("cvrp: no locations")

	// ErrLengthMismatch indicates that Coords and Demands differ in length.
	ErrLengthMismatch = errors.New("cvrp: coords and demands length mismatch")

	// ErrBadCapacity indicates a non-positive vehicle capacity.
	ErrBadCapacity = errors.New("cvrp: vehicle capacity must be positive")

	// ErrBadVehicles indicates a non-positive vehicle count.
	ErrBadVehicles = errors.New("cvrp: number of vehicles must be positive")

	// ErrBadDeliveries indicates a non-positive per-vehicle delivery count.
	ErrBadDeliveries = errors.New("cvrp: max deliveries must be positive")

	// ErrDepotOutOfRange indicates that DepotIdx does not index Coords.
	ErrDepotOutOfRange = errors.New("cvrp: depot index out of range")

	// ErrDepotDemand indicates a non-zero demand at the depot location.
	ErrDepotDemand = errors.New("cvrp: depot demand must be zero")

	// ErrNegativeDemand indicates a negative demand entry.
	ErrNegativeDemand = errors.New("cvrp: negative demand")

	// ErrNoDeliveries indicates that an instance file contains no deliveries.
	ErrNoDeliveries = errors.New("cvrp: instance has no deliveries")
)

// Problem is an immutable CVRP instance.
//
// Locations are indexed 0..len(Coords)-1; DepotIdx names the depot
// (canonically 0). Demands aligns with Coords and Demands[DepotIdx] must be
// zero. NumVehicles * MaxDeliveries defines the total number of route slots
// ("steps") in the QUBO variable space.
type Problem struct {
	// Identifier is an opaque name for the instance.
	Identifier string `json:"identifier"`

	// Coords holds the 2-D coordinates of every location; index DepotIdx is
	// the depot.
	Coords []matrix.Coord `json:"coords"`

	// VehicleCapacity is the maximum load per vehicle (soft bound in the
	// QUBO formulation; see qubo.CVRPObjective).
	VehicleCapacity int `json:"vehicle_capacity"`

	// NumVehicles is the number of routes to produce.
	NumVehicles int `json:"num_vehicles"`

	// Demands aligns with Coords; Demands[DepotIdx] == 0.
	Demands []int `json:"demands"`

	// MaxDeliveries is the exact number of route slots per vehicle.
	MaxDeliveries int `json:"max_deliveries"`

	// DepotIdx is the index of the depot within Coords.
	DepotIdx int `json:"depot_idx"`
}

// Steps returns the total number of route slots across all vehicles,
// i.e. NumVehicles * MaxDeliveries.
// Complexity: O(1).
func (p Problem) Steps() int {
	return p.NumVehicles * p.MaxDeliveries
}

// Locations returns the number of locations (depot included).
// Complexity: O(1).
func (p Problem) Locations() int {
	return len(p.Coords)
}

// Solution is the decoded outcome of one accepted sample.
//
// Routes holds one ordered route per vehicle, each beginning and ending at
// the depot; an idle vehicle yields the two-element route [depot, depot].
// Cost and TotalDemands are recomputed from the problem's distance and
// demand tables, never taken from the sampler's reported energy.
type Solution struct {
	// ProblemIdentifier echoes the input problem.
	ProblemIdentifier string `json:"problem_identifier"`

	// Routes is the ordered sequence of per-vehicle routes.
	Routes [][]int `json:"routes"`

	// Cost is the sum of traversal distances over all routes, depot legs
	// included, rounded to 1e-9.
	Cost float64 `json:"cost"`

	// TotalDemands is the per-route sum of interior-stop demands.
	TotalDemands []int `json:"total_demands"`
}
