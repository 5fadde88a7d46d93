// Package cvrp - JSON instance loading (delivery-list format).
//
// The on-disk format is a delivery list: an instance name, a depot origin,
// a vehicle capacity and a list of deliveries, each a coordinate plus a
// demand size. Large instances may be deterministically down-sampled to a
// fixed size cap before encoding, since the QUBO variable space grows as
// (vehicles·deliveries·locations)² and annealers only handle small instances.
package cvrp

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/katalvlaran/qroute/matrix"
)

// defaultSampleSize caps the number of deliveries taken from a file when
// LoadOptions.SampleSize is left at zero via DefaultLoadOptions.
const defaultSampleSize = 5

// defaultSampleSeed is the fixed seed used when LoadOptions.Seed == 0,
// keeping down-sampling reproducible across runs.
const defaultSampleSeed int64 = 1

// Point is a latitude/longitude pair as stored in instance files.
type Point struct {
	Lat float64 `json:"lat"` // latitude in degrees
	Lng float64 `json:"lng"` // longitude in degrees
}

// Delivery is one demand point of a delivery-list instance file.
type Delivery struct {
	Point Point `json:"point"` // delivery coordinate
	Size  int   `json:"size"`  // demand size (vehicle space occupied)
}

// DeliveryList is the on-disk schema of a CVRP instance file.
type DeliveryList struct {
	Name            string     `json:"name"`             // instance identifier
	Origin          Point      `json:"origin"`           // depot coordinate
	VehicleCapacity int        `json:"vehicle_capacity"` // max load per vehicle
	Deliveries      []Delivery `json:"deliveries"`       // demand points
}

// LoadOptions configures LoadProblem.
//
// SampleSize  – number of deliveries to keep (0 ⇒ keep all).
// Seed        – RNG seed for down-sampling; 0 ⇒ fixed default seed.
// NumVehicles – number of vehicles for the resulting Problem (must be > 0).
type LoadOptions struct {
	SampleSize  int   // cap on deliveries taken from the file; 0 keeps all
	Seed        int64 // sampling seed; 0 means defaultSampleSeed
	NumVehicles int   // vehicles in the resulting problem
}

// DefaultLoadOptions mirrors the historical single-vehicle setup: keep at
// most defaultSampleSize deliveries, deterministic sampling, one vehicle.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		SampleSize:  defaultSampleSize,
		Seed:        defaultSampleSeed,
		NumVehicles: 1,
	}
}

// LoadProblem reads a delivery-list JSON file and builds a validated Problem.
//
// Behavior:
//   - Location 0 is the depot (file origin); deliveries follow in sampled order.
//   - When opts.SampleSize > 0 and the file holds more deliveries, a
//     deterministic (seeded) sample of that size is taken.
//   - MaxDeliveries is ceil(deliveries / NumVehicles) so that the fixed-length
//     route slots can cover every delivery.
//
// Errors: wrapped I/O and JSON errors; ErrNoDeliveries, ErrBadVehicles and
// the Validate sentinels for structurally bad instances.
//
// Complexity: O(D) beyond file I/O, D = number of deliveries.
func LoadProblem(path string, opts LoadOptions) (Problem, error) {
	// Stage 1: read and decode the file.
	raw, err := os.ReadFile(path)
	if err != nil {
		return Problem{}, fmt.Errorf("cvrp: load %s: %w", path, err)
	}
	var file DeliveryList
	if err = json.Unmarshal(raw, &file); err != nil {
		return Problem{}, fmt.Errorf("cvrp: parse %s: %w", path, err)
	}

	return FromDeliveryList(file, opts)
}

// FromDeliveryList builds a validated Problem from an in-memory instance.
// See LoadProblem for the sampling and sizing behavior.
//
// Complexity: O(D).
func FromDeliveryList(file DeliveryList, opts LoadOptions) (Problem, error) {
	// Stage 1: option and shape sanity.
	if opts.NumVehicles <= 0 {
		return Problem{}, ErrBadVehicles
	}
	if len(file.Deliveries) == 0 {
		return Problem{}, ErrNoDeliveries
	}

	// Stage 2: deterministic down-sampling (selection order preserved).
	chosen := file.Deliveries
	if opts.SampleSize > 0 && opts.SampleSize < len(file.Deliveries) {
		chosen = sampleDeliveries(file.Deliveries, opts.SampleSize, opts.Seed)
	}

	// Stage 3: assemble coordinate and demand tables, depot first.
	var (
		n       = len(chosen)
		coords  = make([]matrix.Coord, 0, n+1)
		demands = make([]int, 0, n+1)
		i       int
	)
	coords = append(coords, matrix.Coord{Lat: file.Origin.Lat, Lng: file.Origin.Lng})
	demands = append(demands, 0)
	for i = 0; i < n; i++ {
		coords = append(coords, matrix.Coord{Lat: chosen[i].Point.Lat, Lng: chosen[i].Point.Lng})
		demands = append(demands, chosen[i].Size)
	}

	// Stage 4: slot sizing — every delivery must fit into the fixed-length
	// route slots, so MaxDeliveries = ceil(n / NumVehicles).
	maxDeliveries := (n + opts.NumVehicles - 1) / opts.NumVehicles

	p := Problem{
		Identifier:      file.Name,
		Coords:          coords,
		VehicleCapacity: file.VehicleCapacity,
		NumVehicles:     opts.NumVehicles,
		Demands:         demands,
		MaxDeliveries:   maxDeliveries,
		DepotIdx:        0,
	}
	if err := Validate(p); err != nil {
		return Problem{}, err
	}

	return p, nil
}

// SaveSolution writes sol to path as indented JSON.
//
// Complexity: O(size of sol) beyond file I/O.
func SaveSolution(path string, sol Solution) error {
	raw, err := json.MarshalIndent(sol, "", "  ")
	if err != nil {
		return fmt.Errorf("cvrp: marshal solution %s: %w", sol.ProblemIdentifier, err)
	}
	if err = os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("cvrp: save %s: %w", path, err)
	}

	return nil
}

// sampleDeliveries returns k deliveries drawn without replacement from in,
// in selection order, using a deterministic seeded stream.
// Policy: seed==0 ⇒ defaultSampleSeed (reproducible defaults).
//
// Complexity: O(D) time, O(D) space.
func sampleDeliveries(in []Delivery, k int, seed int64) []Delivery {
	s := seed
	if s == 0 {
		s = defaultSampleSeed
	}
	rng := rand.New(rand.NewSource(s))

	perm := rng.Perm(len(in))
	out := make([]Delivery, k)

	var i int
	for i = 0; i < k; i++ {
		out[i] = in[perm[i]]
	}

	return out
}
