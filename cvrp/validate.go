// Package cvrp - fail-fast structural validation for Problem values.
//
// Validation happens once, at the encode boundary, before any expensive
// combinatorial work; encoders and the decoder may then assume a well-formed
// instance. Deterministic, side-effect free, only sentinel errors.
package cvrp

// Validate verifies the structural invariants of p:
//
//   - len(Coords) >= 1 and len(Coords) == len(Demands),
//   - VehicleCapacity, NumVehicles, MaxDeliveries all positive,
//   - DepotIdx within [0..L-1],
//   - Demands[DepotIdx] == 0 and no negative demand.
//
// Errors: sentinels from types.go, matched with errors.Is.
//
// Complexity: O(L) time, O(1) space.
func Validate(p Problem) error {
	// Stage 1: shape.
	if len(p.Coords) == 0 {
		return ErrNoLocations
	}
	if len(p.Coords) != len(p.Demands) {
		return ErrLengthMismatch
	}

	// Stage 2: scalar bounds.
	if p.VehicleCapacity <= 0 {
		return ErrBadCapacity
	}
	if p.NumVehicles <= 0 {
		return ErrBadVehicles
	}
	if p.MaxDeliveries <= 0 {
		return ErrBadDeliveries
	}
	if p.DepotIdx < 0 || p.DepotIdx >= len(p.Coords) {
		return ErrDepotOutOfRange
	}

	// Stage 3: demand table.
	if p.Demands[p.DepotIdx] != 0 {
		return ErrDepotDemand
	}
	var i int
	for i = 0; i < len(p.Demands); i++ {
		if p.Demands[i] < 0 {
			return ErrNegativeDemand
		}
	}

	return nil
}
