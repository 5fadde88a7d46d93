// Package cvrp defines the data model of a Capacitated Vehicle Routing
// Problem instance and its decoded solution, plus structural validation and
// JSON instance loading.
//
// The model (fixed-length routes):
//
//   - A Problem has L locations; index DepotIdx (canonically 0) is the depot.
//   - Each of NumVehicles vehicles owns exactly MaxDeliveries route slots.
//     MaxDeliveries is exact, not an upper bound: the QUBO variable space has
//     no notion of variable-length routes, so a vehicle that visits fewer
//     destinations simply "stays at the depot" for its remaining slots.
//   - Demands aligns with the locations; Demands[DepotIdx] == 0.
//
// A Solution echoes the problem identifier and carries the reconstructed
// routes (each beginning and ending at the depot), the recomputed total
// traversal cost, and the per-route demand totals.
//
// Validation happens fail-fast at the encode boundary: Validate rejects a
// malformed Problem with a sentinel error before any combinatorial work.
//
// Errors (sentinel):
//
//	– ErrNoLocations      if the coordinate list is empty.
//	– ErrLengthMismatch   if len(Coords) != len(Demands).
//	– ErrBadCapacity      if VehicleCapacity <= 0.
//	– ErrBadVehicles      if NumVehicles <= 0.
//	– ErrBadDeliveries    if MaxDeliveries <= 0.
//	– ErrDepotOutOfRange  if DepotIdx is outside [0..L-1].
//	– ErrDepotDemand      if Demands[DepotIdx] != 0.
//	– ErrNegativeDemand   if any demand is negative.
//	– ErrNoDeliveries     if a loaded instance file has no deliveries.
package cvrp
