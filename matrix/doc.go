// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric primitives used by the QUBO
// encoders and the solution decoder: a row-major float64 matrix and
// builders for symmetric pairwise distance matrices.
//
// What lives here:
//
//   - Dense — a concrete, row-major implementation of the Matrix interface,
//     storing elements in a flat slice for cache friendliness.
//   - Distances — builds the symmetric N×N pairwise distance matrix of a
//     coordinate list under a chosen metric (Euclidean or Haversine).
//   - ValidateDistances — structural validation for distance matrices
//     (square, finite, non-negative, zero diagonal, symmetric within eps).
//
// Design principles:
//
//   - Deterministic, side-effect free constructors; no hidden allocations
//     beyond the backing slice.
//   - Strict sentinel errors (errors.go); callers match with errors.Is.
//   - No logging, no panics on user input.
//
// Complexity: all accessors are O(1); building or validating an N-point
// distance matrix is O(N²) time and O(N²) space.
package matrix
