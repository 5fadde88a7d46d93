// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types shared by the dense implementation and
// the distance builders. Errors live in errors.go per the package conventions.
package matrix

// Coord is a 2-D geographic coordinate (latitude, longitude in degrees).
// Under the Euclidean metric the two components are treated as plain plane
// coordinates; under Haversine they are interpreted as degrees on a sphere.
type Coord struct {
	Lat float64 `json:"lat"` // latitude (or plane X)
	Lng float64 `json:"lng"` // longitude (or plane Y)
}

// Metric selects how Distances measures the gap between two coordinates.
type Metric int

const (
	// Euclidean treats coordinates as points on a plane (EUC_2D).
	Euclidean Metric = iota

	// Haversine measures great-circle distance in kilometers (GEO).
	Haversine
)

// String returns the canonical lower-case name of the metric.
func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case Haversine:
		return "haversine"
	default:
		return "unknown"
	}
}

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix, independent of the original.
	Clone() Matrix
}
