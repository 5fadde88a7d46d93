// SPDX-License-Identifier: MIT

// Package matrix: pairwise distance builders and distance-matrix validation.
//
// Distances is the single leaf dependency of the QUBO encoders: it turns a
// coordinate list into the symmetric cost matrix the objective terms read.
// ValidateDistances is the encode-boundary guard for caller-supplied
// matrices; builders produced here always satisfy it by construction.
package matrix

import "math"

// symTol is the structural tolerance for symmetry/diagonal checks.
// Distances built by this package are exactly symmetric; the tolerance only
// matters for caller-supplied matrices that went through FP round trips.
const symTol = 1e-9

// earthRadiusKm is the mean Earth radius used by the Haversine metric.
const earthRadiusKm = 6371.0

// Distances builds the symmetric n×n matrix of pairwise distances between
// coords under the chosen metric. The diagonal is exactly zero and
// d[i][j] == d[j][i] by construction (each pair is computed once).
//
// Contracts:
//   - len(coords) >= 1 (a single coordinate yields the 1×1 zero matrix).
//   - metric must be Euclidean or Haversine.
//
// Errors: ErrNoCoordinates, ErrUnknownMetric, ErrNaNInf (non-finite input).
//
// Complexity: O(n²) time, O(n²) space.
func Distances(coords []Coord, metric Metric) (*Dense, error) {
	// Stage 1: input validation.
	n := len(coords)
	if n == 0 {
		return nil, ErrNoCoordinates
	}
	switch metric {
	case Euclidean, Haversine:
		// ok
	default:
		return nil, ErrUnknownMetric
	}

	var (
		i, j int     // loop indices over coordinate pairs
		d    float64 // distance scratch
	)
	for i = 0; i < n; i++ { // reject NaN/Inf coordinates up front
		if !isFinite(coords[i].Lat) || !isFinite(coords[i].Lng) {
			return nil, ErrNaNInf
		}
	}

	// Stage 2: allocation (shape is valid by now).
	out, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	// Stage 3: fill the upper triangle and mirror; diagonal stays zero.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			switch metric {
			case Haversine:
				d = haversine(coords[i], coords[j])
			default:
				d = euclidean(coords[i], coords[j])
			}
			out.data[i*n+j] = d
			out.data[j*n+i] = d
		}
	}

	return out, nil
}

// ValidateDistances verifies that m is a usable distance matrix:
//   - non-nil and square,
//   - all entries finite (no NaN/±Inf),
//   - no negative entries,
//   - diagonal ~0 within symTol,
//   - symmetric within symTol.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrNegativeWeight,
// ErrNonZeroDiagonal, ErrAsymmetry.
//
// Complexity: O(n²).
func ValidateDistances(m Matrix) error {
	// Stage 1: shape checks.
	if m == nil {
		return ErrNilMatrix
	}
	var (
		nr = m.Rows()
		nc = m.Cols()
	)
	if nr != nc || nr <= 0 {
		return ErrNonSquare
	}

	// Stage 2: entry scan (finite, non-negative, zero diagonal).
	var (
		n        = nr
		i, j     int
		aij, aji float64
		err      error
		abs      float64 // scratch for |value|
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			aij, err = m.At(i, j)
			if err != nil {
				return err
			}
			if !isFinite(aij) {
				return ErrNaNInf
			}
			if aij < 0 {
				return ErrNegativeWeight
			}
			if i == j && aij > symTol {
				return ErrNonZeroDiagonal
			}
		}
	}

	// Stage 3: symmetry over the upper triangle.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, err = m.At(i, j)
			if err != nil {
				return err
			}
			aji, err = m.At(j, i)
			if err != nil {
				return err
			}
			abs = aij - aji
			if abs < 0 {
				abs = -abs // |a_ij - a_ji|
			}
			if abs > symTol {
				return ErrAsymmetry
			}
		}
	}

	return nil
}

// euclidean returns the straight-line distance between a and b on the plane.
// Complexity: O(1).
func euclidean(a, b Coord) float64 {
	var (
		dx = a.Lat - b.Lat
		dy = a.Lng - b.Lng
	)

	return math.Sqrt(dx*dx + dy*dy)
}

// haversine returns the great-circle distance between a and b in kilometers,
// interpreting coordinates as degrees of latitude/longitude.
// Complexity: O(1).
func haversine(a, b Coord) float64 {
	var (
		lat1 = a.Lat * math.Pi / 180
		lat2 = b.Lat * math.Pi / 180
		dLat = (b.Lat - a.Lat) * math.Pi / 180
		dLng = (b.Lng - a.Lng) * math.Pi / 180
	)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// isFinite reports whether x is neither NaN nor ±Inf.
// Complexity: O(1).
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
