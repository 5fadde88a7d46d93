package matrix_test

import (
	"testing"

	"github.com/katalvlaran/qroute/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDense_BadShape verifies that non-positive dimensions are rejected
// with ErrBadShape before any allocation.
func TestNewDense_BadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestDense_SetAtRoundTrip verifies basic element access and zero
// initialization.
func TestDense_SetAtRoundTrip(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	// Fresh matrices are zero-filled.
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	// Write then read back.
	require.NoError(t, m.Set(1, 2, 4.5))
	v, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)
}

// TestDense_OutOfRange verifies that invalid indices surface ErrOutOfRange
// from both At and Set, never a panic.
func TestDense_OutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 2, 1), matrix.ErrOutOfRange)
}

// TestDense_CloneIndependence verifies that Clone yields a deep copy:
// mutating the clone must not leak into the original.
func TestDense_CloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 7))

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 9))

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 7.0, v) // original untouched

	v, err = c.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)
}
