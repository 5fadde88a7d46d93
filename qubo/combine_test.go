package qubo_test

import (
	"testing"

	"github.com/katalvlaran/qroute/qubo"
	"github.com/stretchr/testify/require"
)

// TestCombine_Additive verifies the union/sum semantics: shared keys add,
// disjoint keys carry over, and neither input is mutated.
func TestCombine_Additive(t *testing.T) {
	var (
		v0 = qubo.Var{Step: 0, Dest: 0}
		v1 = qubo.Var{Step: 0, Dest: 1}
		v2 = qubo.Var{Step: 1, Dest: 0}
	)

	a := make(qubo.QUBO)
	a.Add(v0, v0, 3)
	a.Add(v0, v1, 1.5)

	b := make(qubo.QUBO)
	b.Add(v0, v1, 2.5) // shared key
	b.Add(v2, v2, -7)  // only in b

	out := qubo.Combine(a, b)

	require.Len(t, out, 3)
	require.Equal(t, 3.0, out.At(v0, v0))
	require.Equal(t, 4.0, out.At(v0, v1))
	require.Equal(t, -7.0, out.At(v2, v2))

	// Inputs untouched.
	require.Len(t, a, 2)
	require.Equal(t, 1.5, a.At(v0, v1))
	require.Len(t, b, 2)

	// Output is a fresh map: mutating it leaves the inputs alone.
	out.Add(v0, v0, 100)
	require.Equal(t, 3.0, a.At(v0, v0))
}

// TestCombine_EmptyAndNil: Combine tolerates nil and empty inputs.
func TestCombine_EmptyAndNil(t *testing.T) {
	v := qubo.Var{Step: 2, Dest: 1}
	a := make(qubo.QUBO)
	a.Add(v, v, 9)

	require.Equal(t, a, qubo.Combine(a, nil))
	require.Equal(t, a, qubo.Combine(nil, a))
	require.Empty(t, qubo.Combine(nil, nil))
}

// TestCombine_EnergyDistributes: the energy of a combined map equals the sum
// of the component energies for any assignment.
func TestCombine_EnergyDistributes(t *testing.T) {
	var (
		v0 = qubo.Var{Step: 0, Dest: 0}
		v1 = qubo.Var{Step: 0, Dest: 1}
	)
	a := make(qubo.QUBO)
	a.Add(v0, v0, -4)
	a.Add(v0, v1, 6)

	b := make(qubo.QUBO)
	b.Add(v1, v1, 2)
	b.Add(v0, v1, -1)

	asg := qubo.Assignment{v0: 1, v1: 1}
	require.Equal(t,
		qubo.Energy(a, asg)+qubo.Energy(b, asg),
		qubo.Energy(qubo.Combine(a, b), asg))
}
