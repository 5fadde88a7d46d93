// Package qubo - additive merge of encoder outputs.
package qubo

// Combine merges two coefficient maps into a fresh unified QUBO: the key set
// is the union of both inputs and every coefficient is the sum of the two
// source coefficients (absent key ⇒ 0). Pure and deterministic; either input
// may be nil or empty, and neither input is mutated.
//
// Complexity: O(|a| + |b|) time and space.
func Combine(a, b QUBO) QUBO {
	out := make(QUBO, len(a)+len(b))

	var (
		p Pair
		w float64
	)
	for p, w = range a {
		out[p] += w
	}
	for p, w = range b {
		out[p] += w
	}

	return out
}
