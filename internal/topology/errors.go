// Package topology builds finite simplicial complexes from user-typed
// simplex lists and computes their combinatorial invariants: face counts
// per dimension, Euler characteristic, and Betti numbers over GF(2) up to
// dimension MaxBettiDim.
//
// Homology is computed with mod-2 coefficients, so ranks are exact integer
// arithmetic with no floating-point pivots. For the graph-like inputs this
// bot sees, β₀ and β₁ agree with the rational Betti numbers.
package topology

import "errors"

// Sentinel errors. Callers match with errors.Is; detail is added by
// wrapping with fmt.Errorf("...: %w", ErrX) at the point of failure.
var (
	// ErrMalformedInput covers everything the builder rejects: empty input,
	// an empty vertex label, a label with forbidden characters, a vertex
	// repeated inside one simplex, or a simplex too large to close.
	ErrMalformedInput = errors.New("topology: malformed input")

	// ErrUnsupportedDimension is returned by BettiNumber for dimensions
	// above MaxBettiDim. It is informational, not a failure of the complex.
	ErrUnsupportedDimension = errors.New("topology: betti number not computed for this dimension")
)
