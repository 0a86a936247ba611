package topology

import "fmt"

// MaxBettiDim caps Betti-number computation. β₀..β₂ cover components,
// loops and voids, which is everything a typed-in complex meaningfully
// exercises; higher dimensions are reported as not computed.
const MaxBettiDim = 2

// boundaryMatrix builds ∂_d over GF(2): one column per d-face, one row
// per (d−1)-face, a 1 wherever the row simplex is a face of the column
// simplex. Signs vanish mod 2, so incidence is all that is needed.
func (c *Complex) boundaryMatrix(d int) *gf2Matrix {
	cols := c.Simplices(d)
	rows := c.Simplices(d - 1)

	rowIdx := make(map[string]int, len(rows))
	for i, s := range rows {
		rowIdx[s.key()] = i
	}

	m := newGF2(len(rows), len(cols))
	for j, s := range cols {
		for _, f := range s.faces() {
			if f.Dim() == d-1 {
				m.set(rowIdx[f.key()], j)
			}
		}
	}
	return m
}

// BettiNumber computes β_d = n_d − rank ∂_d − rank ∂_{d+1} with mod-2
// coefficients. ∂_0 is the zero map. Dimensions above MaxBettiDim return
// ErrUnsupportedDimension; a negative dimension is a caller bug and is
// rejected as malformed.
func (c *Complex) BettiNumber(d int) (int, error) {
	if d < 0 {
		return 0, fmt.Errorf("betti dimension %d: %w", d, ErrMalformedInput)
	}
	if d > MaxBettiDim {
		return 0, fmt.Errorf("betti dimension %d exceeds supported cap %d: %w", d, MaxBettiDim, ErrUnsupportedDimension)
	}

	nd := len(c.Simplices(d))
	if nd == 0 {
		return 0, nil
	}

	rankD := 0
	if d > 0 {
		rankD = c.boundaryMatrix(d).rank()
	}
	rankD1 := c.boundaryMatrix(d + 1).rank()

	return nd - rankD - rankD1, nil
}
