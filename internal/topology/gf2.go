package topology

// gf2Matrix is a dense matrix over GF(2), one bitset per row. Boundary
// matrices here are tiny (human-typed complexes), so a flat-and-simple
// representation wins over anything clever.
type gf2Matrix struct {
	rows, cols int
	words      int // uint64 words per row
	bits       [][]uint64
}

func newGF2(rows, cols int) *gf2Matrix {
	words := (cols + 63) / 64
	if words == 0 {
		words = 1
	}
	bits := make([][]uint64, rows)
	for i := range bits {
		bits[i] = make([]uint64, words)
	}
	return &gf2Matrix{rows: rows, cols: cols, words: words, bits: bits}
}

func (m *gf2Matrix) set(r, c int) {
	m.bits[r][c/64] |= 1 << (c % 64)
}

func (m *gf2Matrix) get(r, c int) bool {
	return m.bits[r][c/64]&(1<<(c%64)) != 0
}

// rank computes the GF(2) rank by Gaussian elimination. It mutates the
// receiver; boundary matrices are built per call, so nothing else holds
// a reference.
func (m *gf2Matrix) rank() int {
	rank := 0
	for col := 0; col < m.cols && rank < m.rows; col++ {
		// Find a pivot row at or below the current rank frontier.
		pivot := -1
		for r := rank; r < m.rows; r++ {
			if m.get(r, col) {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		m.bits[rank], m.bits[pivot] = m.bits[pivot], m.bits[rank]

		// Clear this column from every other row (XOR is addition in GF(2)).
		for r := 0; r < m.rows; r++ {
			if r != rank && m.get(r, col) {
				for w := 0; w < m.words; w++ {
					m.bits[r][w] ^= m.bits[rank][w]
				}
			}
		}
		rank++
	}
	return rank
}
