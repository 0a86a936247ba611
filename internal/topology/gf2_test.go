package topology

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGF2Rank(t *testing.T) {
	t.Run("zero matrix", func(t *testing.T) {
		require.Equal(t, 0, newGF2(3, 3).rank())
	})

	t.Run("identity", func(t *testing.T) {
		m := newGF2(3, 3)
		for i := 0; i < 3; i++ {
			m.set(i, i)
		}
		require.Equal(t, 3, m.rank())
	})

	t.Run("dependent rows cancel mod 2", func(t *testing.T) {
		// Row 2 = row 0 XOR row 1.
		m := newGF2(3, 4)
		m.set(0, 0)
		m.set(0, 1)
		m.set(1, 1)
		m.set(1, 2)
		m.set(2, 0)
		m.set(2, 2)
		require.Equal(t, 2, m.rank())
	})

	t.Run("degenerate shapes", func(t *testing.T) {
		require.Equal(t, 0, newGF2(0, 5).rank())
		require.Equal(t, 0, newGF2(5, 0).rank())
	})

	t.Run("wide matrix crosses word boundary", func(t *testing.T) {
		m := newGF2(2, 70)
		m.set(0, 3)
		m.set(1, 68)
		require.Equal(t, 2, m.rank())
	})
}

func TestBoundaryMatrix_HollowTriangle(t *testing.T) {
	c, err := ParseComplex("a-b, b-c, c-a")
	require.NoError(t, err)

	// ∂₁ is 3 vertices × 3 edges, each edge hitting two vertices.
	m := c.boundaryMatrix(1)
	require.Equal(t, 3, m.rows)
	require.Equal(t, 3, m.cols)
	require.Equal(t, 2, m.rank())
}
