package topology

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// MaxSimplexVertices bounds a single maximal simplex. Closure enumerates
// all 2^n−1 non-empty vertex subsets, so unbounded n would let one typed
// line allocate without limit.
const MaxSimplexVertices = 12

var reLabel = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Simplex is a set of distinct vertex labels held in sorted order.
// Its dimension is len(vertices)−1. The zero value is invalid; construct
// via NewSimplex.
type Simplex struct {
	verts []string
}

// NewSimplex validates and canonicalizes a vertex list. It rejects an
// empty list, a malformed label and a duplicated vertex, all as
// ErrMalformedInput.
func NewSimplex(verts []string) (Simplex, error) {
	if len(verts) == 0 {
		return Simplex{}, fmt.Errorf("empty simplex: %w", ErrMalformedInput)
	}
	if len(verts) > MaxSimplexVertices {
		return Simplex{}, fmt.Errorf("simplex has %d vertices, max is %d: %w", len(verts), MaxSimplexVertices, ErrMalformedInput)
	}

	sorted := make([]string, len(verts))
	copy(sorted, verts)
	sort.Strings(sorted)

	for i, v := range sorted {
		if !reLabel.MatchString(v) {
			return Simplex{}, fmt.Errorf("bad vertex label %q: %w", v, ErrMalformedInput)
		}
		if i > 0 && sorted[i-1] == v {
			return Simplex{}, fmt.Errorf("vertex %q repeated within one simplex: %w", v, ErrMalformedInput)
		}
	}

	return Simplex{verts: sorted}, nil
}

// Dim returns the simplex dimension: vertex count minus one.
func (s Simplex) Dim() int {
	return len(s.verts) - 1
}

// Vertices returns a copy of the sorted vertex labels.
func (s Simplex) Vertices() []string {
	out := make([]string, len(s.verts))
	copy(out, s.verts)
	return out
}

// key is the canonical identity of the simplex: sorted labels joined
// by "-". Two simplices with the same vertex set share a key.
func (s Simplex) key() string {
	return strings.Join(s.verts, "-")
}

func (s Simplex) String() string {
	return s.key()
}

// faces enumerates every non-empty subset of the vertex set, the simplex
// itself included. Subsets of a sorted slice stay sorted, so each face is
// already canonical.
func (s Simplex) faces() []Simplex {
	n := len(s.verts)
	out := make([]Simplex, 0, (1<<n)-1)
	for mask := 1; mask < 1<<n; mask++ {
		sub := make([]string, 0, n)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				sub = append(sub, s.verts[i])
			}
		}
		out = append(out, Simplex{verts: sub})
	}
	return out
}
