package topology

import (
	"fmt"
	"sort"
	"strings"
)

// Complex is a finite simplicial complex: a set of simplices closed under
// the face relation, keyed by vertex-set identity. One Complex is built
// per command invocation and discarded after the report is derived.
type Complex struct {
	faces   map[string]Simplex
	maximal []Simplex
}

// NewComplex builds a complex from a list of maximal simplices and closes
// it under faces. Validation errors from any simplex are returned as
// ErrMalformedInput; an empty list is rejected the same way.
func NewComplex(maximal [][]string) (*Complex, error) {
	if len(maximal) == 0 {
		return nil, fmt.Errorf("no simplices given: %w", ErrMalformedInput)
	}

	c := &Complex{faces: make(map[string]Simplex)}
	for _, verts := range maximal {
		s, err := NewSimplex(verts)
		if err != nil {
			return nil, err
		}
		c.addMaximal(s)
	}
	c.Close()
	return c, nil
}

// ParseComplex parses the bot's simplex grammar: simplices separated by
// commas, vertices within a simplex separated by "-". An edge list like
// "a-b, b-c, c-a" is the 1-dimensional special case; "a-b-c, c-d" mixes a
// triangle with an extra edge. Blank entries (trailing commas) are
// skipped; anything else malformed is rejected.
func ParseComplex(input string) (*Complex, error) {
	var maximal [][]string
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var verts []string
		for _, tok := range strings.Split(part, "-") {
			verts = append(verts, strings.TrimSpace(tok))
		}
		maximal = append(maximal, verts)
	}
	return NewComplex(maximal)
}

// addMaximal records s as a generator, deduplicating by vertex set.
func (c *Complex) addMaximal(s Simplex) {
	for _, m := range c.maximal {
		if m.key() == s.key() {
			return
		}
	}
	c.maximal = append(c.maximal, s)
}

// Close inserts every face of every maximal simplex. Calling it on an
// already-closed complex changes nothing: faces are keyed by vertex set,
// so re-insertion is a no-op.
func (c *Complex) Close() {
	for _, m := range c.maximal {
		for _, f := range m.faces() {
			c.faces[f.key()] = f
		}
	}
}

// Dim is the highest dimension of any face, or -1 for an empty complex.
func (c *Complex) Dim() int {
	d := -1
	for _, s := range c.faces {
		if s.Dim() > d {
			d = s.Dim()
		}
	}
	return d
}

// Size is the total number of faces across all dimensions.
func (c *Complex) Size() int {
	return len(c.faces)
}

// Maximal returns the generating simplices in input order.
func (c *Complex) Maximal() []Simplex {
	out := make([]Simplex, len(c.maximal))
	copy(out, c.maximal)
	return out
}

// Simplices returns all d-dimensional faces sorted by canonical key.
// The ordering fixes boundary-matrix columns, so reports and ranks are
// reproducible for a given input.
func (c *Complex) Simplices(d int) []Simplex {
	var out []Simplex
	for _, s := range c.faces {
		if s.Dim() == d {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key() < out[j].key() })
	return out
}

// VertexLabels returns the sorted labels of all 0-dimensional faces.
func (c *Complex) VertexLabels() []string {
	var out []string
	for _, s := range c.Simplices(0) {
		out = append(out, s.verts[0])
	}
	return out
}

// FaceCounts groups faces by dimension: index d holds the number of
// d-dimensional faces.
func (c *Complex) FaceCounts() []int {
	dim := c.Dim()
	if dim < 0 {
		return nil
	}
	counts := make([]int, dim+1)
	for _, s := range c.faces {
		counts[s.Dim()]++
	}
	return counts
}

// EulerCharacteristic is the alternating sum of face counts:
// χ = Σ (−1)^d · n_d.
func (c *Complex) EulerCharacteristic() int {
	chi := 0
	for d, n := range c.FaceCounts() {
		if d%2 == 0 {
			chi += n
		} else {
			chi -= n
		}
	}
	return chi
}
