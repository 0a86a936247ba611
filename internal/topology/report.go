package topology

import (
	"fmt"
	"strings"
)

// InvariantReport is a read-only snapshot of a complex's invariants,
// derived once per invocation and handed to the formatting layer.
type InvariantReport struct {
	Vertices   []string
	Maximal    []Simplex
	FaceCounts []int
	Euler      int

	// Betti holds β₀..β_k where k = min(complex dim, MaxBettiDim),
	// always at least β₀ and β₁. NotComputed lists the dimensions the
	// complex reaches beyond the cap.
	Betti       []int
	NotComputed []int
}

// Analyze derives the full report from a closed complex. It never fails:
// every dimension inside the cap has a defined Betti number, and the
// dimensions outside it are recorded rather than computed.
func Analyze(c *Complex) *InvariantReport {
	rep := &InvariantReport{
		Vertices:   c.VertexLabels(),
		Maximal:    c.Maximal(),
		FaceCounts: c.FaceCounts(),
		Euler:      c.EulerCharacteristic(),
	}

	top := c.Dim()
	if top < 1 {
		top = 1 // always show β₀ and β₁, as the /simplicial summary did
	}
	for d := 0; d <= top; d++ {
		if d > MaxBettiDim {
			rep.NotComputed = append(rep.NotComputed, d)
			continue
		}
		b, err := c.BettiNumber(d)
		if err != nil {
			// unreachable for 0 ≤ d ≤ MaxBettiDim on a valid complex
			continue
		}
		rep.Betti = append(rep.Betti, b)
	}
	return rep
}

var subscripts = []rune("₀₁₂₃₄₅₆₇₈₉")

// bettiLabel renders β with a subscript dimension, e.g. β₁, β₁₂.
func bettiLabel(d int) string {
	if d == 0 {
		return "β₀"
	}
	var digits []rune
	for n := d; n > 0; n /= 10 {
		digits = append([]rune{subscripts[n%10]}, digits...)
	}
	return "β" + string(digits)
}

func bettiHint(d int) string {
	switch d {
	case 0:
		return " (components)"
	case 1:
		return " (1-dimensional holes)"
	case 2:
		return " (enclosed voids)"
	}
	return ""
}

// Format renders the Telegram-markdown summary block.
func (r *InvariantReport) Format() string {
	var b strings.Builder
	b.WriteString("**Simplicial complex summary**\n")

	fmt.Fprintf(&b, "• Vertices: %s\n", strings.Join(r.Vertices, ", "))

	var maximal []string
	for _, m := range r.Maximal {
		maximal = append(maximal, m.String())
	}
	fmt.Fprintf(&b, "• Simplices: %s\n", strings.Join(maximal, ", "))

	var counts []string
	for d, n := range r.FaceCounts {
		counts = append(counts, fmt.Sprintf("dim %d: %d", d, n))
	}
	fmt.Fprintf(&b, "• Faces: %s\n", strings.Join(counts, " | "))

	for d, beta := range r.Betti {
		fmt.Fprintf(&b, "• %s%s: %d\n", bettiLabel(d), bettiHint(d), beta)
	}
	for _, d := range r.NotComputed {
		fmt.Fprintf(&b, "• %s: not computed (supported up to dim %d)\n", bettiLabel(d), MaxBettiDim)
	}

	fmt.Fprintf(&b, "• Euler characteristic χ = %d", r.Euler)
	return b.String()
}

// Summary is the one-line form stored in the session history.
func (r *InvariantReport) Summary() string {
	var betas []string
	for d, beta := range r.Betti {
		betas = append(betas, fmt.Sprintf("%s=%d", bettiLabel(d), beta))
	}
	return fmt.Sprintf("χ=%d %s", r.Euler, strings.Join(betas, " "))
}
