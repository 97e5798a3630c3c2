package fgraph

import (
	"fmt"
	"io"
	"strings"
)

// Print writes label, the slot counts, and every live factor (via its own
// Print) in slot order. Output is deterministic for a given graph.
func (g *FactorGraph[F, C]) Print(w io.Writer, label string) {
	fmt.Fprintf(w, "%s: size=%d factors=%d\n", label, g.Size(), g.NrFactors())
	for i, f := range g.All() {
		f.Print(w, fmt.Sprintf("  [%d] ", i))
	}
}

// String renders the graph with the label "FactorGraph".
func (g *FactorGraph[F, C]) String() string {
	var sb strings.Builder
	g.Print(&sb, "FactorGraph")

	return sb.String()
}

// Equals reports positional equality: both graphs have the same Size() and
// every slot is either tombstoned in both or holds factors equal within tol.
// Two graphs holding the same factors in a different slot order are unequal.
// A nil graph equals only another nil graph.
func (g *FactorGraph[F, C]) Equals(other *FactorGraph[F, C], tol float64) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Size() != other.Size() {
		return false
	}
	for i := range g.store.slots {
		a, b := g.store.slots[i], other.store.slots[i]
		if a.live != b.live {
			return false
		}
		if a.live && !a.factor.Equals(b.factor, tol) {
			return false
		}
	}

	return true
}
