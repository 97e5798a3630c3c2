package fgraph

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// BayesNet is an ordered sequence of conditionals, in the order their frontal
// variables were eliminated.
type BayesNet[C Conditional[C]] struct {
	conditionals []C
}

// NewBayesNet returns an empty Bayes net.
func NewBayesNet[C Conditional[C]]() *BayesNet[C] {
	return &BayesNet[C]{}
}

// Push appends c.
func (bn *BayesNet[C]) Push(c C) {
	bn.conditionals = append(bn.conditionals, c)
}

// Len returns the number of conditionals.
func (bn *BayesNet[C]) Len() int {
	return len(bn.conditionals)
}

// At returns the i-th conditional or ErrIndexOutOfRange.
func (bn *BayesNet[C]) At(i int) (C, error) {
	if i < 0 || i >= len(bn.conditionals) {
		var zero C
		return zero, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(bn.conditionals))
	}

	return bn.conditionals[i], nil
}

// All iterates the conditionals in elimination order.
func (bn *BayesNet[C]) All() iter.Seq2[int, C] {
	return func(yield func(int, C) bool) {
		for i, c := range bn.conditionals {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Frontals returns the frontal keys in elimination order.
func (bn *BayesNet[C]) Frontals() []string {
	out := make([]string, len(bn.conditionals))
	for i, c := range bn.conditionals {
		out[i] = c.Key()
	}

	return out
}

// CheckChordal verifies that no conditional depends on a variable eliminated
// before it, and that no variable is eliminated twice. Parents that are never
// eliminated in this net are treated as externally unconstrained.
func (bn *BayesNet[C]) CheckChordal() error {
	eliminated := make(map[string]int, len(bn.conditionals))
	for i, c := range bn.conditionals {
		if j, dup := eliminated[c.Key()]; dup {
			return fmt.Errorf("%w: %q eliminated at %d and %d", ErrNotChordal, c.Key(), j, i)
		}
		for _, p := range c.Parents() {
			if j, before := eliminated[p]; before {
				return fmt.Errorf("%w: %q (position %d) depends on %q eliminated at %d",
					ErrNotChordal, c.Key(), i, p, j)
			}
		}
		eliminated[c.Key()] = i
	}

	return nil
}

// Print writes label followed by every conditional in order.
func (bn *BayesNet[C]) Print(w io.Writer, label string) {
	fmt.Fprintf(w, "%s: %d conditionals\n", label, len(bn.conditionals))
	for i, c := range bn.conditionals {
		c.Print(w, fmt.Sprintf("  [%d] ", i))
	}
}

// String renders the net with the label "BayesNet".
func (bn *BayesNet[C]) String() string {
	var sb strings.Builder
	bn.Print(&sb, "BayesNet")

	return sb.String()
}

// Equals reports positional equality of the two nets within tol.
func (bn *BayesNet[C]) Equals(other *BayesNet[C], tol float64) bool {
	if bn == nil || other == nil {
		return bn == other
	}
	if len(bn.conditionals) != len(other.conditionals) {
		return false
	}
	for i := range bn.conditionals {
		if !bn.conditionals[i].Equals(other.conditionals[i], tol) {
			return false
		}
	}

	return true
}
