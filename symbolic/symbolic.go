package symbolic

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/katalvlaran/elimgraph/fgraph"
)

// ErrKeyNotInScope is returned by Eliminate for a key outside the scope.
var ErrKeyNotInScope = errors.New("symbolic: key not in factor scope")

// Graph is a factor graph over symbolic factors.
type Graph = fgraph.FactorGraph[*Factor, *Conditional]

// BayesNet is a Bayes net of symbolic conditionals.
type BayesNet = fgraph.BayesNet[*Conditional]

// NewGraph returns an empty symbolic factor graph.
func NewGraph(opts ...fgraph.Option) *Graph {
	return fgraph.New[*Factor, *Conditional](opts...)
}

// Factor is a scope-only factor. Keys are kept sorted and unique.
type Factor struct {
	keys []string
}

// NewFactor returns a factor over keys; duplicates are dropped.
func NewFactor(keys ...string) *Factor {
	return &Factor{keys: normalize(keys)}
}

// Keys returns a copy of the sorted scope.
func (f *Factor) Keys() []string {
	return slices.Clone(f.keys)
}

// Print writes "label f(k1,k2,...)".
func (f *Factor) Print(w io.Writer, label string) {
	fmt.Fprintf(w, "%sf(%s)\n", label, strings.Join(f.keys, ","))
}

// Equals compares scopes; tol is unused.
func (f *Factor) Equals(other *Factor, _ float64) bool {
	if f == nil || other == nil {
		return f == other
	}

	return slices.Equal(f.keys, other.keys)
}

// Combine returns a new factor over the union of all scopes.
func (f *Factor) Combine(others []*Factor) (*Factor, error) {
	all := slices.Clone(f.keys)
	for _, o := range others {
		all = append(all, o.keys...)
	}

	return &Factor{keys: normalize(all)}, nil
}

// Eliminate splits the scope into P(key | rest) and a residual over rest.
func (f *Factor) Eliminate(key string) (*Conditional, *Factor, error) {
	pos, found := slices.BinarySearch(f.keys, key)
	if !found {
		return nil, nil, fmt.Errorf("%w: %q not in {%s}", ErrKeyNotInScope, key, strings.Join(f.keys, ","))
	}
	rest := make([]string, 0, len(f.keys)-1)
	rest = append(rest, f.keys[:pos]...)
	rest = append(rest, f.keys[pos+1:]...)

	return &Conditional{key: key, parents: rest}, &Factor{keys: slices.Clone(rest)}, nil
}

// Conditional is P(key | parents) without numerics.
type Conditional struct {
	key     string
	parents []string
}

// NewConditional returns P(key | parents); parents are sorted and deduplicated.
func NewConditional(key string, parents ...string) *Conditional {
	return &Conditional{key: key, parents: normalize(parents)}
}

// Key returns the frontal variable.
func (c *Conditional) Key() string { return c.key }

// Parents returns a copy of the sorted separator.
func (c *Conditional) Parents() []string { return slices.Clone(c.parents) }

// Print writes "label P(key|p1,p2,...)".
func (c *Conditional) Print(w io.Writer, label string) {
	if len(c.parents) == 0 {
		fmt.Fprintf(w, "%sP(%s)\n", label, c.key)
		return
	}
	fmt.Fprintf(w, "%sP(%s|%s)\n", label, c.key, strings.Join(c.parents, ","))
}

// Equals compares frontal and parents; tol is unused.
func (c *Conditional) Equals(other *Conditional, _ float64) bool {
	if c == nil || other == nil {
		return c == other
	}

	return c.key == other.key && slices.Equal(c.parents, other.parents)
}

// ToFactor turns the conditional back into a factor over {key} ∪ parents.
// Use it with fgraph.FromBayesNet.
func ToFactor(c *Conditional) *Factor {
	return NewFactor(append([]string{c.key}, c.parents...)...)
}

func normalize(keys []string) []string {
	out := slices.Clone(keys)
	sort.Strings(out)

	return slices.Compact(out)
}
