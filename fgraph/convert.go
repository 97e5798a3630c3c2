// File: convert.go
// Role: Building graphs from other representations: Bayes nets and
// slot-for-slot snapshots.

package fgraph

import (
	"fmt"

	"github.com/katalvlaran/elimgraph/varindex"
)

// FromBayesNet builds a factor graph with one factor per conditional, in the
// net's order, using toFactor to turn each conditional into a factor.
func FromBayesNet[F Factor[F, C], C Conditional[C]](bn *BayesNet[C], toFactor func(C) F, opts ...Option) *FactorGraph[F, C] {
	if bn == nil {
		return New[F, C](opts...)
	}
	g := New[F, C](append([]Option{WithCapacity(bn.Len())}, opts...)...)
	for _, c := range bn.conditionals {
		g.Add(toFactor(c))
	}

	return g
}

// Restore rebuilds a graph from a slot snapshot, keeping every slot number
// (tombstones included). When index is non-nil it must match the index
// rebuilt from the live slots, otherwise ErrInconsistentIndex is returned.
func Restore[F Factor[F, C], C Conditional[C]](slots []Slot[F], index map[string][]int, opts ...Option) (*FactorGraph[F, C], error) {
	g := New[F, C](append([]Option{WithCapacity(len(slots))}, opts...)...)
	for _, s := range slots {
		if s.Live {
			g.Add(s.Factor)
			continue
		}
		g.store.pushRemoved()
	}
	if index == nil {
		return g, nil
	}

	// Cross-check the stored index against the rebuilt one
	stored := varindex.New()
	for key, list := range index {
		for _, slot := range list {
			if !g.store.inRange(slot) {
				return nil, fmt.Errorf("%w: key %q references slot %d beyond size %d",
					ErrInconsistentIndex, key, slot, g.Size())
			}
			stored.Insert(slot, []string{key})
		}
	}
	if !stored.Equal(g.index) {
		return nil, fmt.Errorf("%w: stored index does not match slot scopes", ErrInconsistentIndex)
	}

	return g, nil
}
