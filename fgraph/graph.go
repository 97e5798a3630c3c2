// File: graph.go
// Role: FactorGraph container: slot store + variable index, and the queries
// and mutations that keep the two in step.

package fgraph

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/elimgraph/ordering"
	"github.com/katalvlaran/elimgraph/varindex"
)

// FactorGraph is an ordered, slot-indexed collection of factors together with
// an index from variable keys to the live slots touching them.
//
// The zero value is not usable; construct with New.
type FactorGraph[F Factor[F, C], C Conditional[C]] struct {
	store  store[F]
	index  *varindex.Index
	oracle ordering.Oracle
}

// New returns an empty FactorGraph.
// Complexity: O(capacity).
func New[F Factor[F, C], C Conditional[C]](opts ...Option) *FactorGraph[F, C] {
	cfg := defaultGraphConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &FactorGraph[F, C]{
		store:  newStore[F](cfg.capacity),
		index:  varindex.New(),
		oracle: cfg.oracle,
	}
}

// Add appends f in a new slot and indexes it under every key of its scope.
// Returns the slot number.
// Complexity: O(|scope| · log d).
func (g *FactorGraph[F, C]) Add(f F) int {
	keys := copyKeys(f.Keys())
	slot := g.store.push(f, keys)
	g.index.Insert(slot, keys)

	return slot
}

// Size returns the number of slots, tombstones included.
func (g *FactorGraph[F, C]) Size() int {
	return g.store.size()
}

// NrFactors returns the number of live slots.
// Complexity: O(1).
func (g *FactorGraph[F, C]) NrFactors() int {
	return g.store.nrLive()
}

// At returns the factor in slot i. ok is false when the slot is tombstoned.
// Returns ErrIndexOutOfRange if i is not in [0, Size()).
func (g *FactorGraph[F, C]) At(i int) (f F, ok bool, err error) {
	if !g.store.inRange(i) {
		return f, false, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, g.store.size())
	}
	e := g.store.slots[i]

	return e.factor, e.live, nil
}

// All iterates live slots in ascending order, yielding (slot, factor).
func (g *FactorGraph[F, C]) All() iter.Seq2[int, F] {
	return func(yield func(int, F) bool) {
		for i, e := range g.store.slots {
			if !e.live {
				continue
			}
			if !yield(i, e.factor) {
				return
			}
		}
	}
}

// Clear empties the slot sequence and the variable index.
// Configuration (the ordering oracle) is preserved.
func (g *FactorGraph[F, C]) Clear() {
	g.store.clear()
	g.index.Clear()
}

// Factors returns the sorted live slots whose factor contains key.
func (g *FactorGraph[F, C]) Factors(key string) []int {
	return g.index.Slots(key)
}

// Has reports whether any live factor touches key.
func (g *FactorGraph[F, C]) Has(key string) bool {
	return g.index.Has(key)
}

// Keys returns every variable touched by a live factor, ascending.
func (g *FactorGraph[F, C]) Keys() []string {
	return g.index.Keys()
}

// Scopes returns the recorded scope of every live factor in slot order.
func (g *FactorGraph[F, C]) Scopes() [][]string {
	out := make([][]string, 0, g.store.nrLive())
	for _, e := range g.store.slots {
		if e.live {
			out = append(out, copyKeys(e.keys))
		}
	}

	return out
}

// FindAndRemoveFactors tombstones every live factor whose scope contains key
// and returns them in slot order. Each removed slot is pruned from the index
// list of every variable in its scope. Afterwards Factors(key) is empty.
// Returns nil when no factor touches key.
// Complexity: O(k · |scope| · d) for k removed factors.
func (g *FactorGraph[F, C]) FindAndRemoveFactors(key string) []F {
	slots := g.index.Slots(key)
	if len(slots) == 0 {
		return nil
	}

	return g.removeSlots(slots)
}

// RemoveAndCombineFactors removes every factor touching key and combines them
// into one joint factor. The result is not reinserted.
// Returns ErrUnknownVariable when no factor touches key. If Combine fails the
// factors stay removed.
func (g *FactorGraph[F, C]) RemoveAndCombineFactors(key string) (F, error) {
	var zero F
	found := g.FindAndRemoveFactors(key)
	if len(found) == 0 {
		return zero, fmt.Errorf("%w: %q", ErrUnknownVariable, key)
	}
	joint, err := found[0].Combine(found[1:])
	if err != nil {
		return zero, fmt.Errorf("fgraph: combine factors on %q: %w", key, err)
	}

	return joint, nil
}

// Ordering asks the configured oracle for an elimination order covering every
// variable with a live factor.
func (g *FactorGraph[F, C]) Ordering() (ordering.Ordering, error) {
	ord, err := g.oracle.Compute(g)
	if err != nil {
		return nil, fmt.Errorf("fgraph: compute ordering: %w", err)
	}

	return ord, nil
}

// CheckIndex verifies that the index references exactly the live slots'
// recorded scopes. A correct graph always returns nil.
func (g *FactorGraph[F, C]) CheckIndex() error {
	scopes := make(map[int][]string, g.store.nrLive())
	for i, e := range g.store.slots {
		if e.live {
			scopes[i] = e.keys
		}
	}
	if err := g.index.Verify(scopes); err != nil {
		return fmt.Errorf("%w: %w", ErrInconsistentIndex, err)
	}

	return nil
}

// IndexSnapshot returns a deep copy of the variable index.
func (g *FactorGraph[F, C]) IndexSnapshot() map[string][]int {
	return g.index.Snapshot()
}

// Slots returns a snapshot of the slot sequence, tombstones included.
func (g *FactorGraph[F, C]) Slots() []Slot[F] {
	out := make([]Slot[F], len(g.store.slots))
	for i, e := range g.store.slots {
		out[i] = Slot[F]{Factor: e.factor, Live: e.live}
	}

	return out
}

// gather returns the live slots touching key and their factors without
// removing anything.
func (g *FactorGraph[F, C]) gather(key string) ([]int, []F) {
	slots := g.index.Slots(key)
	factors := make([]F, len(slots))
	for i, s := range slots {
		factors[i] = g.store.slots[s].factor
	}

	return slots, factors
}

// removeSlots tombstones the given live slots and prunes the index.
func (g *FactorGraph[F, C]) removeSlots(slots []int) []F {
	out := make([]F, 0, len(slots))
	for _, s := range slots {
		f, keys := g.store.tombstone(s)
		g.index.Remove(s, keys)
		out = append(out, f)
	}

	return out
}

func copyKeys(keys []string) []string {
	out := make([]string, len(keys))
	copy(out, keys)

	return out
}
