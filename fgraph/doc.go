// Package fgraph stores factor graphs and reduces them, one variable at a
// time, into Bayes networks by sequential variable elimination.
//
// A FactorGraph is the factor side of a bipartite graph: an ordered sequence
// of slots, each holding a factor or a tombstone, plus a variable index
// (varindex.Index) mapping every key to the live slots whose scope contains
// it. Slots are never compacted; removing a factor tombstones its slot so
// that slot numbers stay stable.
//
// The graph is generic over the factor payload F and the conditional C it
// eliminates into. The payload supplies the algebra (Combine, Eliminate);
// this package supplies only the graph-level protocol:
//
//	g := fgraph.New[*symbolic.Factor, *symbolic.Conditional]()
//	g.Add(symbolic.NewFactor("A", "B"))
//	g.Add(symbolic.NewFactor("B", "C"))
//	bn, err := fgraph.Eliminate(g, ordering.Ordering{"A", "B"})
//
// Invariants:
//
//   - Size() counts every slot, NrFactors() only live ones.
//   - The index references live slots only: removing a factor prunes its slot
//     from the list of every key in its scope, not just the queried one.
//   - Clear() resets both the slots and the index.
//   - Residual factors produced by elimination are appended in a new slot;
//     tombstoned slots are never reused.
//
// Aliasing:
//
//	Combine and FromBayesNet store the caller's factor values as-is. When F is
//	a pointer type, two graphs combined from the same inputs share factor
//	instances; mutating a payload through one is visible through the other.
//	Each slot records its scope at insertion time, so index maintenance is
//	unaffected by later payload mutation.
//
// Concurrency:
//
//	A FactorGraph is not safe for concurrent use. Callers that share one must
//	guard the whole graph with a single lock. Elimination failures leave the
//	graph as mutated by the steps that completed; there is no rollback.
//
// Errors:
//
//   - ErrUnknownVariable    elimination of a key with no live factor.
//   - ErrIndexOutOfRange    slot access beyond Size().
//   - ErrInconsistentIndex  the index disagrees with the live slots.
//   - ErrNilGraph           a nil graph was passed to a package function.
//   - ErrNotChordal         a Bayes net parent was eliminated before its child.
//   - ErrBadConditional     the payload returned a conditional for the wrong key.
package fgraph
