// Package ordering computes variable elimination orders for factor graphs.
//
// The elimination engine treats the ordering heuristic as a pluggable oracle:
// anything that turns a graph Structure (its variables and the scopes of its
// live factors) into a permutation of variables satisfies Oracle.
//
// Oracles shipped here:
//
//   - Natural:   ascending key order; cheap and deterministic.
//   - MinDegree: greedy minimum-degree on the variable interaction graph,
//     simulating fill-in as variables are removed. Ties break by key.
//
// Complexity:
//
//   - Natural:   O(K log K)
//   - MinDegree: O(K² + K·Δ²) where Δ is the largest neighborhood seen
//
// Errors:
//
//   - ErrNilStructure  the structure passed to an oracle is nil.
//   - ErrDuplicateKey  an Ordering lists the same key twice.
package ordering
