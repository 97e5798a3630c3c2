// Package varindex maps variable keys to the factor slots that touch them.
//
// An Index is the "variable side" of a factor graph: for every key it keeps a
// sorted list of slot numbers whose factor scope contains that key. The
// owning graph is responsible for keeping the index in step with its slot
// store; the index itself only guarantees that every list is sorted, free of
// duplicates, and that keys with an empty list are dropped.
//
// Complexity:
//
//   - Insert:  O(|scope| · log d) where d is the longest touched list
//   - Remove:  O(|scope| · d)
//   - Slots:   O(d) (returns a copy)
//   - Keys:    O(K log K)
//
// Errors:
//
//   - ErrInconsistentIndex  returned by Verify when the index disagrees with
//     the scopes it was checked against.
package varindex
