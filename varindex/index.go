package varindex

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInconsistentIndex indicates that the index references a slot that is not
// live, or misses a slot that is.
var ErrInconsistentIndex = errors.New("varindex: inconsistent index")

// Index maps a variable key to the sorted slot numbers of the factors whose
// scope contains that key.
//
// The zero value is not usable; construct with New.
type Index struct {
	slots map[string][]int
}

// New returns an empty Index.
func New() *Index {
	return &Index{slots: make(map[string][]int)}
}

// Insert records slot under every key in scope.
// Duplicate keys in scope are recorded once.
// Complexity: O(|scope| · log d).
func (x *Index) Insert(slot int, scope []string) {
	for _, key := range scope {
		list := x.slots[key]
		// 1. Find insertion point; slots arrive mostly in increasing order
		pos := sort.SearchInts(list, slot)
		if pos < len(list) && list[pos] == slot {
			continue // already present
		}
		// 2. Splice in without disturbing order
		list = append(list, 0)
		copy(list[pos+1:], list[pos:])
		list[pos] = slot
		x.slots[key] = list
	}
}

// Remove drops slot from the list of every key in scope. Keys whose list
// becomes empty are deleted from the index.
// Complexity: O(|scope| · d).
func (x *Index) Remove(slot int, scope []string) {
	for _, key := range scope {
		list, ok := x.slots[key]
		if !ok {
			continue
		}
		pos := sort.SearchInts(list, slot)
		if pos == len(list) || list[pos] != slot {
			continue
		}
		list = append(list[:pos], list[pos+1:]...)
		if len(list) == 0 {
			delete(x.slots, key)
			continue
		}
		x.slots[key] = list
	}
}

// Slots returns a copy of the sorted slot list for key, or nil if no live
// factor touches it.
func (x *Index) Slots(key string) []int {
	list := x.slots[key]
	if len(list) == 0 {
		return nil
	}
	out := make([]int, len(list))
	copy(out, list)

	return out
}

// Degree reports how many slots reference key.
func (x *Index) Degree(key string) int {
	return len(x.slots[key])
}

// Has reports whether at least one slot references key.
func (x *Index) Has(key string) bool {
	return len(x.slots[key]) > 0
}

// Keys returns every indexed key in ascending order.
func (x *Index) Keys() []string {
	out := make([]string, 0, len(x.slots))
	for key := range x.slots {
		out = append(out, key)
	}
	sort.Strings(out)

	return out
}

// Len reports the number of indexed keys.
func (x *Index) Len() int {
	return len(x.slots)
}

// Clear drops every entry.
func (x *Index) Clear() {
	x.slots = make(map[string][]int)
}

// Merge adds every entry of other into x with slot numbers shifted by offset.
// It is the index half of concatenating two slot sequences.
func (x *Index) Merge(other *Index, offset int) {
	for key, list := range other.slots {
		merged := make([]int, 0, len(x.slots[key])+len(list))
		merged = append(merged, x.slots[key]...)
		for _, slot := range list {
			merged = append(merged, slot+offset)
		}
		sort.Ints(merged)
		x.slots[key] = merged
	}
}

// Clone returns a deep copy of the index.
func (x *Index) Clone() *Index {
	out := &Index{slots: make(map[string][]int, len(x.slots))}
	for key, list := range x.slots {
		cp := make([]int, len(list))
		copy(cp, list)
		out.slots[key] = cp
	}

	return out
}

// Snapshot returns a deep copy of the key → slots mapping.
func (x *Index) Snapshot() map[string][]int {
	return x.Clone().slots
}

// Equal reports whether both indexes hold exactly the same entries.
func (x *Index) Equal(other *Index) bool {
	if len(x.slots) != len(other.slots) {
		return false
	}
	for key, list := range x.slots {
		olist, ok := other.slots[key]
		if !ok || len(olist) != len(list) {
			return false
		}
		for i := range list {
			if list[i] != olist[i] {
				return false
			}
		}
	}

	return true
}

// Verify checks the index against the authoritative scope of every live slot.
// scopes[slot] is the scope of a live slot; slots absent from the map are
// considered dead. Every live (slot, key) pair must be indexed and nothing
// else may be.
func (x *Index) Verify(scopes map[int][]string) error {
	// 1. Every indexed slot must be live and contain the key
	for key, list := range x.slots {
		for _, slot := range list {
			scope, live := scopes[slot]
			if !live {
				return fmt.Errorf("%w: key %q references dead slot %d", ErrInconsistentIndex, key, slot)
			}
			if !contains(scope, key) {
				return fmt.Errorf("%w: key %q references slot %d outside its scope", ErrInconsistentIndex, key, slot)
			}
		}
	}
	// 2. Every live (slot, key) pair must be indexed
	for slot, scope := range scopes {
		for _, key := range scope {
			list := x.slots[key]
			pos := sort.SearchInts(list, slot)
			if pos == len(list) || list[pos] != slot {
				return fmt.Errorf("%w: slot %d missing from key %q", ErrInconsistentIndex, slot, key)
			}
		}
	}

	return nil
}

func contains(scope []string, key string) bool {
	for _, k := range scope {
		if k == key {
			return true
		}
	}

	return false
}
