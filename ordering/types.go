package ordering

import (
	"errors"
	"fmt"
)

var (
	// ErrNilStructure is returned when an oracle receives a nil Structure.
	ErrNilStructure = errors.New("ordering: structure is nil")

	// ErrDuplicateKey indicates an Ordering that names a key more than once.
	ErrDuplicateKey = errors.New("ordering: duplicate key")
)

// Structure is the read-only view of a factor graph an oracle needs.
type Structure interface {
	// Keys returns every variable touched by a live factor, ascending.
	Keys() []string

	// Scopes returns the scope of every live factor in slot order.
	Scopes() [][]string
}

// Oracle computes an elimination order covering at least every variable
// of the given structure.
type Oracle interface {
	Compute(s Structure) (Ordering, error)
}

// OracleFunc adapts a plain function to Oracle.
type OracleFunc func(s Structure) (Ordering, error)

// Compute calls f(s).
func (f OracleFunc) Compute(s Structure) (Ordering, error) {
	return f(s)
}

// Ordering is a sequence of distinct variable keys. It need not cover every
// variable of a graph; eliminating a prefix is legal.
type Ordering []string

// Validate reports ErrDuplicateKey if any key appears twice.
func (o Ordering) Validate() error {
	seen := make(map[string]struct{}, len(o))
	for i, key := range o {
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %q at position %d", ErrDuplicateKey, key, i)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// Contains reports whether key appears in the ordering.
func (o Ordering) Contains(key string) bool {
	for _, k := range o {
		if k == key {
			return true
		}
	}

	return false
}

// Position maps each key to its position in the ordering.
func (o Ordering) Position() map[string]int {
	pos := make(map[string]int, len(o))
	for i, key := range o {
		pos[key] = i
	}

	return pos
}
