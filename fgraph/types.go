package fgraph

import (
	"errors"
	"io"

	"github.com/katalvlaran/elimgraph/ordering"
)

// Sentinel errors for factor graph operations.
var (
	// ErrUnknownVariable indicates elimination of a key no live factor touches.
	ErrUnknownVariable = errors.New("fgraph: unknown variable")

	// ErrIndexOutOfRange indicates slot access beyond Size().
	ErrIndexOutOfRange = errors.New("fgraph: slot index out of range")

	// ErrInconsistentIndex indicates that the variable index references a
	// dead or out-of-range slot, or misses a live one.
	ErrInconsistentIndex = errors.New("fgraph: inconsistent variable index")

	// ErrNilGraph is returned when a nil *FactorGraph is passed in.
	ErrNilGraph = errors.New("fgraph: graph is nil")

	// ErrNotChordal indicates a Bayes net whose conditional depends on a
	// variable eliminated before it.
	ErrNotChordal = errors.New("fgraph: bayes net is not chordal")

	// ErrBadConditional indicates that a payload's Eliminate(key) returned a
	// conditional whose frontal variable is not key.
	ErrBadConditional = errors.New("fgraph: conditional frontal mismatch")
)

// Factor is the capability set a factor payload must provide.
//
// F is the implementing type itself and C the conditional it eliminates into,
// e.g. Factor[*symbolic.Factor, *symbolic.Conditional].
type Factor[F any, C any] interface {
	// Keys returns the factor's scope. The graph copies the slice.
	Keys() []string

	// Print writes a human-readable dump prefixed by label.
	Print(w io.Writer, label string)

	// Equals reports equality with other within tol.
	Equals(other F, tol float64) bool

	// Combine joins the receiver with others into a single joint factor.
	// others may be empty.
	Combine(others []F) (F, error)

	// Eliminate removes key from the factor, returning the conditional on key
	// given the rest of the scope and a residual factor over the rest.
	Eliminate(key string) (C, F, error)
}

// Conditional is the capability set of an elimination result.
type Conditional[C any] interface {
	// Key returns the frontal variable.
	Key() string

	// Parents returns the separator the frontal variable depends on.
	Parents() []string

	// Print writes a human-readable dump prefixed by label.
	Print(w io.Writer, label string)

	// Equals reports equality with other within tol.
	Equals(other C, tol float64) bool
}

// Option configures a FactorGraph at construction.
type Option func(*graphConfig)

type graphConfig struct {
	oracle   ordering.Oracle
	capacity int
}

func defaultGraphConfig() graphConfig {
	return graphConfig{oracle: ordering.MinDegree}
}

// WithOracle sets the ordering oracle used by FactorGraph.Ordering.
// Passing nil keeps the default (ordering.MinDegree).
func WithOracle(o ordering.Oracle) Option {
	return func(c *graphConfig) {
		if o != nil {
			c.oracle = o
		}
	}
}

// WithCapacity preallocates room for n slots.
func WithCapacity(n int) Option {
	return func(c *graphConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// Slot is an exported view of one position in the slot sequence, used to
// snapshot and restore graphs slot-for-slot.
type Slot[F any] struct {
	// Factor is the stored factor; the zero value when Live is false.
	Factor F

	// Live is false for tombstoned slots.
	Live bool
}
