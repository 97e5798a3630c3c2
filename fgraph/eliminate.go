// File: eliminate.go
// Role: Sequential variable elimination (single step and driver).
// Policy:
//   - A step gathers, combines and eliminates before it mutates the graph, so
//     a payload failure inside one step leaves that step's factors in place.
//   - The driver does not roll back completed steps on failure.

package fgraph

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/elimgraph/metrics"
	"github.com/katalvlaran/elimgraph/ordering"
)

// EliminateOption configures EliminateOne, Eliminate and EliminateAll.
type EliminateOption func(*eliminateConfig)

type eliminateConfig struct {
	logger  *zap.Logger
	metrics *metrics.Elimination
	runID   string
}

func defaultEliminateConfig() eliminateConfig {
	return eliminateConfig{logger: zap.NewNop()}
}

// WithLogger routes step and run logs to l. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) EliminateOption {
	return func(c *eliminateConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics records step outcomes on m. Nil disables metrics.
func WithMetrics(m *metrics.Elimination) EliminateOption {
	return func(c *eliminateConfig) { c.metrics = m }
}

// WithRunID tags every log line of the run with id instead of a generated one.
func WithRunID(id string) EliminateOption {
	return func(c *eliminateConfig) { c.runID = id }
}

func buildEliminateConfig(opts []EliminateOption) eliminateConfig {
	cfg := defaultEliminateConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.runID == "" {
		cfg.runID = uuid.NewString()
	}
	cfg.logger = cfg.logger.With(zap.String("run_id", cfg.runID))

	return cfg
}

// EliminateOne eliminates key from g and returns the resulting conditional.
//
// Implementation:
//   - Stage 1: Collect the live factors touching key; none → ErrUnknownVariable.
//   - Stage 2: Combine them via the payload's Combine.
//   - Stage 3: Eliminate key from the joint factor → (conditional, residual).
//   - Stage 4: Tombstone the consumed slots, then append the residual if its
//     scope is non-empty. An empty residual is discarded.
//
// On success no live factor mentions key any more and g holds at most one new
// factor. Payload errors are wrapped and returned with g untouched.
func EliminateOne[F Factor[F, C], C Conditional[C]](g *FactorGraph[F, C], key string, opts ...EliminateOption) (C, error) {
	cfg := buildEliminateConfig(opts)

	return eliminateOne(g, key, cfg)
}

func eliminateOne[F Factor[F, C], C Conditional[C]](g *FactorGraph[F, C], key string, cfg eliminateConfig) (C, error) {
	var zero C
	if g == nil {
		return zero, ErrNilGraph
	}
	start := time.Now()

	// 1. Collect incident factors
	slots, factors := g.gather(key)
	if len(slots) == 0 {
		cfg.metrics.ObserveFailure("unknown_variable")
		return zero, fmt.Errorf("%w: %q", ErrUnknownVariable, key)
	}

	// 2. Combine into a joint factor
	joint, err := factors[0].Combine(factors[1:])
	if err != nil {
		cfg.metrics.ObserveFailure("combine")
		return zero, fmt.Errorf("fgraph: combine %d factors on %q: %w", len(factors), key, err)
	}

	// 3. Eliminate key from the joint factor
	cond, residual, err := joint.Eliminate(key)
	if err != nil {
		cfg.metrics.ObserveFailure("eliminate")
		return zero, fmt.Errorf("fgraph: eliminate %q: %w", key, err)
	}
	if cond.Key() != key {
		cfg.metrics.ObserveFailure("bad_conditional")
		return zero, fmt.Errorf("%w: eliminated %q, got conditional on %q", ErrBadConditional, key, cond.Key())
	}

	// 4. Commit: tombstone consumed slots, append the residual if it has a scope
	g.removeSlots(slots)
	residualKeys := len(residual.Keys())
	newSlot := -1
	if residualKeys > 0 {
		newSlot = g.Add(residual)
	}

	cfg.metrics.ObserveStep(len(slots), residualKeys, time.Since(start))
	cfg.logger.Debug("eliminated variable",
		zap.String("key", key),
		zap.Ints("consumed_slots", slots),
		zap.Strings("parents", cond.Parents()),
		zap.Int("residual_slot", newSlot),
	)

	return cond, nil
}

// Eliminate runs EliminateOne for every key of ord in sequence and collects
// the conditionals into a Bayes net in elimination order.
//
// The ordering need not cover every variable; unconsumed factors stay in g.
// A duplicate key in ord is rejected before g is touched. Any step failure
// (typically ErrUnknownVariable) is returned together with the Bayes net
// built so far; g is left exactly as mutated by the completed steps.
func Eliminate[F Factor[F, C], C Conditional[C]](g *FactorGraph[F, C], ord ordering.Ordering, opts ...EliminateOption) (*BayesNet[C], error) {
	// 1. Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := ord.Validate(); err != nil {
		return nil, fmt.Errorf("fgraph: eliminate: %w", err)
	}
	cfg := buildEliminateConfig(opts)

	// 2. Drive single steps in order
	bn := NewBayesNet[C]()
	for i, key := range ord {
		cond, err := eliminateOne(g, key, cfg)
		if err != nil {
			cfg.logger.Warn("elimination aborted",
				zap.String("key", key),
				zap.Int("position", i),
				zap.Int("conditionals", bn.Len()),
				zap.Error(err),
			)
			return bn, err
		}
		bn.Push(cond)
	}

	cfg.logger.Info("elimination finished",
		zap.Int("ordering_len", len(ord)),
		zap.Int("conditionals", bn.Len()),
		zap.Int("remaining_factors", g.NrFactors()),
	)

	return bn, nil
}

// EliminateAll eliminates every variable of g in the order returned by its
// ordering oracle.
func EliminateAll[F Factor[F, C], C Conditional[C]](g *FactorGraph[F, C], opts ...EliminateOption) (*BayesNet[C], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	ord, err := g.Ordering()
	if err != nil {
		return nil, err
	}

	return Eliminate(g, ord, opts...)
}
