package fgraph_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/elimgraph/fgraph"
	"github.com/katalvlaran/elimgraph/metrics"
	"github.com/katalvlaran/elimgraph/ordering"
	"github.com/katalvlaran/elimgraph/symbolic"
)

// TestEliminateOne_ChainScenario walks the three-factor chain one key at a
// time and checks slots, residuals and conditionals after each step.
func TestEliminateOne_ChainScenario(t *testing.T) {
	g := newChain()

	// A: only slot 0 touches A; residual f(B) lands in slot 3.
	cond, err := fgraph.EliminateOne(g, KeyA)
	require.NoError(t, err)
	assert.True(t, cond.Equals(symbolic.NewConditional(KeyA, KeyB), 0))
	assert.Equal(t, 4, g.Size())
	assert.Equal(t, []int{1, 3}, g.Factors(KeyB))
	assert.False(t, g.Has(KeyA))

	// B: combines slot 1 and slot 3.
	cond, err = fgraph.EliminateOne(g, KeyB)
	require.NoError(t, err)
	assert.True(t, cond.Equals(symbolic.NewConditional(KeyB, KeyC), 0))
	assert.Equal(t, []int{2, 4}, g.Factors(KeyC))

	// C: combines slot 2 and slot 4, leaving f(D).
	cond, err = fgraph.EliminateOne(g, KeyC)
	require.NoError(t, err)
	assert.True(t, cond.Equals(symbolic.NewConditional(KeyC, KeyD), 0))

	assert.Equal(t, 1, g.NrFactors())
	assert.Equal(t, []int{5}, g.Factors(KeyD))
	f, ok, err := g.At(5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{KeyD}, f.Keys())
	require.NoError(t, g.CheckIndex())
}

func TestEliminateOne_UnknownVariable(t *testing.T) {
	g := newChain()
	_, err := fgraph.EliminateOne(g, KeyX)
	require.ErrorIs(t, err, fgraph.ErrUnknownVariable)
	assert.Equal(t, 3, g.NrFactors())

	_, err = fgraph.EliminateOne[*symbolic.Factor, *symbolic.Conditional](nil, KeyA)
	require.ErrorIs(t, err, fgraph.ErrNilGraph)
}

func TestEliminateOne_EmptyResidualDiscarded(t *testing.T) {
	g := symbolic.NewGraph()
	g.Add(symbolic.NewFactor(KeyA))
	g.Add(symbolic.NewFactor(KeyA))

	cond, err := fgraph.EliminateOne(g, KeyA)
	require.NoError(t, err)
	assert.Empty(t, cond.Parents())
	assert.Equal(t, 2, g.Size(), "no slot appended for an empty residual")
	assert.Equal(t, 0, g.NrFactors())
}

func TestEliminateOne_PayloadFailureLeavesGraphIntact(t *testing.T) {
	g := fgraph.New[*brittle, *symbolic.Conditional]()
	g.Add(&brittle{keys: []string{KeyA, KeyB}})
	g.Add(&brittle{keys: []string{KeyA}, failCombine: true})

	_, err := fgraph.EliminateOne(g, KeyA)
	require.Error(t, err)
	assert.Equal(t, 2, g.NrFactors())
	assert.Equal(t, []int{0, 1}, g.Factors(KeyA))
	require.NoError(t, g.CheckIndex())
}

func TestEliminateOne_BadConditional(t *testing.T) {
	g := fgraph.New[*brittle, *symbolic.Conditional]()
	g.Add(&brittle{keys: []string{KeyA, KeyB}, wrongKey: true})

	_, err := fgraph.EliminateOne(g, KeyA)
	require.ErrorIs(t, err, fgraph.ErrBadConditional)
	assert.Equal(t, 1, g.NrFactors())
}

func TestEliminate_FullOrdering(t *testing.T) {
	g := newChain()
	bn, err := fgraph.Eliminate(g, ordering.Ordering{KeyA, KeyB, KeyC, KeyD})
	require.NoError(t, err)

	require.Equal(t, 4, bn.Len())
	assert.Equal(t, []string{KeyA, KeyB, KeyC, KeyD}, bn.Frontals())
	assert.Equal(t, 0, g.NrFactors())
	require.NoError(t, bn.CheckChordal())
}

func TestEliminate_PartialOrdering(t *testing.T) {
	g := newChain()
	bn, err := fgraph.Eliminate(g, ordering.Ordering{KeyA, KeyB, KeyC})
	require.NoError(t, err)

	want := symbolic.BayesNet{}
	want.Push(symbolic.NewConditional(KeyA, KeyB))
	want.Push(symbolic.NewConditional(KeyB, KeyC))
	want.Push(symbolic.NewConditional(KeyC, KeyD))
	assert.True(t, bn.Equals(&want, 1e-9))
	assert.Equal(t, []string{KeyD}, g.Keys())
}

func TestEliminate_FailureKeepsCompletedSteps(t *testing.T) {
	g := newChain()
	bn, err := fgraph.Eliminate(g, ordering.Ordering{KeyA, KeyX, KeyB})
	require.ErrorIs(t, err, fgraph.ErrUnknownVariable)

	require.NotNil(t, bn)
	assert.Equal(t, []string{KeyA}, bn.Frontals())
	assert.False(t, g.Has(KeyA), "step for A is not rolled back")
	assert.True(t, g.Has(KeyB))
	require.NoError(t, g.CheckIndex())
}

func TestEliminate_AlreadyEliminatedKey(t *testing.T) {
	g := newChain()
	_, err := fgraph.EliminateOne(g, KeyA)
	require.NoError(t, err)

	_, err = fgraph.Eliminate(g, ordering.Ordering{KeyA})
	require.ErrorIs(t, err, fgraph.ErrUnknownVariable)
}

func TestEliminate_DuplicateKeyRejectedUpFront(t *testing.T) {
	g := newChain()
	_, err := fgraph.Eliminate(g, ordering.Ordering{KeyA, KeyA})
	require.ErrorIs(t, err, ordering.ErrDuplicateKey)
	assert.Equal(t, 3, g.NrFactors())
}

func TestEliminateAll_ShapesLeaveNoFactors(t *testing.T) {
	cases := map[string][][]string{
		"chain": {{KeyA, KeyB}, {KeyB, KeyC}, {KeyC, KeyD}},
		"star":  {{KeyX, KeyA}, {KeyX, KeyB}, {KeyX, KeyC}},
		"cycle": {{KeyA, KeyB}, {KeyB, KeyC}, {KeyC, KeyA}},
		"dense": {{KeyA, KeyB, KeyC}, {KeyB, KeyC, KeyD}, {KeyA, KeyD}},
	}
	for name, scopes := range cases {
		t.Run(name, func(t *testing.T) {
			g := symbolic.NewGraph()
			for _, scope := range scopes {
				g.Add(symbolic.NewFactor(scope...))
			}
			n := len(g.Keys())

			bn, err := fgraph.EliminateAll(g)
			require.NoError(t, err)
			assert.Equal(t, n, bn.Len())
			assert.Equal(t, 0, g.NrFactors())
			assert.Empty(t, g.Keys())
			require.NoError(t, bn.CheckChordal())
			require.NoError(t, g.CheckIndex())
		})
	}
}

func TestEliminate_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	g := newChain()

	_, err := fgraph.Eliminate(g, ordering.Ordering{KeyA, KeyB},
		fgraph.WithLogger(zap.New(core)), fgraph.WithRunID("run-1"))
	require.NoError(t, err)

	steps := logs.FilterMessage("eliminated variable")
	require.Equal(t, 2, steps.Len())
	assert.Equal(t, "run-1", steps.All()[0].ContextMap()["run_id"])
	assert.Equal(t, KeyA, steps.All()[0].ContextMap()["key"])

	finished := logs.FilterMessage("elimination finished")
	require.Equal(t, 1, finished.Len())
	assert.EqualValues(t, 2, finished.All()[0].ContextMap()["conditionals"])
}

func TestEliminate_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewElimination(reg, "elimgraph")
	require.NoError(t, err)

	g := newChain()
	_, err = fgraph.Eliminate(g, ordering.Ordering{KeyA, KeyB, KeyC, KeyD, KeyX}, fgraph.WithMetrics(m))
	require.ErrorIs(t, err, fgraph.ErrUnknownVariable)

	// A:1, B:2, C:2, D:1 factors consumed
	assert.Equal(t, 4.0, testutil.ToFloat64(m.VariablesEliminated))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.FactorsConsumed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StepFailures.WithLabelValues("unknown_variable")))
}
