package fgraph_test

import (
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/elimgraph/symbolic"
)

// Common variable keys used across fgraph tests.
const (
	KeyA = "A"
	KeyB = "B"
	KeyC = "C"
	KeyD = "D"
	KeyX = "X"
)

// newChain builds f(A,B), f(B,C), f(C,D) in slots 0, 1, 2.
func newChain() *symbolic.Graph {
	g := symbolic.NewGraph()
	g.Add(symbolic.NewFactor(KeyA, KeyB))
	g.Add(symbolic.NewFactor(KeyB, KeyC))
	g.Add(symbolic.NewFactor(KeyC, KeyD))

	return g
}

// tombstones counts removed slots by walking At.
func tombstones(g *symbolic.Graph) int {
	n := 0
	for i := 0; i < g.Size(); i++ {
		if _, ok, _ := g.At(i); !ok {
			n++
		}
	}

	return n
}

// brittle is a payload whose Combine or Eliminate can be told to misbehave.
type brittle struct {
	keys        []string
	failCombine bool
	wrongKey    bool
}

func (b *brittle) Keys() []string { return slices.Clone(b.keys) }

func (b *brittle) Print(w io.Writer, label string) { fmt.Fprintf(w, "%sbrittle%v\n", label, b.keys) }

func (b *brittle) Equals(o *brittle, _ float64) bool { return slices.Equal(b.keys, o.keys) }

func (b *brittle) Combine(others []*brittle) (*brittle, error) {
	joint := &brittle{keys: slices.Clone(b.keys), failCombine: b.failCombine, wrongKey: b.wrongKey}
	for _, o := range others {
		if o.failCombine {
			return nil, fmt.Errorf("refusing to combine %v", o.keys)
		}
		joint.keys = append(joint.keys, o.keys...)
		joint.wrongKey = joint.wrongKey || o.wrongKey
	}
	slices.Sort(joint.keys)
	joint.keys = slices.Compact(joint.keys)

	return joint, nil
}

func (b *brittle) Eliminate(key string) (*symbolic.Conditional, *brittle, error) {
	rest := slices.DeleteFunc(slices.Clone(b.keys), func(k string) bool { return k == key })
	if b.wrongKey {
		return symbolic.NewConditional(key+"'", rest...), &brittle{keys: rest}, nil
	}

	return symbolic.NewConditional(key, rest...), &brittle{keys: rest}, nil
}
