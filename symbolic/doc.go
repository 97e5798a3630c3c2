// Package symbolic is a structure-only factor payload for fgraph.
//
// A symbolic Factor carries nothing but its scope. Combining factors unions
// their scopes; eliminating a key from a scope S yields the Conditional
// P(key | S∖{key}) and a residual Factor over S∖{key}. Running fgraph
// elimination over symbolic factors therefore computes the exact structure
// (fill-in, separators, clique sizes) that a numeric payload would produce,
// without any numerics. It is the payload the fgraph tests and examples use.
//
//	g := symbolic.NewGraph()
//	g.Add(symbolic.NewFactor("x1", "x2"))
//	g.Add(symbolic.NewFactor("x2", "x3"))
//	bn, _ := fgraph.Eliminate(g, ordering.Ordering{"x1", "x2"})
//	// bn: P(x1|x2), P(x2|x3); g retains f(x3)
package symbolic
