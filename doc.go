// Package elimgraph is the generic elimination core of a factor-graph
// library: it stores factor graphs and reduces them, one variable at a time,
// into Bayes networks by sequential variable elimination.
//
// What is in the box?
//
//	fgraph/   — FactorGraph container, EliminateOne/Eliminate/EliminateAll,
//	            Combine, BayesNet, FromBayesNet, Restore
//	varindex/ — variable key → live factor slots
//	ordering/ — pluggable elimination-order oracles (Natural, MinDegree)
//	symbolic/ — structure-only factor payload (fill-in analysis, tests)
//	persist/  — versioned YAML / MessagePack records of a graph
//	metrics/  — Prometheus collectors for elimination runs
//
// The factor algebra itself (Gaussian, discrete, nonlinear) is supplied by
// the caller through the fgraph.Factor and fgraph.Conditional interfaces; the
// core only runs the graph-level protocol around it.
//
// Quick ASCII example:
//
//	A ─ f0 ─ B ─ f1 ─ C ─ f2 ─ D
//
//	eliminate [A B C]  →  P(A|B) P(B|C) P(C|D), remaining f(D)
//
//	go get github.com/katalvlaran/elimgraph
package elimgraph
