package fgraph

// Combine returns a new graph whose slots are g1's followed by g2's,
// tombstones included, and whose index is the union of both with g2's slot
// numbers shifted by g1.Size(). The new graph uses g1's ordering oracle.
//
// Factor values are aliased, not copied: with pointer payloads the result
// shares factor instances with g1 and g2. Neither input is modified.
// Nil inputs are treated as empty graphs.
//
// Complexity: O(S1 + S2 + index size).
func Combine[F Factor[F, C], C Conditional[C]](g1, g2 *FactorGraph[F, C]) *FactorGraph[F, C] {
	capacity := 0
	opts := make([]Option, 0, 2)
	if g1 != nil {
		capacity += g1.Size()
		opts = append(opts, WithOracle(g1.oracle))
	}
	if g2 != nil {
		capacity += g2.Size()
	}
	out := New[F, C](append(opts, WithCapacity(capacity))...)

	for _, src := range []*FactorGraph[F, C]{g1, g2} {
		if src == nil {
			continue
		}
		offset := out.store.size()
		for _, e := range src.store.slots {
			if e.live {
				out.store.push(e.factor, copyKeys(e.keys))
				continue
			}
			out.store.pushRemoved()
		}
		out.index.Merge(src.index, offset)
	}

	return out
}
