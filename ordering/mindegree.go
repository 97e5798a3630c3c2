package ordering

import "sort"

// MinDegree is a greedy minimum-degree oracle.
//
// It builds the undirected interaction graph (two variables are adjacent when
// some factor contains both), then repeatedly removes the variable with the
// fewest neighbors, connecting those neighbors into a clique to account for
// fill-in. Ties break by ascending key so the result is deterministic.
var MinDegree Oracle = OracleFunc(minDegree)

func minDegree(s Structure) (Ordering, error) {
	// 1. Validate input
	if s == nil {
		return nil, ErrNilStructure
	}

	// 2. Build adjacency from scopes; isolated variables still get an entry
	adj := make(map[string]map[string]struct{})
	for _, key := range s.Keys() {
		adj[key] = make(map[string]struct{})
	}
	for _, scope := range s.Scopes() {
		for _, a := range scope {
			if _, ok := adj[a]; !ok {
				adj[a] = make(map[string]struct{})
			}
			for _, b := range scope {
				if a != b {
					adj[a][b] = struct{}{}
				}
			}
		}
	}

	// 3. Greedy elimination
	remaining := make([]string, 0, len(adj))
	for key := range adj {
		remaining = append(remaining, key)
	}
	sort.Strings(remaining)

	out := make(Ordering, 0, len(remaining))
	for len(remaining) > 0 {
		// 3a. Pick minimum degree, first in key order on ties
		best := 0
		for i := 1; i < len(remaining); i++ {
			if len(adj[remaining[i]]) < len(adj[remaining[best]]) {
				best = i
			}
		}
		v := remaining[best]
		remaining = append(remaining[:best], remaining[best+1:]...)
		out = append(out, v)

		// 3b. Connect v's neighbors pairwise (fill-in), then detach v
		nbrs := adj[v]
		for a := range nbrs {
			delete(adj[a], v)
			for b := range nbrs {
				if a != b {
					adj[a][b] = struct{}{}
				}
			}
		}
		delete(adj, v)
	}

	return out, nil
}
