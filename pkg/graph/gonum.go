package graph

import (
	gonumgraph "gonum.org/v1/gonum/graph"
)

// FromGonum adapts a gonum weighted undirected graph into a CSR, so callers
// that already build graphs with gonum.org/v1/gonum/graph/simple can hand
// them straight to the louvain engine. Node IDs are remapped densely to [0, n).
//
// Edge weight is read via the provided weight function so callers can plug
// in graph.Weighted.Weight or a constant-weight shim for unweighted graphs.
func FromGonum(g gonumgraph.Undirected, weight func(uid, vid int64) float64) *CSR {
	nodes := gonumgraph.NodesOf(g.Nodes())
	index := make(map[int64]int, len(nodes))
	for i, n := range nodes {
		index[n.ID()] = i
	}

	out := New(len(nodes))
	seen := make(map[[2]int]bool)
	for _, n := range nodes {
		u := index[n.ID()]
		to := gonumgraph.NodesOf(g.From(n.ID()))
		for _, m := range to {
			v := index[m.ID()]
			key := [2]int{u, v}
			if v < u {
				key = [2]int{v, u}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			w := weight(n.ID(), m.ID())
			out.AddEdge(u, v, w)
		}
	}
	out.Freeze()
	return out
}
