package louvain

import "github.com/gilchrisn/louvain-engine/pkg/graph"

// deltaModularity computes the standard Louvain gain for moving a vertex
// out of community d and into community c, given:
//
//	wc    - accumulated edge weight from u to c (vcout[c])
//	wd    - accumulated edge weight from u to d, excluding u itself (vcout[d])
//	vtotU - total incident weight of u (vtot[u])
//	ctotC - total incident weight of community c, not counting u (ctot[c])
//	ctotD - total incident weight of community d, counting u (ctot[d])
//	M     - total undirected edge weight of the graph
//	R     - resolution
//
// This is the pure modularity oracle spec.md §6.3 calls an external
// collaborator; the formula itself is grounded directly on
// original_source/src/louvain.hxx's deltaModularity (the reference
// implementation this module's Louvain variant is derived from).
func deltaModularity(wc, wd, vtotU, ctotC, ctotD, m, r float64) float64 {
	if m <= 0 {
		return 0
	}
	return (wc-wd)/m - r*vtotU*(ctotC-ctotD+vtotU)/(2*m*m)
}

// edgeWeight returns Σ w(u,v) over every directed arc of g (spec.md §6.3).
// M, the undirected total weight, is edgeWeight(g)/2.
func edgeWeight(g graph.Graph) float64 { return graph.EdgeWeight(g) }

// Modularity computes Newman's modularity Q of partition vcom on g at the
// given resolution. It is not on the engine's hot path -- it exists for
// tests and for reporting (spec.md §8's testable properties are phrased in
// terms of Q) -- so it recomputes internal/total community weight directly
// from the graph rather than reusing the engine's incrementally maintained
// ctot, the same separation of concerns as the teacher's standalone
// CalculateModularity (pkg/louvain/algorithm.go) which is never called from
// inside the hot per-move loop either.
func Modularity(g graph.Graph, vcom []int, resolution float64) float64 {
	m2 := graph.EdgeWeight(g)
	if m2 <= 0 {
		return 0
	}
	internal := make(map[int]float64)
	total := make(map[int]float64)
	g.ForEachVertex(func(u int) {
		c := vcom[u]
		g.ForEachEdge(u, func(v int, w float64) {
			total[c] += w
			if vcom[v] == c {
				internal[c] += w
			}
		})
	})
	var q float64
	for c, tot := range total {
		q += internal[c]/m2 - resolution*(tot/m2)*(tot/m2)
	}
	return q
}
