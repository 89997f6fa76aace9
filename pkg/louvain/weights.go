package louvain

import (
	"github.com/gilchrisn/louvain-engine/internal/atomicfloat"
	"github.com/gilchrisn/louvain-engine/pkg/graph"
)

// vertexWeights computes vtot[u] = Σ w(u,v) over every out-edge of u
// (spec.md §4.2 / C2), in parallel over vertex ranges.
func vertexWeights(g graph.Graph, vtot []float64, workers int) {
	span := g.Span()
	parallelFor(span, workers, func(_, u int) {
		if !g.HasVertex(u) {
			return
		}
		var total float64
		g.ForEachEdge(u, func(_ int, w float64) { total += w })
		vtot[u] = total
	})
}

// initializeSingleton sets vcom[u] = u and ctot[u] = vtot[u] for every
// vertex, i.e. every vertex starts in its own community (spec.md §4.2).
func initializeSingleton(g graph.Graph, vcom []int, ctot *atomicfloat.Slice, vtot []float64, workers int) {
	span := g.Span()
	parallelFor(span, workers, func(_, u int) {
		if !g.HasVertex(u) {
			return
		}
		vcom[u] = u
		ctot.Set(u, vtot[u])
	})
}

// initializeFrom sets vcom[u] = q[u] and accumulates ctot[q[u]] += vtot[u]
// for a caller-supplied initial partition q (spec.md §4.2). Multiple
// vertices may map to the same community, so ctot is updated atomically.
func initializeFrom(g graph.Graph, vcom []int, ctot *atomicfloat.Slice, vtot []float64, q []int, workers int) {
	span := g.Span()
	parallelFor(span, workers, func(_, u int) {
		if !g.HasVertex(u) {
			return
		}
		c := q[u]
		vcom[u] = c
		ctot.Add(c, vtot[u])
	})
}
