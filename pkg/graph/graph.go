// Package graph defines the narrow weighted-undirected-graph contract that
// the louvain engine consumes, plus a CSR-backed implementation of it.
//
// This is deliberately not a general-purpose graph library: it exposes only
// what community detection needs (span, order, per-vertex degree and edge
// iteration), the same shape as the adjacency interface `_main.hxx`/`Graph.hxx`
// expose to `louvain.hxx` in the reference implementation this package is
// modeled on.
package graph

// Graph is a weighted, symmetric (undirected) adjacency structure.
//
// Vertex ids are non-negative integers. Span is an upper bound on vertex ids
// (the length callers must size per-vertex state arrays to); Order is the
// count of vertices actually present. A vertex id in [0, Span) need not be
// present -- HasVertex reports which ones are. Self-loops are permitted.
// Implementations must guarantee w(u,v) == w(v,u).
type Graph interface {
	// Span is one past the largest vertex id ever assigned.
	Span() int
	// Order is the number of vertices present.
	Order() int
	// HasVertex reports whether u names a present vertex.
	HasVertex(u int) bool
	// Degree returns the number of out-edges of u (not their summed weight).
	Degree(u int) int
	// ForEachVertex calls f once for every present vertex, in id order.
	ForEachVertex(f func(u int))
	// ForEachEdge calls f once for every out-edge (v, w) of u, in no
	// particular order. Self-loops are reported with v == u.
	ForEachEdge(u int, f func(v int, w float64))
}

// EdgeWeight returns the sum of edge weights over every directed arc
// reported by ForEachEdge, i.e. twice the undirected total weight M (self
// loops are reported once per vertex, so they contribute their weight once
// here, matching the convention used throughout the engine).
func EdgeWeight(g Graph) float64 {
	var total float64
	g.ForEachVertex(func(u int) {
		g.ForEachEdge(u, func(_ int, w float64) {
			total += w
		})
	})
	return total
}
