package graph

import "fmt"

// CSR is a compressed-sparse-row weighted undirected graph. It is built by
// adding edges to a mutable staging form and then frozen; once frozen it
// satisfies Graph.
//
// The staging/freeze split mirrors the teacher's Graph.AddEdge +
// Graph.Clone pattern (pkg2/louvain/graph.go) adapted to a CSR layout, which
// is the layout the reference implementation's DiGraphCsr uses for both the
// input graph and every aggregated level.
type CSR struct {
	n       int
	offsets []int
	adj     []int
	wei     []float64
	degrees []float64 // weighted degree per vertex, self-loop counted once
	total   float64   // sum of all directed arcs (each undirected edge twice, self-loop once)
	frozen  bool

	// staging adjacency, only used before Freeze
	stageAdj []*[]int
	stageWei []*[]float64
}

// New creates a CSR graph with n vertices (ids 0..n-1) and no edges yet.
func New(n int) *CSR {
	g := &CSR{n: n}
	g.stageAdj = make([]*[]int, n)
	g.stageWei = make([]*[]float64, n)
	g.degrees = make([]float64, n)
	for i := range g.stageAdj {
		a, w := []int{}, []float64{}
		g.stageAdj[i] = &a
		g.stageWei[i] = &w
	}
	return g
}

// AddEdge adds an undirected weighted edge u-v. Adding the same pair twice
// creates a parallel edge (weights accumulate only under Freeze's caller
// responsibility, not here) -- callers that want simple graphs should
// de-duplicate before calling AddEdge.
func (g *CSR) AddEdge(u, v int, w float64) error {
	if g.frozen {
		return fmt.Errorf("graph: cannot AddEdge after Freeze")
	}
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return fmt.Errorf("graph: vertex out of range: u=%d v=%d n=%d", u, v, g.n)
	}
	*g.stageAdj[u] = append(*g.stageAdj[u], v)
	*g.stageWei[u] = append(*g.stageWei[u], w)
	g.degrees[u] += w
	g.total += w
	if u != v {
		*g.stageAdj[v] = append(*g.stageAdj[v], u)
		*g.stageWei[v] = append(*g.stageWei[v], w)
		g.degrees[v] += w
		g.total += w
	}
	// Self-loops are reported once in the adjacency, so they contribute
	// their weight once to both vtot and the total -- matching
	// original_source/src/louvain.hxx's louvainVertexWeightsW, which just
	// sums whatever forEachEdge reports with no self-loop special case.
	return nil
}

// Freeze compacts the staged adjacency into CSR arrays. The graph must not
// be modified afterwards.
func (g *CSR) Freeze() {
	if g.frozen {
		return
	}
	g.offsets = make([]int, g.n+1)
	for i := 0; i < g.n; i++ {
		g.offsets[i+1] = g.offsets[i] + len(*g.stageAdj[i])
	}
	m := g.offsets[g.n]
	g.adj = make([]int, 0, m)
	g.wei = make([]float64, 0, m)
	for i := 0; i < g.n; i++ {
		g.adj = append(g.adj, (*g.stageAdj[i])...)
		g.wei = append(g.wei, (*g.stageWei[i])...)
	}
	g.stageAdj = nil
	g.stageWei = nil
	g.frozen = true
}

func (g *CSR) Span() int  { return g.n }
func (g *CSR) Order() int { return g.n }

func (g *CSR) HasVertex(u int) bool { return u >= 0 && u < g.n }

func (g *CSR) Degree(u int) int {
	if !g.frozen {
		return len(*g.stageAdj[u])
	}
	return g.offsets[u+1] - g.offsets[u]
}

// WeightedDegree returns the summed incident edge weight of u (vtot before
// the engine adds any caller-supplied vertex weighting), self-loops counted
// once -- as they appear in the adjacency -- per the data model in spec.md
// §3.
func (g *CSR) WeightedDegree(u int) float64 { return g.degrees[u] }

// FromArrays builds an already-frozen CSR directly from a CSR-shaped
// offsets/adjacency/weight triple, for callers (the aggregator, C6) that
// compute a next-level graph's rows themselves rather than adding edges one
// at a time through AddEdge. offsets must have length n+1 and adj/wei must
// have matching lengths; each directed arc (u, v, w) must already appear in
// both u's and v's rows for the result to behave as an undirected graph.
func FromArrays(n int, offsets []int, adj []int, wei []float64) *CSR {
	g := &CSR{n: n, offsets: offsets, adj: adj, wei: wei, frozen: true}
	g.degrees = make([]float64, n)
	for u := 0; u < n; u++ {
		lo, hi := offsets[u], offsets[u+1]
		for i := lo; i < hi; i++ {
			g.degrees[u] += wei[i]
			g.total += wei[i]
		}
	}
	return g
}

// TotalWeight returns Σ w(u,v) over every directed arc (i.e. 2M).
func (g *CSR) TotalWeight() float64 { return g.total }

func (g *CSR) ForEachVertex(f func(u int)) {
	for u := 0; u < g.n; u++ {
		f(u)
	}
}

func (g *CSR) ForEachEdge(u int, f func(v int, w float64)) {
	if !g.frozen {
		adj, wei := *g.stageAdj[u], *g.stageWei[u]
		for i, v := range adj {
			f(v, wei[i])
		}
		return
	}
	lo, hi := g.offsets[u], g.offsets[u+1]
	for i := lo; i < hi; i++ {
		f(g.adj[i], g.wei[i])
	}
}

var _ Graph = (*CSR)(nil)
