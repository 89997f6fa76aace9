package louvain

import "github.com/gilchrisn/louvain-engine/pkg/graph"

// aggregate builds the next-level graph y, one super-vertex per community
// (C6, spec.md §4.6). offsets/members is the community-vertex CSR built by
// buildCommunityCSR; vcom must already be renumbered to [0, numCommunities).
//
// Each community is scanned by exactly one worker (parallelFor hands each
// worker goroutine a contiguous range of community ids), so every row of the result is
// computed without any cross-goroutine write contention: a community's row
// only ever touches that community's own entry in rowAdj/rowWei. This
// mirrors louvainAggregateEdgesW in original_source/src/louvain.hxx, which
// -- unlike the local-mover -- scans with SELF=true, so a vertex's own
// self-loop contributes to its community's self-loop weight exactly once,
// and an internal edge between two distinct members of the same community
// is counted from both endpoints' scans, giving the new self-loop weight
// the "twice the internal weight plus original self-loops" value spec.md
// §4.6 requires.
func aggregate(g graph.Graph, vcom []int, offsets []int, members []int, pool *scratchPool, numCommunities, workers int) *graph.CSR {
	rowAdj := make([][]int, numCommunities)
	rowWei := make([][]float64, numCommunities)

	parallelFor(numCommunities, workers, func(worker, c int) {
		s := pool.get(worker)
		for _, u := range members[offsets[c]:offsets[c+1]] {
			g.ForEachEdge(u, func(v int, w float64) {
				s.scan(vcom, u, v, w, true)
			})
		}

		adj := make([]int, len(s.vcs))
		wei := make([]float64, len(s.vcs))
		for i, d := range s.vcs {
			adj[i] = d
			wei[i] = s.vcout[d]
		}
		rowAdj[c] = adj
		rowWei[c] = wei
		s.clear()
	})

	yOffsets := make([]int, numCommunities+1)
	for c := 0; c < numCommunities; c++ {
		yOffsets[c+1] = yOffsets[c] + len(rowAdj[c])
	}

	yAdj := make([]int, yOffsets[numCommunities])
	yWei := make([]float64, yOffsets[numCommunities])
	parallelFor(numCommunities, workers, func(_, c int) {
		base := yOffsets[c]
		copy(yAdj[base:], rowAdj[c])
		copy(yWei[base:], rowWei[c])
	})

	return graph.FromArrays(numCommunities, yOffsets, yAdj, yWei)
}
