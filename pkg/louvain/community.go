package louvain

import (
	"sync/atomic"

	"github.com/gilchrisn/louvain-engine/pkg/graph"
)

// renumberCommunities compacts the community ids appearing in vcom to a
// contiguous range [0, C) and rewrites vcom in place, returning C (C5,
// spec.md §4.5). This mirrors louvainRenumberCommunitiesW in
// original_source/src/louvain.hxx: mark which ids exist, exclusive-scan to
// assign new ids, then remap every vertex.
//
// The existence scan and the scan-result prefix sum are small per-vertex /
// per-id work done once per level, so they run on the calling goroutine;
// only the final remap (the part proportional to graph order rather than
// community count) is parallelized, matching where the original spends its
// OpenMP pragmas (the remap loop, not the tiny sequential exclusive scan).
func renumberCommunities(vcom []int, g graph.Graph, workers int) int {
	span := g.Span()

	exists := make([]bool, span)
	g.ForEachVertex(func(u int) {
		exists[vcom[u]] = true
	})

	newID := make([]int, span)
	count := 0
	for c := 0; c < span; c++ {
		if exists[c] {
			newID[c] = count
			count++
		} else {
			newID[c] = -1
		}
	}

	parallelFor(span, workers, func(_, u int) {
		if g.HasVertex(u) {
			vcom[u] = newID[vcom[u]]
		}
	})

	return count
}

// buildCommunityCSR groups vertices by (already renumbered) community id
// into a CSR-style offsets/members pair: members[offsets[c]:offsets[c+1]]
// lists every vertex belonging to community c (C5, spec.md §4.5). This is
// the count -> prefix-sum -> scatter shape of
// louvainCountCommunityVerticesW / louvainCommunityVerticesW in
// original_source/src/louvain.hxx, parallelized the same way
// community.go's sibling renumber step is: counting and scattering run
// concurrently over vertex ranges, the prefix sum itself (proportional to
// community count, not graph order) runs sequentially.
func buildCommunityCSR(vcom []int, g graph.Graph, numCommunities, workers int) (offsets []int, members []int) {
	counts := make([]int64, numCommunities)
	span := g.Span()
	parallelFor(span, workers, func(_, u int) {
		if g.HasVertex(u) {
			atomic.AddInt64(&counts[vcom[u]], 1)
		}
	})

	offsets = make([]int, numCommunities+1)
	for c := 0; c < numCommunities; c++ {
		offsets[c+1] = offsets[c] + int(counts[c])
	}

	members = make([]int, offsets[numCommunities])
	cursor := make([]int64, numCommunities)
	for c := range cursor {
		cursor[c] = int64(offsets[c])
	}

	parallelFor(span, workers, func(_, u int) {
		if !g.HasVertex(u) {
			return
		}
		c := vcom[u]
		idx := atomic.AddInt64(&cursor[c], 1) - 1
		members[idx] = u
	})

	return offsets, members
}
