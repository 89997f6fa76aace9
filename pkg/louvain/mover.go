package louvain

import (
	"github.com/gilchrisn/louvain-engine/internal/atomicfloat"
	"github.com/gilchrisn/louvain-engine/pkg/graph"
)

// chooseCommunity picks the best community to move vertex u into given its
// already-scanned neighbor accumulator s (C3, spec.md §4.3). d is u's
// current community. d is never scored as a candidate; when no other
// community gives a strictly positive gain it returns (d, 0), which the
// caller treats as "no move" -- mirroring louvainChooseCommunity in
// original_source/src/louvain.hxx, including its "only move if emax > 0"
// convention (a candidate with non-positive gain loses to staying put).
func chooseCommunity(u, d int, s *scratch, vtot []float64, ctot *atomicfloat.Slice, m, r float64) (best int, gain float64) {
	wd := s.vcout[d]
	ctotD := ctot.Get(d)
	best, gain = d, 0
	for _, c := range s.vcs {
		if c == d {
			continue
		}
		wc := s.vcout[c]
		e := deltaModularity(wc, wd, vtot[u], ctot.Get(c), ctotD, m, r)
		if e > gain {
			gain, best = e, c
		}
	}
	return best, gain
}

// localMove runs one round of the local-moving phase (C4, spec.md §4.4):
// every vertex in order scans its neighbors' communities, picks the best
// move via chooseCommunity, and -- if that move strictly improves modularity
// (gain > 0) -- migrates, marking its neighbors affected for the next round.
// A move is accepted on ANY positive gain, however small; tolerance plays no
// part here -- it governs only whether the caller runs another round over
// the accumulated totalGain (louvain.hxx:303,370's "if (c)"/emax>0 test, not
// its separate fc/el convergence check). order lists the vertices to visit
// this round (already shuffled by the caller) and may be a strict subset of
// every vertex (only the affected ones).
//
// Per the concurrency rules this module follows: vcom[u] is written only by
// the goroutine that owns u this round (one entry per order, order
// partitioned disjointly across workers), so no synchronization is needed
// on the write; reads of vcom[v] for a neighbor v owned by another
// in-flight worker may observe a stale value, which is the same benign,
// intentionally-async race the reference OpenMP implementation accepts.
// ctot is updated through atomicfloat.Slice because many workers can touch
// the same community concurrently. vaff is written with plain bool stores:
// a lost update just delays a vertex to the next round, which is also
// tolerated.
func localMove(g graph.Graph, vcom []int, vtot []float64, ctot *atomicfloat.Slice, vaff []bool, pool *scratchPool, order []int, m, r float64, workers int) (moves int, totalGain float64) {
	movesCounted := atomicfloat.NewSlice(1)
	gainCounted := atomicfloat.NewSlice(1)

	parallelFor(len(order), workers, func(worker, i int) {
		u := order[i]
		if !g.HasVertex(u) || !vaff[u] {
			return
		}
		vaff[u] = false

		s := pool.get(worker)
		d := vcom[u]
		g.ForEachEdge(u, func(v int, w float64) {
			s.scan(vcom, u, v, w, false)
		})

		best, gain := chooseCommunity(u, d, s, vtot, ctot, m, r)
		s.clear()

		if best != d && gain > 0 {
			ctot.Add(d, -vtot[u])
			ctot.Add(best, vtot[u])
			vcom[u] = best

			g.ForEachEdge(u, func(v int, _ float64) {
				vaff[v] = true
			})
			vaff[u] = true

			movesCounted.Add(0, 1)
			gainCounted.Add(0, gain)
		}
	})

	return int(movesCounted.Get(0)), gainCounted.Get(0)
}
