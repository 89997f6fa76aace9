package louvain

// scratch is one worker's sparse accumulator: community id -> accumulated
// weight touched while scanning a single vertex (C1, spec.md §4.1).
//
// vcout is a dense array of length span used as a sparse map: vcout[c] is
// nonzero iff c is present in vcs. This trades O(span) memory per worker
// for O(1) amortized access and an O(|vcs|) clear, which spec.md §9
// explicitly calls out as intentional and worth keeping from the reference
// implementation (louvainScanCommunityW / louvainClearScanW in
// original_source/src/louvain.hxx).
type scratch struct {
	vcs   []int
	vcout []float64
}

func newScratch(span int) *scratch {
	return &scratch{vcout: make([]float64, span)}
}

// scan records the edge (u, v, w) against u's accumulator. self controls
// whether the v == u case (a self-loop) is included: false during local
// moving, true during aggregation (spec.md §4.1, §4.6).
func (s *scratch) scan(vcom []int, u, v int, w float64, self bool) {
	if !self && u == v {
		return
	}
	c := vcom[v]
	if s.vcout[c] == 0 {
		s.vcs = append(s.vcs, c)
	}
	s.vcout[c] += w
}

// clear resets every touched slot to zero and empties vcs, in O(|vcs|) time.
func (s *scratch) clear() {
	for _, c := range s.vcs {
		s.vcout[c] = 0
	}
	s.vcs = s.vcs[:0]
}

// resize grows the dense accumulator to span, clearing it. Used when
// respanning onto a smaller/larger aggregated level graph.
func (s *scratch) resize(span int) {
	if cap(s.vcout) >= span {
		s.vcout = s.vcout[:span]
		for i := range s.vcout {
			s.vcout[i] = 0
		}
	} else {
		s.vcout = make([]float64, span)
	}
	s.vcs = s.vcs[:0]
}

// scratchPool holds one scratch per worker, allocated once per run of the
// algorithm (once per Options.Repeat repetition inside Run) and reused
// across every iteration and pass of that run (mirrors
// louvainAllocateHashtablesW in original_source/src/louvain.hxx, which
// allocates one hashtable pair per OpenMP thread for the whole call).
type scratchPool struct {
	workers []*scratch
}

func newScratchPool(workers, span int) *scratchPool {
	p := &scratchPool{workers: make([]*scratch, workers)}
	for i := range p.workers {
		p.workers[i] = newScratch(span)
	}
	return p
}

func (p *scratchPool) get(worker int) *scratch { return p.workers[worker] }

func (p *scratchPool) resize(span int) {
	for _, s := range p.workers {
		s.resize(span)
	}
}
