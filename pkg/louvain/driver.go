package louvain

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/gilchrisn/louvain-engine/internal/atomicfloat"
	"github.com/gilchrisn/louvain-engine/pkg/graph"
)

// Run executes the full multi-level Louvain procedure on g (C7, spec.md
// §4.7): repeated rounds of local-moving (C3/C4) followed by aggregation
// (C5/C6), until the graph stops shrinking meaningfully or MaxPasses is
// hit. q, if non-nil, seeds the first level's community assignment
// (spec.md §4.2's initializeFrom); a nil q starts every vertex in its own
// singleton community.
//
// Honoring Options.Repeat, the whole procedure runs Repeat times and the
// timing fields of the returned Result are averaged across repetitions,
// while the membership returned is that of the last repetition -- the
// same shape as the reference implementation's `measureDurationMarked(...,
// o.repeat)` (original_source/src/louvain.hxx), which only times are
// accumulated by: correctness doesn't depend on the run, so any one
// membership speaks for all of them.
func Run(g graph.Graph, q []int, opts Options) (*Result, error) {
	if q != nil && len(q) != g.Span() {
		return nil, ErrInvalidPartition
	}

	repeat := opts.repeat()
	res := &Result{RunID: uuid.New()}
	opts.Logger = opts.Logger.With().Str("run_id", res.RunID.String()).Logger()

	for r := 0; r < repeat; r++ {
		runRes, err := runOnce(g, q, opts)
		if err != nil {
			return nil, err
		}

		res.Time += runRes.Time
		res.PreprocessingTime += runRes.PreprocessingTime
		res.FirstPassTime += runRes.FirstPassTime
		res.LocalMoveTime += runRes.LocalMoveTime
		res.AggregationTime += runRes.AggregationTime

		res.Membership = runRes.Membership
		res.Levels = runRes.Levels
		res.Iterations = runRes.Iterations
		res.Passes = runRes.Passes
		res.AffectedVertices = runRes.AffectedVertices
	}

	n := time.Duration(repeat)
	res.Time /= n
	res.PreprocessingTime /= n
	res.FirstPassTime /= n
	res.LocalMoveTime /= n
	res.AggregationTime /= n

	return res, nil
}

// runOnce executes a single, un-averaged run of the algorithm described by
// Run's doc comment.
func runOnce(g graph.Graph, q []int, opts Options) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				res, err = nil, fmt.Errorf("%w: %v", ErrAllocation, r)
				return
			}
			panic(r)
		}
	}()

	started := time.Now()
	workers := opts.workers()
	logger := opts.Logger.With().Str("run_component", "louvain").Logger()

	n0 := g.Span()
	a := make([]int, n0)
	for u := range a {
		a[u] = u
	}

	res = &Result{}

	cur := g
	vtot := make([]float64, cur.Span())
	vertexWeights(cur, vtot, workers)
	if !allFinite(vtot) {
		return nil, ErrNonFinite
	}

	vcom := make([]int, cur.Span())
	ctot := atomicfloat.NewSlice(cur.Span())
	if q != nil {
		initializeFrom(cur, vcom, ctot, vtot, q, workers)
	} else {
		initializeSingleton(cur, vcom, ctot, vtot, workers)
	}

	preStart := time.Now()
	vaff := make([]bool, cur.Span())
	opts.preprocess()(cur, vaff)
	res.PreprocessingTime = time.Since(preStart)
	res.AffectedVertices = countTrue(vaff)

	pool := newScratchPool(workers, cur.Span())

	m := graph.EdgeWeight(g) / 2
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return nil, ErrNonFinite
	}

	// M<=0 means there is no edge weight to gain modularity from: the
	// reference loop guard (`M>0 && p<P`, louvain.hxx:739) never lets the
	// pass loop run, so the initial assignment (singleton or the caller's
	// q) stands as-is, with 0 iterations and 0 passes.
	if m <= 0 {
		res.Membership = append([]int(nil), vcom...)
		res.Time = time.Since(started)
		return res, nil
	}

	tolerance := opts.Tolerance
	rng := opts.rng()

	pass := 0
	for {
		moveStart := time.Now()
		order := permutation(rng, cur.Span())
		iterations := 0
		var lastGain float64
		var lastMoves int

		for iter := 0; iter < opts.MaxIterations; iter++ {
			moves, gain := localMove(cur, vcom, vtot, ctot, vaff, pool, order, m, opts.Resolution, workers)
			iterations++
			lastGain = gain
			lastMoves = moves
			logger.Debug().
				Int("level", pass).
				Int("iteration", iter).
				Int("moves", moves).
				Float64("gain", gain).
				Msg("local-move iteration")
			if moves == 0 || gain < tolerance {
				break
			}
		}
		// A lone first sweep that moved nothing made no progress at all --
		// report 0 iterations for the level, matching the reference's
		// "return l>1 || el ? l : 0" convention (louvain.hxx:376).
		if iterations <= 1 && lastMoves == 0 {
			iterations = 0
		}

		elapsed := time.Since(moveStart)
		res.LocalMoveTime += elapsed
		if pass == 0 {
			res.FirstPassTime = elapsed
		}

		numCommunities := renumberCommunities(vcom, cur, workers)
		for u := range a {
			a[u] = vcom[a[u]]
		}

		modQ := Modularity(cur, vcom, opts.Resolution)
		if math.IsNaN(modQ) || math.IsInf(modQ, 0) {
			return nil, ErrNonFinite
		}
		res.Levels = append(res.Levels, LevelStats{
			Level:       pass,
			Order:       cur.Span(),
			Communities: numCommunities,
			Modularity:  modQ,
			Iterations:  iterations,
		})
		res.Iterations += iterations
		pass++

		logger.Info().
			Int("level", pass-1).
			Int("order", cur.Span()).
			Int("communities", numCommunities).
			Float64("modularity", modQ).
			Int("iterations", iterations).
			Float64("gain", lastGain).
			Msg("level complete")

		// iterations<=1 means local-moving converged at this level without
		// ever making more than one sweep's worth of progress -- the
		// reference stops the pass loop there too (`m<=1 || p>=P`,
		// louvain.hxx:750) rather than aggregating a graph that didn't move.
		if numCommunities <= 1 || pass >= opts.MaxPasses || iterations <= 1 {
			break
		}
		ratio := float64(numCommunities) / float64(cur.Span())
		if ratio >= opts.AggregationTolerance {
			break
		}

		aggStart := time.Now()
		offsets, members := buildCommunityCSR(vcom, cur, numCommunities, workers)
		pool.resize(numCommunities)
		next := aggregate(cur, vcom, offsets, members, pool, numCommunities, workers)
		res.AggregationTime += time.Since(aggStart)

		cur = next
		vtot = make([]float64, cur.Span())
		vertexWeights(cur, vtot, workers)
		vcom = make([]int, cur.Span())
		ctot.Resize(cur.Span())
		initializeSingleton(cur, vcom, ctot, vtot, workers)
		vaff = make([]bool, cur.Span())
		opts.preprocess()(cur, vaff)
		tolerance /= opts.ToleranceDecline
	}

	res.Membership = a
	res.Passes = pass
	res.Time = time.Since(started)

	return res, nil
}

// countTrue counts the set entries of a []bool, used to tally how many
// vertices a preprocessing pass marked affected.
func countTrue(bs []bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}

// allFinite reports whether every value is neither NaN nor infinite, the
// check spec.md §7 requires before trusting a computed weight or score.
func allFinite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// permutation returns a random permutation of [0, n), the randomized visit
// order spec.md §4.4 requires of the local-mover.
func permutation(rng *rand.Rand, n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	return order
}
