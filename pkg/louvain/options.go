package louvain

import (
	"math/rand"
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

// PreprocessFunc decides which vertices start a pass already marked
// "affected" (spec.md §4.7's preprocessing hook). The zero value of
// Options uses markAllAffected, which marks every vertex, matching the
// reference implementation's default first-pass behavior.
type PreprocessFunc func(g interface {
	Span() int
	HasVertex(u int) bool
}, vaff []bool)

// markAllAffected marks every live vertex as affected, the default
// preprocessing step used when Options.Preprocess is nil.
func markAllAffected(g interface {
	Span() int
	HasVertex(u int) bool
}, vaff []bool) {
	for u := 0; u < g.Span(); u++ {
		if g.HasVertex(u) {
			vaff[u] = true
		}
	}
}

// Options configures a Run call. It is a plain struct -- no config
// framework dependency -- mirroring the teacher's LouvainConfig
// (pkg/louvain/models.go): the CLI's config.Loader (internal/config)
// translates a viper-backed config file into one of these, but the
// algorithm package itself never imports viper.
type Options struct {
	// Resolution (R) scales the degree-correction term of the modularity
	// gain; 1.0 is standard modularity (spec.md §4.3).
	Resolution float64

	// Tolerance (E) is the minimum total modularity gain a local-move
	// round must achieve for the level to run another round.
	Tolerance float64

	// AggregationTolerance (A) gates whether a new level is worth
	// building: aggregation stops once the aggregated graph's order is
	// not smaller than AggregationTolerance times the previous order
	// (spec.md §4.7, "community count / vertex count >= A").
	AggregationTolerance float64

	// ToleranceDecline (D) divides Tolerance after every pass, tightening
	// the convergence criterion at coarser levels the way the reference
	// implementation's `E /= o.toleranceDecline` does.
	ToleranceDecline float64

	// MaxIterations bounds local-move rounds within a single level.
	MaxIterations int

	// MaxPasses bounds the number of levels (local-move + aggregate)
	// the driver will run.
	MaxPasses int

	// Repeat re-runs the whole algorithm this many times and averages
	// the timing fields of the result, keeping only the last run's
	// membership (supplemented feature 1; mirrors the original's
	// `measureDurationMarked(..., o.repeat)`). Repeat <= 0 is treated
	// as 1.
	Repeat int

	// Workers bounds the number of goroutines parallelFor fans out to.
	// Workers <= 0 defaults to runtime.NumCPU().
	Workers int

	// RandomSeed seeds the per-run shuffle of vertex processing order
	// used by the local-mover (spec.md §4.4's "randomized visit order").
	RandomSeed int64

	// Preprocess decides which vertices start a pass as affected. Nil
	// uses markAllAffected.
	Preprocess PreprocessFunc

	// Logger receives one structured event per pass and, at debug
	// level, one per local-move iteration. The zero value is zerolog's
	// nop logger, matching the teacher's opt-in logging posture.
	Logger zerolog.Logger
}

// DefaultOptions returns the option set the reference implementation
// documents as its own defaults (original_source/src/louvain.hxx's
// LouvainOptions default member initializers), with Workers defaulted
// to the host's CPU count and a time-seeded RandomSeed the way the
// teacher's graph-clustering-algorithm/pkg/louvain/config.go does for
// algorithm.random_seed.
func DefaultOptions() Options {
	return Options{
		Resolution:           1.0,
		Tolerance:            1e-2,
		AggregationTolerance: 0.8,
		ToleranceDecline:     100,
		MaxIterations:        20,
		MaxPasses:            10,
		Repeat:               1,
		Workers:              runtime.NumCPU(),
		RandomSeed:           time.Now().UnixNano(),
		Logger:               zerolog.Nop(),
	}
}

func (o Options) workers() int {
	if o.Workers <= 0 {
		return runtime.NumCPU()
	}
	return o.Workers
}

func (o Options) repeat() int {
	if o.Repeat <= 0 {
		return 1
	}
	return o.Repeat
}

func (o Options) preprocess() PreprocessFunc {
	if o.Preprocess == nil {
		return markAllAffected
	}
	return o.Preprocess
}

func (o Options) rng() *rand.Rand {
	return rand.New(rand.NewSource(o.RandomSeed))
}
