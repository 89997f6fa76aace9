package louvain

import (
	"time"

	"github.com/google/uuid"
)

// LevelStats records the per-level summary the driver logs and returns,
// mirroring the original's per-pass bookkeeping (order, size, modularity,
// iterations) in original_source/src/louvain.hxx's louvainSeq/louvainOmp
// driver loop.
type LevelStats struct {
	// Level is the zero-based pass index (0 is the input graph itself).
	Level int
	// Order is the number of vertices in the graph at this level.
	Order int
	// Communities is the number of distinct communities found at this
	// level, after renumbering.
	Communities int
	// Modularity is Q at the end of this level's local-move phase.
	Modularity float64
	// Iterations is the number of local-move rounds this level ran, or 0
	// when the level's only round moved no vertex.
	Iterations int
}

// Result is the outcome of a Run call: the final vertex membership
// (composed across every aggregation level), per-level statistics, and
// a per-repetition-averaged timing breakdown (spec.md §6.2, supplemented
// feature 1).
type Result struct {
	// RunID correlates this run's log lines and is otherwise inert.
	RunID uuid.UUID

	// Membership maps each original vertex id to its final community id.
	Membership []int

	// Levels holds one LevelStats per pass actually executed.
	Levels []LevelStats

	// Iterations is the total local-move rounds across every level.
	Iterations int
	// Passes is the number of levels (local-move + aggregate) executed.
	Passes int

	// AffectedVertices counts the vertices the first preprocessing call
	// marked affected, before the first pass; later levels are not
	// counted.
	AffectedVertices int

	// Time is the total wall-clock duration of Run, averaged over
	// Options.Repeat repetitions.
	Time time.Duration
	// PreprocessingTime is time spent in the first preprocessing hook
	// call, before the first pass; the calls on later levels are not timed.
	PreprocessingTime time.Duration
	// FirstPassTime is the duration of the first level's local-move phase.
	FirstPassTime time.Duration
	// LocalMoveTime is the cumulative duration of every level's local-move
	// phase.
	LocalMoveTime time.Duration
	// AggregationTime is the cumulative duration of every level's
	// aggregation phase.
	AggregationTime time.Duration
}
