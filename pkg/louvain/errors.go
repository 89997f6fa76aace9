package louvain

import "errors"

// ErrNonFinite is returned when a modularity or weight computation
// produces NaN or +/-Inf, the catastrophic case spec.md §7 calls out
// (e.g. a zero-weight graph feeding a division inside deltaModularity
// in a way the m<=0 guard didn't already catch).
var ErrNonFinite = errors.New("louvain: non-finite value produced during computation")

// ErrAllocation is returned when the engine cannot size its internal
// buffers for the requested graph (spec.md §7's "allocation failure"
// case), e.g. a Graph implementation reporting a negative or otherwise
// unusable Span. Run recovers the resulting runtime panic and reports
// it as this error instead of letting it escape the call.
var ErrAllocation = errors.New("louvain: failed to allocate internal buffers for graph")

// ErrInvalidPartition is returned when a caller-supplied initial
// partition q does not cover every live vertex of the graph.
var ErrInvalidPartition = errors.New("louvain: initial partition does not cover every vertex")
