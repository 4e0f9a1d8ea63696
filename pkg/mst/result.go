package mst

import (
	"slices"
	"time"

	"github.com/spanviz/spanviz/pkg/graph"
)

// Result is the outcome of one algorithm run: the spanning forest, its
// total weight, the synthetic operation count, and the elapsed wall-clock
// time. Results are copied out of the algorithm; mutating one never
// affects the algorithm's stored state.
type Result struct {
	Edges      []graph.Edge
	TotalCost  int
	Operations int
	Elapsed    time.Duration
}

// ElapsedMS returns the elapsed time in fractional milliseconds.
func (r Result) ElapsedMS() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// clone returns a copy whose edge slice does not alias the receiver's.
func (r Result) clone() Result {
	out := r
	out.Edges = slices.Clone(r.Edges)
	return out
}

// Algorithm is a minimum-spanning-forest solver. Execute never fails on a
// valid graph; it resets internal state on entry, so re-invoking it on the
// same input reproduces the same edges, cost, and operation count.
type Algorithm interface {
	// Name identifies the algorithm ("prim" or "kruskal").
	Name() string
	// Execute computes the minimum spanning forest of g and returns the
	// result, which is also retained for the accessor methods.
	Execute(g *graph.Graph) Result
}

// resultStore retains the last completed run for accessor-style reads.
// Embedded by both algorithms.
type resultStore struct {
	last Result
}

func (s *resultStore) store(r Result) Result {
	s.last = r
	return r.clone()
}

// MSTEdges returns a copy of the forest built by the last run.
func (s *resultStore) MSTEdges() []graph.Edge { return slices.Clone(s.last.Edges) }

// TotalCost returns the summed weight of the last run's forest.
func (s *resultStore) TotalCost() int { return s.last.TotalCost }

// OperationsCount returns the last run's synthetic operation count.
func (s *resultStore) OperationsCount() int { return s.last.Operations }

// ElapsedMS returns the last run's elapsed time in milliseconds.
func (s *resultStore) ElapsedMS() float64 { return s.last.ElapsedMS() }
