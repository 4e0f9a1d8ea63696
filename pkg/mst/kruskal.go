package mst

import (
	"sort"
	"time"

	"github.com/spanviz/spanviz/pkg/graph"
)

// Kruskal builds a minimum spanning forest by global greedy edge
// selection over a disjoint-set forest. Create instances with
// [NewKruskal].
type Kruskal struct {
	resultStore
}

// NewKruskal returns a fresh Kruskal solver.
func NewKruskal() *Kruskal { return &Kruskal{} }

// Name implements [Algorithm].
func (k *Kruskal) Name() string { return "kruskal" }

// Execute computes the minimum spanning forest of g.
//
// Edges are sorted by ascending weight with a stable sort, so equal
// weights keep their original edge-list order. The scan accepts every
// edge whose endpoints sit in different sets and unions them, stopping
// early once |V|-1 edges are accepted. On disconnected graphs the early
// stop never fires and the scan runs to exhaustion, accepting |V|-k
// edges for k components. Complexity: O(E log E), dominated by the sort.
func (k *Kruskal) Execute(g *graph.Graph) Result {
	start := time.Now()

	var (
		forest []graph.Edge
		cost   int
		ops    int
	)
	if g == nil {
		return k.store(Result{Elapsed: time.Since(start)})
	}

	nodes := g.Nodes()
	edges := g.Edges()
	if len(nodes) == 0 || len(edges) == 0 {
		return k.store(Result{Elapsed: time.Since(start)})
	}

	uf := newUnionFind(nodes)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})
	ops += len(edges) // sort accounting

	for _, e := range edges {
		ops++ // edge scanned

		if !uf.connected(e.From, e.To) {
			forest = append(forest, e)
			cost += e.Weight
			uf.union(e.From, e.To)
			ops += 2 // accept edge + union

			// Early stop is only reachable on connected graphs.
			if len(forest) == len(nodes)-1 {
				break
			}
		}
		ops++ // cycle comparison
	}
	ops += uf.ops

	return k.store(Result{
		Edges:      forest,
		TotalCost:  cost,
		Operations: ops,
		Elapsed:    time.Since(start),
	})
}
