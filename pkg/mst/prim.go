package mst

import (
	"container/heap"
	"time"

	"github.com/spanviz/spanviz/pkg/graph"
)

// Prim builds a minimum spanning forest by lazy-deletion priority-queue
// expansion. Disconnected graphs are handled by restarting from each
// not-yet-visited node in graph node order, producing exactly one tree per
// connected component. Create instances with [NewPrim].
type Prim struct {
	resultStore
}

// NewPrim returns a fresh Prim solver.
func NewPrim() *Prim { return &Prim{} }

// Name implements [Algorithm].
func (p *Prim) Name() string { return "prim" }

// Execute computes the minimum spanning forest of g.
//
// For each unvisited start node: mark it visited, seed the heap with its
// incident edges, then repeatedly pop the lightest edge. A popped edge
// whose far endpoint is already visited is stale and discarded (lazy
// deletion, no decrease-key); otherwise it joins the forest and the far
// endpoint's incident edges to unvisited nodes are pushed. Expansion of a
// component ends when its heap empties or all nodes are visited.
// Complexity: O(E log E).
func (p *Prim) Execute(g *graph.Graph) Result {
	start := time.Now()

	var (
		forest []graph.Edge
		cost   int
		ops    int
	)
	if g == nil {
		return p.store(Result{Elapsed: time.Since(start)})
	}

	nodes := g.Nodes()
	visited := make(map[string]bool, len(nodes))

	for _, s := range nodes {
		if visited[s] {
			continue
		}
		visited[s] = true
		ops++ // visited insertion

		pq := &edgeHeap{}
		for _, e := range g.Adjacent(s) {
			pq.push(e)
			ops++ // heap push
		}

		// An isolated start node leaves the heap empty and falls
		// straight through to the next component.
		for pq.Len() > 0 && len(visited) < len(nodes) {
			e := pq.pop()
			ops++ // heap pop

			if visited[e.To] {
				ops++ // stale entry comparison
				continue
			}

			forest = append(forest, e)
			cost += e.Weight
			visited[e.To] = true
			ops += 2 // accept edge + mark visited

			for _, next := range g.Adjacent(e.To) {
				if !visited[next.To] {
					pq.push(next)
					ops++ // heap push
				}
				ops++ // comparison
			}
		}
	}

	return p.store(Result{
		Edges:      forest,
		TotalCost:  cost,
		Operations: ops,
		Elapsed:    time.Since(start),
	})
}

// heapEntry pairs an edge with its push sequence number. container/heap
// is not stable, so equal weights are ordered by seq to reproduce
// insertion order deterministically.
type heapEntry struct {
	edge graph.Edge
	seq  int
}

// edgeHeap is a min-heap of candidate edges keyed by (weight, push order).
type edgeHeap struct {
	entries []heapEntry
	seq     int
}

func (h *edgeHeap) Len() int { return len(h.entries) }

func (h *edgeHeap) Less(i, j int) bool {
	if h.entries[i].edge.Weight != h.entries[j].edge.Weight {
		return h.entries[i].edge.Weight < h.entries[j].edge.Weight
	}
	return h.entries[i].seq < h.entries[j].seq
}

func (h *edgeHeap) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
}

func (h *edgeHeap) Push(x any) {
	h.entries = append(h.entries, x.(heapEntry))
}

func (h *edgeHeap) Pop() any {
	old := h.entries
	n := len(old)
	entry := old[n-1]
	h.entries = old[:n-1]
	return entry
}

func (h *edgeHeap) push(e graph.Edge) {
	heap.Push(h, heapEntry{edge: e, seq: h.seq})
	h.seq++
}

func (h *edgeHeap) pop() graph.Edge {
	return heap.Pop(h).(heapEntry).edge
}
