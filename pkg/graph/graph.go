package graph

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	// ErrInvalidGraph is the umbrella error for structural validation
	// failures at graph construction. Every specific validation error
	// below wraps it, so errors.Is(err, ErrInvalidGraph) classifies any
	// rejected input.
	ErrInvalidGraph = errors.New("invalid graph input")

	// ErrNoNodes is returned by [New] when the node list is empty.
	ErrNoNodes = fmt.Errorf("%w: graph must have at least one node", ErrInvalidGraph)

	// ErrDuplicateNode is returned by [New] when a node identifier appears
	// more than once in the node list.
	ErrDuplicateNode = fmt.Errorf("%w: duplicate node", ErrInvalidGraph)

	// ErrUnknownEndpoint is returned by [New] when an edge references a
	// node that is not in the node list.
	ErrUnknownEndpoint = fmt.Errorf("%w: edge references unknown node", ErrInvalidGraph)

	// ErrNegativeWeight is returned by [New] for edges with weight < 0.
	ErrNegativeWeight = fmt.Errorf("%w: negative edge weight", ErrInvalidGraph)

	// ErrSelfLoop is returned by [New] for edges whose endpoints coincide.
	ErrSelfLoop = fmt.Errorf("%w: self-loop edge", ErrInvalidGraph)
)

// Graph is an immutable undirected weighted graph backed by an adjacency
// list. Construct with [New]; the zero value is not usable.
//
// Graph is safe for concurrent readers: nothing mutates it after New
// returns, and every slice-returning accessor copies.
type Graph struct {
	id    int
	nodes []string
	edges []Edge
	adj   map[string][]Edge // per node, each incident edge oriented away from it
}

// New validates nodes and edges and builds the graph. It returns an error
// wrapping [ErrInvalidGraph] when the node list is empty, a node is
// duplicated, an edge references an unknown node, has a negative weight,
// or is a self-loop. On error no graph is returned.
func New(id int, nodes []string, edges []Edge) (*Graph, error) {
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}

	seen := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		if _, dup := seen[n]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n)
		}
		seen[n] = struct{}{}
	}

	for _, e := range edges {
		if e.From == e.To {
			return nil, fmt.Errorf("%w: %q", ErrSelfLoop, e.From)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNegativeWeight, e)
		}
		if _, ok := seen[e.From]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, e.From)
		}
		if _, ok := seen[e.To]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, e.To)
		}
	}

	g := &Graph{
		id:    id,
		nodes: slices.Clone(nodes),
		edges: slices.Clone(edges),
		adj:   make(map[string][]Edge, len(nodes)),
	}
	for _, n := range g.nodes {
		g.adj[n] = nil
	}
	// One oriented entry per endpoint for every undirected edge.
	for _, e := range g.edges {
		g.adj[e.From] = append(g.adj[e.From], e)
		g.adj[e.To] = append(g.adj[e.To], e.Reverse())
	}
	return g, nil
}

// ID returns the graph's identifier.
func (g *Graph) ID() int { return g.id }

// Nodes returns a copy of the node list in construction order.
func (g *Graph) Nodes() []string { return slices.Clone(g.nodes) }

// Edges returns a copy of the edge list in construction order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Adjacent returns a copy of the edges incident to node, each oriented
// away from node. Unknown nodes yield nil.
func (g *Graph) Adjacent(node string) []Edge { return slices.Clone(g.adj[node]) }

// Neighbors returns the nodes directly reachable from node.
func (g *Graph) Neighbors(node string) []string {
	adj := g.adj[node]
	if len(adj) == 0 {
		return nil
	}
	out := make([]string, len(adj))
	for i, e := range adj {
		out[i] = e.To
	}
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Degree returns the number of edges incident to node (0 for unknown nodes).
func (g *Graph) Degree(node string) int { return len(g.adj[node]) }

// HasNode reports whether node exists in the graph.
func (g *Graph) HasNode(node string) bool {
	_, ok := g.adj[node]
	return ok
}

// HasEdge reports whether an edge joins a and b in either orientation.
func (g *Graph) HasEdge(a, b string) bool {
	for _, e := range g.adj[a] {
		if e.Connects(a, b) {
			return true
		}
	}
	return false
}

// EdgeBetween returns the first edge joining a and b. The second return
// value is false when no such edge exists.
func (g *Graph) EdgeBetween(a, b string) (Edge, bool) {
	for _, e := range g.adj[a] {
		if e.Connects(a, b) {
			return e, true
		}
	}
	return Edge{}, false
}

// Density returns 2·|E| / (|V|·(|V|-1)), the fraction of possible edges
// present. Graphs with at most one node have density 0.
func (g *Graph) Density() float64 {
	v := len(g.nodes)
	if v <= 1 {
		return 0
	}
	return 2 * float64(len(g.edges)) / float64(v*(v-1))
}

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() int {
	total := 0
	for _, e := range g.edges {
		total += e.Weight
	}
	return total
}

// MinEdgeWeight returns the smallest edge weight. When the graph has no
// edges it returns math.MaxInt; callers must treat that sentinel as
// "undefined", not as a weight.
func (g *Graph) MinEdgeWeight() int {
	minWeight := math.MaxInt
	for _, e := range g.edges {
		if e.Weight < minWeight {
			minWeight = e.Weight
		}
	}
	return minWeight
}

// MaxEdgeWeight returns the largest edge weight, or math.MinInt when the
// graph has no edges. The sentinel means "undefined", not a weight.
func (g *Graph) MaxEdgeWeight() int {
	maxWeight := math.MinInt
	for _, e := range g.edges {
		if e.Weight > maxWeight {
			maxWeight = e.Weight
		}
	}
	return maxWeight
}

// Connected reports whether a breadth-first traversal from the first node
// reaches every node. Runs in O(V+E).
func (g *Graph) Connected() bool {
	if len(g.nodes) == 0 {
		return true
	}
	visited := make(map[string]bool, len(g.nodes))
	g.bfs(g.nodes[0], visited)
	return len(visited) == len(g.nodes)
}

// ComponentCount returns the number of connected components.
func (g *Graph) ComponentCount() int {
	visited := make(map[string]bool, len(g.nodes))
	count := 0
	for _, n := range g.nodes {
		if visited[n] {
			continue
		}
		count++
		g.bfs(n, visited)
	}
	return count
}

// bfs marks every node reachable from start in visited.
func (g *Graph) bfs(start string, visited map[string]bool) {
	queue := []string{start}
	visited[start] = true
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, e := range g.adj[current] {
			if !visited[e.To] {
				visited[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}
}

// String renders a short summary like "Graph 3 [nodes=5, edges=7]".
func (g *Graph) String() string {
	return fmt.Sprintf("Graph %d [nodes=%d, edges=%d]", g.id, len(g.nodes), len(g.edges))
}
