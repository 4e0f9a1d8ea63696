package mst

// unionFind is a disjoint-set forest over node identifiers with full path
// compression and union by rank. It exists for the lifetime of a single
// Kruskal run; the acyclicity tests build fresh instances the same way.
//
// find is iterative: recursion depth would otherwise track the tree
// height, which an adversarial union order can make linear.
type unionFind struct {
	parent map[string]string
	rank   map[string]int
	ops    int
}

// newUnionFind starts every node as its own root with rank 0.
func newUnionFind(nodes []string) *unionFind {
	u := &unionFind{
		parent: make(map[string]string, len(nodes)),
		rank:   make(map[string]int, len(nodes)),
	}
	for _, n := range nodes {
		u.parent[n] = n
		u.rank[n] = 0
		u.ops++
	}
	return u
}

// find returns the root of the set containing x. Every node visited on
// the way up is re-pointed directly at the root.
func (u *unionFind) find(x string) string {
	u.ops++
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
		u.ops++
	}
	for u.parent[x] != root {
		x, u.parent[x] = u.parent[x], root
	}
	return root
}

// union merges the sets containing x and y and reports whether they were
// previously disjoint. On equal ranks, y's root attaches under x's root
// and x's root's rank increments; the choice is fixed for determinism.
func (u *unionFind) union(x, y string) bool {
	rootX := u.find(x)
	rootY := u.find(y)
	u.ops++
	if rootX == rootY {
		return false
	}

	switch {
	case u.rank[rootX] < u.rank[rootY]:
		u.parent[rootX] = rootY
	case u.rank[rootX] > u.rank[rootY]:
		u.parent[rootY] = rootX
	default:
		u.parent[rootY] = rootX
		u.rank[rootX]++
	}
	u.ops += 2
	return true
}

// connected reports whether x and y share a root.
func (u *unionFind) connected(x, y string) bool {
	u.ops++
	return u.find(x) == u.find(y)
}
