package graph

import "fmt"

// Edge is an undirected weighted connection between two named nodes.
// The zero value is not a valid edge; edges enter the system through
// [New], which rejects self-loops and negative weights.
//
// Edges are values and never mutated. [Edge.Reverse] produces the
// opposite orientation used for adjacency bookkeeping.
type Edge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int    `json:"weight"`
}

// Reverse returns the same undirected edge oriented away from the other
// endpoint. Weight is unchanged.
func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From, Weight: e.Weight}
}

// Other returns the endpoint opposite to node. The second return value is
// false when node is not an endpoint of this edge.
func (e Edge) Other(node string) (string, bool) {
	switch node {
	case e.From:
		return e.To, true
	case e.To:
		return e.From, true
	}
	return "", false
}

// Touches reports whether node is one of the edge's endpoints.
func (e Edge) Touches(node string) bool {
	return e.From == node || e.To == node
}

// Connects reports whether the edge joins a and b, in either orientation.
func (e Edge) Connects(a, b string) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

// Equal reports order-independent equality: A-B:w equals B-A:w.
func (e Edge) Equal(o Edge) bool {
	if e.Weight != o.Weight {
		return false
	}
	return (e.From == o.From && e.To == o.To) || (e.From == o.To && e.To == o.From)
}

// String renders the edge as "A -- B [weight: 4]".
func (e Edge) String() string {
	return fmt.Sprintf("%s -- %s [weight: %d]", e.From, e.To, e.Weight)
}
