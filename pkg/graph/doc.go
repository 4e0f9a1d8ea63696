// Package graph provides the undirected weighted graph model used by the
// spanning-forest algorithms.
//
// A [Graph] is built once from a node list and an edge list, validated at
// construction, and read-only afterward. Validation failures are reported
// through errors wrapping [ErrInvalidGraph]; a partially built graph is never
// returned. All query methods are pure, and accessors returning slices hand
// out copies so callers cannot mutate graph internals.
//
// # Example
//
//	g, err := graph.New(1,
//	    []string{"A", "B", "C"},
//	    []graph.Edge{
//	        {From: "A", To: "B", Weight: 1},
//	        {From: "B", To: "C", Weight: 2},
//	    })
//	if err != nil {
//	    // input violated a structural invariant
//	}
//	g.Connected() // true
package graph
