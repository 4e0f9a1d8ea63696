// Package mst computes minimum spanning forests of undirected weighted
// graphs using Prim's and Kruskal's algorithms.
//
// Both algorithms are total over any valid [graph.Graph]: disconnected
// inputs yield one spanning tree per connected component (|V|-k edges for
// k components) instead of an error, and edgeless or single-node graphs
// yield an empty forest at zero cost.
//
// Each algorithm tracks a synthetic operation counter and the elapsed
// wall-clock time of its last run. The counter is deterministic for a
// given graph and grows with the input's edge count, but its granularity
// differs between the two algorithms: treat it as a relative workload
// indicator, never as an exact cross-algorithm measure.
//
// An [Algorithm] instance owns its working state and is not safe for
// concurrent re-entrant use; run two separate instances to solve the same
// graph concurrently.
package mst
