// Package render draws graphs and their spanning forests.
//
// DOT generation is plain string building; rasterization goes through
// Graphviz (goccy/go-graphviz). The three views are the original graph,
// a single algorithm's forest highlighted on top of the graph, and a
// side-by-side comparison of both algorithms' forests.
package render

import (
	"bytes"
	"fmt"

	"github.com/spanviz/spanviz/pkg/graph"
)

// Colors for highlighted forest edges and muted non-forest edges.
const (
	colorForest = "#d62828"
	colorMuted  = "#b0b0b0"
)

// Options configures DOT generation.
type Options struct {
	// Title is rendered as the graph label beneath the drawing.
	Title string
	// HideWeights omits edge weight labels.
	HideWeights bool
}

// ToDOT converts g to Graphviz DOT. When highlight is non-empty, the
// matching edges (order-independent) are drawn bold and colored while
// the rest are muted, which is how a spanning forest is displayed on top
// of its source graph.
func ToDOT(g *graph.Graph, highlight []graph.Edge, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Title)
		buf.WriteString("  labelloc=b;\n")
	}
	buf.WriteString("\n")

	writeBody(&buf, g, highlight, opts, "")

	buf.WriteString("}\n")
	return buf.String()
}

// ComparisonDOT renders both algorithms' forests as two clusters of the
// same source graph, side by side.
func ComparisonDOT(g *graph.Graph, prim, kruskal []graph.Edge, primCost, kruskalCost int) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=fdp;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	clusters := []struct {
		name   string
		label  string
		prefix string
		forest []graph.Edge
	}{
		{"cluster_prim", fmt.Sprintf("Prim (cost %d)", primCost), "p_", prim},
		{"cluster_kruskal", fmt.Sprintf("Kruskal (cost %d)", kruskalCost), "k_", kruskal},
	}
	for _, c := range clusters {
		fmt.Fprintf(&buf, "  subgraph %s {\n", c.name)
		fmt.Fprintf(&buf, "    label=%q;\n", c.label)
		writeBody(&buf, g, c.forest, Options{}, c.prefix)
		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

// writeBody emits the node and edge statements for one drawing of g.
// prefix namespaces node IDs so the same graph can appear in several
// clusters of one DOT document.
func writeBody(buf *bytes.Buffer, g *graph.Graph, highlight []graph.Edge, opts Options, prefix string) {
	selected := make(map[[2]string]bool, len(highlight))
	for _, e := range highlight {
		selected[edgeKey(e)] = true
	}

	for _, n := range g.Nodes() {
		fmt.Fprintf(buf, "  %q [label=%q];\n", prefix+n, n)
	}
	buf.WriteString("\n")

	for _, e := range g.Edges() {
		attrs := edgeAttrs(e, len(highlight) > 0, selected[edgeKey(e)], opts)
		fmt.Fprintf(buf, "  %q -- %q [%s];\n", prefix+e.From, prefix+e.To, attrs)
	}
}

// edgeKey is the order-independent identity of an undirected edge.
func edgeKey(e graph.Edge) [2]string {
	if e.From < e.To {
		return [2]string{e.From, e.To}
	}
	return [2]string{e.To, e.From}
}

func edgeAttrs(e graph.Edge, highlighting, selected bool, opts Options) string {
	var buf bytes.Buffer
	if !opts.HideWeights {
		fmt.Fprintf(&buf, "label=%q", fmt.Sprint(e.Weight))
	}
	if highlighting {
		if buf.Len() > 0 {
			buf.WriteString(", ")
		}
		if selected {
			fmt.Fprintf(&buf, "color=%q, penwidth=2.5", colorForest)
		} else {
			fmt.Fprintf(&buf, "color=%q, style=dashed", colorMuted)
		}
	}
	return buf.String()
}
