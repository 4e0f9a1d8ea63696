// Package pkg provides the core libraries for spanviz.
//
// The typical data flow:
//
//	JSON input document
//	         ↓
//	    [graphio] package (decode and validate graphs)
//	         ↓
//	    [mst] package (Prim's and Kruskal's algorithms)
//	         ↓
//	    [report] package (comparison report, JSON/CSV)
//	         ↓
//	    [render] package (DOT, SVG, PNG drawings)
//
// The [pipeline] package orchestrates the flow and adds caching; the
// [api] package exposes it over HTTP.
package pkg
