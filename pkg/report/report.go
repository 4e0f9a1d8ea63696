// Package report assembles and serializes the comparison results of the
// two spanning-forest algorithms.
//
// A [Report] collects one [GraphResult] per input graph: the graph's
// descriptive statistics plus the full outcome of both algorithm runs.
// Reports serialize to an indented JSON document and to a one-row-per-graph
// CSV summary.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/spanviz/spanviz/pkg/graph"
	"github.com/spanviz/spanviz/pkg/mst"
)

// Report is the top-level result document for one tool run.
type Report struct {
	RunID       string        `json:"run_id"`
	GeneratedAt time.Time     `json:"generated_at"`
	Results     []GraphResult `json:"results"`
}

// GraphResult holds the outcome of processing one graph.
type GraphResult struct {
	GraphID int             `json:"graph_id"`
	Input   InputStats      `json:"input_stats"`
	Prim    AlgorithmResult `json:"prim"`
	Kruskal AlgorithmResult `json:"kruskal"`
}

// InputStats are the source graph's descriptive statistics.
type InputStats struct {
	Vertices    int     `json:"vertices"`
	Edges       int     `json:"edges"`
	Density     float64 `json:"density"`
	Connected   bool    `json:"connected"`
	Components  int     `json:"components"`
	TotalWeight int     `json:"total_weight"`
	// MinWeight and MaxWeight are 0 for edgeless graphs; the graph-level
	// int sentinels never leak into serialized output.
	MinWeight int `json:"min_edge_weight"`
	MaxWeight int `json:"max_edge_weight"`
}

// AlgorithmResult is the serialized outcome of one algorithm run.
type AlgorithmResult struct {
	MSTEdges        []graph.Edge `json:"mst_edges"`
	TotalCost       int          `json:"total_cost"`
	OperationsCount int          `json:"operations_count"`
	ExecutionTimeMS float64      `json:"execution_time_ms"`
}

// New creates an empty report with a fresh run ID and timestamp.
func New() *Report {
	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
	}
}

// Add appends the outcome of one graph to the report.
func (r *Report) Add(g *graph.Graph, prim, kruskal mst.Result) {
	r.Results = append(r.Results, GraphResult{
		GraphID: g.ID(),
		Input:   statsFor(g),
		Prim:    convert(prim),
		Kruskal: convert(kruskal),
	})
}

func statsFor(g *graph.Graph) InputStats {
	stats := InputStats{
		Vertices:    g.NodeCount(),
		Edges:       g.EdgeCount(),
		Density:     round2(g.Density()),
		Connected:   g.Connected(),
		Components:  g.ComponentCount(),
		TotalWeight: g.TotalWeight(),
	}
	if g.EdgeCount() > 0 {
		stats.MinWeight = g.MinEdgeWeight()
		stats.MaxWeight = g.MaxEdgeWeight()
	}
	return stats
}

func convert(res mst.Result) AlgorithmResult {
	edges := res.Edges
	if edges == nil {
		edges = []graph.Edge{} // serialize as [] rather than null
	}
	return AlgorithmResult{
		MSTEdges:        edges,
		TotalCost:       res.TotalCost,
		OperationsCount: res.Operations,
		ExecutionTimeMS: round2(res.ElapsedMS()),
	}
}

// WriteJSON writes the report as an indented JSON document.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := newJSONEncoder(w)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// WriteJSONFile writes the report to a JSON file.
func (r *Report) WriteJSONFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return r.WriteJSON(f)
}

// csvHeader matches the summary column set consumed by downstream
// spreadsheets; keep the order stable.
var csvHeader = []string{
	"Graph ID", "Vertices", "Edges",
	"Prim Cost", "Prim Time (ms)", "Prim Operations",
	"Kruskal Cost", "Kruskal Time (ms)", "Kruskal Operations",
}

// WriteCSV writes the one-row-per-graph summary.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, res := range r.Results {
		row := []string{
			strconv.Itoa(res.GraphID),
			strconv.Itoa(res.Input.Vertices),
			strconv.Itoa(res.Input.Edges),
			strconv.Itoa(res.Prim.TotalCost),
			formatMS(res.Prim.ExecutionTimeMS),
			strconv.Itoa(res.Prim.OperationsCount),
			strconv.Itoa(res.Kruskal.TotalCost),
			formatMS(res.Kruskal.ExecutionTimeMS),
			strconv.Itoa(res.Kruskal.OperationsCount),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the CSV summary to a file.
func (r *Report) WriteCSVFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return r.WriteCSV(f)
}

func formatMS(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
