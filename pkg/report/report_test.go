package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/spanviz/spanviz/pkg/graph"
	"github.com/spanviz/spanviz/pkg/mst"
)

func sampleReport(t *testing.T) *Report {
	t.Helper()
	g, err := graph.New(1,
		[]string{"A", "B", "C"},
		[]graph.Edge{
			{From: "A", To: "B", Weight: 1},
			{From: "B", To: "C", Weight: 2},
		})
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}

	r := New()
	r.Add(g, mst.NewPrim().Execute(g), mst.NewKruskal().Execute(g))
	return r
}

func TestNewReportIdentity(t *testing.T) {
	a, b := New(), New()
	if a.RunID == "" || a.RunID == b.RunID {
		t.Errorf("run IDs should be unique and non-empty: %q, %q", a.RunID, b.RunID)
	}
	if a.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not set")
	}
}

func TestWriteJSONShape(t *testing.T) {
	r := sampleReport(t)

	var buf bytes.Buffer
	if err := r.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded struct {
		RunID   string `json:"run_id"`
		Results []struct {
			GraphID int `json:"graph_id"`
			Input   struct {
				Vertices  int     `json:"vertices"`
				Edges     int     `json:"edges"`
				Density   float64 `json:"density"`
				Connected bool    `json:"connected"`
				MinWeight int     `json:"min_edge_weight"`
				MaxWeight int     `json:"max_edge_weight"`
			} `json:"input_stats"`
			Prim struct {
				MSTEdges  []graph.Edge `json:"mst_edges"`
				TotalCost int          `json:"total_cost"`
			} `json:"prim"`
			Kruskal struct {
				TotalCost int `json:"total_cost"`
			} `json:"kruskal"`
		} `json:"results"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.RunID != r.RunID {
		t.Errorf("run_id = %q, want %q", decoded.RunID, r.RunID)
	}
	if len(decoded.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(decoded.Results))
	}
	res := decoded.Results[0]
	if res.GraphID != 1 || res.Input.Vertices != 3 || res.Input.Edges != 2 {
		t.Errorf("input stats wrong: %+v", res.Input)
	}
	if !res.Input.Connected || res.Input.MinWeight != 1 || res.Input.MaxWeight != 2 {
		t.Errorf("input stats wrong: %+v", res.Input)
	}
	if res.Prim.TotalCost != 3 || res.Kruskal.TotalCost != 3 {
		t.Errorf("costs = %d/%d, want 3/3", res.Prim.TotalCost, res.Kruskal.TotalCost)
	}
	if len(res.Prim.MSTEdges) != 2 {
		t.Errorf("prim mst_edges = %d, want 2", len(res.Prim.MSTEdges))
	}
}

func TestEdgelessGraphSerializesZeros(t *testing.T) {
	g, err := graph.New(9, []string{"A"}, nil)
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	r := New()
	r.Add(g, mst.NewPrim().Execute(g), mst.NewKruskal().Execute(g))

	stats := r.Results[0].Input
	if stats.MinWeight != 0 || stats.MaxWeight != 0 {
		t.Errorf("edgeless weights = %d/%d, want 0/0 (no int sentinels)", stats.MinWeight, stats.MaxWeight)
	}

	var buf bytes.Buffer
	if err := r.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if strings.Contains(buf.String(), "null") {
		t.Errorf("report contains null collections: %s", buf.String())
	}
}

func TestWriteCSV(t *testing.T) {
	r := sampleReport(t)

	var buf bytes.Buffer
	if err := r.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}
	if rows[0][0] != "Graph ID" || len(rows[0]) != 9 {
		t.Errorf("header wrong: %v", rows[0])
	}
	if rows[1][0] != "1" || rows[1][3] != "3" || rows[1][6] != "3" {
		t.Errorf("data row wrong: %v", rows[1])
	}
	// Times are fixed-precision decimals.
	if !strings.Contains(rows[1][4], ".") {
		t.Errorf("prim time not fixed precision: %q", rows[1][4])
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.2345, 1.23},
		{1.236, 1.24},
		{0, 0},
		{2, 2},
	}
	for _, tt := range tests {
		if got := round2(tt.in); got != tt.want {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestElapsedRounding(t *testing.T) {
	res := mst.Result{Elapsed: 1234567 * time.Nanosecond} // 1.234567 ms
	if got := convert(res).ExecutionTimeMS; got != 1.23 {
		t.Errorf("ExecutionTimeMS = %v, want 1.23", got)
	}
}
