package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/spanviz/spanviz/pkg/pipeline"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return NewServer(pipeline.NewRunner(nil, logger), logger)
}

const solveBody = `{
  "graphs": [
    {
      "id": 1,
      "nodes": ["A", "B", "C", "D", "E"],
      "edges": [
        {"from": "A", "to": "B", "weight": 4},
        {"from": "A", "to": "C", "weight": 3},
        {"from": "B", "to": "C", "weight": 2},
        {"from": "B", "to": "D", "weight": 5},
        {"from": "C", "to": "D", "weight": 7},
        {"from": "C", "to": "E", "weight": 6},
        {"from": "D", "to": "E", "weight": 4}
      ]
    }
  ]
}`

func TestSolveEndpoint(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", strings.NewReader(solveBody))
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp struct {
		RunID   string `json:"run_id"`
		Results []struct {
			GraphID int `json:"graph_id"`
			Prim    struct {
				TotalCost int `json:"total_cost"`
				MSTEdges  []struct {
					From string `json:"from"`
					To   string `json:"to"`
				} `json:"mst_edges"`
			} `json:"prim"`
			Kruskal struct {
				TotalCost int `json:"total_cost"`
			} `json:"kruskal"`
		} `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RunID == "" {
		t.Error("run_id should be set")
	}
	if len(resp.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(resp.Results))
	}
	r := resp.Results[0]
	if r.GraphID != 1 {
		t.Errorf("graph_id = %d", r.GraphID)
	}
	if r.Prim.TotalCost != 15 || r.Kruskal.TotalCost != 15 {
		t.Errorf("costs = %d/%d, want 15/15", r.Prim.TotalCost, r.Kruskal.TotalCost)
	}
	if len(r.Prim.MSTEdges) != 4 {
		t.Errorf("prim forest size = %d, want 4", len(r.Prim.MSTEdges))
	}
}

func TestSolveRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"garbage", "not json"},
		{"missing graphs", `{"foo": []}`},
		{"self loop", `{"graphs":[{"id":1,"nodes":["A"],"edges":[{"from":"A","to":"A","weight":1}]}]}`},
		{"negative weight", `{"graphs":[{"id":1,"nodes":["A","B"],"edges":[{"from":"A","to":"B","weight":-2}]}]}`},
		{"unknown endpoint", `{"graphs":[{"id":1,"nodes":["A"],"edges":[{"from":"A","to":"B","weight":1}]}]}`},
	}
	srv := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			srv.Router().ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if resp["error"] == "" {
				t.Error("error body should name the problem")
			}
		})
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/healthz", nil)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body)
	}
}
