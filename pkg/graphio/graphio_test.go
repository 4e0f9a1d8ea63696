package graphio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spanviz/spanviz/pkg/graph"
)

const sampleDoc = `{
  "graphs": [
    {
      "id": 1,
      "nodes": ["A", "B", "C"],
      "edges": [
        {"from": "A", "to": "B", "weight": 4},
        {"from": "B", "to": "C", "weight": 2}
      ]
    },
    {
      "id": 2,
      "nodes": ["X"],
      "edges": []
    }
  ]
}`

func TestReadGraphsFrom(t *testing.T) {
	graphs, err := ReadGraphsFrom(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("ReadGraphsFrom: %v", err)
	}
	if len(graphs) != 2 {
		t.Fatalf("graphs = %d, want 2", len(graphs))
	}
	if graphs[0].ID() != 1 || graphs[0].NodeCount() != 3 || graphs[0].EdgeCount() != 2 {
		t.Errorf("graph 1 decoded wrong: %v", graphs[0])
	}
	if graphs[1].ID() != 2 || graphs[1].NodeCount() != 1 || graphs[1].EdgeCount() != 0 {
		t.Errorf("graph 2 decoded wrong: %v", graphs[1])
	}
	if w, ok := graphs[0].EdgeBetween("A", "B"); !ok || w.Weight != 4 {
		t.Errorf("EdgeBetween(A,B) = (%v, %v), want weight 4", w, ok)
	}
}

func TestReadGraphsFromErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error // nil means any error
	}{
		{
			name:  "Garbage",
			input: "not json",
		},
		{
			name:    "MissingGraphsKey",
			input:   `{"results": []}`,
			wantErr: ErrMissingGraphs,
		},
		{
			name:    "SelfLoop",
			input:   `{"graphs":[{"id":1,"nodes":["A","B"],"edges":[{"from":"A","to":"A","weight":1}]}]}`,
			wantErr: graph.ErrInvalidGraph,
		},
		{
			name:    "DuplicateNode",
			input:   `{"graphs":[{"id":1,"nodes":["A","A"],"edges":[]}]}`,
			wantErr: graph.ErrInvalidGraph,
		},
		{
			name:    "NegativeWeight",
			input:   `{"graphs":[{"id":1,"nodes":["A","B"],"edges":[{"from":"A","to":"B","weight":-3}]}]}`,
			wantErr: graph.ErrInvalidGraph,
		},
		{
			name:    "UnknownEndpoint",
			input:   `{"graphs":[{"id":1,"nodes":["A","B"],"edges":[{"from":"A","to":"Z","weight":1}]}]}`,
			wantErr: graph.ErrInvalidGraph,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graphs, err := ReadGraphsFrom(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("ReadGraphsFrom succeeded, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if graphs != nil {
				t.Error("graphs returned alongside error")
			}
		})
	}
}

func TestReadGraphsMissingFile(t *testing.T) {
	_, err := ReadGraphs(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("ReadGraphs succeeded on a missing file")
	}
}

func TestRoundTrip(t *testing.T) {
	original, err := ReadGraphsFrom(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("ReadGraphsFrom: %v", err)
	}

	path := filepath.Join(t.TempDir(), "graphs.json")
	if err := WriteGraphsFile(original, path); err != nil {
		t.Fatalf("WriteGraphsFile: %v", err)
	}

	reread, err := ReadGraphs(path)
	if err != nil {
		t.Fatalf("ReadGraphs: %v", err)
	}
	if len(reread) != len(original) {
		t.Fatalf("round trip lost graphs: %d != %d", len(reread), len(original))
	}
	for i := range original {
		if reread[i].ID() != original[i].ID() ||
			reread[i].NodeCount() != original[i].NodeCount() ||
			reread[i].EdgeCount() != original[i].EdgeCount() {
			t.Errorf("graph %d differs after round trip", original[i].ID())
		}
	}
}

func TestMarshalDeterministic(t *testing.T) {
	graphs, err := ReadGraphsFrom(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("ReadGraphsFrom: %v", err)
	}

	a, err := Marshal(graphs)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	b, err := Marshal(graphs)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("Marshal output is not deterministic")
	}
}

func TestWriteGraphsFileCreates(t *testing.T) {
	g, err := graph.New(7, []string{"A", "B"}, []graph.Edge{{From: "A", To: "B", Weight: 1}})
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteGraphsFile([]*graph.Graph{g}, path); err != nil {
		t.Fatalf("WriteGraphsFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `"weight": 1`) {
		t.Errorf("output missing edge weight: %s", data)
	}
}
