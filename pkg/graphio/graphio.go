// Package graphio reads and writes the JSON document format for graph
// inputs.
//
// The on-disk format is a single object with a "graphs" array:
//
//	{
//	  "graphs": [
//	    {
//	      "id": 1,
//	      "nodes": ["A", "B", "C"],
//	      "edges": [{"from": "A", "to": "B", "weight": 4}]
//	    }
//	  ]
//	}
//
// Decoding always goes through [graph.New], so a structurally invalid
// graph aborts the load with an error wrapping [graph.ErrInvalidGraph]:
// nothing that fails validation can reach an algorithm run or a report.
package graphio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spanviz/spanviz/pkg/graph"
)

// ErrMissingGraphs is returned when the input document has no "graphs" array.
var ErrMissingGraphs = errors.New("invalid input: missing graphs array")

// Document is the serialized form of a set of graphs.
type Document struct {
	Graphs []Record `json:"graphs"`
}

// Record is one serialized graph.
type Record struct {
	ID    int          `json:"id"`
	Nodes []string     `json:"nodes"`
	Edges []graph.Edge `json:"edges"`
}

// ReadGraphs reads and validates all graphs from a JSON file.
func ReadGraphs(path string) ([]*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadGraphsFrom(f)
}

// ReadGraphsFrom decodes and validates all graphs from r. The first
// invalid graph aborts the whole load.
func ReadGraphsFrom(r io.Reader) ([]*graph.Graph, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if doc.Graphs == nil {
		return nil, ErrMissingGraphs
	}

	graphs := make([]*graph.Graph, 0, len(doc.Graphs))
	for _, rec := range doc.Graphs {
		g, err := graph.New(rec.ID, rec.Nodes, rec.Edges)
		if err != nil {
			return nil, fmt.Errorf("graph %d: %w", rec.ID, err)
		}
		graphs = append(graphs, g)
	}
	return graphs, nil
}

// WriteGraphs writes graphs to w as an indented JSON document.
func WriteGraphs(graphs []*graph.Graph, w io.Writer) error {
	doc := Document{Graphs: make([]Record, len(graphs))}
	for i, g := range graphs {
		doc.Graphs[i] = Record{ID: g.ID(), Nodes: g.Nodes(), Edges: g.Edges()}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteGraphsFile writes graphs to a JSON file created with 0644 permissions.
func WriteGraphsFile(graphs []*graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraphs(graphs, f)
}

// Marshal returns the indented JSON document for graphs. The output is
// deterministic for a given input, which makes it usable as cache-key
// material.
func Marshal(graphs []*graph.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteGraphs(graphs, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
