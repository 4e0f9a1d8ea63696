package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/spanviz/spanviz/pkg/cache"
	"github.com/spanviz/spanviz/pkg/graph"
	"github.com/spanviz/spanviz/pkg/graphio"
	"github.com/spanviz/spanviz/pkg/mst"
	"github.com/spanviz/spanviz/pkg/render"
	"github.com/spanviz/spanviz/pkg/report"
)

// Runner executes the solve and render stages with caching. It is
// stateless apart from the cache and logger, so one Runner can serve
// concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching and a nil
// logger falls back to the package default.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Result holds the outputs of one pipeline run.
type Result struct {
	// Report compares both algorithms on every input graph.
	Report *report.Report

	// InputHash is the content hash of the input document.
	InputHash string

	// Artifacts maps file names such as "graph_1_comparison.svg" to
	// rendered bytes. Empty unless Options.Visualize is set.
	Artifacts map[string][]byte

	// CacheHits counts artifacts served from the cache.
	CacheHits int

	// Stats carries timing information per stage.
	Stats Stats
}

// Stats contains pipeline execution timings.
type Stats struct {
	SolveTime  time.Duration
	RenderTime time.Duration
}

// Run solves every graph and, when requested, renders the configured
// views. The report is always computed fresh; only render artifacts are
// cached, keyed by the input document's content hash.
func (r *Runner) Run(ctx context.Context, graphs []*graph.Graph, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	if len(graphs) == 0 {
		return nil, fmt.Errorf("no graphs to solve")
	}

	result := &Result{
		Report:    report.New(),
		Artifacts: make(map[string][]byte),
	}

	if data, err := graphio.Marshal(graphs); err == nil {
		result.InputHash = cache.Hash(data)
	}

	solveStart := time.Now()
	forests := make(map[int]forestPair, len(graphs))
	for _, g := range graphs {
		prim := mst.NewPrim().Execute(g)
		kruskal := mst.NewKruskal().Execute(g)
		result.Report.Add(g, prim, kruskal)
		forests[g.ID()] = forestPair{prim: prim, kruskal: kruskal}

		logger.Info("solved graph",
			"graph", g.ID(),
			"vertices", g.NodeCount(),
			"edges", g.EdgeCount(),
			"prim_cost", prim.TotalCost,
			"kruskal_cost", kruskal.TotalCost)
		if prim.TotalCost != kruskal.TotalCost {
			logger.Warn("algorithms disagree on total cost",
				"graph", g.ID(),
				"prim", prim.TotalCost,
				"kruskal", kruskal.TotalCost)
		}
	}
	result.Stats.SolveTime = time.Since(solveStart)

	if !opts.Visualize {
		return result, nil
	}

	renderStart := time.Now()
	for _, g := range graphs {
		pair := forests[g.ID()]
		for _, view := range opts.Views {
			dot := r.viewDOT(g, pair, view)
			for _, format := range opts.Formats {
				name := artifactName(g.ID(), view, format)
				data, hit, err := r.artifact(ctx, result.InputHash, g.ID(), view, format, dot, opts.TTL)
				if err != nil {
					return nil, fmt.Errorf("render %s: %w", name, err)
				}
				if hit {
					result.CacheHits++
					logger.Debug("artifact cache hit", "name", name)
				}
				result.Artifacts[name] = data
			}
		}
	}
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered artifacts",
		"count", len(result.Artifacts),
		"cache_hits", result.CacheHits,
		"duration", result.Stats.RenderTime)

	return result, nil
}

type forestPair struct {
	prim    mst.Result
	kruskal mst.Result
}

// viewDOT builds the DOT source for one view of one graph.
func (r *Runner) viewDOT(g *graph.Graph, pair forestPair, view string) string {
	title := fmt.Sprintf("Graph %d", g.ID())
	switch view {
	case ViewPrim:
		return render.ToDOT(g, pair.prim.Edges, render.Options{
			Title: fmt.Sprintf("%s, Prim (cost %d)", title, pair.prim.TotalCost),
		})
	case ViewKruskal:
		return render.ToDOT(g, pair.kruskal.Edges, render.Options{
			Title: fmt.Sprintf("%s, Kruskal (cost %d)", title, pair.kruskal.TotalCost),
		})
	case ViewComparison:
		return render.ComparisonDOT(g, pair.prim.Edges, pair.kruskal.Edges,
			pair.prim.TotalCost, pair.kruskal.TotalCost)
	default:
		return render.ToDOT(g, nil, render.Options{Title: title})
	}
}

// artifact returns the rendered bytes for one view and format, serving
// from the cache when possible.
func (r *Runner) artifact(ctx context.Context, inputHash string, graphID int, view, format, dot string, ttl time.Duration) ([]byte, bool, error) {
	key := cache.ArtifactKey(inputHash, graphID, view, format)
	if inputHash != "" {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			return data, true, nil
		}
	}

	var data []byte
	var err error
	switch format {
	case FormatDOT:
		data = []byte(dot)
	case FormatPNG:
		data, err = render.RenderPNG(ctx, dot)
	default:
		data, err = render.RenderSVG(ctx, dot)
	}
	if err != nil {
		return nil, false, err
	}

	if inputHash != "" {
		if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
			r.Logger.Debug("cache write failed", "key", key, "error", err)
		}
	}
	return data, false, nil
}

// artifactName builds the output file name for one artifact.
func artifactName(graphID int, view, format string) string {
	return fmt.Sprintf("graph_%d_%s.%s", graphID, view, format)
}
