package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/spanviz/spanviz/pkg/graphio"
	"github.com/spanviz/spanviz/pkg/pipeline"
)

// runCommand creates the run command, the main entry point.
func (c *CLI) runCommand() *cobra.Command {
	var (
		output     string
		csvOutput  string
		visualize  bool
		viewsStr   string
		formatsStr string
		outputDir  string
		noCache    bool
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "run [input.json]",
		Short: "Solve every input graph with both algorithms",
		Long: `Solve every input graph with both algorithms.

The run command reads a JSON document of weighted undirected graphs,
executes Prim's and Kruskal's algorithms on each, prints a comparison
table, and optionally writes a JSON report, a CSV summary, and rendered
drawings of the spanning forests.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.Config()
			if err != nil {
				return err
			}
			if outputDir == "" {
				outputDir = cfg.Output.Dir
			}
			opts := pipeline.Options{
				Visualize: visualize,
				Views:     parseList(viewsStr, cfg.Output.Views),
				Formats:   parseList(formatsStr, cfg.Output.Formats),
				Logger:    c.Logger,
			}
			return c.runSolve(cmd, args[0], opts, runOutputs{
				report:    output,
				csv:       csvOutput,
				artifacts: outputDir,
				quiet:     quiet,
				noCache:   noCache,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the JSON report to this file")
	cmd.Flags().StringVar(&csvOutput, "csv", "", "write a CSV summary to this file")
	cmd.Flags().BoolVar(&visualize, "visualize", false, "render drawings of each result")
	cmd.Flags().StringVar(&viewsStr, "views", "", "views to render: graph, prim, kruskal, comparison (comma-separated)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "artifact format(s): svg (default), png, dot (comma-separated)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for rendered drawings")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the comparison tables")

	return cmd
}

// runOutputs bundles the run command's output destinations.
type runOutputs struct {
	report    string
	csv       string
	artifacts string
	quiet     bool
	noCache   bool
}

func (c *CLI) runSolve(cmd *cobra.Command, input string, opts pipeline.Options, out runOutputs) error {
	ctx := cmd.Context()

	graphs, err := graphio.ReadGraphs(input)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}

	runner, err := c.newRunner(cmd, out.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Cache.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Run(ctx, graphs, opts)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	prog.done(fmt.Sprintf("Solved %d graphs", len(result.Report.Results)))

	if !out.quiet {
		for _, gr := range result.Report.Results {
			printComparison(gr)
		}
	}

	if out.report != "" {
		if err := result.Report.WriteJSONFile(out.report); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		printSuccess("Report written")
		printFile(out.report)
	}
	if out.csv != "" {
		if err := result.Report.WriteCSVFile(out.csv); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		printFile(out.csv)
	}

	if opts.Visualize {
		if err := writeArtifacts(ctx, out.artifacts, result); err != nil {
			return err
		}
	}
	return nil
}

// writeArtifacts stores rendered drawings under dir.
func writeArtifacts(ctx context.Context, dir string, result *pipeline.Result) error {
	if len(result.Artifacts) == 0 {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	names := make([]string, 0, len(result.Artifacts))
	for name := range result.Artifacts {
		names = append(names, name)
	}
	// Stable output order for the printed file list.
	sort.Strings(names)

	printSuccess("Rendered %d drawings", len(names))
	if result.CacheHits > 0 {
		printDetail("%d served from cache", result.CacheHits)
	}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, result.Artifacts[name], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}
