package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spanviz/spanviz/pkg/graphio"
	"github.com/spanviz/spanviz/pkg/pipeline"
)

// visualizeCommand creates the visualize command for rendering drawings
// without printing the comparison tables.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		viewsStr   string
		formatsStr string
		outputDir  string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "visualize [input.json]",
		Short: "Render graphs and their spanning forests",
		Long: `Render graphs and their spanning forests.

The visualize command solves each input graph, then draws the requested
views. The comparison view shows both algorithms' forests side by side;
the prim and kruskal views highlight one forest on top of the input
graph. Rendered drawings are cached locally for faster subsequent runs.`,
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
				Visualize: true,
				Views:     parseList(viewsStr, cfg.Output.Views),
				Formats:   parseList(formatsStr, cfg.Output.Formats),
				Logger:    c.Logger,
			}
			if err := pipeline.ValidateViews(opts.Views); err != nil {
				return err
			}
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}

			graphs, err := graphio.ReadGraphs(args[0])
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}

			runner, err := c.newRunner(cmd, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Cache.Close()

			spinner := newSpinnerWithContext(cmd.Context(), "Rendering...")
			spinner.Start()
			result, err := runner.Run(cmd.Context(), graphs, opts)
			if err != nil {
				spinner.StopWithError("Visualization failed")
				return fmt.Errorf("visualize: %w", err)
			}
			spinner.Stop()

			return writeArtifacts(cmd.Context(), outputDir, result)
		},
	}

	cmd.Flags().StringVar(&viewsStr, "views", "", "views to render: graph, prim, kruskal, comparison (comma-separated)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "artifact format(s): svg (default), png, dot (comma-separated)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for rendered drawings")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
