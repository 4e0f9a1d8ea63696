package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spanviz/spanviz/pkg/graphio"
)

// statsCommand creates the stats command for inspecting inputs without
// solving them.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [input.json]",
		Short: "Print statistics about the input graphs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graphs, err := graphio.ReadGraphs(args[0])
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}

			for _, g := range graphs {
				fmt.Println(StyleTitle.Render(fmt.Sprintf("Graph %d", g.ID())))
				printKeyValue("Vertices", fmt.Sprintf("%d", g.NodeCount()))
				printKeyValue("Edges", fmt.Sprintf("%d", g.EdgeCount()))
				printKeyValue("Density", fmt.Sprintf("%.2f", g.Density()))
				printKeyValue("Total weight", fmt.Sprintf("%d", g.TotalWeight()))
				if g.EdgeCount() > 0 {
					printKeyValue("Weight range", fmt.Sprintf("%d to %d", g.MinEdgeWeight(), g.MaxEdgeWeight()))
				}
				if g.Connected() {
					printKeyValue("Connected", "yes")
				} else {
					printKeyValue("Connected", fmt.Sprintf("no (%d components)", g.ComponentCount()))
				}
				fmt.Println()
			}
			return nil
		},
	}
}
