package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/spanviz/spanviz/pkg/report"
)

// Color palette.
var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printComparison prints the side-by-side result table for one graph.
func printComparison(gr report.GraphResult) {
	fmt.Println(StyleTitle.Render(fmt.Sprintf("Graph %d", gr.GraphID)))
	printDetail("%d vertices · %d edges · density %.2f", gr.Input.Vertices, gr.Input.Edges, gr.Input.Density)
	if !gr.Input.Connected {
		printWarning("graph is disconnected (%d components); result is a spanning forest", gr.Input.Components)
	}

	label := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	cell := lipgloss.NewStyle().Foreground(colorWhite).Width(14).Align(lipgloss.Right)
	head := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Width(14).Align(lipgloss.Right)

	fmt.Println(label.Render("") + head.Render("Prim") + head.Render("Kruskal"))
	row := func(name, prim, kruskal string) {
		fmt.Println(label.Render(name) + cell.Render(prim) + cell.Render(kruskal))
	}
	row("Total cost", fmt.Sprintf("%d", gr.Prim.TotalCost), fmt.Sprintf("%d", gr.Kruskal.TotalCost))
	row("Edges", fmt.Sprintf("%d", len(gr.Prim.MSTEdges)), fmt.Sprintf("%d", len(gr.Kruskal.MSTEdges)))
	row("Operations", fmt.Sprintf("%d", gr.Prim.OperationsCount), fmt.Sprintf("%d", gr.Kruskal.OperationsCount))
	row("Time", fmt.Sprintf("%.2f ms", gr.Prim.ExecutionTimeMS), fmt.Sprintf("%.2f ms", gr.Kruskal.ExecutionTimeMS))

	fmt.Println("  " + StyleDim.Render(verdict(gr)))
	fmt.Println()
}

// verdict summarizes which algorithm did less work on this input.
func verdict(gr report.GraphResult) string {
	switch {
	case gr.Prim.OperationsCount < gr.Kruskal.OperationsCount:
		return fmt.Sprintf("Prim did fewer operations (%d vs %d)",
			gr.Prim.OperationsCount, gr.Kruskal.OperationsCount)
	case gr.Kruskal.OperationsCount < gr.Prim.OperationsCount:
		return fmt.Sprintf("Kruskal did fewer operations (%d vs %d)",
			gr.Kruskal.OperationsCount, gr.Prim.OperationsCount)
	default:
		return "both algorithms did the same number of operations"
	}
}
