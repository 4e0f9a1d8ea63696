// Package pipeline runs the complete solve and render flow shared by
// the CLI and the HTTP API.
//
// A run has two stages:
//
//  1. Solve: execute Prim's and Kruskal's algorithms on every input
//     graph and collect the comparison report.
//  2. Render: draw the requested views of each graph in the requested
//     formats. This stage is optional and cached by input hash.
//
// Centralizing the flow here keeps both entry points consistent and
// gives them the same caching behavior.
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Default values shared by CLI and API.
const (
	// DefaultTTL bounds how long cached render artifacts live.
	DefaultTTL = 7 * 24 * time.Hour
)

// Output format constants.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatDOT = "dot"
)

// ValidFormats is the set of supported artifact formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatDOT: true,
}

// View constants, the drawings produced per graph.
const (
	// ViewGraph draws the input graph as-is.
	ViewGraph = "graph"
	// ViewPrim draws Prim's spanning forest highlighted on the graph.
	ViewPrim = "prim"
	// ViewKruskal draws Kruskal's forest highlighted on the graph.
	ViewKruskal = "kruskal"
	// ViewComparison draws both forests side by side.
	ViewComparison = "comparison"
)

// ValidViews is the set of supported views.
var ValidViews = map[string]bool{
	ViewGraph:      true,
	ViewPrim:       true,
	ViewKruskal:    true,
	ViewComparison: true,
}

// Options configures a pipeline run.
type Options struct {
	// Visualize enables the render stage.
	Visualize bool `json:"visualize,omitempty"`

	// Views selects which drawings to produce per graph.
	Views []string `json:"views,omitempty"`

	// Formats selects artifact encodings.
	Formats []string `json:"formats,omitempty"`

	// TTL bounds cached artifact lifetime. Zero means DefaultTTL.
	TTL time.Duration `json:"-"`

	// Logger receives progress output. Defaults to a discard logger.
	Logger *log.Logger `json:"-"`
}

// ValidateAndSetDefaults checks option values and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Views) == 0 {
		o.Views = []string{ViewComparison}
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.TTL == 0 {
		o.TTL = DefaultTTL
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if err := ValidateViews(o.Views); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// ValidateFormat checks a single artifact format.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, dot)", format)
	}
	return nil
}

// ValidateFormats checks a list of artifact formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateView checks a single view name.
func ValidateView(view string) error {
	if !ValidViews[view] {
		return fmt.Errorf("invalid view: %q (must be one of: graph, prim, kruskal, comparison)", view)
	}
	return nil
}

// ValidateViews checks a list of view names.
func ValidateViews(views []string) error {
	for _, v := range views {
		if err := ValidateView(v); err != nil {
			return err
		}
	}
	return nil
}
