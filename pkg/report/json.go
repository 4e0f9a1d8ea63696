package report

import (
	"encoding/json"
	"io"
)

// newJSONEncoder returns the encoder used for all report output:
// two-space indented, HTML escaping off so edge labels stay readable.
func newJSONEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc
}
