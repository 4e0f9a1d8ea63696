// Package cache provides pluggable byte caches for solver reports and
// rendered artifacts. Keys are derived from the canonical JSON encoding
// of the input graphs, so identical inputs hit the same entries across
// runs and across backends.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache stores opaque byte values under string keys with optional TTL.
type Cache interface {
	// Get returns the cached value and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ReportKey identifies the solver report for one input document.
// inputHash is the Hash of the document's canonical encoding.
func ReportKey(inputHash string) string {
	return fmt.Sprintf("report:%s", inputHash)
}

// ArtifactKey identifies one rendered drawing of one graph.
// view is the drawing kind (graph, prim, kruskal, comparison) and
// format is the output encoding (svg, png, dot).
func ArtifactKey(inputHash string, graphID int, view, format string) string {
	return hashKey("artifact", inputHash, graphID, view, format)
}
