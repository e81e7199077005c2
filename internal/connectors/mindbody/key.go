package mindbody

import "github.com/studiobridge/studiobridge/internal/core/ports/driven"

// cacheKey composes a deterministic cache key from an operation name and
// its query parameters.
func cacheKey(op string, q driven.Query) string {
	return op + q.Canonical()
}
