// Package cache provides the quote cache used to avoid recomputing
// identical loan simulations. Implementations must treat failures as
// non-fatal: a broken cache degrades to recomputation, never to an error
// surfaced to the caller.
package cache

import (
	"context"
	"time"
)

// QuoteCache stores serialized loan quotes keyed by a deterministic hash
// of the quote request.
type QuoteCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
