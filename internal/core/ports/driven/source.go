package driven

import (
	"context"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
)

// Query is one unit of work handed to a Source.
// The graph source ignores it; text-side sources run once per term and strategy.
type Query struct {
	Term     string
	Strategy domain.Strategy
}

// Source fetches raw candidate records from one external source.
// Implementations apply the exclusion policy before returning, so every
// record they emit has already passed the adapter-level filters.
type Source interface {
	// Name identifies the source in log events.
	Name() string

	// Fetch performs one call against the source.
	// Transport and parse failures are returned as errors; the engine turns
	// them into error events and empty batches.
	Fetch(ctx context.Context, q Query) ([]domain.RawCandidate, error)
}
