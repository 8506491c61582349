package driving

import (
	"context"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
)

// SessionController drives the aggregation engine on user command.
// At most one run is active at a time.
type SessionController interface {
	// Start begins a scan. Starting while a scan is running is a no-op.
	// A scan cancelled by Reset must finish draining before a new one
	// begins; Start waits for it or for ctx.
	Start(ctx context.Context, opts StartOptions) error

	// Stop requests cooperative cancellation of the active scan.
	// Already-merged results are kept.
	Stop()

	// Reset clears results, logs and progress.
	Reset()

	// State returns a snapshot of the session.
	State() domain.SessionState

	// Done returns a channel closed when the current run ends.
	// It is already closed when no run is active.
	Done() <-chan struct{}
}

// StartOptions selects what a scan does.
type StartOptions struct {
	// Mode picks the text-side adapter. Defaults to hybrid.
	Mode domain.Mode

	// Strategy applies to generative mode. Defaults to SURNAME_BASE.
	Strategy domain.Strategy

	// Terms overrides the configured discovery phrases or target surnames.
	Terms []string

	// SkipGraph disables the knowledge-graph scan for this run.
	SkipGraph bool
}
