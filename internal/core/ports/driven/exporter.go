package driven

import (
	"io"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
)

// Exporter serialises a final candidate list.
type Exporter interface {
	// Format returns the format identifier, e.g. "csv".
	Format() string

	// Export writes candidates to w.
	Export(w io.Writer, candidates []domain.Candidate) error
}
