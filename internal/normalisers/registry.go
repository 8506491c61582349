package normalisers

import (
	"fmt"
	"sync"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry dispatches raw records to the normaliser for their origin.
// A later registration for the same origin replaces the earlier one.
type Registry struct {
	mu       sync.RWMutex
	byOrigin map[domain.RawOrigin]driven.Normaliser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byOrigin: make(map[domain.RawOrigin]driven.Normaliser)}
}

// NewDefaultRegistry returns a registry with every built-in normaliser.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Wikidata())
	r.Register(Wikipedia())
	r.Register(Generative())
	return r
}

// Register adds a normaliser for its origins.
func (r *Registry) Register(n driven.Normaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range n.Origins() {
		r.byOrigin[o] = n
	}
}

// Normalise dispatches raw to the registered normaliser.
func (r *Registry) Normalise(raw domain.RawCandidate) (domain.Candidate, error) {
	r.mu.RLock()
	n, ok := r.byOrigin[raw.Origin]
	r.mu.RUnlock()
	if !ok {
		return domain.Candidate{}, fmt.Errorf("%w: no normaliser for origin %q", domain.ErrNotFound, raw.Origin)
	}
	return n.Normalise(raw)
}
