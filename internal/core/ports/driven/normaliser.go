package driven

import "github.com/fsgc-labs/titan-scout/internal/core/domain"

// Normaliser maps one adapter's raw records into canonical candidates.
// It only defaults missing fields; filtering happened in the adapter.
type Normaliser interface {
	// Origins returns the raw origins this normaliser handles.
	Origins() []domain.RawOrigin

	// Normalise transforms a raw record into a candidate.
	Normalise(raw domain.RawCandidate) (domain.Candidate, error)
}

// NormaliserRegistry selects the normaliser for a raw record.
type NormaliserRegistry interface {
	// Register adds a normaliser for its origins.
	Register(n Normaliser)

	// Normalise dispatches raw to the registered normaliser.
	Normalise(raw domain.RawCandidate) (domain.Candidate, error)
}
