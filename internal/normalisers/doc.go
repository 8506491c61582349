// Package normalisers maps the raw records of each source adapter into the
// canonical domain.Candidate. It is the single point of field defaulting:
// missing values become "Unknown", "N/A" or "Free Agent" depending on the
// origin, and every candidate leaves with a non-empty reasoning.
//
// Normalisers never filter. Exclusion has already happened in the adapter.
//
// Normalisers are registered with the Registry at startup.
package normalisers
