// Package domain defines the core scouting entities for Titan.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Candidate: A canonical player lead produced by the aggregation pipeline
//   - RawCandidate: An adapter's optional-field record before normalisation
//   - ExclusionSet: Read-only policy input with the pure exclusion predicates
//   - LogEvent: A user-visible pipeline transition
//   - SessionState: The snapshot a presentation layer renders
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
