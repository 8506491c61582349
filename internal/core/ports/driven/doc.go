// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Source: Produces raw candidate records from one external source
//   - NormaliserRegistry: Maps raw records into canonical candidates
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Generator: Generative text with a web-search tool. Without it,
//     generative scan mode and the chat assistant are disabled.
//   - GraphClient: Structured knowledge-graph queries. Without it, scans
//     run on the text side alone.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, source, or normaliser package
package driven
