package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured indicates a required collaborator was not wired.
	ErrNotConfigured = errors.New("not configured")

	// ErrUnknownStrategy indicates a strategy outside the fixed enumeration.
	ErrUnknownStrategy = errors.New("unknown search strategy")

	// ErrUnknownMode indicates a scan mode outside the fixed enumeration.
	ErrUnknownMode = errors.New("unknown scan mode")

	// ErrRunInProgress indicates an aggregation run is already active.
	ErrRunInProgress = errors.New("scan in progress")

	// Source Errors.

	// ErrTransport indicates a network or HTTP failure reaching an external source.
	ErrTransport = errors.New("transport failure")

	// ErrParse indicates an external response could not be decoded.
	ErrParse = errors.New("parse failure")

	// ErrRateLimited indicates the external service rejected the call for quota reasons.
	ErrRateLimited = errors.New("rate limited")

	// ErrGeneratorUnavailable indicates the generative service is not configured.
	// Generative search mode and the chat assistant are disabled.
	ErrGeneratorUnavailable = errors.New("generator service unavailable")

	// ErrGraphUnavailable indicates the knowledge-graph endpoint is not configured.
	ErrGraphUnavailable = errors.New("graph source unavailable")
)
