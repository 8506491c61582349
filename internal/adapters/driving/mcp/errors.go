// Package mcp provides an MCP (Model Context Protocol) server adapter for Titan.
// It lets AI assistants start scans, read the ranked candidates and build
// search links for a surname.
package mcp

import "errors"

// ErrMissingSessionController is returned when the session controller is not provided.
var ErrMissingSessionController = errors.New("mcp: session controller is required")
