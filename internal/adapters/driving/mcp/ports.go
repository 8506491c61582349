package mcp

import (
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session drives scans and exposes their state.
	Session driving.SessionController

	// Radar builds search links. Optional.
	Radar driving.RadarService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSessionController
	}
	return nil
}
