// Package tui provides an interactive terminal user interface for titan.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session drives scans and exposes their state.
	Session driving.SessionController

	// Radar provides the onomastic radar. Optional.
	Radar driving.RadarService

	// Reload re-reads settings after the file changes on disk. Optional.
	Reload func() error

	// ConfigChanges signals settings file changes. Optional.
	ConfigChanges <-chan struct{}
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(session driving.SessionController, radar driving.RadarService) *Ports {
	return &Ports{
		Session: session,
		Radar:   radar,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Session == nil {
		return ErrMissingSessionController
	}
	return nil
}
