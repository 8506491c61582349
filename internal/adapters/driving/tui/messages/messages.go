// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/fsgc-labs/titan-scout/internal/core/domain"
)

// StateTick asks the app to refresh from the session snapshot.
type StateTick struct{}

// StateUpdated carries a session snapshot to the views.
type StateUpdated struct {
	State domain.SessionState
}

// ScanStarted reports the outcome of a start request.
type ScanStarted struct {
	Err error
}

// ConfigChanged is sent when the settings file changes on disk.
type ConfigChanged struct{}

// ConfigReloaded reports the outcome of reloading settings.
type ConfigReloaded struct {
	Err error
}

// SurnameSelected opens the search links for a surname.
type SurnameSelected struct {
	Surname string
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewDashboard is the scan dashboard.
	ViewDashboard ViewType = iota
	// ViewRadar is the onomastic radar.
	ViewRadar
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewDashboard:
		return "dashboard"
	case ViewRadar:
		return "radar"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
