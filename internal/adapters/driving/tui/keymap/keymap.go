// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Start begins a scan.
	Start key.Binding

	// Stop cancels the running scan.
	Stop key.Binding

	// Reset clears results and logs.
	Reset key.Binding

	// Mode toggles between hybrid and generative.
	Mode key.Binding

	// Strategy cycles the generative strategy.
	Strategy key.Binding

	// Terms edits the query terms for the next scan.
	Terms key.Binding

	// Radar switches to the surname radar.
	Radar key.Binding

	// Filter edits the radar filter.
	Filter key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection.
	Select key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scan"),
		),
		Stop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "stop"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mode"),
		),
		Strategy: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "strategy"),
		),
		Terms: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "terms"),
		),
		Radar: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "radar"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Mode, k.Radar, k.Help, k.Quit}
}

// RunningHelp returns keybindings shown while a scan runs.
func (k *KeyMap) RunningHelp() []key.Binding {
	return []key.Binding{k.Stop, k.Up, k.Select, k.Quit}
}

// RadarHelp returns keybindings for the radar view.
func (k *KeyMap) RadarHelp() []key.Binding {
	return []key.Binding{k.Filter, k.Up, k.Back, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Stop, k.Reset},
		{k.Mode, k.Strategy, k.Terms},
		{k.Up, k.Down, k.Select},
		{k.Radar, k.Filter, k.Back},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
