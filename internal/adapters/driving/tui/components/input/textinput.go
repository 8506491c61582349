// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/styles"
)

// LabelledInput wraps a bubbles textinput with a label. The dashboard
// uses it for query terms and the radar for its surname filter.
type LabelledInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// New creates an unfocused labelled input.
func New(s *styles.Styles, label, placeholder string) *LabelledInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 50

	return &LabelledInput{
		textinput: ti,
		styles:    s,
		label:     label,
		width:     50,
	}
}

// Init initialises the input.
func (s *LabelledInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (s *LabelledInput) Update(msg tea.Msg) (*LabelledInput, tea.Cmd) {
	var cmd tea.Cmd
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd
}

// View renders the input.
func (s *LabelledInput) View() string {
	label := s.styles.Title.Render(s.label + ": ")
	input := s.styles.InputField.Render(s.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input)
}

// Label returns the input label.
func (s *LabelledInput) Label() string {
	return s.label
}

// Value returns the current input value.
func (s *LabelledInput) Value() string {
	return s.textinput.Value()
}

// SetValue sets the input value.
func (s *LabelledInput) SetValue(value string) {
	s.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (s *LabelledInput) Focus() tea.Cmd {
	return s.textinput.Focus()
}

// Blur removes focus from the input.
func (s *LabelledInput) Blur() {
	s.textinput.Blur()
}

// Focused returns whether the input is focused.
func (s *LabelledInput) Focused() bool {
	return s.textinput.Focused()
}

// SetWidth sets the width of the input.
func (s *LabelledInput) SetWidth(width int) {
	s.width = width
	// Account for label and padding
	s.textinput.Width = max(20, width-len(s.label)-8)
}

// Width returns the current width.
func (s *LabelledInput) Width() int {
	return s.width
}

// Reset clears the input.
func (s *LabelledInput) Reset() {
	s.textinput.Reset()
}
