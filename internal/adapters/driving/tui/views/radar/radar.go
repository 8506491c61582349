// Package radar provides the onomastic radar view for the TUI.
package radar

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/components/input"
	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/components/status"
	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/keymap"
	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/messages"
	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/styles"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driving"
)

// View lists the native surnames and the manual search links for the
// selected one.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	filter    *input.LabelledInput
	statusbar *status.Bar

	radar    driving.RadarService
	surnames []string
	selected int

	width  int
	height int
}

// NewView creates a radar view.
func NewView(s *styles.Styles, km *keymap.KeyMap, radar driving.RadarService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetState(status.StateRadar)

	v := &View{
		styles:    s,
		keymap:    km,
		filter:    input.New(s, "Filter", "surname"),
		statusbar: bar,
		radar:     radar,
		width:     80,
		height:    24,
	}
	v.refresh()
	return v
}

// Init reloads the surname list.
func (v *View) Init() tea.Cmd {
	v.refresh()
	return nil
}

// Update handles messages for the radar view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.filter.Focused() {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			v.filter.Blur()
			return v, nil
		default:
			var cmd tea.Cmd
			v.filter, cmd = v.filter.Update(msg)
			v.refresh()
			return v, cmd
		}
	}

	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDashboard}
		}
	case keymap.Matches(key, v.keymap.Filter):
		return v, v.filter.Focus()
	case keymap.Matches(key, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(key, v.keymap.Down):
		if v.selected < len(v.surnames)-1 {
			v.selected++
		}
	case keymap.Matches(key, v.keymap.Select):
		if s := v.Selected(); s != "" {
			return v, func() tea.Msg {
				return messages.SurnameSelected{Surname: s}
			}
		}
	}
	return v, nil
}

// refresh reapplies the filter.
func (v *View) refresh() {
	if v.radar == nil {
		v.surnames = nil
		v.selected = 0
		return
	}
	v.surnames = v.radar.Surnames(v.filter.Value())
	if v.selected >= len(v.surnames) {
		v.selected = max(0, len(v.surnames)-1)
	}
}

// View renders the radar.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Onomastic Radar"))
	b.WriteString("\n\n")
	b.WriteString(v.filter.View())
	b.WriteString("\n\n")

	if v.radar == nil {
		b.WriteString(v.styles.Muted.Render("Radar unavailable."))
		b.WriteString("\n")
	} else {
		b.WriteString(v.renderSurnames())
		if s := v.Selected(); s != "" {
			b.WriteString("\n")
			b.WriteString(v.renderLinks(v.radar.Links(s)))
		}
	}

	b.WriteString("\n")
	b.WriteString(v.statusbar.View())
	return b.String()
}

func (v *View) renderSurnames() string {
	if len(v.surnames) == 0 {
		return v.styles.Muted.Render("No surnames match.") + "\n"
	}

	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Surnames (%d)", len(v.surnames))))
	b.WriteString("\n")

	visible := max(1, v.height-16)
	start := 0
	if v.selected >= visible {
		start = v.selected - visible + 1
	}
	end := min(len(v.surnames), start+visible)

	for i := start; i < end; i++ {
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + v.surnames[i]))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + v.surnames[i]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (v *View) renderLinks(l driving.IntelLinks) string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Search links for " + l.Surname))
	b.WriteString("\n")
	for _, row := range [][2]string{{"Italy", l.Italy}, {"Argentina", l.Argentina}, {"USA", l.USA}} {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  %-10s", row[0])))
		b.WriteString(v.styles.Normal.Render(row[1]))
		b.WriteString("\n")
	}
	return b.String()
}

// Selected returns the highlighted surname, or "" when the list is empty.
func (v *View) Selected() string {
	if v.selected < 0 || v.selected >= len(v.surnames) {
		return ""
	}
	return v.surnames[v.selected]
}

// Surnames returns the filtered surnames.
func (v *View) Surnames() []string {
	return v.surnames
}

// Filtering reports whether the filter input has focus.
func (v *View) Filtering() bool {
	return v.filter.Focused()
}

// SetDimensions sets the view size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.filter.SetWidth(width)
	v.statusbar.SetWidth(width)
}
