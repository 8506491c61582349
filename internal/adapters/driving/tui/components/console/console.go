// Package console provides the scrolling scan log for the TUI.
package console

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/styles"
	"github.com/fsgc-labs/titan-scout/internal/core/domain"
)

// Console renders log events in a scrollable viewport. It follows the
// newest line unless the user has scrolled up.
type Console struct {
	viewport viewport.Model
	styles   *styles.Styles
	logs     []domain.LogEvent
}

// New creates a console.
func New(s *styles.Styles) *Console {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Console{
		viewport: viewport.New(80, 8),
		styles:   s,
	}
}

// Update forwards scrolling keys and mouse events to the viewport.
func (c *Console) Update(msg tea.Msg) (*Console, tea.Cmd) {
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return c, cmd
}

// SetLogs replaces the log. A shorter log means the session was reset.
func (c *Console) SetLogs(logs []domain.LogEvent) {
	if len(logs) == len(c.logs) && len(logs) > 0 && logs[len(logs)-1].ID == c.logs[len(c.logs)-1].ID {
		return
	}

	follow := c.viewport.AtBottom() || len(logs) < len(c.logs)
	c.logs = logs
	c.viewport.SetContent(c.render())
	if follow {
		c.viewport.GotoBottom()
	}
}

// Len returns the number of log lines.
func (c *Console) Len() int {
	return len(c.logs)
}

func (c *Console) render() string {
	if len(c.logs) == 0 {
		return c.styles.Muted.Render("Console idle.")
	}

	lines := make([]string, len(c.logs))
	for i, ev := range c.logs {
		lines[i] = c.styles.Muted.Render("["+ev.Clock()+"] ") + c.styles.ForLog(ev.Type).Render(ev.Text)
	}
	return strings.Join(lines, "\n")
}

// View renders the console.
func (c *Console) View() string {
	return c.styles.Subtitle.Render("Console") + "\n" + c.viewport.View()
}

// SetDimensions sets the console size, including its header line.
func (c *Console) SetDimensions(width, height int) {
	c.viewport.Width = width
	c.viewport.Height = max(1, height-1)
	c.viewport.SetContent(c.render())
	c.viewport.GotoBottom()
}
