// Package dashboard provides the scan dashboard view for the TUI.
package dashboard

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/components/console"
	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/components/input"
	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/components/list"
	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/components/status"
	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/keymap"
	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/messages"
	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/styles"
	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driving"
	"github.com/fsgc-labs/titan-scout/internal/core/services"
)

// View is the scan dashboard: controls, ranked candidates, console and
// status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.CandidateList
	console   *console.Console
	statusbar *status.Bar
	terms     *input.LabelledInput

	session driving.SessionController
	ctx     context.Context

	mode     domain.Mode
	strategy domain.Strategy
	running  bool
	details  bool
	notice   string
	err      error

	width  int
	height int
}

// NewView creates a dashboard view.
func NewView(s *styles.Styles, km *keymap.KeyMap, session driving.SessionController) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		list:      list.NewCandidateList(s),
		console:   console.New(s),
		statusbar: status.NewBar(s, km),
		terms:     input.New(s, "Terms", "comma separated; blank uses configured terms"),
		session:   session,
		ctx:       context.Background(),
		mode:      domain.ModeHybrid,
		strategy:  domain.StrategySurnameBase,
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for scan requests.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts the status bar spinner.
func (v *View) Init() tea.Cmd {
	return v.statusbar.Init()
}

// Update handles messages for the dashboard.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.StateUpdated:
		v.apply(msg.State)
		return v, nil

	case messages.ScanStarted:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.err = nil
		v.notice = ""
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.statusbar, cmd = v.statusbar.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.terms.Focused() {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			v.terms.Blur()
			return v, nil
		default:
			var cmd tea.Cmd
			v.terms, cmd = v.terms.Update(msg)
			return v, cmd
		}
	}

	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Start):
		if v.running {
			return v, nil
		}
		v.details = false
		return v, v.startCmd()

	case keymap.Matches(key, v.keymap.Stop):
		if v.running && v.session != nil {
			v.session.Stop()
		}
		return v, nil

	case keymap.Matches(key, v.keymap.Reset):
		v.err = nil
		v.notice = ""
		v.details = false
		if v.session != nil {
			v.session.Reset()
			v.apply(v.session.State())
		}
		return v, nil

	case keymap.Matches(key, v.keymap.Mode):
		if !v.running {
			v.toggleMode()
		}
		return v, nil

	case keymap.Matches(key, v.keymap.Strategy):
		if !v.running && v.mode == domain.ModeGenerative {
			v.cycleStrategy()
		}
		return v, nil

	case keymap.Matches(key, v.keymap.Terms):
		if v.running {
			return v, nil
		}
		return v, v.terms.Focus()

	case keymap.Matches(key, v.keymap.Select):
		if v.list.SelectedCandidate() != nil {
			v.details = !v.details
		}
		return v, nil

	case key == "pgup" || key == "pgdown":
		var cmd tea.Cmd
		v.console, cmd = v.console.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// startCmd asks the session to start a scan with the current controls.
func (v *View) startCmd() tea.Cmd {
	session := v.session
	ctx := v.ctx
	opts := v.StartOptions()
	return func() tea.Msg {
		if session == nil {
			return messages.ScanStarted{Err: domain.ErrNotConfigured}
		}
		return messages.ScanStarted{Err: session.Start(ctx, opts)}
	}
}

// StartOptions returns the options the next scan will use.
func (v *View) StartOptions() driving.StartOptions {
	opts := driving.StartOptions{
		Mode:  v.mode,
		Terms: services.ParseTerms(v.terms.Value()),
	}
	if v.mode == domain.ModeGenerative {
		opts.Strategy = v.strategy
	}
	return opts
}

// Target prepares a generative scan of a single surname. It is ignored
// while a scan runs.
func (v *View) Target(surname string) {
	if v.running {
		return
	}
	v.mode = domain.ModeGenerative
	v.terms.SetValue(surname)
}

func (v *View) toggleMode() {
	if v.mode == domain.ModeHybrid {
		v.mode = domain.ModeGenerative
	} else {
		v.mode = domain.ModeHybrid
	}
}

func (v *View) cycleStrategy() {
	all := domain.Strategies()
	i := slices.Index(all, v.strategy)
	v.strategy = all[(i+1)%len(all)]
}

// apply refreshes the view from a session snapshot.
func (v *View) apply(st domain.SessionState) {
	v.running = st.IsRunning
	v.list.SetCandidates(st.Candidates)
	v.console.SetLogs(st.Logs)

	v.statusbar.SetProgress(st.Progress)
	v.statusbar.SetCount(len(st.Candidates))
	switch {
	case st.IsRunning:
		v.statusbar.SetState(status.StateScanning)
	case v.err != nil:
		v.statusbar.SetState(status.StateError)
	default:
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage(v.notice)
	}
}

func (v *View) setError(err error) {
	if err == nil {
		return
	}
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// SetNotice shows a transient message in the status bar while idle.
func (v *View) SetNotice(notice string) {
	v.notice = notice
	if !v.running && v.err == nil {
		v.statusbar.SetMessage(notice)
	}
}

// View renders the dashboard.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("TITAN SCOUT"))
	b.WriteString(v.styles.Muted.Render("  San Marino eligibility radar"))
	b.WriteString("\n\n")
	b.WriteString(v.renderControls())
	b.WriteString("\n")
	b.WriteString(v.terms.View())
	b.WriteString("\n\n")

	main := v.list.View()
	if v.details {
		if c := v.list.SelectedCandidate(); c != nil {
			main = lipgloss.JoinHorizontal(lipgloss.Top, main, "  ", v.renderDetails(c))
		}
	}
	b.WriteString(main)
	b.WriteString("\n")
	b.WriteString(v.console.View())
	b.WriteString("\n")
	b.WriteString(v.statusbar.View())

	return b.String()
}

func (v *View) renderControls() string {
	mode := v.styles.Normal.Render("Mode: ") + v.styles.Subtitle.Render(v.mode.Description())
	if v.mode != domain.ModeGenerative {
		return mode
	}
	return mode + v.styles.Normal.Render("   Strategy: ") + v.styles.Subtitle.Render(v.strategy.Label())
}

func (v *View) renderDetails(c *domain.Candidate) string {
	rows := [][2]string{
		{"Club", c.Club},
		{"League", c.League},
		{"Position", c.Position},
		{"Born", c.YearBorn},
		{"Country", c.Country},
		{"Citizenship", c.Citizenship},
		{"Found via", c.FoundVia},
		{"Source", c.SourceURL},
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(c.Name))
	b.WriteString(" ")
	b.WriteString(v.styles.Badge(c.DiscoveryMethod))
	b.WriteString("\n")
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%-12s", r[0])))
		b.WriteString(v.styles.Normal.Render(r[1]))
		b.WriteString("\n")
	}
	if c.Reasoning != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Normal.Render(c.Reasoning))
	}

	return v.styles.Border.Width(max(30, v.width/2-4)).Padding(0, 1).Render(b.String())
}

// SetDimensions lays out the components for a terminal size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	// Header, controls, terms input and status bar take eight lines
	body := max(6, height-8)
	listHeight := body * 2 / 3
	listWidth := width
	if v.details {
		listWidth = width / 2
	}
	v.list.SetDimensions(listWidth, listHeight)
	v.console.SetDimensions(width, body-listHeight)
	v.terms.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Mode returns the selected scan mode.
func (v *View) Mode() domain.Mode {
	return v.mode
}

// Strategy returns the selected generative strategy.
func (v *View) Strategy() domain.Strategy {
	return v.strategy
}

// Running reports whether the last snapshot showed a scan in progress.
func (v *View) Running() bool {
	return v.running
}

// Editing reports whether the terms input has focus.
func (v *View) Editing() bool {
	return v.terms.Focused()
}

// ShowingDetails reports whether the detail panel is open.
func (v *View) ShowingDetails() bool {
	return v.details
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// StatusBar exposes the status bar.
func (v *View) StatusBar() *status.Bar {
	return v.statusbar
}

// List exposes the candidate list.
func (v *View) List() *list.CandidateList {
	return v.list
}
