package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/keymap"
	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/messages"
	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/styles"
	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/views/dashboard"
	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/views/radar"
)

// pollInterval is how often the app refreshes from the session snapshot.
const pollInterval = 250 * time.Millisecond

// reloadNotice is shown after settings change on disk.
const reloadNotice = "Settings reloaded; applied at next scan"

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for scan requests.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	dashboardView *dashboard.View
	radarView     *radar.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// previousView is restored when help closes.
	previousView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		dashboardView: dashboard.NewView(s, km, ports.Session),
		radarView:     radar.NewView(s, km, ports.Radar),
		currentView:   messages.ViewDashboard,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.dashboardView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("titan - Scouting Dashboard"),
		a.dashboardView.Init(),
		a.refresh,
		a.waitForConfig(),
	)
}

// tick schedules the next state refresh.
func (a *App) tick() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return messages.StateTick{}
	})
}

// refresh reads a session snapshot.
func (a *App) refresh() tea.Msg {
	return messages.StateUpdated{State: a.ports.Session.State()}
}

// waitForConfig blocks until the settings file changes.
func (a *App) waitForConfig() tea.Cmd {
	ch := a.ports.ConfigChanges
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return messages.ConfigChanged{}
	}
}

// reload re-reads settings.
func (a *App) reload() tea.Cmd {
	reload := a.ports.Reload
	if reload == nil {
		return nil
	}
	return func() tea.Msg {
		return messages.ConfigReloaded{Err: reload()}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.StateTick:
		return a, a.refresh

	case messages.StateUpdated:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		return a, tea.Batch(cmd, a.tick())

	case messages.ScanStarted:
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		if msg.Err == nil {
			a.dashboardView, _ = a.dashboardView.Update(messages.StateUpdated{State: a.ports.Session.State()})
		}
		return a, cmd

	case spinner.TickMsg:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		return a, cmd

	case messages.ConfigChanged:
		return a, tea.Batch(a.reload(), a.waitForConfig())

	case messages.ConfigReloaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.dashboardView, cmd = a.dashboardView.Update(messages.ErrorOccurred{Err: msg.Err})
			return a, cmd
		}
		a.dashboardView.SetNotice(reloadNotice)
		return a, nil

	case messages.SurnameSelected:
		a.dashboardView.Target(msg.Surname)
		a.currentView = messages.ViewDashboard
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewRadar {
			return a, a.radarView.Init()
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, a.quit()
	}

	return a, nil
}

// handleKeyMsg routes keys to the global bindings or the active view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Global quit with ctrl+c
	if msg.String() == "ctrl+c" {
		return a, a.quit()
	}

	// Text inputs take every other key while focused
	if a.currentView == messages.ViewDashboard && a.dashboardView.Editing() {
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		return a, cmd
	}
	if a.currentView == messages.ViewRadar && a.radarView.Filtering() {
		a.radarView, cmd = a.radarView.Update(msg)
		return a, cmd
	}

	key := msg.String()
	switch {
	case keymap.Matches(key, a.keymap.Quit):
		return a, a.quit()

	case keymap.Matches(key, a.keymap.Help):
		if a.currentView == messages.ViewHelp {
			a.currentView = a.previousView
			return a, nil
		}
		a.previousView = a.currentView
		a.currentView = messages.ViewHelp
		return a, nil
	}

	switch a.currentView {
	case messages.ViewDashboard:
		if keymap.Matches(key, a.keymap.Radar) {
			a.currentView = messages.ViewRadar
			return a, a.radarView.Init()
		}
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		return a, cmd

	case messages.ViewRadar:
		a.radarView, cmd = a.radarView.Update(msg)
		return a, cmd

	case messages.ViewHelp:
		// Esc from help goes back
		if msg.Type == tea.KeyEsc {
			a.currentView = a.previousView
		}
		return a, nil
	}

	return a, nil
}

// quit stops any running scan and exits.
func (a *App) quit() tea.Cmd {
	if a.ports.Session.State().IsRunning {
		a.ports.Session.Stop()
	}
	return tea.Quit
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewRadar:
		return a.radarView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.dashboardView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("[esc] back"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Dashboard returns the dashboard view.
func (a *App) Dashboard() *dashboard.View {
	return a.dashboardView
}

// Radar returns the radar view.
func (a *App) Radar() *radar.View {
	return a.radarView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.dashboardView.SetDimensions(width, height)
	a.radarView.SetDimensions(width, height)
}
