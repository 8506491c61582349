package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui"
	"github.com/fsgc-labs/titan-scout/internal/logger"
)

// TUIConfig holds configuration for the TUI command.
type TUIConfig struct {
	// Reload re-reads the settings file.
	Reload func() error

	// ConfigChanges signals edits to the settings file.
	ConfigChanges <-chan struct{}
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the scouting dashboard",
	Long: `Launch the interactive scouting dashboard.

The dashboard runs scans, shows ranked candidates as they arrive and streams
the scan console. Settings edited on disk apply to the next scan.

Controls:
  s        - Start scan
  x        - Stop scan
  r        - Reset results
  m        - Toggle hybrid/generative mode
  tab      - Cycle generative strategy
  t        - Edit query terms
  ↑/k, ↓/j - Navigate candidates
  Enter    - Candidate details
  v        - Onomastic radar
  ?        - Toggle help
  q        - Quit`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := tui.NewPorts(sessionController, radarService)
	if tuiConfig != nil {
		ports.Reload = tuiConfig.Reload
		ports.ConfigChanges = tuiConfig.ConfigChanges
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	// Diagnostic lines would tear the alternate screen
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(os.Stderr)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
