// Package cli provides the cobra command tree for the titan binary.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/fsgc-labs/titan-scout/internal/core/ports/driving"
	"github.com/fsgc-labs/titan-scout/internal/logger"
)

var (
	version = "dev"
	verbose bool

	sessionController driving.SessionController
	chatService       driving.ChatService
	radarService      driving.RadarService
	settingsService   driving.SettingsService

	// generatorCheck pings the configured generator. Nil when no
	// generator can be built.
	generatorCheck func(ctx context.Context) error
)

var rootCmd = &cobra.Command{
	Use:   "titan",
	Short: "Scouting aggregator for San Marino eligible players",
	Long: `Titan searches a knowledge graph and free-text sources for football players
who may be eligible for San Marino, filters out the known squad and the
domestic league, merges duplicate leads and ranks what is left.

Run 'titan scan' for a one-shot scan or 'titan tui' for the dashboard.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

// Services holds the driving ports the commands call into.
type Services struct {
	Session        driving.SessionController
	Chat           driving.ChatService
	Radar          driving.RadarService
	Settings       driving.SettingsService
	GeneratorCheck func(ctx context.Context) error
}

// SetServices installs the services used by every command.
func SetServices(s Services) {
	sessionController = s.Session
	chatService = s.Chat
	radarService = s.Radar
	settingsService = s.Settings
	generatorCheck = s.GeneratorCheck
}

// SetVersion sets the version reported by 'titan version'.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic logs to stderr")
}
