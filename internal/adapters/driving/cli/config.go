package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/services"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"settings"},
	Short:   "Manage application settings",
	Long: `View and change the exclusion lists, age policy, sources and generator.

Settings live in a TOML file; 'titan config path' prints its location.
List values are given comma-separated.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a single setting",
	Long: `Sets one setting by its dot-notation key, e.g.

  titan config set scan.delay_ms 2000
  titan config set generator.provider openai
  titan config set exclusions.domestic_clubs "Tre Penne, La Fiorita"

Run 'titan config keys' for every key.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every setting key",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, k := range services.SettingsKeys() {
			cmd.Println(k)
		}
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if settingsService == nil {
			return errors.New("settings service not configured")
		}
		cmd.Println(settingsService.Path())
		return nil
	},
}

var configAPIKeyCmd = &cobra.Command{
	Use:   "api-key",
	Short: "Store the generator API key",
	Long:  `Prompts for the generator API key without echoing it and stores it.`,
	RunE:  runConfigAPIKey,
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the generator is reachable",
	RunE:  runConfigCheck,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configKeysCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configAPIKeyCmd)
	configCmd.AddCommand(configCheckCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Exclusions]")
	cmd.Printf("  Known players: %d\n", len(settings.Exclusions.KnownPlayers))
	cmd.Printf("  Domestic clubs: %s\n", strings.Join(settings.Exclusions.DomesticClubs, ", "))
	cmd.Printf("  Noise keywords: %d\n", len(settings.Exclusions.NoiseKeywords))
	cmd.Printf("  National-team markers: %d\n", len(settings.Exclusions.NationalTeamMarkers))
	cmd.Println()

	age := settings.Exclusions.Age
	cmd.Println("[Age]")
	cmd.Printf("  Born from: %d\n", age.MinBirthYear)
	cmd.Printf("  Max age: %d (goalkeepers %d)\n", age.OutfieldMaxAge, age.GoalkeeperMaxAge)
	cmd.Println()

	cmd.Println("[Scan]")
	cmd.Printf("  Delay between calls: %s\n", settings.InterCallDelay)
	cmd.Printf("  Discovery queries: %d\n", len(settings.DiscoveryQueries))
	cmd.Printf("  Target surnames: %s\n", strings.Join(settings.TargetSurnames, ", "))
	cmd.Println()

	cmd.Println("[Graph]")
	if settings.Graph.Enabled {
		cmd.Printf("  Endpoint: %s\n", settings.Graph.Endpoint)
		if settings.Graph.QueryFile != "" {
			cmd.Printf("  Query file: %s\n", settings.Graph.QueryFile)
		}
	} else {
		cmd.Println("  Enabled: no")
	}
	cmd.Println()

	cmd.Println("[Text]")
	cmd.Printf("  Endpoint: %s\n", settings.Text.Endpoint)
	cmd.Printf("  Languages: %s\n", strings.Join(settings.Text.Languages, ", "))
	cmd.Printf("  Results per call: %d\n", settings.Text.Limit)
	cmd.Println()

	gen := settings.Generator
	cmd.Println("[Generator]")
	cmd.Printf("  Provider: %s\n", gen.Provider)
	cmd.Printf("  Model: %s (chat %s)\n", gen.Model, gen.ChatModel)
	if gen.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", gen.BaseURL)
	}
	switch {
	case gen.AccessToken != "":
		cmd.Printf("  Access token: %s\n", maskAPIKey(gen.AccessToken))
	case gen.APIKey != "":
		cmd.Printf("  API Key: %s\n", maskAPIKey(gen.APIKey))
	default:
		cmd.Printf("  API Key: (not set)\n")
	}
	cmd.Println()

	if gen.IsConfigured() {
		cmd.Println("Generative mode and chat are available.")
	} else {
		cmd.Printf("Warning: %v\n", domain.ErrGeneratorUnavailable)
		cmd.Println("Run 'titan config api-key' to enable generative mode and chat.")
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("%s updated.\n", args[0])
	return nil
}

func runConfigAPIKey(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Print("Enter API key: ")
	key := readPassword(cmd)
	cmd.Println()
	if key == "" {
		return errors.New("API key is required")
	}

	if err := settingsService.Set(services.KeyGenAPIKey, key); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}
	cmd.Println("API key stored.")
	return nil
}

func runConfigCheck(cmd *cobra.Command, _ []string) error {
	if generatorCheck == nil {
		return domain.ErrGeneratorUnavailable
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cmd.Print("Validating generator... ")
	if err := generatorCheck(ctx); err != nil {
		cmd.Printf("FAILED: %v\n", err)
		return fmt.Errorf("generator validation failed: %w", err)
	}
	cmd.Println("OK")
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword(cmd *cobra.Command) string {
	// Try to read password without echo
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(cmd.InOrStdin())
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
