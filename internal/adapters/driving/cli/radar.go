package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var radarCmd = &cobra.Command{
	Use:   "radar [filter]",
	Short: "List the surnames on the onomastic radar",
	Long: `Lists the configured San Marino surnames, optionally filtered by a
case-insensitive substring. Use 'titan links <surname>' for search links.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRadar,
}

var linksCmd = &cobra.Command{
	Use:   "links <surname>",
	Short: "Print manual search links for a surname",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLinks,
}

func init() {
	rootCmd.AddCommand(radarCmd)
	rootCmd.AddCommand(linksCmd)
}

func runRadar(cmd *cobra.Command, args []string) error {
	if radarService == nil {
		return errors.New("radar service not configured")
	}

	filter := ""
	if len(args) > 0 {
		filter = args[0]
	}

	surnames := radarService.Surnames(filter)
	if len(surnames) == 0 {
		cmd.Println("No surnames match.")
		return nil
	}

	cmd.Printf("%d surnames:\n", len(surnames))
	for _, s := range surnames {
		cmd.Printf("  %s\n", s)
	}
	return nil
}

func runLinks(cmd *cobra.Command, args []string) error {
	if radarService == nil {
		return errors.New("radar service not configured")
	}

	links := radarService.Links(strings.Join(args, " "))
	cmd.Printf("Search links for %s\n\n", links.Surname)
	cmd.Printf("Italy:     %s\n", links.Italy)
	cmd.Printf("Argentina: %s\n", links.Argentina)
	cmd.Printf("USA:       %s\n", links.USA)
	return nil
}
