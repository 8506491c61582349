package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fsgc-labs/titan-scout/internal/adapters/driven/export"
	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driven"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driving"
	"github.com/fsgc-labs/titan-scout/internal/core/services"
)

// pollInterval is how often a running scan's state is printed.
const pollInterval = 500 * time.Millisecond

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run a scouting scan",
	Long: `Runs one scan and prints the ranked candidates.

Modes:
  hybrid     - knowledge graph plus encyclopedia keyword search (default)
  generative - knowledge graph plus model-driven web search

In generative mode --strategy picks the search angle; FULL_SCAN runs all of them.
Press Ctrl+C to stop early; leads found so far are kept.`,
	RunE: runScan,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run a scan and write the results to a file",
	Long: `Runs one scan like 'titan scan' and writes the candidates as CSV or as a
printable HTML report.`,
	RunE: runExport,
}

func init() {
	addScanFlags(scanCmd)
	scanCmd.Flags().Bool("json", false, "print candidates as JSON")
	scanCmd.Flags().StringP("output", "o", "", "also write the candidates to this file")
	scanCmd.Flags().StringP("format", "f", "csv", "export format: csv or html")

	addScanFlags(exportCmd)
	exportCmd.Flags().StringP("output", "o", "", "file to write (required)")
	exportCmd.Flags().StringP("format", "f", "csv", "export format: csv or html")
	exportCmd.Flags().BoolP("quiet", "q", false, "do not print the scan log")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(exportCmd)
}

func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("mode", "m", string(domain.ModeHybrid), "scan mode: hybrid or generative")
	cmd.Flags().StringP("strategy", "s", "", "generative strategy (default SURNAME_BASE)")
	cmd.Flags().StringP("terms", "t", "", "comma-separated terms overriding the configured list")
	cmd.Flags().Bool("skip-graph", false, "leave the knowledge graph out of this scan")
}

// startOptions reads the shared scan flags.
func startOptions(cmd *cobra.Command) (driving.StartOptions, error) {
	mode, _ := cmd.Flags().GetString("mode")
	strategy, _ := cmd.Flags().GetString("strategy")
	terms, _ := cmd.Flags().GetString("terms")
	skipGraph, _ := cmd.Flags().GetBool("skip-graph")

	opts := driving.StartOptions{
		Mode:      domain.Mode(mode),
		Terms:     services.ParseTerms(terms),
		SkipGraph: skipGraph,
	}
	if !opts.Mode.IsValid() {
		return opts, fmt.Errorf("%w: %q", domain.ErrUnknownMode, mode)
	}
	if strategy != "" {
		if opts.Mode != domain.ModeGenerative {
			return opts, fmt.Errorf("%w: --strategy requires --mode generative", domain.ErrInvalidInput)
		}
		st, err := domain.ParseStrategy(strategy)
		if err != nil {
			return opts, err
		}
		opts.Strategy = st
	}
	return opts, nil
}

func runScan(cmd *cobra.Command, _ []string) error {
	if sessionController == nil {
		return errors.New("session controller not configured")
	}

	opts, err := startOptions(cmd)
	if err != nil {
		return err
	}
	asJSON, _ := cmd.Flags().GetBool("json")
	output, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")

	exporter, err := export.ForFormat(format)
	if err != nil {
		return err
	}

	state, err := scanWithProgress(cmd, opts, !asJSON)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(state.Candidates); err != nil {
			return fmt.Errorf("failed to encode candidates: %w", err)
		}
	} else {
		printCandidates(cmd, state.Candidates)
	}

	if output != "" {
		if err := writeExport(exporter, output, state.Candidates); err != nil {
			return err
		}
		if !asJSON {
			cmd.Printf("Wrote %d candidates to %s\n", len(state.Candidates), output)
		}
	}
	return nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	if sessionController == nil {
		return errors.New("session controller not configured")
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		return errors.New("--output is required")
	}
	format, _ := cmd.Flags().GetString("format")
	quiet, _ := cmd.Flags().GetBool("quiet")

	exporter, err := export.ForFormat(format)
	if err != nil {
		return err
	}
	opts, err := startOptions(cmd)
	if err != nil {
		return err
	}

	state, err := scanWithProgress(cmd, opts, !quiet)
	if err != nil {
		return err
	}
	if err := writeExport(exporter, output, state.Candidates); err != nil {
		return err
	}

	cmd.Printf("Wrote %d candidates to %s (%s)\n", len(state.Candidates), output, exporter.Format())
	return nil
}

// scanWithProgress starts a scan and prints new log lines until it ends.
// Cancelling the command context stops the scan and keeps its results.
func scanWithProgress(cmd *cobra.Command, opts driving.StartOptions, showLog bool) (domain.SessionState, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sessionController.Reset()
	if err := sessionController.Start(ctx, opts); err != nil {
		return domain.SessionState{}, fmt.Errorf("failed to start scan: %w", err)
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	printed := 0
	flush := func() domain.SessionState {
		st := sessionController.State()
		if showLog {
			for _, ev := range st.Logs[min(printed, len(st.Logs)):] {
				printLog(cmd, ev)
			}
		}
		printed = len(st.Logs)
		return st
	}

	done := sessionController.Done()
	cancelled := ctx.Done()
	for {
		select {
		case <-done:
			return flush(), nil
		case <-cancelled:
			cmd.PrintErrln("Stopping scan...")
			sessionController.Stop()
			cancelled = nil
		case <-ticker.C:
			flush()
		}
	}
}

func printLog(cmd *cobra.Command, ev domain.LogEvent) {
	cmd.Printf("[%s] %-7s %s\n", ev.Clock(), ev.Type, ev.Text)
}

func printCandidates(cmd *cobra.Command, candidates []domain.Candidate) {
	if len(candidates) == 0 {
		cmd.Println("\nNo candidates found.")
		return
	}

	cmd.Printf("\nFound %d candidates:\n\n", len(candidates))
	for i := range candidates {
		c := &candidates[i]
		cmd.Printf("%d. %s (%s) [%s]\n", i+1, c.Name, c.Club, c.DiscoveryMethod)
		cmd.Printf("   Born: %s  Country: %s  Via: %s\n", c.YearBorn, c.Country, c.FoundVia)
		cmd.Printf("   %s\n", c.Reasoning)
		if c.SourceURL != "" && c.SourceURL != domain.NotAvailable {
			cmd.Printf("   %s\n", c.SourceURL)
		}
		cmd.Println()
	}
}

func writeExport(exporter driven.Exporter, path string, candidates []domain.Candidate) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := exporter.Export(f, candidates); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to export %s: %w", exporter.Format(), err)
	}
	return f.Close()
}
