package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
)

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(scanCmd, exportCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestScanCmd_Use(t *testing.T) {
	assert.Equal(t, "scan", scanCmd.Use)
	assert.Contains(t, scanCmd.Long, "FULL_SCAN")
}

func TestScanCmd_Flags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		def       string
	}{
		{"mode", "m", "hybrid"},
		{"strategy", "s", ""},
		{"terms", "t", ""},
		{"skip-graph", "", "false"},
		{"json", "", "false"},
		{"output", "o", ""},
		{"format", "f", "csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := scanCmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
			assert.Equal(t, tt.def, flag.DefValue)
		})
	}
}

func TestScanCmd_PrintsLogAndCandidates(t *testing.T) {
	session, _, _, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "scan")

	require.NoError(t, err)
	assert.Equal(t, 1, session.resets)
	require.Len(t, session.started, 1)
	assert.Equal(t, domain.ModeHybrid, session.started[0].Mode)
	assert.Contains(t, out, "[14:03:27] system  Initiating HYBRID OSINT Protocol")
	assert.Contains(t, out, "Found 2 candidates:")
	assert.Contains(t, out, "1. Marco Rossi (Rimini) [GRAPH]")
	assert.Contains(t, out, "https://www.wikidata.org/wiki/Q1")
	assert.Contains(t, out, "2. Luca Gasperoni")
}

func TestScanCmd_Options(t *testing.T) {
	session, _, _, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "scan", "-m", "generative", "-s", "argentina", "-t", "Gasperoni, Zonzini", "--skip-graph")

	require.NoError(t, err)
	require.Len(t, session.started, 1)
	opts := session.started[0]
	assert.Equal(t, domain.ModeGenerative, opts.Mode)
	assert.Equal(t, domain.StrategyArgentina, opts.Strategy)
	assert.Equal(t, []string{"Gasperoni", "Zonzini"}, opts.Terms)
	assert.True(t, opts.SkipGraph)
}

func TestScanCmd_InvalidOptions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unknown mode", []string{"scan", "-m", "psychic"}, domain.ErrUnknownMode},
		{"strategy in hybrid", []string{"scan", "-s", "ARGENTINA"}, domain.ErrInvalidInput},
		{"unknown strategy", []string{"scan", "-m", "generative", "-s", "MARS"}, domain.ErrUnknownStrategy},
		{"unknown format", []string{"scan", "-f", "xlsx"}, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, _, _, cleanup := setupTestServices()
			defer cleanup()

			_, err := execute(t, tt.args...)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, session.started)
		})
	}
}

func TestScanCmd_StartFails(t *testing.T) {
	session, _, _, cleanup := setupTestServices()
	defer cleanup()
	session.err = domain.ErrGeneratorUnavailable

	_, err := execute(t, "scan", "-m", "generative")

	assert.ErrorIs(t, err, domain.ErrGeneratorUnavailable)
	assert.Contains(t, err.Error(), "failed to start scan")
}

func TestScanCmd_NoCandidates(t *testing.T) {
	session, _, _, cleanup := setupTestServices()
	defer cleanup()
	session.result = domain.SessionState{}

	out, err := execute(t, "scan")

	require.NoError(t, err)
	assert.Contains(t, out, "No candidates found.")
}

func TestScanCmd_JSON(t *testing.T) {
	_, _, _, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "scan", "--json")

	require.NoError(t, err)
	assert.NotContains(t, out, "Initiating")

	var got []domain.Candidate
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Marco Rossi", got[0].Name)
}

func TestScanCmd_WritesOutput(t *testing.T) {
	_, _, _, cleanup := setupTestServices()
	defer cleanup()
	path := filepath.Join(t.TempDir(), "leads.csv")

	out, err := execute(t, "scan", "-o", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 2 candidates to "+path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Marco Rossi")
}

func TestScanCmd_NotConfigured(t *testing.T) {
	_, _, _, cleanup := setupTestServices()
	defer cleanup()
	sessionController = nil

	_, err := execute(t, "scan")

	assert.EqualError(t, err, "session controller not configured")
}

func TestExportCmd_RequiresOutput(t *testing.T) {
	_, _, _, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "export")

	assert.EqualError(t, err, "--output is required")
}

func TestExportCmd_Formats(t *testing.T) {
	tests := []struct {
		format string
		file   string
		want   string
	}{
		{"csv", "leads.csv", "Luca Gasperoni"},
		{"html", "leads.html", "<html"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			_, _, _, cleanup := setupTestServices()
			defer cleanup()
			path := filepath.Join(t.TempDir(), tt.file)

			out, err := execute(t, "export", "-q", "-o", path, "-f", tt.format)

			require.NoError(t, err)
			assert.NotContains(t, out, "Initiating")
			assert.Contains(t, out, "Wrote 2 candidates to "+path+" ("+tt.format+")")
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.want)
		})
	}
}

func TestExportCmd_BadPath(t *testing.T) {
	_, _, _, cleanup := setupTestServices()
	defer cleanup()
	path := filepath.Join(t.TempDir(), "missing", "leads.csv")

	_, err := execute(t, "export", "-q", "-o", path)

	require.Error(t, err)
	var pathErr *os.PathError
	assert.True(t, errors.As(err, &pathErr))
}
