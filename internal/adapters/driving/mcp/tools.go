package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driving"
)

// defaultCandidateLimit caps candidates returned when no limit is given.
const defaultCandidateLimit = 25

// StartScanInput is the input schema for the start_scan tool.
type StartScanInput struct {
	Mode      string   `json:"mode,omitempty" jsonschema:"scan mode: hybrid (default) or generative"`
	Strategy  string   `json:"strategy,omitempty" jsonschema:"generative strategy, e.g. SURNAME_BASE, ARGENTINA or FULL_SCAN"`
	Terms     []string `json:"terms,omitempty" jsonschema:"query terms overriding the configured phrases or surnames"`
	SkipGraph bool     `json:"skip_graph,omitempty" jsonschema:"leave the knowledge graph out of this scan"`
	Wait      bool     `json:"wait,omitempty" jsonschema:"block until the scan ends and return its results"`
	Limit     int      `json:"limit,omitempty" jsonschema:"maximum number of candidates to return (default 25)"`
}

// SessionInput is the input schema for the get_session tool.
type SessionInput struct {
	Limit       int  `json:"limit,omitempty" jsonschema:"maximum number of candidates to return (default 25)"`
	IncludeLogs bool `json:"include_logs,omitempty" jsonschema:"include the scan log"`
}

// EmptyInput is the input schema for tools without arguments.
type EmptyInput struct{}

// LinksInput is the input schema for the intel_links tool.
type LinksInput struct {
	Surname string `json:"surname" jsonschema:"the surname to build search links for"`
}

// SurnamesInput is the input schema for the radar_surnames tool.
type SurnamesInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"case-insensitive substring to filter surnames"`
}

// SessionOutput is the output schema for session tools.
type SessionOutput struct {
	Running    bool              `json:"running"`
	Progress   int               `json:"progress"`
	Mode       string            `json:"mode,omitempty"`
	Strategy   string            `json:"strategy,omitempty"`
	Count      int               `json:"count"`
	Candidates []CandidateOutput `json:"candidates"`
	Logs       []string          `json:"logs,omitempty"`
}

// CandidateOutput represents a single ranked candidate.
type CandidateOutput struct {
	Name      string `json:"name"`
	Club      string `json:"club"`
	YearBorn  string `json:"year_born"`
	Country   string `json:"country"`
	Method    string `json:"method"`
	FoundVia  string `json:"found_via"`
	Reasoning string `json:"reasoning"`
	SourceURL string `json:"source_url"`
}

// SurnamesOutput is the output schema for the radar_surnames tool.
type SurnamesOutput struct {
	Surnames []string `json:"surnames"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "start_scan",
		Description: "Start a scan for San Marino eligible football players",
	}, s.handleStartScan)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "stop_scan",
		Description: "Stop the running scan, keeping candidates found so far",
	}, s.handleStopScan)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "reset_session",
		Description: "Clear candidates, logs and progress",
	}, s.handleResetSession)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_session",
		Description: "Get scan progress and the ranked candidates",
	}, s.handleGetSession)

	if s.ports.Radar != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "intel_links",
			Description: "Build manual search links for a surname",
		}, s.handleIntelLinks)

		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "radar_surnames",
			Description: "List the San Marino surnames on the radar",
		}, s.handleRadarSurnames)
	}
}

// handleStartScan handles the start_scan tool invocation.
func (s *Server) handleStartScan(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StartScanInput,
) (*mcp.CallToolResult, SessionOutput, error) {
	opts := driving.StartOptions{
		Mode:      domain.Mode(input.Mode),
		Terms:     input.Terms,
		SkipGraph: input.SkipGraph,
	}
	if input.Strategy != "" {
		st, err := domain.ParseStrategy(input.Strategy)
		if err != nil {
			return nil, SessionOutput{}, err
		}
		opts.Strategy = st
	}

	if s.ports.Session.State().IsRunning {
		return nil, SessionOutput{}, fmt.Errorf("%w: stop or wait for the current scan", domain.ErrRunInProgress)
	}
	if err := s.ports.Session.Start(ctx, opts); err != nil {
		return nil, SessionOutput{}, err
	}

	if input.Wait {
		select {
		case <-s.ports.Session.Done():
		case <-ctx.Done():
			return nil, SessionOutput{}, ctx.Err()
		}
	}

	return nil, sessionOutput(s.ports.Session.State(), input.Limit, false), nil
}

// handleStopScan handles the stop_scan tool invocation.
func (s *Server) handleStopScan(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, SessionOutput, error) {
	s.ports.Session.Stop()
	return nil, sessionOutput(s.ports.Session.State(), 0, false), nil
}

// handleResetSession handles the reset_session tool invocation.
func (s *Server) handleResetSession(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, SessionOutput, error) {
	s.ports.Session.Reset()
	return nil, sessionOutput(s.ports.Session.State(), 0, false), nil
}

// handleGetSession handles the get_session tool invocation.
func (s *Server) handleGetSession(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SessionInput,
) (*mcp.CallToolResult, SessionOutput, error) {
	return nil, sessionOutput(s.ports.Session.State(), input.Limit, input.IncludeLogs), nil
}

// handleIntelLinks handles the intel_links tool invocation.
func (s *Server) handleIntelLinks(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input LinksInput,
) (*mcp.CallToolResult, driving.IntelLinks, error) {
	if input.Surname == "" {
		return nil, driving.IntelLinks{}, fmt.Errorf("%w: surname is required", domain.ErrInvalidInput)
	}
	return nil, s.ports.Radar.Links(input.Surname), nil
}

// handleRadarSurnames handles the radar_surnames tool invocation.
func (s *Server) handleRadarSurnames(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SurnamesInput,
) (*mcp.CallToolResult, SurnamesOutput, error) {
	return nil, SurnamesOutput{Surnames: s.ports.Radar.Surnames(input.Filter)}, nil
}

func sessionOutput(st domain.SessionState, limit int, withLogs bool) SessionOutput {
	if limit <= 0 {
		limit = defaultCandidateLimit
	}

	out := SessionOutput{
		Running:    st.IsRunning,
		Progress:   st.Progress,
		Mode:       string(st.Mode),
		Strategy:   string(st.Strategy),
		Count:      len(st.Candidates),
		Candidates: make([]CandidateOutput, 0, min(limit, len(st.Candidates))),
	}

	for i := range st.Candidates {
		if i == limit {
			break
		}
		c := &st.Candidates[i]
		out.Candidates = append(out.Candidates, CandidateOutput{
			Name:      c.Name,
			Club:      c.Club,
			YearBorn:  c.YearBorn,
			Country:   c.Country,
			Method:    string(c.DiscoveryMethod),
			FoundVia:  c.FoundVia,
			Reasoning: c.Reasoning,
			SourceURL: c.SourceURL,
		})
	}

	if withLogs {
		out.Logs = make([]string, len(st.Logs))
		for i, ev := range st.Logs {
			out.Logs[i] = formatLog(ev)
		}
	}
	return out
}

func formatLog(ev domain.LogEvent) string {
	return fmt.Sprintf("[%s] %s: %s", ev.Clock(), ev.Type, ev.Text)
}
