package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for Titan resources.
	uriScheme = "titan://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "candidates",
		Name:        "candidates",
		Description: "Ranked candidates of the current session",
		MIMEType:    "application/json",
	}, s.handleCandidatesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "log",
		Name:        "log",
		Description: "Scan log of the current session",
		MIMEType:    "text/plain",
	}, s.handleLogResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "strategies",
		Name:        "strategies",
		Description: "Generative search strategies",
		MIMEType:    "application/json",
	}, s.handleStrategiesResource)

	if s.ports.Radar != nil {
		s.server.AddResourceTemplate(&mcp.ResourceTemplate{
			URITemplate: uriScheme + "links/{surname}",
			Name:        "intel-links",
			Description: "Manual search links for a surname",
			MIMEType:    "application/json",
		}, s.handleLinksResource)
	}
}

// handleCandidatesResource returns every candidate of the session.
func (s *Server) handleCandidatesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, s.ports.Session.State().Candidates)
}

// handleLogResource returns the session log, one event per line.
func (s *Server) handleLogResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	var b strings.Builder
	for _, ev := range s.ports.Session.State().Logs {
		b.WriteString(formatLog(ev))
		b.WriteByte('\n')
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     b.String(),
		}},
	}, nil
}

// handleStrategiesResource lists the strategy names and labels.
func (s *Server) handleStrategiesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type strategyInfo struct {
		Name  string `json:"name"`
		Label string `json:"label"`
	}

	strategies := domain.Strategies()
	infos := make([]strategyInfo, len(strategies))
	for i, st := range strategies {
		infos[i] = strategyInfo{Name: st.String(), Label: st.Label()}
	}
	return jsonResource(req.Params.URI, infos)
}

// handleLinksResource returns the search links for a surname.
func (s *Server) handleLinksResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	surname := extractSurname(req.Params.URI)
	if surname == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, s.ports.Radar.Links(surname))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractSurname extracts the surname from a URI like titan://links/{surname}.
func extractSurname(uri string) string {
	const prefix = uriScheme + "links/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	surname, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(surname)
}
