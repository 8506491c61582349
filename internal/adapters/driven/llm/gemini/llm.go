// Package gemini provides a generator adapter for Google's Generative
// Language API, with the Google Search tool for grounded generations.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	genai "google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driven"
	"github.com/fsgc-labs/titan-scout/internal/logger"
)

// Ensure Generator implements the interface.
var _ driven.Generator = (*Generator)(nil)

// DefaultModel is the scout model.
const DefaultModel = "gemini-2.5-flash"

// Config holds configuration for the Gemini generator.
type Config struct {
	// APIKey authenticates with an API key.
	APIKey string

	// AccessToken authenticates with an OAuth bearer token instead.
	AccessToken string

	// Model is the default model (default: gemini-2.5-flash).
	Model string

	// BaseURL overrides the API endpoint. Used by tests.
	BaseURL string

	// HTTPClient overrides the transport. Used by tests.
	HTTPClient *http.Client
}

// Generator produces completions with the Generative Language API.
type Generator struct {
	service *genai.Service
	model   string
}

// New creates a Gemini generator.
func New(ctx context.Context, cfg Config) (*Generator, error) {
	if cfg.APIKey == "" && cfg.AccessToken == "" {
		return nil, fmt.Errorf("gemini: API key or access token is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	var opts []option.ClientOption
	switch {
	case cfg.HTTPClient != nil:
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	case cfg.AccessToken != "":
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken})
		opts = append(opts, option.WithTokenSource(ts))
	default:
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}

	svc, err := genai.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gemini: create service: %w", err)
	}

	return &Generator{service: svc, model: cfg.Model}, nil
}

// Generate runs one generateContent call.
func (g *Generator) Generate(ctx context.Context, req driven.GenerateRequest) (*driven.GenerateResult, error) {
	model := req.Model
	if model == "" {
		model = g.model
	}

	body := &genai.GenerateContentRequest{
		Contents: toContents(req.Messages),
		GenerationConfig: &genai.GenerationConfig{
			Temperature:     req.Temperature,
			ForceSendFields: []string{"Temperature"},
		},
	}
	if req.System != "" {
		body.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.System}}}
	}
	if req.WebSearch {
		body.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	logger.Debug("gemini: generateContent %s (%d messages, search=%t)", model, len(req.Messages), req.WebSearch)

	resp, err := g.service.Models.GenerateContent(modelPath(model), body).Context(ctx).Do()
	if err != nil {
		return nil, classify(err)
	}

	return toResult(resp), nil
}

// ModelName returns the default model.
func (g *Generator) ModelName() string {
	return g.model
}

// Ping checks that the credentials can read the default model.
func (g *Generator) Ping(ctx context.Context) error {
	if _, err := g.service.Models.Get(modelPath(g.model)).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gemini: ping failed: %w", classify(err))
	}
	return nil
}

// Close releases resources.
func (g *Generator) Close() error {
	return nil
}

func modelPath(model string) string {
	if strings.HasPrefix(model, "models/") {
		return model
	}
	return "models/" + model
}

func toContents(msgs []driven.Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		role := m.Role
		if role == "" {
			role = driven.RoleUser
		}
		out = append(out, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}
	return out
}

// toResult joins the first candidate's text parts and collects its web
// grounding URLs in order.
func toResult(resp *genai.GenerateContentResponse) *driven.GenerateResult {
	res := &driven.GenerateResult{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return res
	}
	cand := resp.Candidates[0]

	if cand.Content != nil {
		var sb strings.Builder
		for _, p := range cand.Content.Parts {
			if p != nil {
				sb.WriteString(p.Text)
			}
		}
		res.Text = sb.String()
	}

	if gm := cand.GroundingMetadata; gm != nil {
		for _, chunk := range gm.GroundingChunks {
			if chunk != nil && chunk.Web != nil && chunk.Web.Uri != "" {
				res.GroundingURLs = append(res.GroundingURLs, chunk.Web.Uri)
			}
		}
	}
	return res
}

// classify maps API errors onto the domain taxonomy.
func classify(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: gemini: %s", domain.ErrRateLimited, gerr.Message)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: gemini: %s", domain.ErrGeneratorUnavailable, gerr.Message)
		}
		return fmt.Errorf("%w: gemini status %d: %s", domain.ErrTransport, gerr.Code, gerr.Message)
	}
	return fmt.Errorf("%w: gemini: %v", domain.ErrTransport, err)
}
