package wikidata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driven"
	"github.com/fsgc-labs/titan-scout/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.GraphClient = (*Client)(nil)

// Default configuration values.
const (
	DefaultEndpoint = "https://query.wikidata.org/sparql"
	DefaultTimeout  = 60 * time.Second
	userAgent       = "titan-scout/1.0 (FSGC scouting dashboard)"
)

// Client runs SPARQL SELECT queries over HTTP GET.
type Client struct {
	client   *http.Client
	endpoint string
}

// NewClient creates a SPARQL client. An empty endpoint uses Wikidata.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{client: httpClient, endpoint: endpoint}
}

// sparqlResponse is the SPARQL 1.1 JSON results format.
type sparqlResponse struct {
	Results struct {
		Bindings []map[string]struct {
			Type  string `json:"type"`
			Value string `json:"value"`
		} `json:"bindings"`
	} `json:"results"`
}

// Select runs query and flattens each binding to variable -> value.
func (c *Client) Select(ctx context.Context, query string) ([]driven.Binding, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: endpoint %q: %v", domain.ErrInvalidInput, c.endpoint, err)
	}
	q := u.Query()
	q.Set("query", query)
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/sparql-results+json")
	req.Header.Set("User-Agent", userAgent)

	logger.Debug("wikidata: GET %s (%d byte query)", c.endpoint, len(query))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrTransport, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: wikidata status %d", domain.ErrRateLimited, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: wikidata status %d", domain.ErrTransport, resp.StatusCode)
	}

	var parsed sparqlResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode sparql results: %v", domain.ErrParse, err)
	}

	rows := make([]driven.Binding, 0, len(parsed.Results.Bindings))
	for _, b := range parsed.Results.Bindings {
		row := make(driven.Binding, len(b))
		for k, v := range b {
			row[k] = v.Value
		}
		rows = append(rows, row)
	}
	return rows, nil
}
