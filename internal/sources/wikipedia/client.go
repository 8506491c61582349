package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driven"
	"github.com/fsgc-labs/titan-scout/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.TextSearcher = (*Client)(nil)

// Default configuration values.
const (
	DefaultEndpoint = "https://%s.wikipedia.org/w/api.php"
	DefaultTimeout  = 30 * time.Second
	userAgent       = "titan-scout/1.0 (FSGC scouting dashboard)"
)

// Client queries the MediaWiki search API of each language edition.
type Client struct {
	client   *http.Client
	endpoint string
	limiter  *RateLimiter
}

// NewClient creates a search client. endpoint is a format string taking the
// language code; empty uses Wikipedia.
func NewClient(endpoint string, limiter *RateLimiter, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if limiter == nil {
		limiter = NewRateLimiter(0)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{client: httpClient, endpoint: endpoint, limiter: limiter}
}

// searchResponse is the list=search payload.
type searchResponse struct {
	Query struct {
		Search []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
			PageID  int64  `json:"pageid"`
		} `json:"search"`
	} `json:"query"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error,omitempty"`
}

// Search returns up to limit hits for phrase in the lang edition.
func (c *Client) Search(ctx context.Context, lang, phrase string, limit int) ([]driven.TextHit, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("action", "query")
	q.Set("list", "search")
	q.Set("srsearch", phrase)
	q.Set("srlimit", strconv.Itoa(limit))
	q.Set("format", "json")
	q.Set("utf8", "1")

	endpoint := c.endpoint
	if strings.Contains(endpoint, "%s") {
		endpoint = fmt.Sprintf(endpoint, lang)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	logger.Debug("wikipedia[%s]: search %q", lang, phrase)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.limiter.RecordRateLimit(resp.Header.Get("Retry-After"))
		return nil, fmt.Errorf("%w: wikipedia[%s] status 429", domain.ErrRateLimited, lang)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: wikipedia[%s] status %d", domain.ErrTransport, lang, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrTransport, err)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode search results: %v", domain.ErrParse, err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("%w: wikipedia[%s] %s: %s", domain.ErrTransport, lang, parsed.Error.Code, parsed.Error.Info)
	}

	hits := make([]driven.TextHit, 0, len(parsed.Query.Search))
	for _, s := range parsed.Query.Search {
		hits = append(hits, driven.TextHit{
			Title:   s.Title,
			Snippet: StripMarkup(s.Snippet),
			PageID:  s.PageID,
			Lang:    lang,
		})
	}
	return hits, nil
}

// PageURL returns the curid link for a hit.
func (c *Client) PageURL(hit driven.TextHit) string {
	return fmt.Sprintf("https://%s.wikipedia.org/?curid=%d", hit.Lang, hit.PageID)
}

// StripMarkup removes the searchmatch spans and decodes entities.
func StripMarkup(snippet string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snippet))
	if err != nil {
		return snippet
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
