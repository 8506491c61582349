// Package wikipedia implements the text source for hybrid scans: fixed-phrase
// keyword searches over the encyclopedia in several languages, filtered down
// to plausible biographies.
package wikipedia

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driven"
	"github.com/fsgc-labs/titan-scout/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.Source = (*Source)(nil)

// quoteLength bounds the snippet quoted as reasoning.
const quoteLength = 140

var (
	disambiguation = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
	bornYear       = regexp.MustCompile(`(?i)\b(born|nato|nata|nacido)\b[^.;]{0,40}?\b((?:19|20)\d{2})\b`)
)

// Source turns search hits into unverified text leads.
type Source struct {
	searcher   driven.TextSearcher
	exclusions *domain.ExclusionSet
	languages  []string
	limit      int
}

// New creates a text source searching each of languages in order.
func New(searcher driven.TextSearcher, exclusions *domain.ExclusionSet, languages []string, limit int) *Source {
	if len(languages) == 0 {
		languages = []string{"en", "it"}
	}
	if limit <= 0 {
		limit = 20
	}
	return &Source{searcher: searcher, exclusions: exclusions, languages: languages, limit: limit}
}

// Name identifies the source in log events.
func (s *Source) Name() string {
	return "Wikipedia"
}

// Fetch searches every language for q.Term. A failing language does not
// hide the others' hits; its error is returned alongside them.
func (s *Source) Fetch(ctx context.Context, q driven.Query) ([]domain.RawCandidate, error) {
	var out []domain.RawCandidate
	var errs []error

	for _, lang := range s.languages {
		hits, err := s.searcher.Search(ctx, lang, q.Term, s.limit)
		if err != nil {
			errs = append(errs, fmt.Errorf("wikipedia[%s] %q: %w", lang, q.Term, err))
			continue
		}
		kept := 0
		for _, hit := range hits {
			if raw, ok := s.convert(hit); ok {
				out = append(out, raw)
				kept++
			}
		}
		logger.Debug("wikipedia[%s]: %q %d hits, %d kept", lang, q.Term, len(hits), kept)
	}

	return out, errors.Join(errs...)
}

func (s *Source) convert(hit driven.TextHit) (domain.RawCandidate, bool) {
	if s.exclusions.IsNoisePage(hit.Title, hit.Snippet) {
		return domain.RawCandidate{}, false
	}
	name := strings.TrimSpace(disambiguation.ReplaceAllString(hit.Title, ""))
	if name == "" || s.exclusions.IsKnown(name) || s.exclusions.MentionsDomesticClub(hit.Snippet) {
		return domain.RawCandidate{}, false
	}

	return domain.RawCandidate{
		Origin:    domain.OriginWikipedia,
		Method:    domain.MethodText,
		Name:      name,
		YearBorn:  bornIn(hit.Title + " " + hit.Snippet),
		Country:   domain.CountryTextDiscovery,
		Reasoning: quote(hit.Snippet),
		SourceURL: s.searcher.PageURL(hit),
		FoundVia:  fmt.Sprintf("Wikipedia (%s)", hit.Lang),
	}, true
}

// bornIn extracts the year following a "born" marker.
func bornIn(text string) string {
	m := bornYear.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[2]
}

// quote truncates a snippet on a rune boundary.
func quote(snippet string) string {
	snippet = strings.TrimSpace(snippet)
	if snippet == "" {
		return ""
	}
	r := []rune(snippet)
	if len(r) > quoteLength {
		return `"` + strings.TrimSpace(string(r[:quoteLength])) + `..."`
	}
	return `"` + snippet + `"`
}
