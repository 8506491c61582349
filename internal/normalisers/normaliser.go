package normalisers

import (
	"fmt"
	"strings"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Defaults holds the placeholder used for each missing field.
type Defaults struct {
	Name     string
	Club     string
	YearBorn string
	Country  string
	FoundVia string
	Method   domain.DiscoveryMethod

	// URLFallback enables replacing unusable source URLs with the
	// record's FallbackURL.
	URLFallback bool
}

// Normaliser applies one origin's Defaults.
type Normaliser struct {
	origins  []domain.RawOrigin
	defaults Defaults
}

// New creates a normaliser for the given origins.
func New(defaults Defaults, origins ...domain.RawOrigin) *Normaliser {
	return &Normaliser{origins: origins, defaults: defaults}
}

// Wikidata normalises knowledge-graph rows. Players without a current team
// are free agents.
func Wikidata() *Normaliser {
	return New(Defaults{
		Club:     domain.FreeAgent,
		YearBorn: domain.Unknown,
		Country:  domain.CountryAbroadVerified,
		FoundVia: "Wikidata",
		Method:   domain.MethodGraph,
	}, domain.OriginWikidata)
}

// Wikipedia normalises encyclopedia search hits.
func Wikipedia() *Normaliser {
	return New(Defaults{
		Club:     domain.Unknown,
		YearBorn: domain.Unknown,
		Country:  domain.CountryTextDiscovery,
		FoundVia: "Wikipedia",
		Method:   domain.MethodText,
	}, domain.OriginWikipedia)
}

// Generative normalises leads parsed from a model response. The model may
// omit any field, including the name.
func Generative() *Normaliser {
	return New(Defaults{
		Name:        domain.Unknown,
		Club:        domain.Unknown,
		YearBorn:    domain.NotAvailable,
		Country:     domain.Unknown,
		Method:      domain.MethodText,
		URLFallback: true,
	}, domain.OriginGenerative)
}

// Origins returns the raw origins this normaliser handles.
func (n *Normaliser) Origins() []domain.RawOrigin {
	return n.origins
}

// Normalise transforms a raw record into a candidate.
func (n *Normaliser) Normalise(raw domain.RawCandidate) (domain.Candidate, error) {
	d := n.defaults

	name := or(raw.Name, d.Name)
	if name == "" {
		return domain.Candidate{}, fmt.Errorf("%w: %s record without a name", domain.ErrInvalidInput, raw.Origin)
	}

	method := raw.Method
	if method == "" {
		method = d.Method
	}

	sourceURL := strings.TrimSpace(raw.SourceURL)
	if d.URLFallback && !usableURL(sourceURL) {
		sourceURL = strings.TrimSpace(raw.FallbackURL)
	}

	c := domain.Candidate{
		Name:            name,
		Club:            or(raw.Club, d.Club),
		League:          strings.TrimSpace(raw.League),
		Position:        strings.TrimSpace(raw.Position),
		Citizenship:     strings.TrimSpace(raw.Citizenship),
		YearBorn:        or(raw.YearBorn, d.YearBorn),
		Country:         or(raw.Country, d.Country),
		Reasoning:       or(raw.Reasoning, domain.DefaultReasoning),
		SourceURL:       sourceURL,
		ImageURL:        strings.TrimSpace(raw.ImageURL),
		FoundVia:        or(raw.FoundVia, d.FoundVia),
		DiscoveryMethod: method,
		Verified:        method == domain.MethodGraph,
	}
	c.Identity = domain.IdentityFor(c.Name, c.Club)

	return c, nil
}

// usableURL rejects the placeholders models put in place of a citation.
func usableURL(u string) bool {
	return u != "" && u != domain.NotAvailable && len(u) >= 5
}

func or(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}
