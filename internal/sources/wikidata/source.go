// Package wikidata implements the graph source: a single SPARQL query over
// Wikidata for living footballers with San Marino citizenship, birthplace or
// parentage.
package wikidata

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driven"
	"github.com/fsgc-labs/titan-scout/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.Source = (*Source)(nil)

// Result variables bound by the query.
const (
	varPlayer      = "player"
	varLabel       = "playerLabel"
	varDOB         = "dob"
	varTeam        = "teamLabel"
	varLeague      = "leagueLabel"
	varImage       = "image"
	varCitizenship = "citizenshipLabel"
	varPosition    = "positionLabel"
)

// Source turns graph rows into verified leads.
type Source struct {
	client     driven.GraphClient
	query      string
	exclusions *domain.ExclusionSet
	now        func() time.Time
}

// Option configures a Source.
type Option func(*Source)

// WithClock overrides the clock used for age computation.
func WithClock(now func() time.Time) Option {
	return func(s *Source) { s.now = now }
}

// WithQuery replaces the built-in query template.
func WithQuery(tmpl string) Option {
	return func(s *Source) { s.query = tmpl }
}

// New creates a graph source over client.
func New(client driven.GraphClient, exclusions *domain.ExclusionSet, opts ...Option) *Source {
	s := &Source{
		client:     client,
		query:      defaultQuery,
		exclusions: exclusions,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the source in log events.
func (s *Source) Name() string {
	return "Wikidata"
}

// Fetch runs the graph query once. The query term is ignored; the query
// covers the whole candidate space.
func (s *Source) Fetch(ctx context.Context, _ driven.Query) ([]domain.RawCandidate, error) {
	if s.client == nil {
		return nil, domain.ErrGraphUnavailable
	}

	rows, err := s.client.Select(ctx, RenderQuery(s.query, s.exclusions.Age.MinBirthYear))
	if err != nil {
		return nil, fmt.Errorf("wikidata select: %w", err)
	}

	now := s.now()
	seen := make(map[string]bool, len(rows))
	out := make([]domain.RawCandidate, 0, len(rows))

	for _, row := range rows {
		raw, ok := s.convert(row, now)
		if !ok {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(raw.Name))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, raw)
	}

	logger.Debug("wikidata: %d rows, %d leads", len(rows), len(out))
	return out, nil
}

// convert applies the adapter-level filters to one row.
func (s *Source) convert(row driven.Binding, now time.Time) (domain.RawCandidate, bool) {
	name := strings.TrimSpace(row[varLabel])
	// Unlabelled entities come back with their Q-id as label
	if name == "" || isEntityID(name) {
		return domain.RawCandidate{}, false
	}

	club, league := row[varTeam], row[varLeague]
	if s.exclusions.IsDomestic(club, league) || s.exclusions.IsKnown(name) {
		return domain.RawCandidate{}, false
	}

	position := row[varPosition]
	class := domain.ClassifyPosition(position)
	if !s.exclusions.IsAgeEligible(row[varDOB], class, now) {
		return domain.RawCandidate{}, false
	}

	return domain.RawCandidate{
		Origin:      domain.OriginWikidata,
		Method:      domain.MethodGraph,
		Name:        name,
		Club:        club,
		League:      league,
		Position:    position,
		Citizenship: row[varCitizenship],
		YearBorn:    birthDate(row[varDOB]),
		Country:     domain.CountryAbroadVerified,
		Reasoning:   s.reasoning(row, class, now),
		SourceURL:   row[varPlayer],
		ImageURL:    row[varImage],
		FoundVia:    s.Name(),
	}, true
}

// reasoning encodes the citizenship basis, age bracket and goalkeeper exception.
func (s *Source) reasoning(row driven.Binding, class domain.PositionClass, now time.Time) string {
	var parts []string

	if c := row[varCitizenship]; c != "" {
		parts = append(parts, "Citizenship: "+c)
	} else {
		parts = append(parts, "Sammarinese birthplace or parentage on record")
	}

	age, known := s.exclusions.AgeOf(row[varDOB], now)
	bracket := s.exclusions.Age.Bracket(age)
	if known {
		parts = append(parts, fmt.Sprintf("Age %d (%s)", age, bracket))
	} else {
		parts = append(parts, fmt.Sprintf("Age unknown (%s assumed)", bracket))
	}

	if class == domain.PositionGoalkeeper && age > s.exclusions.Age.Ceiling(domain.PositionOutfield) {
		parts = append(parts, "GOALKEEPER EXCEPTION: extended age ceiling")
	}

	return strings.Join(parts, ". ") + "."
}

// birthDate trims an xsd:dateTime to its date part.
func birthDate(dob string) string {
	if i := strings.IndexByte(dob, 'T'); i > 0 {
		return dob[:i]
	}
	return dob
}

func isEntityID(label string) bool {
	if len(label) < 2 || label[0] != 'Q' {
		return false
	}
	for _, r := range label[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
