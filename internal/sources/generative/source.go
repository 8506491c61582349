// Package generative implements the generative search source: one grounded
// generation per query term and strategy, with the exclusion policy embedded
// in the instruction and the reply parsed back out of free text.
package generative

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driven"
	"github.com/fsgc-labs/titan-scout/internal/logger"
)

// Ensure Source implements the interfaces.
var (
	_ driven.Source           = (*Source)(nil)
	_ driven.PromptStoreAware = (*Source)(nil)
)

// Temperature keeps the scout close to deterministic.
const Temperature = 0.1

// hintExclusions is how many known players are negated in a search hint.
const hintExclusions = 5

// Source asks a Generator to scout one term under one strategy.
type Source struct {
	generator   driven.Generator
	exclusions  *domain.ExclusionSet
	model       string
	promptStore driven.PromptStore
}

// New creates a generative source. An empty model uses the generator's default.
func New(generator driven.Generator, exclusions *domain.ExclusionSet, model string) *Source {
	return &Source{generator: generator, exclusions: exclusions, model: model}
}

// SetPromptStore sets the store for user-edited prompts.
func (s *Source) SetPromptStore(store driven.PromptStore) {
	s.promptStore = store
}

// Name identifies the source in log events.
func (s *Source) Name() string {
	return "Generative Search"
}

// Fetch runs one grounded generation. q.Strategy must be a concrete
// strategy; composite strategies are expanded by the caller.
func (s *Source) Fetch(ctx context.Context, q driven.Query) ([]domain.RawCandidate, error) {
	if s.generator == nil {
		return nil, domain.ErrGeneratorUnavailable
	}

	system, task, err := s.buildPrompts(q)
	if err != nil {
		return nil, err
	}

	res, err := s.generator.Generate(ctx, driven.GenerateRequest{
		Model:       s.model,
		System:      system,
		Messages:    []driven.Message{{Role: driven.RoleUser, Content: task}},
		Temperature: Temperature,
		WebSearch:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("generate %s/%s: %w", q.Term, q.Strategy, err)
	}
	if res == nil || strings.TrimSpace(res.Text) == "" {
		return nil, nil
	}

	leads, err := extractLeads(res.Text)
	if err != nil {
		return nil, fmt.Errorf("%s/%s: %w", q.Term, q.Strategy, err)
	}

	fallback := ""
	if len(res.GroundingURLs) > 0 {
		fallback = res.GroundingURLs[0]
	}

	out := make([]domain.RawCandidate, 0, len(leads))
	for _, l := range leads {
		name, club := string(l.Name), string(l.Club)
		// The instruction already forbids these; models do not always comply
		if s.exclusions.IsKnown(name) || s.exclusions.IsDomestic(club, "") {
			logger.Debug("generative: dropped %q (%s)", name, club)
			continue
		}
		out = append(out, domain.RawCandidate{
			Origin:      domain.OriginGenerative,
			Method:      domain.MethodText,
			Name:        name,
			Club:        club,
			YearBorn:    string(l.YearBorn),
			Country:     string(l.Country),
			Reasoning:   string(l.Reasoning),
			SourceURL:   string(l.SourceURL),
			FallbackURL: fallback,
			FoundVia:    q.Strategy.Label(),
		})
	}

	logger.Debug("generative: %s/%s %d leads, %d kept, %d citations", q.Term, q.Strategy, len(leads), len(out), len(res.GroundingURLs))
	return out, nil
}

// buildPrompts renders the system instruction and task for q.
func (s *Source) buildPrompts(q driven.Query) (system, task string, err error) {
	excluded := s.exclusions.KnownPlayers
	if len(excluded) > hintExclusions {
		excluded = excluded[:hintExclusions]
	}
	searchContext, hint, err := q.Strategy.Instruction(q.Term, excluded)
	if err != nil {
		return "", "", err
	}

	system = domain.RenderTemplate(s.loadPrompt(driven.PromptScoutSystem), map[string]string{
		"term":           q.Term,
		"min_birth_year": strconv.Itoa(s.exclusions.Age.MinBirthYear),
		"known_players":  strings.Join(s.exclusions.KnownPlayers, ", "),
		"domestic_clubs": strings.Join(s.exclusions.DomesticClubs, ", "),
	})
	task = domain.RenderTemplate(s.loadPrompt(driven.PromptScoutTask), map[string]string{
		"context": searchContext,
		"hint":    hint,
	})
	return system, task, nil
}

func (s *Source) loadPrompt(name string) string {
	if s.promptStore != nil {
		if p, err := s.promptStore.Load(name); err == nil && p != "" {
			return p
		}
	}
	p, _ := domain.DefaultPrompt(name)
	return p
}
