package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driven"
)

// mockSource is a driven.Source whose behaviour is set per test.
type mockSource struct {
	name  string
	fetch func(ctx context.Context, q driven.Query) ([]domain.RawCandidate, error)

	mu    sync.Mutex
	calls []driven.Query
}

func (m *mockSource) Name() string {
	return m.name
}

func (m *mockSource) Fetch(ctx context.Context, q driven.Query) ([]domain.RawCandidate, error) {
	m.mu.Lock()
	m.calls = append(m.calls, q)
	m.mu.Unlock()
	if m.fetch == nil {
		return nil, nil
	}
	return m.fetch(ctx, q)
}

func (m *mockSource) Calls() []driven.Query {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]driven.Query, len(m.calls))
	copy(out, m.calls)
	return out
}

// staticSource returns the same records on every call.
func staticSource(name string, raws ...domain.RawCandidate) *mockSource {
	return &mockSource{
		name: name,
		fetch: func(context.Context, driven.Query) ([]domain.RawCandidate, error) {
			return raws, nil
		},
	}
}

// failingSource fails every call with err.
func failingSource(name string, err error) *mockSource {
	return &mockSource{
		name: name,
		fetch: func(context.Context, driven.Query) ([]domain.RawCandidate, error) {
			return nil, err
		},
	}
}

// mockRegistry copies raw fields across and rejects nameless records.
type mockRegistry struct{}

func (mockRegistry) Register(driven.Normaliser) {}

func (mockRegistry) Normalise(raw domain.RawCandidate) (domain.Candidate, error) {
	if raw.Name == "" {
		return domain.Candidate{}, errors.New("missing name")
	}
	reasoning := raw.Reasoning
	if reasoning == "" {
		reasoning = domain.DefaultReasoning
	}
	return domain.Candidate{
		Identity:        domain.IdentityFor(raw.Name, raw.Club),
		Name:            raw.Name,
		Club:            raw.Club,
		YearBorn:        raw.YearBorn,
		Reasoning:       reasoning,
		FoundVia:        raw.FoundVia,
		DiscoveryMethod: raw.Method,
		Verified:        raw.Method == domain.MethodGraph,
	}, nil
}

func graphRaw(name, club, year string) domain.RawCandidate {
	return domain.RawCandidate{
		Origin:   domain.OriginWikidata,
		Method:   domain.MethodGraph,
		Name:     name,
		Club:     club,
		YearBorn: year,
		FoundVia: "Wikidata",
	}
}

func textRaw(name, club, year string) domain.RawCandidate {
	return domain.RawCandidate{
		Origin:   domain.OriginWikipedia,
		Method:   domain.MethodText,
		Name:     name,
		Club:     club,
		YearBorn: year,
		FoundVia: "Wikipedia (it)",
	}
}

// fixedNow is the clock used for log timestamps in tests.
func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 14, 3, 27, 0, time.UTC)
}

// mockGenerator records requests and replies from a script.
type mockGenerator struct {
	mu       sync.Mutex
	requests []driven.GenerateRequest
	reply    func(req driven.GenerateRequest) (*driven.GenerateResult, error)
}

func (m *mockGenerator) Generate(_ context.Context, req driven.GenerateRequest) (*driven.GenerateResult, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	if m.reply == nil {
		return &driven.GenerateResult{}, nil
	}
	return m.reply(req)
}

func (m *mockGenerator) ModelName() string { return "mock-model" }

func (m *mockGenerator) Close() error { return nil }

func (m *mockGenerator) Requests() []driven.GenerateRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]driven.GenerateRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// mockPromptStore serves prompts from a map.
type mockPromptStore struct {
	prompts map[string]string
}

func (m *mockPromptStore) Load(name string) (string, error) {
	if p, ok := m.prompts[name]; ok {
		return p, nil
	}
	return "", errors.New("not found")
}

func (m *mockPromptStore) Reload() {}

// mockSettings is a driving.SettingsService with fixed settings.
type mockSettings struct {
	settings *domain.Settings
	err      error
}

func (m *mockSettings) Get() (*domain.Settings, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.settings, nil
}

func (m *mockSettings) Set(string, any) error { return nil }

func (m *mockSettings) Path() string { return ":memory:" }
