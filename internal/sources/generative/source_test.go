package generative

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driven"
)

type fakeGenerator struct {
	result *driven.GenerateResult
	err    error
	last   driven.GenerateRequest
}

func (f *fakeGenerator) Generate(_ context.Context, req driven.GenerateRequest) (*driven.GenerateResult, error) {
	f.last = req
	return f.result, f.err
}

func (f *fakeGenerator) ModelName() string { return "fake" }
func (f *fakeGenerator) Close() error      { return nil }

type fakePrompts map[string]string

func (p fakePrompts) Load(name string) (string, error) {
	if v, ok := p[name]; ok {
		return v, nil
	}
	return "", errors.New("missing")
}

func (p fakePrompts) Reload() {}

func newTestSource(g driven.Generator) *Source {
	ex := domain.DefaultSettings().Exclusions
	return New(g, &ex, "gemini-2.5-flash")
}

func TestSource_Fetch_ExtractsAndDefersDefaults(t *testing.T) {
	g := &fakeGenerator{result: &driven.GenerateResult{
		Text:          `Here are matches: [{"name":"A","club":"B"}]`,
		GroundingURLs: []string{"https://grounding.example/1", "https://grounding.example/2"},
	}}

	out, err := newTestSource(g).Fetch(context.Background(), driven.Query{Term: "Selva", Strategy: domain.StrategySurnameBase})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "A", out[0].Name)
	assert.Equal(t, "B", out[0].Club)
	assert.Empty(t, out[0].YearBorn)
	assert.Equal(t, "https://grounding.example/1", out[0].FallbackURL)
	assert.Equal(t, domain.OriginGenerative, out[0].Origin)
	assert.Equal(t, domain.MethodText, out[0].Method)
	assert.Equal(t, "Base Surname Scan", out[0].FoundVia)
}

func TestSource_Fetch_Request(t *testing.T) {
	g := &fakeGenerator{result: &driven.GenerateResult{Text: "[]"}}

	_, err := newTestSource(g).Fetch(context.Background(), driven.Query{Term: "Guidi", Strategy: domain.StrategyArgentina})

	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", g.last.Model)
	assert.Equal(t, Temperature, g.last.Temperature)
	assert.True(t, g.last.WebSearch)
	assert.Contains(t, g.last.System, `search term: "Guidi"`)
	assert.Contains(t, g.last.System, "Born 1993 or later")
	assert.Contains(t, g.last.System, "andy selva")
	assert.Contains(t, g.last.System, "Tre Penne")
	require.Len(t, g.last.Messages, 1)
	assert.Equal(t, driven.RoleUser, g.last.Messages[0].Role)
	assert.Contains(t, g.last.Messages[0].Content, "lower league or youth football in Argentina")
	assert.Contains(t, g.last.Messages[0].Content, `site:.ar Guidi futbol`)
}

func TestSource_Fetch_SurnameHintNegatesKnownPlayers(t *testing.T) {
	g := &fakeGenerator{result: &driven.GenerateResult{Text: "[]"}}

	_, err := newTestSource(g).Fetch(context.Background(), driven.Query{Term: "Selva", Strategy: domain.StrategySurnameBase})

	require.NoError(t, err)
	assert.Contains(t, g.last.Messages[0].Content, "-matteo vitaioli -nicola nanni")
	assert.NotContains(t, g.last.Messages[0].Content, "-filippo fabbri")
}

func TestSource_Fetch_FiltersKnownAndDomestic(t *testing.T) {
	g := &fakeGenerator{result: &driven.GenerateResult{
		Text: `[{"name":"Andy Selva","club":"Rimini"},{"name":"P Bianchi","club":"SP Tre Penne"},{"name":"Keep Me","club":"Cesena"}]`,
	}}

	out, err := newTestSource(g).Fetch(context.Background(), driven.Query{Term: "x", Strategy: domain.StrategyDiscovery})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Keep Me", out[0].Name)
}

func TestSource_Fetch_EmptyText(t *testing.T) {
	g := &fakeGenerator{result: &driven.GenerateResult{Text: "  "}}

	out, err := newTestSource(g).Fetch(context.Background(), driven.Query{Term: "x", Strategy: domain.StrategyDiscovery})

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSource_Fetch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		gen     driven.Generator
		query   driven.Query
		wantErr error
	}{
		{"no generator", nil, driven.Query{Term: "x", Strategy: domain.StrategyDiscovery}, domain.ErrGeneratorUnavailable},
		{"transport", &fakeGenerator{err: domain.ErrTransport}, driven.Query{Term: "x", Strategy: domain.StrategyDiscovery}, domain.ErrTransport},
		{"parse", &fakeGenerator{result: &driven.GenerateResult{Text: "sorry, nothing"}}, driven.Query{Term: "x", Strategy: domain.StrategyDiscovery}, domain.ErrParse},
		{"composite strategy", &fakeGenerator{}, driven.Query{Term: "x", Strategy: domain.StrategyFullScan}, domain.ErrUnknownStrategy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var src *Source
			if tt.gen == nil {
				src = newTestSource(nil)
			} else {
				src = newTestSource(tt.gen)
			}
			_, err := src.Fetch(context.Background(), tt.query)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSource_UsesPromptStore(t *testing.T) {
	g := &fakeGenerator{result: &driven.GenerateResult{Text: "[]"}}
	src := newTestSource(g)
	src.SetPromptStore(fakePrompts{
		driven.PromptScoutSystem: "Scout {term} after {min_birth_year}",
	})

	_, err := src.Fetch(context.Background(), driven.Query{Term: "Macina", Strategy: domain.StrategyUSACollege})

	require.NoError(t, err)
	assert.Equal(t, "Scout Macina after 1993", g.last.System)
	assert.Contains(t, g.last.Messages[0].Content, "CONTEXT: Focus on US College Soccer")
}
