package normalisers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
)

func TestGenerative_DefaultsMissingFields(t *testing.T) {
	c, err := Generative().Normalise(domain.RawCandidate{
		Origin:   domain.OriginGenerative,
		Name:     "A",
		Club:     "B",
		FoundVia: "Base Surname Scan",
	})

	require.NoError(t, err)
	assert.Equal(t, "A", c.Name)
	assert.Equal(t, "B", c.Club)
	assert.Equal(t, domain.NotAvailable, c.YearBorn)
	assert.Equal(t, domain.Unknown, c.Country)
	assert.Equal(t, domain.DefaultReasoning, c.Reasoning)
	assert.Equal(t, "Base Surname Scan", c.FoundVia)
	assert.Equal(t, domain.MethodText, c.DiscoveryMethod)
	assert.False(t, c.Verified)
	assert.Equal(t, "a|b", c.Identity)
}

func TestGenerative_NameDefaultsToUnknown(t *testing.T) {
	c, err := Generative().Normalise(domain.RawCandidate{Origin: domain.OriginGenerative})

	require.NoError(t, err)
	assert.Equal(t, domain.Unknown, c.Name)
	assert.Equal(t, domain.Unknown, c.Club)
	assert.Equal(t, "unknown", c.Identity)
}

func TestGenerative_URLFallback(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		fallback string
		want     string
	}{
		{"usable url kept", "https://example.org/player", "https://grounding", "https://example.org/player"},
		{"empty uses fallback", "", "https://grounding", "https://grounding"},
		{"n/a uses fallback", "N/A", "https://grounding", "https://grounding"},
		{"too short uses fallback", "x.it", "https://grounding", "https://grounding"},
		{"no fallback leaves empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Generative().Normalise(domain.RawCandidate{
				Origin:      domain.OriginGenerative,
				Name:        "A",
				SourceURL:   tt.source,
				FallbackURL: tt.fallback,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.SourceURL)
		})
	}
}

func TestWikidata_Defaults(t *testing.T) {
	c, err := Wikidata().Normalise(domain.RawCandidate{
		Origin:    domain.OriginWikidata,
		Name:      "Mario Rossi",
		Reasoning: "Citizenship: San Marino",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.FreeAgent, c.Club)
	assert.Equal(t, domain.Unknown, c.YearBorn)
	assert.Equal(t, domain.CountryAbroadVerified, c.Country)
	assert.Equal(t, "Wikidata", c.FoundVia)
	assert.Equal(t, domain.MethodGraph, c.DiscoveryMethod)
	assert.True(t, c.Verified)
	assert.Equal(t, "Citizenship: San Marino", c.Reasoning)
	assert.Equal(t, "mario rossi", c.Identity)
}

func TestWikidata_NoURLFallback(t *testing.T) {
	c, err := Wikidata().Normalise(domain.RawCandidate{
		Origin:      domain.OriginWikidata,
		Name:        "Mario Rossi",
		SourceURL:   "N/A",
		FallbackURL: "https://ignored",
	})

	require.NoError(t, err)
	assert.Equal(t, "N/A", c.SourceURL)
}

func TestWikipedia_Defaults(t *testing.T) {
	c, err := Wikipedia().Normalise(domain.RawCandidate{
		Origin:   domain.OriginWikipedia,
		Name:     "  Luca Guidi ",
		FoundVia: "Wikipedia (it)",
	})

	require.NoError(t, err)
	assert.Equal(t, "Luca Guidi", c.Name)
	assert.Equal(t, domain.Unknown, c.Club)
	assert.Equal(t, domain.Unknown, c.YearBorn)
	assert.Equal(t, domain.CountryTextDiscovery, c.Country)
	assert.Equal(t, "Wikipedia (it)", c.FoundVia)
	assert.False(t, c.Verified)
}

func TestNormalise_RequiresNameWithoutDefault(t *testing.T) {
	_, err := Wikipedia().Normalise(domain.RawCandidate{Origin: domain.OriginWikipedia})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNormalise_VerifiedFollowsMethod(t *testing.T) {
	c, err := Wikipedia().Normalise(domain.RawCandidate{
		Origin: domain.OriginWikipedia,
		Name:   "X",
		Method: domain.MethodGraph,
	})

	require.NoError(t, err)
	assert.True(t, c.Verified)
}
