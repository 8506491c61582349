package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPrompt_AllNamesPresent(t *testing.T) {
	for _, name := range PromptNames() {
		p, ok := DefaultPrompt(name)
		assert.True(t, ok, name)
		assert.NotEmpty(t, p, name)
	}

	_, ok := DefaultPrompt("nope")
	assert.False(t, ok)
}

func TestRenderTemplate(t *testing.T) {
	out := RenderTemplate("find {term} born after {min_birth_year}, keep {other}", map[string]string{
		"term":           "Selva",
		"min_birth_year": "1993",
	})

	assert.Equal(t, "find Selva born after 1993, keep {other}", out)
}

func TestRenderTemplate_ScoutSystem(t *testing.T) {
	tmpl, _ := DefaultPrompt(PromptScoutSystem)

	out := RenderTemplate(tmpl, map[string]string{
		"term":           "Guidi",
		"min_birth_year": "1993",
		"known_players":  "andy selva",
		"domestic_clubs": "Tre Penne",
	})

	assert.Contains(t, out, `search term: "Guidi"`)
	assert.Contains(t, out, "Born 1993 or later")
	assert.Contains(t, out, "exclusion list: andy selva")
	assert.NotContains(t, out, "{term}")
	assert.NotContains(t, out, "{domestic_clubs}")
}
