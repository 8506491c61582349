package wikipedia

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driven"
)

type fakeSearcher struct {
	hits  map[string][]driven.TextHit
	errs  map[string]error
	calls []string
}

func (f *fakeSearcher) Search(_ context.Context, lang, phrase string, _ int) ([]driven.TextHit, error) {
	f.calls = append(f.calls, lang+":"+phrase)
	if err := f.errs[lang]; err != nil {
		return nil, err
	}
	return f.hits[lang], nil
}

func (f *fakeSearcher) PageURL(hit driven.TextHit) string {
	return fmt.Sprintf("https://%s.wikipedia.org/?curid=%d", hit.Lang, hit.PageID)
}

func newTestSource(f *fakeSearcher) *Source {
	ex := domain.DefaultSettings().Exclusions
	return New(f, &ex, []string{"en", "it"}, 20)
}

func TestSource_Fetch_ConvertsHits(t *testing.T) {
	f := &fakeSearcher{hits: map[string][]driven.TextHit{
		"en": {{Title: "Mario Rossi (footballer, born 1998)", Snippet: "is an Italian footballer of Sammarinese descent", PageID: 42, Lang: "en"}},
		"it": {{Title: "Luca Guidi", Snippet: "Luca Guidi (nato a Rimini il 3 marzo 2001) è un calciatore", PageID: 9, Lang: "it"}},
	}}

	out, err := newTestSource(f).Fetch(context.Background(), driven.Query{Term: "calciatore origine sammarinese"})

	require.NoError(t, err)
	assert.Equal(t, []string{"en:calciatore origine sammarinese", "it:calciatore origine sammarinese"}, f.calls)
	require.Len(t, out, 2)

	assert.Equal(t, "Mario Rossi", out[0].Name)
	assert.Equal(t, "1998", out[0].YearBorn)
	assert.Equal(t, domain.MethodText, out[0].Method)
	assert.Equal(t, domain.OriginWikipedia, out[0].Origin)
	assert.Equal(t, domain.CountryTextDiscovery, out[0].Country)
	assert.Equal(t, "Wikipedia (en)", out[0].FoundVia)
	assert.Equal(t, "https://en.wikipedia.org/?curid=42", out[0].SourceURL)
	assert.Equal(t, `"is an Italian footballer of Sammarinese descent"`, out[0].Reasoning)

	assert.Equal(t, "2001", out[1].YearBorn)
	assert.Equal(t, "Wikipedia (it)", out[1].FoundVia)
}

func TestSource_Fetch_NoiseYearTitleDiscarded(t *testing.T) {
	f := &fakeSearcher{hits: map[string][]driven.TextHit{
		"en": {{Title: "1994", Snippet: "San Marino football events", PageID: 1, Lang: "en"}},
	}}

	out, err := newTestSource(f).Fetch(context.Background(), driven.Query{Term: "x"})

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSource_Fetch_Filters(t *testing.T) {
	tests := []struct {
		name string
		hit  driven.TextHit
	}{
		{"list page", driven.TextHit{Title: "List of San Marino international footballers", Lang: "en"}},
		{"known player", driven.TextHit{Title: "Andy Selva", Snippet: "Sammarinese striker", Lang: "en"}},
		{"domestic club in snippet", driven.TextHit{Title: "Paolo Bianchi", Snippet: "plays for La Fiorita", Lang: "en"}},
		{"politics", driven.TextHit{Title: "Giovanni Rossi", Snippet: "Sammarinese politician", Lang: "en"}},
		{"only disambiguation", driven.TextHit{Title: "(footballer)", Lang: "en"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeSearcher{hits: map[string][]driven.TextHit{"en": {tt.hit}}}
			out, err := newTestSource(f).Fetch(context.Background(), driven.Query{Term: "x"})
			require.NoError(t, err)
			assert.Empty(t, out)
		})
	}
}

func TestSource_Fetch_PartialLanguageFailure(t *testing.T) {
	f := &fakeSearcher{
		hits: map[string][]driven.TextHit{"it": {{Title: "Luca Guidi", Snippet: "calciatore", PageID: 9, Lang: "it"}}},
		errs: map[string]error{"en": domain.ErrTransport},
	}

	out, err := newTestSource(f).Fetch(context.Background(), driven.Query{Term: "x"})

	assert.True(t, errors.Is(err, domain.ErrTransport))
	assert.Contains(t, err.Error(), "wikipedia[en]")
	require.Len(t, out, 1)
	assert.Equal(t, "Luca Guidi", out[0].Name)
}

func TestQuote_Truncates(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "parola "
	}

	q := quote(long)

	assert.True(t, len([]rune(q)) <= quoteLength+5)
	assert.Equal(t, `"`, q[:1])
	assert.Equal(t, `..."`, q[len(q)-4:])
	assert.Equal(t, "", quote("   "))
}

func TestBornIn(t *testing.T) {
	assert.Equal(t, "1998", bornIn("Mario Rossi (born 12 May 1998) is"))
	assert.Equal(t, "2002", bornIn("(nata a Serravalle il 1 aprile 2002)"))
	assert.Equal(t, "", bornIn("founded in 1998"))
}
