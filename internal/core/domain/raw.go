package domain

// RawOrigin identifies the adapter that produced a raw record.
// The normaliser registry selects defaulting rules by origin.
type RawOrigin string

// Known origins.
const (
	OriginWikidata   RawOrigin = "wikidata"
	OriginWikipedia  RawOrigin = "wikipedia"
	OriginGenerative RawOrigin = "generative"
)

// RawCandidate is an adapter's output before normalisation.
// Every field is optional; an empty string means the source did not supply it.
// Filtering has already happened by the time a RawCandidate exists.
type RawCandidate struct {
	// Origin is the producing adapter.
	Origin RawOrigin

	// Method is the provenance tag the adapter assigns.
	Method DiscoveryMethod

	Name        string
	Club        string
	League      string
	Position    string
	Citizenship string
	YearBorn    string
	Country     string
	Reasoning   string
	SourceURL   string
	ImageURL    string

	// FallbackURL replaces SourceURL when the latter is missing or unusable,
	// e.g. the first grounding citation returned alongside a generation.
	FallbackURL string

	// FoundVia names the adapter pass (strategy, language, endpoint).
	FoundVia string
}
