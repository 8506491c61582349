package domain

import "time"

// GeneratorProvider identifies the generative-text backend.
type GeneratorProvider string

// Available providers.
const (
	// ProviderGemini is Google's Generative Language API with the search tool.
	ProviderGemini GeneratorProvider = "gemini"

	// ProviderOpenAI is an OpenAI-compatible chat completions endpoint.
	// It has no grounding, so generated leads may lack source URLs.
	ProviderOpenAI GeneratorProvider = "openai"
)

// IsValid returns true if the provider is recognised.
func (p GeneratorProvider) IsValid() bool {
	return p == ProviderGemini || p == ProviderOpenAI
}

// String returns the string representation.
func (p GeneratorProvider) String() string {
	return string(p)
}

// GraphSettings configures the knowledge-graph adapter.
type GraphSettings struct {
	Enabled  bool
	Endpoint string

	// QueryFile optionally replaces the built-in query asset.
	QueryFile string
}

// TextSettings configures the encyclopedic keyword-search adapter.
type TextSettings struct {
	// Endpoint is a format string taking the language code.
	Endpoint  string
	Languages []string
	Limit     int

	// RequestsPerSecond paces the per-language calls inside one term.
	RequestsPerSecond float64
}

// GeneratorSettings configures the generative-text backend.
type GeneratorSettings struct {
	Provider  GeneratorProvider
	Model     string
	ChatModel string
	BaseURL   string
	APIKey    string

	// AccessToken is used instead of APIKey when set.
	AccessToken string
}

// IsConfigured returns true if credentials are present.
func (g GeneratorSettings) IsConfigured() bool {
	return g.Provider.IsValid() && (g.APIKey != "" || g.AccessToken != "")
}

// Settings is the full session configuration.
type Settings struct {
	Exclusions ExclusionSet

	// InterCallDelay is the fixed pause between sequential text-side calls.
	InterCallDelay time.Duration

	Graph     GraphSettings
	Text      TextSettings
	Generator GeneratorSettings

	// DiscoveryQueries are the hybrid-mode search phrases.
	DiscoveryQueries []string

	// TargetSurnames are the generative-mode query terms.
	TargetSurnames []string

	// RadarSurnames feed the onomastic radar.
	RadarSurnames []string
}

// DefaultSettings returns the product defaults.
func DefaultSettings() *Settings {
	return &Settings{
		Exclusions: ExclusionSet{
			KnownPlayers: []string{
				"matteo vitaioli", "nicola nanni", "filippo berardi", "aldo simoncini",
				"elia benedettini", "dante rossi", "alessandro golinucci", "enrico golinucci",
				"marcello mularoni", "lorenzo lazzari", "filippo fabbri", "tommaso benvenuti",
				"giacomo valentini", "michele cevoli", "alessandro d'addario", "mirko palazzi",
				"andy selva", "davide simoncini", "alessandro tosi", "simone benedettini",
				"gabriel capicchioni", "davide gualtieri", "luca cecchetti", "mattia stefanelli",
				"michele nardi", "nicola della valle", "samuele zannoni", "danilo rinaldi",
				"alvin ceccoli", "marco gasperoni",
			},
			DomesticClubs: []string{
				"Tre Penne", "La Fiorita", "Tre Fiori", "Virtus", "Folgore", "Domagnano",
				"Faetano", "Libertas", "Murata", "Pennarossa", "San Giovanni", "Cailungo",
				"Fiorentino", "Juvenes/Dogana", "Cosmos", "San Marino Academy",
				"Campionato Sammarinese",
			},
			NoiseKeywords: []string{
				"politician", "politico", "senator", "mayor", "sindaco", "election", "elezioni",
				"municipality", "comune di", "frazione", "castello di", "river", "mountain",
				"season", "stagione", "stadium", "stadio", "federation", "federazione",
				"basketball", "pallavolo", "volleyball", "cyclist", "ciclista",
			},
			NationalTeamMarkers: []string{
				"national team", "national football team", "nazionale",
				"under-21", "under-19", "under-17", "u-21", "u-19",
			},
			Age: AgePolicy{
				MinBirthYear:     1993,
				OutfieldMaxAge:   33,
				GoalkeeperMaxAge: 40,
				YouthUnder:       25,
				PrimeMaxAge:      30,
				DefaultAge:       25,
			},
		},
		InterCallDelay: 1500 * time.Millisecond,
		Graph: GraphSettings{
			Enabled:  true,
			Endpoint: "https://query.wikidata.org/sparql",
		},
		Text: TextSettings{
			Endpoint:          "https://%s.wikipedia.org/w/api.php",
			Languages:         []string{"en", "it"},
			Limit:             20,
			RequestsPerSecond: 2,
		},
		Generator: GeneratorSettings{
			Provider:  ProviderGemini,
			Model:     "gemini-2.5-flash",
			ChatModel: "gemini-3-pro-preview",
		},
		DiscoveryQueries: []string{
			"calciatore origine sammarinese",
			"footballer with San Marino descent",
			"soccer player eligible for San Marino national team",
			"jugador futbol ascendencia san marino",
			"calciatore madre sammarinese",
			"calciatore nonno sammarinese",
			"San Marino dual citizenship football",
			"calciatore passaporto sammarinese",
		},
		TargetSurnames: []string{
			"Gasperoni", "Bernardi", "Simoncini", "Francini", "Vitaioli",
			"Rattini", "Selva", "Guidi", "Casadei", "Valentini", "Macina", "Zafferani",
		},
		RadarSurnames: []string{
			"Albani", "Benedettini", "Berardi", "Bernardi", "Bollini", "Casadei", "Ceccoli",
			"Cecchetti", "Crescentini", "Della Valle", "Felici", "Francini", "Gasperoni",
			"Giardi", "Gualtieri", "Guidi", "Macina", "Mularoni", "Muccioli", "Nanni",
			"Righi", "Rattini", "Selva", "Simoncini", "Stefanelli", "Terenzi", "Tosi",
			"Valentini", "Vitaioli", "Zafferani", "Zonzini",
		},
	}
}
