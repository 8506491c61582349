package services

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driven"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyKnownPlayers        = "exclusions.known_players"
	KeyDomesticClubs       = "exclusions.domestic_clubs"
	KeyNoiseKeywords       = "exclusions.noise_keywords"
	KeyNationalTeamMarkers = "exclusions.national_team_markers"

	KeyMinBirthYear     = "age.min_birth_year"
	KeyOutfieldMaxAge   = "age.outfield_max_age"
	KeyGoalkeeperMaxAge = "age.goalkeeper_max_age"
	KeyYouthUnder       = "age.youth_under"
	KeyPrimeMaxAge      = "age.prime_max_age"
	KeyDefaultAge       = "age.default_age"

	KeyDelayMS          = "scan.delay_ms"
	KeyDiscoveryQueries = "scan.discovery_queries"
	KeyTargetSurnames   = "scan.target_surnames"
	KeyRadarSurnames    = "radar.surnames"

	KeyGraphEnabled   = "graph.enabled"
	KeyGraphEndpoint  = "graph.endpoint"
	KeyGraphQueryFile = "graph.query_file"

	KeyTextEndpoint  = "text.endpoint"
	KeyTextLanguages = "text.languages"
	KeyTextLimit     = "text.limit"
	KeyTextRPS       = "text.requests_per_second"

	KeyGenProvider    = "generator.provider"
	KeyGenModel       = "generator.model"
	KeyGenChatModel   = "generator.chat_model"
	KeyGenBaseURL     = "generator.base_url"
	KeyGenAPIKey      = "generator.api_key"
	KeyGenAccessToken = "generator.access_token"
)

// Environment variables consulted when no key is stored.
const (
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
)

// keyKind drives string coercion in Set.
type keyKind int

const (
	kindString keyKind = iota
	kindList
	kindInt
	kindFloat
	kindBool
)

var keyKinds = map[string]keyKind{
	KeyKnownPlayers:        kindList,
	KeyDomesticClubs:       kindList,
	KeyNoiseKeywords:       kindList,
	KeyNationalTeamMarkers: kindList,
	KeyMinBirthYear:        kindInt,
	KeyOutfieldMaxAge:      kindInt,
	KeyGoalkeeperMaxAge:    kindInt,
	KeyYouthUnder:          kindInt,
	KeyPrimeMaxAge:         kindInt,
	KeyDefaultAge:          kindInt,
	KeyDelayMS:             kindInt,
	KeyDiscoveryQueries:    kindList,
	KeyTargetSurnames:      kindList,
	KeyRadarSurnames:       kindList,
	KeyGraphEnabled:        kindBool,
	KeyGraphEndpoint:       kindString,
	KeyGraphQueryFile:      kindString,
	KeyTextEndpoint:        kindString,
	KeyTextLanguages:       kindList,
	KeyTextLimit:           kindInt,
	KeyTextRPS:             kindFloat,
	KeyGenProvider:         kindString,
	KeyGenModel:            kindString,
	KeyGenChatModel:        kindString,
	KeyGenBaseURL:          kindString,
	KeyGenAPIKey:           kindString,
	KeyGenAccessToken:      kindString,
}

// SettingsKeys returns every recognised key, sorted.
func SettingsKeys() []string {
	keys := make([]string, 0, len(keyKinds))
	for k := range keyKinds {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// SettingsService resolves domain.Settings from a config store.
type SettingsService struct {
	configStore driven.ConfigStore
	getenv      func(string) string
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore, getenv: os.Getenv}
}

// WithEnv replaces the environment lookup. Used by tests.
func (s *SettingsService) WithEnv(getenv func(string) string) *SettingsService {
	s.getenv = getenv
	return s
}

// Get resolves current settings, falling back to defaults per field.
func (s *SettingsService) Get() (*domain.Settings, error) {
	d := domain.DefaultSettings()
	if s.configStore == nil {
		return d, nil
	}

	settings := &domain.Settings{
		Exclusions: domain.ExclusionSet{
			KnownPlayers:        s.getList(KeyKnownPlayers, d.Exclusions.KnownPlayers),
			DomesticClubs:       s.getList(KeyDomesticClubs, d.Exclusions.DomesticClubs),
			NoiseKeywords:       s.getList(KeyNoiseKeywords, d.Exclusions.NoiseKeywords),
			NationalTeamMarkers: s.getList(KeyNationalTeamMarkers, d.Exclusions.NationalTeamMarkers),
			Age: domain.AgePolicy{
				MinBirthYear:     s.getInt(KeyMinBirthYear, d.Exclusions.Age.MinBirthYear),
				OutfieldMaxAge:   s.getInt(KeyOutfieldMaxAge, d.Exclusions.Age.OutfieldMaxAge),
				GoalkeeperMaxAge: s.getInt(KeyGoalkeeperMaxAge, d.Exclusions.Age.GoalkeeperMaxAge),
				YouthUnder:       s.getInt(KeyYouthUnder, d.Exclusions.Age.YouthUnder),
				PrimeMaxAge:      s.getInt(KeyPrimeMaxAge, d.Exclusions.Age.PrimeMaxAge),
				DefaultAge:       s.getInt(KeyDefaultAge, d.Exclusions.Age.DefaultAge),
			},
		},
		InterCallDelay: d.InterCallDelay,
		Graph: domain.GraphSettings{
			Enabled:   s.getBool(KeyGraphEnabled, d.Graph.Enabled),
			Endpoint:  s.getString(KeyGraphEndpoint, d.Graph.Endpoint),
			QueryFile: s.configStore.GetString(KeyGraphQueryFile),
		},
		Text: domain.TextSettings{
			Endpoint:          s.getString(KeyTextEndpoint, d.Text.Endpoint),
			Languages:         s.getList(KeyTextLanguages, d.Text.Languages),
			Limit:             s.getInt(KeyTextLimit, d.Text.Limit),
			RequestsPerSecond: s.getFloat(KeyTextRPS, d.Text.RequestsPerSecond),
		},
		Generator: domain.GeneratorSettings{
			Provider:    s.getProvider(d.Generator.Provider),
			Model:       s.getString(KeyGenModel, d.Generator.Model),
			ChatModel:   s.getString(KeyGenChatModel, d.Generator.ChatModel),
			BaseURL:     s.configStore.GetString(KeyGenBaseURL),
			APIKey:      s.configStore.GetString(KeyGenAPIKey),
			AccessToken: s.configStore.GetString(KeyGenAccessToken),
		},
		DiscoveryQueries: s.getList(KeyDiscoveryQueries, d.DiscoveryQueries),
		TargetSurnames:   s.getList(KeyTargetSurnames, d.TargetSurnames),
		RadarSurnames:    s.getList(KeyRadarSurnames, d.RadarSurnames),
	}

	// Zero is a valid delay, so presence is checked rather than the value
	if _, ok := s.configStore.Get(KeyDelayMS); ok {
		settings.InterCallDelay = time.Duration(s.configStore.GetInt(KeyDelayMS)) * time.Millisecond
	}

	if settings.Generator.APIKey == "" && s.getenv != nil {
		switch settings.Generator.Provider {
		case domain.ProviderGemini:
			settings.Generator.APIKey = s.getenv(EnvGeminiAPIKey)
		case domain.ProviderOpenAI:
			settings.Generator.APIKey = s.getenv(EnvOpenAIAPIKey)
		}
	}

	return settings, nil
}

// Set stores a single key. String values are coerced to the key's type,
// with lists given as comma-separated text.
func (s *SettingsService) Set(key string, value any) error {
	if s.configStore == nil {
		return fmt.Errorf("%w: config store", domain.ErrNotConfigured)
	}

	kind, ok := keyKinds[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	v, err := coerce(kind, value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
	}

	if err := validateSetting(key, v); err != nil {
		return err
	}

	if err := s.configStore.Set(key, v); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Path returns the backing configuration file path.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

func coerce(kind keyKind, value any) (any, error) {
	str, isString := value.(string)
	if !isString {
		switch kind {
		case kindList:
			if l, ok := value.([]string); ok {
				return l, nil
			}
		case kindInt:
			switch n := value.(type) {
			case int:
				return n, nil
			case int64:
				return int(n), nil
			case float64:
				return int(n), nil
			}
		case kindFloat:
			switch n := value.(type) {
			case float64:
				return n, nil
			case int:
				return float64(n), nil
			}
		case kindBool:
			if b, ok := value.(bool); ok {
				return b, nil
			}
		}
		return nil, fmt.Errorf("unsupported value %v (%T)", value, value)
	}

	str = strings.TrimSpace(str)
	switch kind {
	case kindList:
		return ParseTerms(str), nil
	case kindInt:
		return strconv.Atoi(str)
	case kindFloat:
		return strconv.ParseFloat(str, 64)
	case kindBool:
		return strconv.ParseBool(str)
	default:
		return str, nil
	}
}

func validateSetting(key string, v any) error {
	switch key {
	case KeyGenProvider:
		if p := domain.GeneratorProvider(v.(string)); !p.IsValid() {
			return fmt.Errorf("%w: unknown generator provider %q", domain.ErrInvalidInput, p)
		}
	case KeyDelayMS, KeyTextLimit, KeyMinBirthYear, KeyOutfieldMaxAge, KeyGoalkeeperMaxAge,
		KeyYouthUnder, KeyPrimeMaxAge, KeyDefaultAge:
		if v.(int) < 0 {
			return fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, key)
		}
	}
	return nil
}

func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

func (s *SettingsService) getInt(key string, fallback int) int {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetInt(key)
	}
	return fallback
}

func (s *SettingsService) getFloat(key string, fallback float64) float64 {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetFloat(key)
	}
	return fallback
}

func (s *SettingsService) getBool(key string, fallback bool) bool {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetBool(key)
	}
	return fallback
}

func (s *SettingsService) getList(key string, fallback []string) []string {
	if v := s.configStore.GetStringSlice(key); len(v) > 0 {
		return v
	}
	return fallback
}

func (s *SettingsService) getProvider(fallback domain.GeneratorProvider) domain.GeneratorProvider {
	p := domain.GeneratorProvider(s.configStore.GetString(KeyGenProvider))
	if p.IsValid() {
		return p
	}
	return fallback
}
