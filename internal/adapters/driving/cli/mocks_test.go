package cli

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driving"
)

// mockSession completes every scan as soon as it starts.
type mockSession struct {
	mu      sync.Mutex
	state   domain.SessionState
	result  domain.SessionState
	err     error
	started []driving.StartOptions
	resets  int
}

func (m *mockSession) Start(_ context.Context, opts driving.StartOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = append(m.started, opts)
	if m.err != nil {
		return m.err
	}
	m.state = m.result
	return nil
}

func (m *mockSession) Stop() {}

func (m *mockSession) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets++
	m.state = domain.SessionState{}
}

func (m *mockSession) State() domain.SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *mockSession) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

// mockChat echoes messages.
type mockChat struct {
	sent   []string
	resets int
}

func (m *mockChat) Send(_ context.Context, message string) string {
	m.sent = append(m.sent, message)
	return "reply: " + message
}

func (m *mockChat) Reset() {
	m.resets++
	m.sent = nil
}

// mockRadar filters a fixed surname list.
type mockRadar struct{}

func (mockRadar) Surnames(filter string) []string {
	var out []string
	for _, s := range []string{"Gasperoni", "Giardi", "Zonzini"} {
		if strings.Contains(strings.ToLower(s), strings.ToLower(filter)) {
			out = append(out, s)
		}
	}
	return out
}

func (mockRadar) Links(surname string) driving.IntelLinks {
	q := url.QueryEscape(surname)
	return driving.IntelLinks{
		Surname:   surname,
		Italy:     "https://www.google.com/search?q=it+" + q,
		Argentina: "https://www.google.com/search?q=ar+" + q,
		USA:       "https://www.google.com/search?q=us+" + q,
	}
}

// mockSettings stores values in a map over the defaults.
type mockSettings struct {
	settings *domain.Settings
	values   map[string]any
	err      error
}

func (m *mockSettings) Get() (*domain.Settings, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.settings, nil
}

func (m *mockSettings) Set(key string, value any) error {
	if m.err != nil {
		return m.err
	}
	if m.values == nil {
		m.values = map[string]any{}
	}
	m.values[key] = value
	return nil
}

func (m *mockSettings) Path() string {
	return "/tmp/titan/config.toml"
}

func sampleResult() domain.SessionState {
	ts := time.Date(2026, 3, 1, 14, 3, 27, 0, time.UTC)
	return domain.SessionState{
		Progress: 100,
		Mode:     domain.ModeHybrid,
		Candidates: []domain.Candidate{
			{Identity: "marco rossi|rimini", Name: "Marco Rossi", Club: "Rimini", YearBorn: "2001",
				Country: domain.CountryAbroadVerified, Reasoning: "Verified graph record.",
				SourceURL: "https://www.wikidata.org/wiki/Q1", FoundVia: "Wikidata",
				DiscoveryMethod: domain.MethodGraph, Verified: true},
			{Identity: "luca gasperoni", Name: "Luca Gasperoni", Club: domain.Unknown, YearBorn: "1999",
				Country: domain.CountryTextDiscovery, Reasoning: domain.DefaultReasoning,
				SourceURL: domain.NotAvailable, FoundVia: "Wikipedia (it)",
				DiscoveryMethod: domain.MethodText},
		},
		Logs: []domain.LogEvent{
			{ID: "1", Timestamp: ts, Type: domain.LogSystem, Text: "Initiating HYBRID OSINT Protocol (Graph + Text)..."},
			{ID: "2", Timestamp: ts, Type: domain.LogSuccess, Text: "Intelligence Sync Complete. 2 records loaded."},
		},
	}
}

// setupTestServices installs mocks and returns them with a restore func.
func setupTestServices() (*mockSession, *mockChat, *mockSettings, func()) {
	oldSession, oldChat, oldRadar := sessionController, chatService, radarService
	oldSettings, oldCheck := settingsService, generatorCheck

	session := &mockSession{result: sampleResult()}
	chat := &mockChat{}
	settings := &mockSettings{settings: domain.DefaultSettings()}
	SetServices(Services{
		Session:  session,
		Chat:     chat,
		Radar:    mockRadar{},
		Settings: settings,
	})

	return session, chat, settings, func() {
		sessionController, chatService, radarService = oldSession, oldChat, oldRadar
		settingsService, generatorCheck = oldSettings, oldCheck
	}
}

// resetFlags restores flag defaults between executions of the shared root command.
func resetFlags(cmds ...*cobra.Command) {
	for _, c := range cmds {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
}
