package mcp

import (
	"context"
	"sync"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driving"
)

// mockSession is a mock implementation of driving.SessionController.
// Start completes immediately with the configured result state.
type mockSession struct {
	mu      sync.Mutex
	state   domain.SessionState
	result  domain.SessionState
	err     error
	started []driving.StartOptions
	stopped int
}

func (m *mockSession) Start(_ context.Context, opts driving.StartOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.started = append(m.started, opts)
	m.state = m.result
	return nil
}

func (m *mockSession) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped++
	m.state.IsRunning = false
}

func (m *mockSession) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
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

// mockRadar is a mock implementation of driving.RadarService.
type mockRadar struct {
	surnames []string
}

func (m *mockRadar) Surnames(_ string) []string {
	return m.surnames
}

func (m *mockRadar) Links(surname string) driving.IntelLinks {
	return driving.IntelLinks{
		Surname:   surname,
		Italy:     "https://example.test/it?q=" + surname,
		Argentina: "https://example.test/ar?q=" + surname,
		USA:       "https://example.test/us?q=" + surname,
	}
}

func sampleState() domain.SessionState {
	return domain.SessionState{
		Progress: 100,
		Mode:     domain.ModeHybrid,
		Candidates: []domain.Candidate{
			{
				Name:            "Marco Rossi",
				Club:            "Rimini",
				YearBorn:        "2001",
				Country:         domain.CountryAbroadVerified,
				DiscoveryMethod: domain.MethodGraph,
				FoundVia:        "Wikidata",
				Reasoning:       "Citizenship: San Marino",
				SourceURL:       "https://www.wikidata.org/wiki/Q1",
			},
			{
				Name:            "Luca Gasperoni",
				Club:            domain.Unknown,
				YearBorn:        domain.NotAvailable,
				Country:         domain.CountryTextDiscovery,
				DiscoveryMethod: domain.MethodText,
				FoundVia:        "Wikipedia (it)",
				Reasoning:       domain.DefaultReasoning,
			},
		},
		Logs: []domain.LogEvent{
			{Type: domain.LogSystem, Text: "Aggregation complete. 2 unique candidates."},
		},
	}
}
