package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
)

func newTestServer(t *testing.T, session *mockSession) *Server {
	t.Helper()
	server, err := NewServer(&Ports{Session: session, Radar: &mockRadar{surnames: []string{"Gasperoni"}}})
	require.NoError(t, err)
	return server
}

func TestServer_handleStartScan(t *testing.T) {
	ctx := context.Background()

	t.Run("starts scan and returns results when waiting", func(t *testing.T) {
		session := &mockSession{result: sampleState()}
		server := newTestServer(t, session)

		_, output, err := server.handleStartScan(ctx, nil, StartScanInput{
			Mode:     "generative",
			Strategy: "argentina",
			Terms:    []string{"Gasperoni"},
			Wait:     true,
		})

		require.NoError(t, err)
		require.Len(t, session.started, 1)
		assert.Equal(t, domain.ModeGenerative, session.started[0].Mode)
		assert.Equal(t, domain.StrategyArgentina, session.started[0].Strategy)
		assert.Equal(t, []string{"Gasperoni"}, session.started[0].Terms)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, "Marco Rossi", output.Candidates[0].Name)
		assert.Equal(t, "GRAPH", output.Candidates[0].Method)
		assert.Empty(t, output.Logs)
	})

	t.Run("unknown strategy returns error", func(t *testing.T) {
		session := &mockSession{}
		server := newTestServer(t, session)

		_, _, err := server.handleStartScan(ctx, nil, StartScanInput{Strategy: "MOON"})

		assert.ErrorIs(t, err, domain.ErrUnknownStrategy)
		assert.Empty(t, session.started)
	})

	t.Run("running scan returns error", func(t *testing.T) {
		session := &mockSession{state: domain.SessionState{IsRunning: true}}
		server := newTestServer(t, session)

		_, _, err := server.handleStartScan(ctx, nil, StartScanInput{})

		assert.ErrorIs(t, err, domain.ErrRunInProgress)
	})

	t.Run("start error is returned", func(t *testing.T) {
		session := &mockSession{err: errors.New("no engine")}
		server := newTestServer(t, session)

		_, _, err := server.handleStartScan(ctx, nil, StartScanInput{})

		assert.EqualError(t, err, "no engine")
	})
}

func TestServer_handleGetSession(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		input     SessionInput
		wantCount int
		wantLen   int
		wantLogs  int
	}{
		{name: "default limit", input: SessionInput{}, wantCount: 2, wantLen: 2},
		{name: "limit applies", input: SessionInput{Limit: 1}, wantCount: 2, wantLen: 1},
		{name: "logs included", input: SessionInput{IncludeLogs: true}, wantCount: 2, wantLen: 2, wantLogs: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, &mockSession{state: sampleState()})

			_, output, err := server.handleGetSession(ctx, nil, tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, output.Count)
			assert.Len(t, output.Candidates, tt.wantLen)
			assert.Len(t, output.Logs, tt.wantLogs)
			assert.Equal(t, 100, output.Progress)
			assert.Equal(t, "hybrid", output.Mode)
		})
	}
}

func TestServer_handleStopAndReset(t *testing.T) {
	ctx := context.Background()

	session := &mockSession{state: sampleState()}
	session.state.IsRunning = true
	server := newTestServer(t, session)

	_, output, err := server.handleStopScan(ctx, nil, EmptyInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, session.stopped)
	assert.False(t, output.Running)
	assert.Equal(t, 2, output.Count)

	_, output, err = server.handleResetSession(ctx, nil, EmptyInput{})
	require.NoError(t, err)
	assert.Equal(t, 0, output.Count)
	assert.Empty(t, output.Candidates)
}

func TestServer_handleIntelLinks(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, &mockSession{})

	t.Run("returns links", func(t *testing.T) {
		_, links, err := server.handleIntelLinks(ctx, nil, LinksInput{Surname: "Gasperoni"})
		require.NoError(t, err)
		assert.Equal(t, "Gasperoni", links.Surname)
		assert.Contains(t, links.Italy, "Gasperoni")
	})

	t.Run("empty surname returns error", func(t *testing.T) {
		_, _, err := server.handleIntelLinks(ctx, nil, LinksInput{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestServer_handleRadarSurnames(t *testing.T) {
	server := newTestServer(t, &mockSession{})

	_, output, err := server.handleRadarSurnames(context.Background(), nil, SurnamesInput{Filter: "gas"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Gasperoni"}, output.Surnames)
}
