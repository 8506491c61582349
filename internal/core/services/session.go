package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driving"
	"github.com/fsgc-labs/titan-scout/internal/logger"
)

// Ensure Session implements the interface.
var _ driving.SessionController = (*Session)(nil)

// EngineBuilder assembles the engine for one run from the settings in force
// when the run starts.
type EngineBuilder func(settings *domain.Settings, mode domain.Mode) (*Engine, error)

// Session drives the aggregation engine on user command and holds the
// result and log state shown by the presentation layer.
type Session struct {
	settings driving.SettingsService
	build    EngineBuilder
	now      func() time.Time

	mu    sync.RWMutex
	state domain.SessionState
	token *CancelToken
	done  chan struct{}

	// gen identifies the current run; events from an older run are dropped
	// after a reset.
	gen int
}

// NewSession creates a session controller.
func NewSession(settings driving.SettingsService, build EngineBuilder) *Session {
	done := make(chan struct{})
	close(done)
	return &Session{
		settings: settings,
		build:    build,
		now:      time.Now,
		done:     done,
	}
}

// Start begins a scan. Starting while a scan is running is a no-op.
// A scan cancelled by Reset is waited for, bounded by ctx, so two engines
// never run side by side. The new run is detached from ctx's cancellation;
// Stop ends it.
func (s *Session) Start(ctx context.Context, opts driving.StartOptions) error {
	idle, err := s.lockIdle(ctx)
	if err != nil || !idle {
		return err
	}
	defer s.mu.Unlock()

	mode, strategy, err := resolveStart(opts)
	if err != nil {
		return err
	}
	if s.settings == nil || s.build == nil {
		return fmt.Errorf("%w: session controller", domain.ErrNotConfigured)
	}

	settings, err := s.settings.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	engine, err := s.build(settings, mode)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	terms := opts.Terms
	if len(terms) == 0 {
		terms = DefaultTerms(settings, mode)
	}

	s.gen++
	s.token = NewCancelToken()
	s.done = make(chan struct{})
	s.state = domain.SessionState{
		IsRunning:  true,
		Mode:       mode,
		Strategy:   strategy,
		Candidates: []domain.Candidate{},
		Logs:       []domain.LogEvent{},
	}
	s.appendLog(domain.LogSystem, banner(mode, strategy))

	events := engine.Run(context.WithoutCancel(ctx), RunRequest{
		Terms:     terms,
		Strategy:  strategy,
		SkipGraph: opts.SkipGraph || !settings.Graph.Enabled,
	}, s.token)

	go s.consume(s.gen, events, s.done)
	return nil
}

// lockIdle takes the lock once the previous run has drained. It returns
// false, with the lock released, when a scan is running.
func (s *Session) lockIdle(ctx context.Context) (bool, error) {
	for {
		s.mu.Lock()
		if s.state.IsRunning {
			s.mu.Unlock()
			logger.Debug("session: start ignored, scan in progress")
			return false, nil
		}
		prev := s.done
		select {
		case <-prev:
			return true, nil
		default:
		}
		s.mu.Unlock()

		logger.Debug("session: waiting for the cancelled scan to drain")
		select {
		case <-prev:
		case <-ctx.Done():
			return false, fmt.Errorf("wait for previous scan: %w", ctx.Err())
		}
	}
}

// resolveStart applies defaults and validates the mode and strategy.
func resolveStart(opts driving.StartOptions) (domain.Mode, domain.Strategy, error) {
	mode := opts.Mode
	if mode == "" {
		mode = domain.ModeHybrid
	}
	if !mode.IsValid() {
		return "", "", fmt.Errorf("%w: %q", domain.ErrUnknownMode, mode)
	}
	if mode == domain.ModeHybrid {
		return mode, "", nil
	}

	strategy := opts.Strategy
	if strategy == "" {
		strategy = domain.StrategySurnameBase
	}
	if !strategy.IsValid() {
		return "", "", fmt.Errorf("%w: %q", domain.ErrUnknownStrategy, strategy)
	}
	return mode, strategy, nil
}

func banner(mode domain.Mode, strategy domain.Strategy) string {
	if mode == domain.ModeGenerative {
		return fmt.Sprintf("Initiating GENERATIVE OSINT Protocol (Graph + %s)...", strategy.Label())
	}
	return "Initiating HYBRID OSINT Protocol (Graph + Text)..."
}

// consume applies the engine's events to the session state.
func (s *Session) consume(gen int, events <-chan domain.Event, done chan struct{}) {
	defer close(done)

	for ev := range events {
		s.mu.Lock()
		if gen != s.gen {
			// Reset while the old run was still draining
			s.mu.Unlock()
			continue
		}
		s.apply(ev)
		s.mu.Unlock()
	}
}

// apply handles one event. Caller must hold the lock.
func (s *Session) apply(ev domain.Event) {
	switch ev.Kind {
	case domain.EventProgress:
		s.state.Progress = ev.Progress
	case domain.EventLog:
		s.state.Logs = append(s.state.Logs, ev.Log)
	case domain.EventBatch:
		s.state.Progress = ev.Progress
		s.state.Candidates = ev.Candidates
	case domain.EventCompleted, domain.EventAborted:
		s.state.Progress = ev.Progress
		// Never shrink the visible result set on stop
		if len(ev.Candidates) >= len(s.state.Candidates) {
			s.state.Candidates = ev.Candidates
		}
		if n := len(s.state.Candidates); n > 0 {
			s.appendLog(domain.LogSuccess, fmt.Sprintf("Intelligence Sync Complete. %d records loaded.", n))
		} else {
			s.appendLog(domain.LogError, "No records found matching strict criteria.")
		}
		s.state.IsRunning = false
	}
}

// appendLog adds a controller-level line. Caller must hold the lock.
func (s *Session) appendLog(t domain.LogType, text string) {
	s.state.Logs = append(s.state.Logs, newLogEvent(s.now(), t, text))
}

// Stop requests cooperative cancellation of the active scan.
func (s *Session) Stop() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.IsRunning && s.token != nil {
		s.token.Cancel()
	}
}

// Reset clears results, logs and progress. A running scan is cancelled and
// its remaining events are discarded.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != nil {
		s.token.Cancel()
	}
	s.gen++
	s.state = domain.SessionState{}
}

// State returns a snapshot of the session.
func (s *Session) State() domain.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.state
	st.Candidates = slices.Clone(s.state.Candidates)
	st.Logs = slices.Clone(s.state.Logs)
	return st
}

// Done returns a channel closed when the current run ends.
func (s *Session) Done() <-chan struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.done
}

// DefaultTerms returns the configured terms for a mode.
func DefaultTerms(settings *domain.Settings, mode domain.Mode) []string {
	if mode == domain.ModeGenerative {
		return slices.Clone(settings.TargetSurnames)
	}
	return slices.Clone(settings.DiscoveryQueries)
}

// ParseTerms splits a comma-separated term list, dropping blanks.
func ParseTerms(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
