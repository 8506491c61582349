package services

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driven"
	"github.com/fsgc-labs/titan-scout/internal/logger"
)

// eventBuffer lets producers run ahead of a slow consumer by a few events.
const eventBuffer = 64

// CancelToken is the cooperative stop flag shared between a caller and a run.
// The engine polls it before each unit of work; in-flight calls are never
// interrupted.
type CancelToken struct {
	once sync.Once
	done chan struct{}
}

// NewCancelToken creates an unset token.
func NewCancelToken() *CancelToken {
	return &CancelToken{done: make(chan struct{})}
}

// Cancel sets the flag. Safe to call more than once.
func (t *CancelToken) Cancel() {
	t.once.Do(func() { close(t.done) })
}

// Cancelled reports whether Cancel has been called.
func (t *CancelToken) Cancelled() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Done is closed on Cancel. The engine uses it to cut the inter-call pause short.
func (t *CancelToken) Done() <-chan struct{} {
	return t.done
}

// RunRequest describes one aggregation run.
type RunRequest struct {
	// Terms are the text-side query terms, run in order.
	Terms []string

	// Strategy selects the generative strategies per term. Empty runs every
	// term once with no strategy, as the keyword-search source expects.
	Strategy domain.Strategy

	// SkipGraph leaves the graph source out of this run.
	SkipGraph bool
}

// units expands the request into the text-side call sequence.
func (r RunRequest) units() []driven.Query {
	strategies := []domain.Strategy{""}
	if r.Strategy != "" {
		strategies = r.Strategy.Runs()
	}
	out := make([]driven.Query, 0, len(r.Terms)*len(strategies))
	for _, term := range r.Terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		for _, st := range strategies {
			out = append(out, driven.Query{Term: term, Strategy: st})
		}
	}
	return out
}

// EngineConfig wires an Engine.
type EngineConfig struct {
	// Graph is queried once per run. Optional.
	Graph driven.Source

	// Text is queried once per term and strategy, sequentially. Optional.
	Text driven.Source

	// Registry normalises every raw record. Required.
	Registry driven.NormaliserRegistry

	// Delay is the fixed pause between consecutive text-side calls.
	// Tests set it to zero.
	Delay time.Duration

	// Now stamps log events. Defaults to time.Now.
	Now func() time.Time
}

// Engine is the aggregation pipeline: it fans out to the sources, merges
// their batches under a dedup identity and ranks the result.
type Engine struct {
	graph    driven.Source
	text     driven.Source
	registry driven.NormaliserRegistry
	delay    time.Duration
	now      func() time.Time
}

// NewEngine creates an engine.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if cfg.Registry == nil {
		return nil, fmt.Errorf("%w: normaliser registry", domain.ErrNotConfigured)
	}
	if cfg.Delay < 0 {
		return nil, fmt.Errorf("%w: negative inter-call delay %s", domain.ErrInvalidInput, cfg.Delay)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Engine{
		graph:    cfg.Graph,
		text:     cfg.Text,
		registry: cfg.Registry,
		delay:    cfg.Delay,
		now:      cfg.Now,
	}, nil
}

// batch is one source call's outcome, or a notice when notice is set.
type batch struct {
	source string
	query  driven.Query
	graph  bool
	raws   []domain.RawCandidate
	err    error
	notice string
}

// Run starts an aggregation and returns its event stream. The stream ends
// with exactly one terminal event (completed or aborted) and is then closed.
// The caller must drain the channel until it is closed.
//
// Source failures become error log events and empty batches; they never
// stop the run. Cancelling token or ctx stops the run at the next
// checkpoint and keeps everything merged so far.
func (e *Engine) Run(ctx context.Context, req RunRequest, token *CancelToken) <-chan domain.Event {
	if token == nil {
		token = NewCancelToken()
	}
	out := make(chan domain.Event, eventBuffer)
	go e.run(ctx, req, token, out)
	return out
}

// runState is owned by the consuming goroutine of one run.
type runState struct {
	engine   *Engine
	out      chan<- domain.Event
	ledger   *ledger
	units    int
	done     int
	progress int
}

func (e *Engine) run(ctx context.Context, req RunRequest, token *CancelToken, out chan<- domain.Event) {
	r := &runState{engine: e, out: out, ledger: newLedger()}
	stop := make(chan struct{})

	defer close(out)
	defer close(stop)
	defer func() {
		if p := recover(); p != nil {
			logger.Error("engine: panic in orchestration loop: %v\n%s", p, debug.Stack())
			r.log(domain.LogError, fmt.Sprintf("MISSION FAILURE: %v", p))
			r.finish(domain.EventAborted, fmt.Sprintf("Scan terminated. %d unique candidates retained.", r.ledger.Len()))
		}
	}()

	units := req.units()
	runGraph := e.graph != nil && !req.SkipGraph
	runText := e.text != nil && len(units) > 0

	if runGraph {
		r.units++
	}
	if runText {
		r.units += len(units)
	}

	logger.Section("Aggregation")
	logger.Info("engine: graph=%t text units=%d delay=%s", runGraph, len(units), e.delay)

	if r.units == 0 {
		r.log(domain.LogError, "No sources configured for this scan.")
		r.finish(domain.EventCompleted, "Aggregation complete. 0 unique candidates.")
		return
	}

	batches := make(chan batch)
	send := func(b batch) bool {
		select {
		case batches <- b:
			return true
		case <-stop:
			return false
		}
	}

	var g errgroup.Group
	if runGraph {
		g.Go(func() error {
			send(batch{notice: fmt.Sprintf("Graph scan: querying %s...", e.graph.Name())})
			raws, err := safeFetch(ctx, e.graph, driven.Query{})
			send(batch{source: e.graph.Name(), graph: true, raws: raws, err: err})
			return nil
		})
	}
	if runText {
		g.Go(func() error {
			e.produceText(ctx, units, token, send)
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		close(batches)
	}()

	for b := range batches {
		r.absorb(b)
	}

	if token.Cancelled() || ctx.Err() != nil {
		r.finish(domain.EventAborted, fmt.Sprintf("Scan aborted. %d unique candidates retained.", r.ledger.Len()))
		return
	}
	r.setProgress(100)
	r.finish(domain.EventCompleted, fmt.Sprintf("Aggregation complete. %d unique candidates.", r.ledger.Len()))
}

// produceText runs the text-side calls strictly one after another with the
// fixed pause between them. The token is checked before every call.
func (e *Engine) produceText(ctx context.Context, units []driven.Query, token *CancelToken, send func(batch) bool) {
	lastTerm := ""
	for i, q := range units {
		if i > 0 && !pause(ctx, token, e.delay) {
			return
		}
		if token.Cancelled() || ctx.Err() != nil {
			return
		}

		if q.Term != lastTerm {
			lastTerm = q.Term
			if !send(batch{notice: fmt.Sprintf("%s: scanning %q...", e.text.Name(), q.Term)}) {
				return
			}
		}

		raws, err := safeFetch(ctx, e.text, q)
		if !send(batch{source: e.text.Name(), query: q, raws: raws, err: err}) {
			return
		}
	}
}

// pause waits for d. It returns false when the wait was cut short.
func pause(ctx context.Context, token *CancelToken, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	case <-token.Done():
		return false
	}
}

// safeFetch turns a panicking adapter into an ordinary failed call.
func safeFetch(ctx context.Context, src driven.Source, q driven.Query) (raws []domain.RawCandidate, err error) {
	defer func() {
		if p := recover(); p != nil {
			logger.Error("engine: %s panicked: %v", src.Name(), p)
			raws, err = nil, fmt.Errorf("%s panicked: %v", src.Name(), p)
		}
	}()
	return src.Fetch(ctx, q)
}

// absorb merges one batch and reports it.
func (r *runState) absorb(b batch) {
	if b.notice != "" {
		r.log(domain.LogInfo, b.notice)
		return
	}

	label := describe(b)
	if b.err != nil {
		r.log(domain.LogError, fmt.Sprintf("ERROR %s: %v", label, b.err))
	}

	fresh, skipped := 0, 0
	for _, raw := range b.raws {
		c, err := r.engine.registry.Normalise(raw)
		if err != nil {
			logger.Warn("engine: %s: %v", label, err)
			skipped++
			continue
		}
		if r.ledger.Merge(c) != mergeKept {
			fresh++
		}
	}

	switch {
	case b.graph && len(b.raws) > 0:
		r.log(domain.LogSuccess, fmt.Sprintf("%s: Graph Scan Complete. %d valid profiles (%d new).", label, len(b.raws)-skipped, fresh))
	case len(b.raws) > 0:
		r.log(domain.LogInfo, fmt.Sprintf("%s: %d leads (%d new).", label, len(b.raws)-skipped, fresh))
	case b.err == nil:
		r.log(domain.LogInfo, fmt.Sprintf("%s: no matches.", label))
	}

	r.done++
	if r.units > 0 {
		// 100 is reserved for a completed run
		r.setProgress(min(99, r.done*100/r.units))
	}
	r.emit(domain.Event{Kind: domain.EventBatch, Progress: r.progress, Candidates: r.ledger.Ranked()})
}

// describe names a batch in log lines.
func describe(b batch) string {
	switch {
	case b.graph:
		return b.source
	case b.query.Strategy == "":
		return fmt.Sprintf("%s %q", b.source, b.query.Term)
	default:
		return fmt.Sprintf("%s %q [%s]", b.source, b.query.Term, b.query.Strategy.Label())
	}
}

func (r *runState) setProgress(p int) {
	if p == r.progress {
		return
	}
	r.progress = p
	r.emit(domain.Event{Kind: domain.EventProgress, Progress: p})
}

func (r *runState) log(t domain.LogType, text string) {
	r.emit(domain.Event{Kind: domain.EventLog, Progress: r.progress, Log: newLogEvent(r.engine.now(), t, text)})
}

// finish emits the summary line and the terminal event.
func (r *runState) finish(kind domain.EventKind, summary string) {
	r.log(domain.LogSystem, summary)
	r.emit(domain.Event{Kind: kind, Progress: r.progress, Candidates: r.ledger.Ranked()})
}

func (r *runState) emit(ev domain.Event) {
	r.out <- ev
}

func newLogEvent(ts time.Time, t domain.LogType, text string) domain.LogEvent {
	return domain.LogEvent{
		ID:        uuid.NewString(),
		Timestamp: ts,
		Type:      t,
		Text:      text,
	}
}
