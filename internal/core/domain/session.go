package domain

// Mode selects which text-side adapter accompanies the graph scan.
type Mode string

// Scan modes.
const (
	// ModeHybrid pairs the graph scan with keyword search over an encyclopedic corpus.
	ModeHybrid Mode = "hybrid"

	// ModeGenerative pairs the graph scan with a generative model using a web-search tool.
	ModeGenerative Mode = "generative"
)

// IsValid returns true if the mode is recognised.
func (m Mode) IsValid() bool {
	return m == ModeHybrid || m == ModeGenerative
}

// String returns the string representation.
func (m Mode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m Mode) Description() string {
	switch m {
	case ModeHybrid:
		return "Hybrid (graph + encyclopedia text)"
	case ModeGenerative:
		return "Generative (graph + model web search)"
	default:
		return Unknown
	}
}

// SessionState is the snapshot exposed to the presentation layer.
type SessionState struct {
	IsRunning  bool        `json:"is_running"`
	Progress   int         `json:"progress"`
	Mode       Mode        `json:"mode,omitempty"`
	Strategy   Strategy    `json:"strategy,omitempty"`
	Candidates []Candidate `json:"candidates"`
	Logs       []LogEvent  `json:"logs"`
}

// EventKind tags an item of the aggregation stream.
type EventKind int

const (
	// EventProgress carries an updated progress percentage.
	EventProgress EventKind = iota

	// EventLog carries one LogEvent.
	EventLog

	// EventBatch carries the merged, ranked snapshot after an adapter batch.
	EventBatch

	// EventCompleted is terminal: all sources finished.
	EventCompleted

	// EventAborted is terminal: the run stopped early on cancellation or fatal failure.
	EventAborted
)

// IsTerminal reports whether no further events follow.
func (k EventKind) IsTerminal() bool {
	return k == EventCompleted || k == EventAborted
}

// Event is one item of the aggregation stream.
type Event struct {
	Kind       EventKind
	Progress   int
	Log        LogEvent
	Candidates []Candidate
}
