package domain

import "time"

// LogType classifies a LogEvent for display.
type LogType string

// Log types.
const (
	LogInfo    LogType = "info"
	LogSuccess LogType = "success"
	LogError   LogType = "error"
	LogSystem  LogType = "system"
)

// LogEvent is one notable pipeline transition.
// Events form an append-only sequence that is only cleared on session reset.
type LogEvent struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      LogType   `json:"type"`
	Text      string    `json:"text"`
}

// Clock returns the wall-clock part of the timestamp, e.g. "14:03:27".
func (e LogEvent) Clock() string {
	return e.Timestamp.Format("15:04:05")
}
