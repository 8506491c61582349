package driving

import "context"

// ChatService is the conversational scouting assistant.
type ChatService interface {
	// Send adds a user message to the conversation and returns the reply.
	// Failures are reported as a user-facing reply, never as an error.
	Send(ctx context.Context, message string) string

	// Reset discards the conversation.
	Reset()
}
