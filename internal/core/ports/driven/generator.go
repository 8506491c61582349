package driven

import "context"

// Generator provides generative text completions, optionally grounded
// in a web-search tool.
//
// Implementations may include:
//   - Gemini (Generative Language API with Google Search)
//   - OpenAI-compatible chat completions (no grounding)
type Generator interface {
	// Generate produces a completion for the conversation in req.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)

	// ModelName returns the default model used when req.Model is empty.
	ModelName() string

	// Close releases resources.
	Close() error
}

// Message is one turn of a conversation.
type Message struct {
	// Role is "user" or "model".
	Role string

	// Content is the message text.
	Content string
}

// Roles.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// GenerateRequest configures one generation call.
type GenerateRequest struct {
	// Model overrides the generator's default model.
	Model string

	// System is the system instruction.
	System string

	// Messages is the conversation, oldest first.
	Messages []Message

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64

	// WebSearch enables the provider's search tool when available.
	WebSearch bool
}

// GenerateResult is a completion plus its grounding citations.
type GenerateResult struct {
	Text string

	// GroundingURLs are the citation URLs returned with the generation, in order.
	GroundingURLs []string
}
