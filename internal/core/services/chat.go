package services

import (
	"context"
	"strings"
	"sync"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driven"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driving"
	"github.com/fsgc-labs/titan-scout/internal/logger"
)

// Ensure ChatService implements the interfaces.
var (
	_ driving.ChatService     = (*ChatService)(nil)
	_ driven.PromptStoreAware = (*ChatService)(nil)
)

// User-facing replies for failed turns.
const (
	ChatEmptyReply    = "I didn't get a response from the scouting database."
	ChatUnstableReply = "Communications with the Titan Mainframe are currently unstable. Please try again."
)

// ChatService is a single multi-turn conversation with the generator,
// grounded in web search.
type ChatService struct {
	generator   driven.Generator
	model       string
	promptStore driven.PromptStore

	// mu serialises turns so the history stays in order.
	mu      sync.Mutex
	history []driven.Message
}

// NewChatService creates a chat service. generator may be nil, in which
// case every turn gets the unstable reply.
func NewChatService(generator driven.Generator, model string) *ChatService {
	return &ChatService{generator: generator, model: model}
}

// SetPromptStore sets the store for a user-edited system prompt.
func (c *ChatService) SetPromptStore(store driven.PromptStore) {
	c.promptStore = store
}

// Send adds message to the conversation and returns the reply.
// A failed turn is not recorded in the history.
func (c *ChatService) Send(ctx context.Context, message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return ChatEmptyReply
	}
	if c.generator == nil {
		logger.Warn("chat: %v", domain.ErrGeneratorUnavailable)
		return ChatUnstableReply
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	turn := append(append([]driven.Message(nil), c.history...), driven.Message{
		Role:    driven.RoleUser,
		Content: message,
	})

	res, err := c.generator.Generate(ctx, driven.GenerateRequest{
		Model:     c.model,
		System:    c.systemPrompt(),
		Messages:  turn,
		WebSearch: true,
	})
	if err != nil {
		logger.Error("chat: %v", err)
		return ChatUnstableReply
	}

	text := ""
	if res != nil {
		text = strings.TrimSpace(res.Text)
	}
	if text == "" {
		return ChatEmptyReply
	}

	c.history = append(turn, driven.Message{Role: driven.RoleModel, Content: text})
	return text
}

// Reset discards the conversation.
func (c *ChatService) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = nil
}

func (c *ChatService) systemPrompt() string {
	if c.promptStore != nil {
		if p, err := c.promptStore.Load(driven.PromptChatSystem); err == nil && p != "" {
			return p
		}
	}
	p, _ := domain.DefaultPrompt(domain.PromptChatSystem)
	return p
}
