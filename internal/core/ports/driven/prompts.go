package driven

import "github.com/fsgc-labs/titan-scout/internal/core/domain"

// PromptStore provides access to generator prompt templates.
// Implementations may load prompts from files, embed them in the binary,
// or fetch them from a remote configuration service.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// If the prompt is not found, implementations should return a sensible default
	// or an error, depending on whether the prompt is required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// Well-known prompt names, re-exported from the domain where the built-in
// defaults live.
const (
	PromptScoutSystem = domain.PromptScoutSystem
	PromptScoutTask   = domain.PromptScoutTask
	PromptChatSystem  = domain.PromptChatSystem
)

// PromptStoreAware is an optional interface for services that can use custom prompts.
type PromptStoreAware interface {
	// SetPromptStore sets the prompt store for loading customisable prompts.
	// If not set, the service should use its built-in defaults.
	SetPromptStore(store PromptStore)
}
