// Package ai provides factory functions for creating generator adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/fsgc-labs/titan-scout/internal/adapters/driven/llm/gemini"
	"github.com/fsgc-labs/titan-scout/internal/adapters/driven/llm/openai"
	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// pinger is implemented by generators that can check connectivity cheaply.
type pinger interface {
	Ping(ctx context.Context) error
}

// CreateGenerator creates the generator for the configured provider.
// Returns nil if the generator is not configured.
func CreateGenerator(ctx context.Context, settings *domain.GeneratorSettings) (driven.Generator, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	switch settings.Provider {
	case domain.ProviderGemini:
		gen, err := gemini.New(ctx, gemini.Config{
			APIKey:      settings.APIKey,
			AccessToken: settings.AccessToken,
			Model:       settings.Model,
			BaseURL:     settings.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		return gen, nil

	case domain.ProviderOpenAI:
		gen, err := openai.New(openai.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})
		if err != nil {
			return nil, err
		}
		return gen, nil

	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", settings.Provider)
	}
}

// CreateAndValidateGenerator creates a generator and validates connectivity.
// Returns the generator if successful, or an error with guidance.
func CreateAndValidateGenerator(ctx context.Context, settings *domain.GeneratorSettings) (driven.Generator, error) {
	gen, err := CreateGenerator(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'titan config set generator.api_key <key>' to fix",
			domain.ErrGeneratorUnavailable, err)
	}
	if gen == nil {
		return nil, nil
	}

	if err := ping(ctx, gen); err != nil {
		_ = gen.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'titan config check' for details",
			domain.ErrGeneratorUnavailable, err)
	}

	return gen, nil
}

// ValidateGeneratorConfig creates a generator and pings it.
// An unconfigured generator is valid: generative features are simply off.
func ValidateGeneratorConfig(ctx context.Context, settings *domain.GeneratorSettings) error {
	gen, err := CreateAndValidateGenerator(ctx, settings)
	if err != nil {
		return err
	}
	if gen != nil {
		_ = gen.Close()
	}
	return nil
}

func ping(ctx context.Context, gen driven.Generator) error {
	p, ok := gen.(pinger)
	if !ok {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return p.Ping(ctx)
}
