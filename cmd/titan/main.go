// Command titan is the FSGC scouting aggregator.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fsgc-labs/titan-scout/internal/adapters/driven/ai"
	"github.com/fsgc-labs/titan-scout/internal/adapters/driven/config/file"
	"github.com/fsgc-labs/titan-scout/internal/adapters/driven/storage/memory"
	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/cli"
	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driven"
	"github.com/fsgc-labs/titan-scout/internal/core/services"
	"github.com/fsgc-labs/titan-scout/internal/logger"
	"github.com/fsgc-labs/titan-scout/internal/normalisers"
	"github.com/fsgc-labs/titan-scout/internal/sources/generative"
	"github.com/fsgc-labs/titan-scout/internal/sources/wikidata"
	"github.com/fsgc-labs/titan-scout/internal/sources/wikipedia"
)

// version is set at build time via -ldflags.
var version = "dev"

// httpTimeout bounds a single source request.
const httpTimeout = 30 * time.Second

func main() {
	os.Exit(run0())
}

func run0() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func run(ctx context.Context) error {
	// Load .env file if present
	_ = godotenv.Load()

	dir := os.Getenv("TITAN_CONFIG_DIR")
	if dir == "" {
		d, err := file.DefaultDir()
		if err != nil {
			return err
		}
		dir = d
	}

	var store driven.ConfigStore
	fileStore, err := file.NewConfigStore(dir)
	if err != nil {
		logger.Warn("config: %v; settings will not persist", err)
		store = memory.NewConfigStore(nil)
	} else {
		store = fileStore
	}

	prompts, err := file.NewPromptStore(filepath.Join(dir, "prompts"))
	if err != nil {
		return fmt.Errorf("prompt store: %w", err)
	}

	settingsService := services.NewSettingsService(store).WithEnv(os.Getenv)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	httpClient := &http.Client{Timeout: httpTimeout}
	generators := &generatorCache{}
	defer generators.Close()

	builder := engineBuilder(ctx, httpClient, generators, prompts)
	session := services.NewSession(settingsService, builder)

	chatGen, err := ai.CreateGenerator(ctx, &settings.Generator)
	if err != nil {
		logger.Warn("chat: %v", err)
	}
	if chatGen != nil {
		defer chatGen.Close()
	}
	chat := services.NewChatService(chatGen, settings.Generator.ChatModel)
	chat.SetPromptStore(prompts)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Session:  session,
		Chat:     chat,
		Radar:    services.NewRadarService(settings.RadarSurnames),
		Settings: settingsService,
		GeneratorCheck: func(ctx context.Context) error {
			s, err := settingsService.Get()
			if err != nil {
				return err
			}
			if !s.Generator.IsConfigured() {
				return domain.ErrGeneratorUnavailable
			}
			return ai.ValidateGeneratorConfig(ctx, &s.Generator)
		},
	})

	if fileStore != nil {
		watcher, err := file.NewWatcher(settingsService.Path())
		if err != nil {
			logger.Warn("config watch: %v", err)
		} else {
			defer watcher.Close()
			go watcher.Run(ctx)
			cli.SetTUIConfig(&cli.TUIConfig{
				Reload:        fileStore.Load,
				ConfigChanges: watcher.Changes(),
			})
		}
	}

	return cli.Execute(ctx)
}

// engineBuilder assembles a fresh engine for each scan from the settings
// in force when it starts.
func engineBuilder(
	ctx context.Context,
	httpClient *http.Client,
	generators *generatorCache,
	prompts driven.PromptStore,
) services.EngineBuilder {
	return func(settings *domain.Settings, mode domain.Mode) (*services.Engine, error) {
		excl := &settings.Exclusions
		cfg := services.EngineConfig{
			Registry: normalisers.NewDefaultRegistry(),
			Delay:    settings.InterCallDelay,
		}

		if settings.Graph.Enabled {
			var opts []wikidata.Option
			if settings.Graph.QueryFile != "" {
				q, err := wikidata.LoadQuery(settings.Graph.QueryFile)
				if err != nil {
					return nil, err
				}
				opts = append(opts, wikidata.WithQuery(q))
			}
			client := wikidata.NewClient(settings.Graph.Endpoint, httpClient)
			cfg.Graph = wikidata.New(client, excl, opts...)
		}

		switch mode {
		case domain.ModeGenerative:
			gen, err := generators.Get(ctx, settings.Generator)
			if err != nil {
				return nil, err
			}
			src := generative.New(gen, excl, settings.Generator.Model)
			src.SetPromptStore(prompts)
			cfg.Text = src
		default:
			limiter := wikipedia.NewRateLimiter(settings.Text.RequestsPerSecond)
			client := wikipedia.NewClient(settings.Text.Endpoint, limiter, httpClient)
			cfg.Text = wikipedia.New(client, excl, settings.Text.Languages, settings.Text.Limit)
		}

		return services.NewEngine(cfg)
	}
}

// generatorCache keeps one generator alive across scans and rebuilds it
// when the generator settings change.
type generatorCache struct {
	mu       sync.Mutex
	settings domain.GeneratorSettings
	gen      driven.Generator
}

// Get returns a generator for settings.
func (c *generatorCache) Get(ctx context.Context, settings domain.GeneratorSettings) (driven.Generator, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != nil && c.settings == settings {
		return c.gen, nil
	}
	if c.gen != nil {
		_ = c.gen.Close()
		c.gen = nil
	}

	gen, err := ai.CreateGenerator(ctx, &settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrGeneratorUnavailable, err)
	}
	if gen == nil {
		return nil, fmt.Errorf("%w: run 'titan config api-key'", domain.ErrGeneratorUnavailable)
	}
	c.gen = gen
	c.settings = settings
	return gen, nil
}

// Close releases the cached generator.
func (c *generatorCache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != nil {
		_ = c.gen.Close()
		c.gen = nil
	}
}
