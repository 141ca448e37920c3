package ai

import (
	"context"
	"fmt"

	"github.com/johnquangdev/video-assistant/pkg/config"
)

// Generator turns a prompt into model text. Implementations never retry.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// NewGenerator builds the configured provider client, wrapped with a rate limiter when one is set.
// The returned generator is created once at startup and shared by all requests.
func NewGenerator(ctx context.Context, cfg *config.LLMConfig) (Generator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("llm config is nil")
	}

	var (
		gen Generator
		err error
	)
	switch cfg.Provider {
	case config.ProviderGemini:
		gen, err = NewGeminiClient(ctx, cfg)
	case config.ProviderOpenAI:
		gen, err = NewOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	if cfg.RateLimit > 0 {
		gen = NewRateLimited(gen, cfg.RateLimit, cfg.RateBurst)
	}
	return gen, nil
}
