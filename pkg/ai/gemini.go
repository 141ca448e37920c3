package ai

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/johnquangdev/video-assistant/pkg/config"
)

// GeminiClient generates text with the Gemini API
type GeminiClient struct {
	client *genai.Client
	model  string
	genCfg *genai.GenerateContentConfig
}

// NewGeminiClient creates an authenticated Gemini client
func NewGeminiClient(ctx context.Context, cfg *config.LLMConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiClient{
		client: client,
		model:  model,
		genCfg: buildGenerateConfig(cfg),
	}, nil
}

func buildGenerateConfig(cfg *config.LLMConfig) *genai.GenerateContentConfig {
	if cfg.Temperature == 0 && cfg.MaxTokens == 0 {
		return nil
	}
	gc := &genai.GenerateContentConfig{}
	if cfg.Temperature != 0 {
		gc.Temperature = genai.Ptr(float32(cfg.Temperature))
	}
	if cfg.MaxTokens > 0 {
		gc.MaxOutputTokens = int32(cfg.MaxTokens)
	}
	return gc
}

// Generate sends a single-turn prompt and returns the joined candidate text
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), g.genCfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return candidateText(result)
}

func candidateText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text += part.Text
		}
	}
	return text, nil
}
