package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "test-key", cfg.LLM.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
	assert.Zero(t, cfg.LLM.Temperature, "model default temperature unless configured")
	assert.Equal(t, 80.0, cfg.Transcript.MinGap)
	assert.Equal(t, 12000, cfg.Transcript.ChunkSize)
	assert.Equal(t, 1000, cfg.Transcript.ChunkOverlap)
	assert.Equal(t, 20000, cfg.Transcript.ShortSummaryMaxChars)
	assert.Equal(t, []string{"en"}, cfg.Transcript.Languages)
	assert.Equal(t, 0, cfg.Source.MaxRetries)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
}

func TestLoad_GoogleAPIKeyFallback(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "google-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "google-key", cfg.LLM.APIKey)
}

func TestLoad_MissingCredential(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoad_ThresholdOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("TRANSCRIPT_MIN_GAP", "30")
	t.Setenv("SUMMARY_CHUNK_SIZE", "500")
	t.Setenv("SUMMARY_CHUNK_OVERLAP", "50")
	t.Setenv("TRANSCRIPT_LANGUAGES", "de,en")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30.0, cfg.Transcript.MinGap)
	assert.Equal(t, 500, cfg.Transcript.ChunkSize)
	assert.Equal(t, 50, cfg.Transcript.ChunkOverlap)
	assert.Equal(t, []string{"de", "en"}, cfg.Transcript.Languages)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:     ServerConfig{Environment: "development"},
			Session:    SessionConfig{Secret: defaultSessionSecret},
			LLM:        LLMConfig{Provider: ProviderGemini, APIKey: "k"},
			Transcript: TranscriptConfig{ChunkSize: 12000, ChunkOverlap: 1000, ShortSummaryMaxChars: 20000},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "overlap equals size", mutate: func(c *Config) { c.Transcript.ChunkOverlap = 12000 }, wantErr: "SUMMARY_CHUNK_OVERLAP"},
		{name: "zero chunk size", mutate: func(c *Config) { c.Transcript.ChunkSize = 0 }, wantErr: "SUMMARY_CHUNK_SIZE"},
		{name: "unknown provider", mutate: func(c *Config) { c.LLM.Provider = "bard" }, wantErr: "LLM_PROVIDER"},
		{name: "openai without model", mutate: func(c *Config) { c.LLM.Provider = ProviderOpenAI }, wantErr: "LLM_MODEL"},
		{name: "default secret in production", mutate: func(c *Config) { c.Server.Environment = "production" }, wantErr: "SESSION_SECRET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
