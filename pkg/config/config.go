package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	defaultSessionSecret = "change-me-session-secret"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Session    SessionConfig
	LLM        LLMConfig
	Transcript TranscriptConfig
	Source     SourceConfig
	Redis      RedisConfig
	Log        LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// SessionConfig holds the signed session cookie settings
type SessionConfig struct {
	Secret     string
	TTL        time.Duration
	CookieName string
	Secure     bool
}

// LLMConfig holds text generation settings.
// APIKey is a secret and must never be logged.
type LLMConfig struct {
	Provider    string        `envconfig:"LLM_PROVIDER" default:"gemini"`
	APIKey      string        `envconfig:"LLM_API_KEY"`
	BaseURL     string        `envconfig:"LLM_BASE_URL" default:"https://api.openai.com"`
	Model       string        `envconfig:"LLM_MODEL"`
	Timeout     time.Duration `envconfig:"LLM_TIMEOUT" default:"120s"`
	RateLimit   float64       `envconfig:"LLM_RATE_LIMIT" default:"0"`
	RateBurst   int           `envconfig:"LLM_RATE_BURST" default:"1"`
	Temperature float64       `envconfig:"LLM_TEMPERATURE" default:"0"`
	MaxTokens   int           `envconfig:"LLM_MAX_TOKENS" default:"0"`
}

// TranscriptConfig holds paragraph and summary thresholds
type TranscriptConfig struct {
	MinGap               float64  `envconfig:"TRANSCRIPT_MIN_GAP" default:"80"`
	ChunkSize            int      `envconfig:"SUMMARY_CHUNK_SIZE" default:"12000"`
	ChunkOverlap         int      `envconfig:"SUMMARY_CHUNK_OVERLAP" default:"1000"`
	ShortSummaryMaxChars int      `envconfig:"SHORT_SUMMARY_MAX_CHARS" default:"20000"`
	Languages            []string `envconfig:"TRANSCRIPT_LANGUAGES" default:"en"`
}

// SourceConfig holds caption source HTTP settings
type SourceConfig struct {
	BaseURL    string        `envconfig:"SOURCE_BASE_URL" default:"https://www.youtube.com"`
	Timeout    time.Duration `envconfig:"SOURCE_TIMEOUT" default:"30s"`
	MaxRetries int           `envconfig:"SOURCE_MAX_RETRIES" default:"0"`
}

// RedisConfig holds Redis configuration. An empty URL disables the L2 cache.
type RedisConfig struct {
	URL      string
	CacheTTL time.Duration
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  getEnvAsSlice("ALLOWED_ORIGINS", "http://localhost:8080"),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", defaultSessionSecret),
			TTL:        getEnvAsDuration("SESSION_TTL", "24h"),
			CookieName: getEnv("SESSION_COOKIE", "va_session"),
			Secure:     getEnvAsBool("SESSION_COOKIE_SECURE", false),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			CacheTTL: getEnvAsDuration("CACHE_TTL", "1h"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := envconfig.Process("", &config.LLM); err != nil {
		return nil, fmt.Errorf("failed to load LLM config: %w", err)
	}
	if err := envconfig.Process("", &config.Transcript); err != nil {
		return nil, fmt.Errorf("failed to load transcript config: %w", err)
	}
	if err := envconfig.Process("", &config.Source); err != nil {
		return nil, fmt.Errorf("failed to load source config: %w", err)
	}

	config.applyProviderDefaults()

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyProviderDefaults fills the credential and model from provider specific variables
func (c *Config) applyProviderDefaults() {
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	if c.LLM.Provider != ProviderGemini {
		return
	}
	if c.LLM.APIKey == "" {
		c.LLM.APIKey = getEnv("GEMINI_API_KEY", getEnv("GOOGLE_API_KEY", ""))
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gemini-2.5-flash"
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderGemini:
		if c.LLM.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required")
		}
	case ProviderOpenAI:
		if c.LLM.APIKey == "" {
			return fmt.Errorf("LLM_API_KEY is required")
		}
		if c.LLM.Model == "" {
			return fmt.Errorf("LLM_MODEL is required for provider %q", ProviderOpenAI)
		}
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q", c.LLM.Provider)
	}

	if c.Transcript.ChunkSize <= 0 {
		return fmt.Errorf("SUMMARY_CHUNK_SIZE must be positive")
	}
	if c.Transcript.ChunkOverlap < 0 || c.Transcript.ChunkOverlap >= c.Transcript.ChunkSize {
		return fmt.Errorf("SUMMARY_CHUNK_OVERLAP must be in [0, SUMMARY_CHUNK_SIZE)")
	}
	if c.Transcript.ShortSummaryMaxChars <= 0 {
		return fmt.Errorf("SHORT_SUMMARY_MAX_CHARS must be positive")
	}
	if c.Source.MaxRetries < 0 {
		return fmt.Errorf("SOURCE_MAX_RETRIES must not be negative")
	}
	if c.IsProduction() && c.Session.Secret == defaultSessionSecret {
		return fmt.Errorf("SESSION_SECRET must be set in production")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}

func getEnvAsSlice(key string, defaultValue string) []string {
	parts := strings.Split(getEnv(key, defaultValue), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
