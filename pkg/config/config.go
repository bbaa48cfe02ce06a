package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server        ServerConfig
	Parser        ParserConfig
	Gemini        GeminiConfig
	Observability ObservabilityConfig
}

type ServerConfig struct {
	Host               string
	Port               int
	RateLimitPerSecond int
	RateLimitBurst     int
}

type ParserConfig struct {
	// AIFallbackThreshold is the local overall confidence below which the
	// remote augmentation runs (when the caller opted in).
	AIFallbackThreshold float64
	// RemoteTimeout bounds a single remote augmentation call.
	RemoteTimeout   time.Duration
	DefaultCurrency string
	// Optional CSV overrides prepended to the built-in tables.
	MerchantsCSVPath string
	KeywordsCSVPath  string
	// ReloadSchedule is a cron expression for re-reading the CSV overrides.
	// Empty disables the scheduler.
	ReloadSchedule string
}

// GeminiConfig configures the remote augmentation backend. An empty APIKey
// disables augmentation; it is not a startup error.
type GeminiConfig struct {
	APIKey string
	Model  string
}

type ObservabilityConfig struct {
	MetricsEnabled bool
}

// Load reads configuration from environment variables. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:               getEnv("SERVER_HOST", "localhost"),
			Port:               getEnvAsInt("SERVER_PORT", 8080),
			RateLimitPerSecond: getEnvAsInt("SERVER_RATE_LIMIT_PER_SECOND", 100),
			RateLimitBurst:     getEnvAsInt("SERVER_RATE_LIMIT_BURST", 200),
		},
		Parser: ParserConfig{
			AIFallbackThreshold: getEnvAsFloat("PARSER_AI_FALLBACK_THRESHOLD", 0.5),
			RemoteTimeout:       getEnvAsDuration("PARSER_REMOTE_TIMEOUT", 8*time.Second),
			DefaultCurrency:     getEnv("PARSER_DEFAULT_CURRENCY", "USD"),
			MerchantsCSVPath:    getEnv("PARSER_MERCHANTS_CSV", ""),
			KeywordsCSVPath:     getEnv("PARSER_KEYWORDS_CSV", ""),
			ReloadSchedule:      getEnv("PARSER_RELOAD_SCHEDULE", ""),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", ""),
		},
		Observability: ObservabilityConfig{
			MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
