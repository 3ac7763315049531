package config

import (
	"os"
)

type Config struct {
	// Server
	Port           string
	AllowedOrigins string

	// Document store: postgres://... selects the pgx store, "memory" the
	// in-process store, anything else is a sqlite file path.
	DatabaseURL string

	// Anthropic
	AnthropicAPIKey  string
	AnthropicBaseURL string
	AnthropicModel   string

	// Environment
	Environment string
}

func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		AllowedOrigins:   getEnv("ALLOWED_ORIGINS", "*"),
		DatabaseURL:      getEnv("DATABASE_URL", "caltrak.db"),
		AnthropicAPIKey:  getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicBaseURL: getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
		AnthropicModel:   getEnv("ANTHROPIC_MODEL", "claude-3-haiku-20240307"),
		Environment:      getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
