// Package config loads configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime settings. Every integration is optional: without
// DATABASE_URL the session lives in memory, without OPENAI_API_KEY replies
// come from the canned pools, without GOOGLE_API_KEY nothing is recalled.
type Config struct {
	DatabaseURL         string  `env:"DATABASE_URL"`
	OpenAIAPIKey        string  `env:"OPENAI_API_KEY"`
	GoogleAPIKey        string  `env:"GOOGLE_API_KEY"`
	LLMModel            string  `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	EmbeddingModel      string  `env:"EMBEDDING_MODEL" envDefault:"text-embedding-004"`
	Locale              string  `env:"LOCALE" envDefault:"es"`
	Temperature         float64 `env:"TEMPERATURE" envDefault:"0.25"`
	TopK                int     `env:"TOP_K" envDefault:"5"`
	SimilarityThreshold float64 `env:"SIMILARITY_THRESHOLD" envDefault:"0.7"`
}

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.TopK <= 0 {
		return Config{}, fmt.Errorf("TOP_K must be positive, got %d", cfg.TopK)
	}
	if cfg.SimilarityThreshold < 0 || cfg.SimilarityThreshold > 1 {
		return Config{}, fmt.Errorf("SIMILARITY_THRESHOLD must be in [0,1], got %v", cfg.SimilarityThreshold)
	}
	return cfg, nil
}
