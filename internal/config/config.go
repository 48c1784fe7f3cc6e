package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration, loaded from the environment.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	LLM      LLMConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	DSN string
}

// LLMConfig configures the Gemini-backed extraction client. APIKey has no
// default: a missing key is a startup failure, not a first-request surprise.
type LLMConfig struct {
	APIKey            string
	Model             string
	RequestsPerMinute float64
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			DSN: getEnv("DATABASE_URL",
				"host=localhost user=postgres password=postgres dbname=jobscout port=5432 sslmode=disable"),
		},
		LLM: LLMConfig{
			APIKey:            os.Getenv("GEMINI_API_KEY"),
			Model:             getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			RequestsPerMinute: getEnvFloat("GEMINI_REQUESTS_PER_MINUTE", 60),
		},
	}

	if cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("config: GEMINI_API_KEY is required")
	}
	if cfg.LLM.RequestsPerMinute <= 0 {
		return nil, fmt.Errorf("config: GEMINI_REQUESTS_PER_MINUTE must be positive")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
