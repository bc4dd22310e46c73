package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// Config holds runtime configuration read from the environment.
type Config struct {
	// Server
	Port                  int    `env:"PORT" envDefault:"8000"`
	LogLevel              string `env:"LOG_LEVEL" envDefault:"info"`
	RequestTimeoutSeconds int    `env:"REQUEST_TIMEOUT_SECONDS" envDefault:"60"`

	// Request limits
	MaxBodyBytes    int64 `env:"MAX_BODY_BYTES" envDefault:"65536"`
	MaxOptions      int   `env:"MAX_OPTIONS" envDefault:"50"`
	MaxOptionLength int   `env:"MAX_OPTION_LENGTH" envDefault:"1000"` // characters per option

	// LLM
	LLMProvider       string `env:"LLM_PROVIDER" envDefault:"openai"` // "openai" or "ollama" (local server, no key)
	OpenAIKey         string `env:"OPENAI_API_KEY"`
	LLMModel          string `env:"LLM_MODEL" envDefault:"gpt-4o"`
	OllamaURL         string `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OllamaModel       string `env:"OLLAMA_MODEL" envDefault:"llama3.2"`
	LLMTimeoutSeconds int    `env:"LLM_TIMEOUT_SECONDS" envDefault:"30"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
