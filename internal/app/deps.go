package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"smart-answer/internal/config"
	"smart-answer/internal/llm"
	"smart-answer/internal/logger"
	"smart-answer/internal/solver"
)

// Deps bundles the runtime dependencies of the service.
type Deps struct {
	Config config.Config
	Log    *slog.Logger
	Solver *solver.Service
}

// Build loads env, config, and shared components.
func Build() (Deps, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Deps{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	llmClient, err := BuildLLM(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize LLM: %w", err)
	}
	return Deps{
		Config: cfg,
		Log:    log,
		Solver: solver.New(llmClient, log),
	}, nil
}

// BuildLLM returns the configured completion client. A missing OpenAI key is
// not fatal here: it yields a nil client so only solve requests fail.
func BuildLLM(cfg config.Config, log *slog.Logger) (llm.Client, error) {
	timeout := time.Duration(cfg.LLMTimeoutSeconds) * time.Second
	switch cfg.LLMProvider {
	case "openai":
		if cfg.OpenAIKey == "" {
			log.Warn("OPENAI_API_KEY is not set; solve requests will fail")
			return nil, nil
		}
		client, err := llm.NewOpenAIClient(cfg.OpenAIKey, openai.ChatModel(cfg.LLMModel), timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
		}
		log.Info("using OpenAI LLM client", "model", cfg.LLMModel)
		return client, nil
	case "ollama":
		client, err := llm.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel, timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Ollama client: %w", err)
		}
		log.Info("using Ollama LLM client", "model", cfg.OllamaModel, "url", cfg.OllamaURL)
		return client, nil
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER: %s (valid options: openai, ollama)", cfg.LLMProvider)
	}
}
