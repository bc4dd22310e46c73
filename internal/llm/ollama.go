package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// OllamaClient answers through a local Ollama server.
type OllamaClient struct {
	llm *ollama.LLM
}

var _ Client = (*OllamaClient)(nil)

// NewOllamaClient connects to serverURL using model.
func NewOllamaClient(serverURL, model string, timeout time.Duration) (*OllamaClient, error) {
	if model == "" {
		return nil, fmt.Errorf("model required")
	}
	if timeout <= 0 {
		timeout = defaultChatTimeout
	}
	l, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(model),
		ollama.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}
	return &OllamaClient{llm: l}, nil
}

func (c *OllamaClient) Answer(ctx context.Context, question string, options []string) (string, error) {
	if c == nil || c.llm == nil {
		return "", fmt.Errorf("nil ollama client")
	}
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, BuildPrompt(question, options)),
	}
	resp, err := c.llm.GenerateContent(ctx, messages, llms.WithTemperature(defaultChatTemperature))
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("ollama: no choices returned")
	}
	content := strings.TrimSpace(resp.Choices[0].Content)
	if content == "" {
		return "", fmt.Errorf("ollama: empty completion")
	}
	return content, nil
}
