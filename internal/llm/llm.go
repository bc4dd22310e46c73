package llm

import (
	"context"
	"fmt"
	"strings"
)

// Client answers a multiple-choice question with free text.
type Client interface {
	Answer(ctx context.Context, question string, options []string) (string, error)
}

const systemPrompt = "You are a helpful and precise academic assistant."

// BuildPrompt formats the question and its options for the model.
func BuildPrompt(question string, options []string) string {
	lines := make([]string, len(options))
	for i, opt := range options {
		lines[i] = "- " + opt
	}
	return fmt.Sprintf(`You are an academic assistant. Analyze the following question and select the correct option from the provided list.

Question: %s

Options:
%s

Provide ONLY the content of the correct option. Do not explain.
`, question, strings.Join(lines, "\n"))
}
