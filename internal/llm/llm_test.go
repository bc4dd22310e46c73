package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("What is the capital of France?", []string{"Paris", "London"})

	assert.Contains(t, prompt, "Question: What is the capital of France?")
	assert.Contains(t, prompt, "Options:\n- Paris\n- London\n")
	assert.Contains(t, prompt, "Provide ONLY the content of the correct option. Do not explain.")
}

func TestBuildPromptNoOptions(t *testing.T) {
	prompt := BuildPrompt("Q?", nil)
	assert.Contains(t, prompt, "Options:\n\n")
}

func TestNewOpenAIClientRequiresKey(t *testing.T) {
	_, err := NewOpenAIClient("", "", 0)
	require.Error(t, err)
}

func chatCompletionBody(content string) string {
	body, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 0,
		"model":   "gpt-4o",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	})
	return string(body)
}

func TestOpenAIClientAnswer(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chatCompletionBody("  Paris \n"))
	}))
	defer srv.Close()

	client, err := NewOpenAIClient("test-key", "", time.Second, option.WithBaseURL(srv.URL))
	require.NoError(t, err)

	answer, err := client.Answer(context.Background(), "Capital of France?", []string{"Paris", "Berlin"})
	require.NoError(t, err)
	assert.Equal(t, "Paris", answer)

	assert.Equal(t, "gpt-4o", gotBody["model"])
	assert.Equal(t, 0.0, gotBody["temperature"])
	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Contains(t, messages[1].(map[string]any)["content"], "- Berlin")
}

func TestOpenAIClientAnswerErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"error":{"message":"boom","type":"server_error"}}`)
			},
		},
		{
			name: "empty content",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, chatCompletionBody("   "))
			},
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, `{"id":"x","object":"chat.completion","created":0,"model":"gpt-4o","choices":[]}`)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client, err := NewOpenAIClient("test-key", "gpt-4o", time.Second, option.WithBaseURL(srv.URL))
			require.NoError(t, err)

			_, err = client.Answer(context.Background(), "Q?", []string{"A"})
			assert.Error(t, err)
		})
	}
}

func TestNewOllamaClientRequiresModel(t *testing.T) {
	_, err := NewOllamaClient("http://localhost:11434", "", 0)
	require.Error(t, err)
}

func TestOllamaClientAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"model":"llama3","created_at":"2024-01-01T00:00:00Z","message":{"role":"assistant","content":" London "},"done":true,"done_reason":"stop"}`)
	}))
	defer srv.Close()

	client, err := NewOllamaClient(srv.URL, "llama3", time.Second)
	require.NoError(t, err)

	answer, err := client.Answer(context.Background(), "Capital of England?", []string{"Paris", "London"})
	require.NoError(t, err)
	assert.Equal(t, "London", answer)
}
