package message

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadgen-cli/pkg/anthropic"
	"github.com/sells-group/leadgen-cli/pkg/ollama"
)

// Generator produces free text from a prompt. Implementations wrap an
// external model API; a single request, no retry.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
}

// OllamaGenerator generates text via a local Ollama server.
type OllamaGenerator struct {
	client ollama.Client
	model  string
}

// NewOllamaGenerator wraps an Ollama client as a Generator.
func NewOllamaGenerator(client ollama.Client, model string) *OllamaGenerator {
	return &OllamaGenerator{client: client, model: model}
}

func (g *OllamaGenerator) Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	resp, err := g.client.ChatCompletion(ctx, ollama.ChatCompletionRequest{
		Model:       g.model,
		Messages:    []ollama.Message{{Role: "user", Content: prompt}},
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", eris.New("message: ollama returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// AnthropicGenerator generates text via the Anthropic Messages API.
type AnthropicGenerator struct {
	client anthropic.Client
	model  string
}

// NewAnthropicGenerator wraps an Anthropic client as a Generator.
func NewAnthropicGenerator(client anthropic.Client, model string) *AnthropicGenerator {
	return &AnthropicGenerator{client: client, model: model}
}

func (g *AnthropicGenerator) Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	resp, err := g.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       g.model,
		MaxTokens:   int64(maxTokens),
		Messages:    []anthropic.Message{{Role: "user", Content: prompt}},
		Temperature: &temperature,
	})
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", eris.New("message: anthropic returned empty content")
	}
	return text, nil
}
