// Package genai turns natural-language prompts into structured domain
// objects by calling a generative text model and parsing its JSON output.
package genai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client abstracts the chat-completions call for testability.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

const (
	defaultModel   = "gemini-2.0-flash-001"
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

	temperature     = 0.2
	topP            = 0.95
	topK            = 40
	maxOutputTokens = 2048
)

var safetySettings = []map[string]string{
	{"category": "HARM_CATEGORY_HATE_SPEECH", "threshold": "BLOCK_MEDIUM_AND_ABOVE"},
	{"category": "HARM_CATEGORY_HARASSMENT", "threshold": "BLOCK_MEDIUM_AND_ABOVE"},
}

type geminiClient struct {
	client openai.Client
	model  string
}

// NewGeminiClient builds a Client against Gemini's OpenAI-compatible
// endpoint. Empty model/baseURL select the defaults.
func NewGeminiClient(apiKey, model, baseURL string) Client {
	if model == "" {
		model = defaultModel
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	client := openai.NewClient(option.WithAPIKey(apiKey), option.WithBaseURL(baseURL))
	return &geminiClient{client: client, model: model}
}

func (c *geminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
		Temperature: openai.Float(temperature),
		TopP:        openai.Float(topP),
		MaxTokens:   openai.Int(maxOutputTokens),
	},
		// The OpenAI-compatible surface has no top-k parameter; Gemini
		// accepts it, and the safety settings, as extra body fields.
		option.WithJSONSet("top_k", topK),
		option.WithJSONSet("extra_body.google.safety_settings", safetySettings),
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no choices in model response")
	}
	return completion.Choices[0].Message.Content, nil
}
