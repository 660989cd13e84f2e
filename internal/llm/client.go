package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Classifier is the external text-classification capability. Implementations
// return the raw response text; callers apply ExtractArray rather than
// assuming clean JSON.
type Classifier interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// DefaultModel is used when the config does not name one.
const DefaultModel = "claude-sonnet-4-5-20250929"

// AnthropicClassifier calls the Anthropic Messages API.
type AnthropicClassifier struct {
	client  anthropic.Client
	model   string
	timeout time.Duration
}

// NewAnthropic creates a classifier from an API key. A zero timeout defaults
// to 60s; the HTTP call either succeeds within it or the caller falls back.
func NewAnthropic(apiKey, model string, timeout time.Duration) (*AnthropicClassifier, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is not set")
	}
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &AnthropicClassifier{
		client:  anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		timeout: timeout,
	}, nil
}

// Complete sends one prompt and concatenates the text blocks of the reply.
func (c *AnthropicClassifier) Complete(ctx context.Context, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: 4096,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("classifier call failed: %w", err)
	}
	if len(message.Content) == 0 {
		return "", fmt.Errorf("empty response from classifier")
	}

	var text string
	for _, block := range message.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	return text, nil
}
