// Package llm wraps the hosted chat-completion endpoint that writes the
// procrastination messages. The rest of the app only sees Generator.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrUpstream wraps any failure of the inference endpoint so callers can
// degrade instead of failing the whole request.
var ErrUpstream = errors.New("inference endpoint unavailable")

// Generator produces one completion for one prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client calls an OpenAI-compatible chat-completion endpoint (the Hugging
// Face router by default): one user message, bounded tokens, non-streaming.
type Client struct {
	api       *openai.Client
	model     string
	maxTokens int
}

// Options configures the inference client.
type Options struct {
	Token     string
	BaseURL   string
	Model     string
	Timeout   time.Duration
	MaxTokens int
}

// NewClient builds the chat-completion client.
func NewClient(opts Options) *Client {
	cfg := openai.DefaultConfig(opts.Token)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: opts.Timeout}
	return &Client{
		api:       openai.NewClientWithConfig(cfg),
		model:     opts.Model,
		maxTokens: opts.MaxTokens,
	}
}

// Generate submits the prompt and returns the first choice's text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrUpstream)
	}
	return resp.Choices[0].Message.Content, nil
}
