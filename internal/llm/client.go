// Package llm wraps the Groq OpenAI-compatible chat completion API behind
// a minimal text-in/text-out interface. Callers never see SDK types, so
// tests can substitute a stub client.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Common client errors.
var (
	ErrUnavailable  = errors.New("llm: completion service unavailable")
	ErrEmptyContent = errors.New("llm: completion returned no content")
)

// Client is an opaque text-completion function: a system instruction and a
// user prompt in, free text out. Any failure is returned as an error; the
// caller decides what degradation looks like.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// GroqClient implements Client against Groq's OpenAI-compatible endpoint.
// Any endpoint speaking the same protocol works via BaseURL.
type GroqClient struct {
	client *openai.Client
	model  string
}

// Options configures a GroqClient.
type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	// Timeout bounds each completion call at the HTTP transport.
	Timeout time.Duration
}

// NewGroqClient creates a completion client for the configured endpoint.
func NewGroqClient(opts Options) (*GroqClient, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("llm: API key is required")
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("llm: model is required")
	}

	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.Timeout > 0 {
		cfg.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}

	return &GroqClient{
		client: openai.NewClientWithConfig(cfg),
		model:  opts.Model,
	}, nil
}

// Complete sends a system+user prompt pair and returns the raw completion
// text. Transport failures, API errors and empty completions all come back
// as errors wrapping ErrUnavailable or ErrEmptyContent.
func (c *GroqClient) Complete(ctx context.Context, system, user string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyContent
	}

	return resp.Choices[0].Message.Content, nil
}

// ModelID returns the configured model identifier.
func (c *GroqClient) ModelID() string {
	return c.model
}
