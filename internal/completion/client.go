// Package completion sends a single system+user exchange to an
// OpenAI-compatible chat completion endpoint.
package completion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Request parameters are fixed per deployment.
const (
	Model       = openai.GPT4oMini
	Temperature = 0.2
	MaxTokens   = 1000
)

// ErrMalformedResponse is returned when the response has no usable first choice.
var ErrMalformedResponse = errors.New("malformed completion response")

// Client wraps the go-openai client.
type Client struct {
	api *openai.Client
}

// Option configures a Client.
type Option func(*openai.ClientConfig)

// WithBaseURL points the client at another OpenAI-compatible endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *openai.ClientConfig) {
		if baseURL != "" {
			c.BaseURL = baseURL
		}
	}
}

// New creates a client authenticated with apiKey.
func New(apiKey string, opts ...Option) *Client {
	config := openai.DefaultConfig(apiKey)
	for _, opt := range opts {
		opt(&config)
	}
	return &Client{api: openai.NewClientWithConfig(config)}
}

// Complete sends system and user as a two-message exchange and returns the
// trimmed content of the first choice.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, NewRequest(system, user))
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}
	return FirstChoiceContent(resp)
}

// NewRequest builds the chat completion request body.
func NewRequest(system, user string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	}
}

// FirstChoiceContent decodes choices[0].message.content. A missing choice or
// blank content is a decode failure.
func FirstChoiceContent(resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrMalformedResponse)
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: empty message content", ErrMalformedResponse)
	}
	return content, nil
}
