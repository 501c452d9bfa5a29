// Package llm wraps the OpenAI-compatible chat completion API behind a small
// interface so the agents and pipeline can be tested without the network.
// A base URL override points the same client at a local Ollama server.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrEmptyResponse is returned when the model answers with no content.
var ErrEmptyResponse = errors.New("llm returned an empty response")

// Client is the completion capability the agents depend on.
type Client interface {
	// Complete sends a system + user message pair and returns the response
	// text verbatim. Callers own any cleanup of the untrusted output.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// OpenAIClient implements Client over github.com/sashabaranov/go-openai.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// Options configures an OpenAIClient.
type Options struct {
	APIKey  string
	BaseURL string // empty means api.openai.com; "http://localhost:11434/v1" for Ollama
	Model   string
	Timeout time.Duration // per-call deadline; zero disables the bound
}

// NewOpenAIClient builds a chat client for a remote OpenAI or local Ollama
// endpoint.
func NewOpenAIClient(opts Options) *OpenAIClient {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	return &OpenAIClient{
		client:  openai.NewClientWithConfig(cfg),
		model:   opts.Model,
		timeout: opts.Timeout,
	}
}

// Complete performs one chat completion call. A timeout or transport failure
// is a hard error for the current attempt; there is no internal retry, the
// pipeline's single fix pass is the only permitted second call.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
			Temperature: 0.2, // low temperature for predictable code generation
		},
	)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("[llm] usage for empty response: %+v", resp.Usage)
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}
