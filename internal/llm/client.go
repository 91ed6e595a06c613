// Package llm wraps a single OpenAI-compatible chat-completions endpoint.
package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"github.com/finsight/finsight/internal/config"
	"github.com/finsight/finsight/pkg/models"
)

// ErrNoChoices is returned when the endpoint answers without any choice.
var ErrNoChoices = errors.New("model response contained no choices")

// Client is a thin pass-through transport. It performs no retries and no
// error translation: transport and API failures propagate unmodified, and
// classification happens one layer up in the advisor.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient builds a client for the configured endpoint. A missing or
// invalid API key is not checked here: it surfaces as an HTTP 401 on the
// first call and flows through the normal classification path.
func NewClient(cfg config.AIConfig) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &Client{api: openai.NewClientWithConfig(clientCfg), model: cfg.Model}
}

func (c *Client) Name() string { return "openai" }

// Complete issues a non-streaming chat completion and returns the first
// choice's message content.
func (c *Client) Complete(ctx context.Context, req models.ChatRequest) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, c.buildRequest(req, false))
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

// Stream issues a streaming chat completion. The returned stream is
// pull-based; stopping early and calling Close releases the connection.
func (c *Client) Stream(ctx context.Context, req models.ChatRequest) (models.ChatStream, error) {
	s, err := c.api.CreateChatCompletionStream(ctx, c.buildRequest(req, true))
	if err != nil {
		return nil, err
	}
	return &chatStream{inner: s}, nil
}

func (c *Client) buildRequest(req models.ChatRequest, stream bool) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.History)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: req.Prompt.System,
	})
	for _, m := range req.History {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt.User,
	})

	return openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: req.Prompt.Temperature,
		MaxTokens:   req.Prompt.MaxTokens,
		Stream:      stream,
	}
}

type chatStream struct {
	inner *openai.ChatCompletionStream
}

func (s *chatStream) Recv() (string, error) {
	resp, err := s.inner.Recv()
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Delta.Content, nil
}

func (s *chatStream) Close() error { return s.inner.Close() }

var _ models.ChatClient = (*Client)(nil)
