// Package mock provides a ChatClient for testing.
package mock

import (
	"context"
	"io"

	"github.com/finsight/finsight/pkg/models"
)

// Client satisfies models.ChatClient for testing.
type Client struct {
	Name_        string
	CompleteFunc func(ctx context.Context, req models.ChatRequest) (string, error)
	StreamFunc   func(ctx context.Context, req models.ChatRequest) (models.ChatStream, error)
}

func (c *Client) Name() string { return c.Name_ }

func (c *Client) Complete(ctx context.Context, req models.ChatRequest) (string, error) {
	if c.CompleteFunc != nil {
		return c.CompleteFunc(ctx, req)
	}
	return "", nil
}

func (c *Client) Stream(ctx context.Context, req models.ChatRequest) (models.ChatStream, error) {
	if c.StreamFunc != nil {
		return c.StreamFunc(ctx, req)
	}
	return NewStream(), nil
}

// NewClient returns a Client with sensible canned responses.
func NewClient() *Client {
	return &Client{
		Name_: "mock",
		CompleteFunc: func(_ context.Context, _ models.ChatRequest) (string, error) {
			return "Réponse simulée pour les tests.", nil
		},
		StreamFunc: func(_ context.Context, _ models.ChatRequest) (models.ChatStream, error) {
			return NewStream("Réponse ", "simulée."), nil
		},
	}
}

// NewFailingClient returns a Client whose calls always return err.
func NewFailingClient(err error) *Client {
	return &Client{
		Name_: "mock-failing",
		CompleteFunc: func(_ context.Context, _ models.ChatRequest) (string, error) {
			return "", err
		},
		StreamFunc: func(_ context.Context, _ models.ChatRequest) (models.ChatStream, error) {
			return nil, err
		},
	}
}

// Stream replays a fixed sequence of deltas, then io.EOF (or Err when set).
type Stream struct {
	deltas []string
	idx    int

	// Err, when non-nil, is returned after the deltas instead of io.EOF,
	// simulating a mid-stream transport failure.
	Err error

	Closed bool
}

// NewStream builds a scripted stream from the given deltas.
func NewStream(deltas ...string) *Stream {
	return &Stream{deltas: deltas}
}

func (s *Stream) Recv() (string, error) {
	if s.idx >= len(s.deltas) {
		if s.Err != nil {
			return "", s.Err
		}
		return "", io.EOF
	}
	delta := s.deltas[s.idx]
	s.idx++
	return delta, nil
}

func (s *Stream) Close() error {
	s.Closed = true
	return nil
}

// Compile-time checks.
var (
	_ models.ChatClient = (*Client)(nil)
	_ models.ChatStream = (*Stream)(nil)
)
