// Package models contains shared data models used across the FinSight codebase.
package models

import "context"

// Chat roles understood by OpenAI-compatible endpoints.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a conversation sent to the model.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Prompt is a fully rendered model prompt. Construction is deterministic:
// given identical task input, the builder produces identical prompts.
// Temperature and MaxTokens are fixed per task type, not caller-configurable.
type Prompt struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// ChatRequest carries a prompt plus optional prior conversation turns.
// History is only populated for streaming advice.
type ChatRequest struct {
	Prompt  Prompt
	History []ChatMessage
}

// ChatStream is a pull-based, single-pass sequence of text deltas.
// Recv returns io.EOF when the model is done. Deltas may be empty;
// filtering is the consumer's concern. Close releases the underlying
// connection and is safe to call after early termination.
type ChatStream interface {
	Recv() (string, error)
	Close() error
}

// ChatClient is the model invocation interface. Never call a concrete
// SDK client directly — always inject this interface.
//
// Implementations are thin transports: no retries, no error translation.
// Failures propagate unmodified; classification happens one layer up.
type ChatClient interface {
	// Complete issues a non-streaming chat completion and returns the
	// first choice's message content.
	Complete(ctx context.Context, req ChatRequest) (string, error)
	// Stream issues a streaming chat completion.
	Stream(ctx context.Context, req ChatRequest) (ChatStream, error)
	// Name returns the client identifier (e.g., "openai", "mock").
	Name() string
}
