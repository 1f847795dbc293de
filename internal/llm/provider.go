package llm

import (
	"context"
)

// Provider defines the interface for text-generation providers.
// The assembler treats the provider as opaque: a single-turn prompt in,
// generated text out. Slowness and failure are expected; callers bound
// the call with a context deadline and never retry automatically.
type Provider interface {
	// Complete performs one non-streaming completion request.
	Complete(ctx context.Context, request *CompletionRequest) (*CompletionResponse, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string
}

// CompletionRequest contains all parameters for a single completion
type CompletionRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	// MaxTokens bounds the output length
	MaxTokens int64
	// Temperature is kept low to favour format-adherent output
	Temperature float64
}

// CompletionResponse contains the result from the provider
type CompletionResponse struct {
	// Text is the first choice's message content, verbatim
	Text  string
	Usage Usage
}

// Usage holds token accounting reported by the provider
type Usage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}
