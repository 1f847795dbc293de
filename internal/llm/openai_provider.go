package llm

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const providerNameOpenAI = "openai"

// OpenAIProvider implements the Provider interface using OpenAI's
// Chat Completions API
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIProvider{client: &client}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return providerNameOpenAI
}

// Complete implements non-streaming completion via Chat Completions
func (p *OpenAIProvider) Complete(ctx context.Context, request *CompletionRequest) (*CompletionResponse, error) {
	startTime := time.Now()

	transaction := sentry.StartTransaction(ctx, "openai.complete")
	defer transaction.Finish()
	transaction.SetTag("model", request.Model)
	transaction.SetTag("provider", providerNameOpenAI)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(request.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(request.SystemPrompt),
			openai.UserMessage(request.UserPrompt),
		},
		MaxTokens:   openai.Int(request.MaxTokens),
		Temperature: openai.Float(request.Temperature),
	}

	span := transaction.StartChild("openai.api_call")
	resp, err := p.client.Chat.Completions.New(ctx, params)
	apiDuration := time.Since(startTime)
	span.Finish()

	if err != nil {
		log.Printf("❌ OPENAI REQUEST FAILED after %v: %v", apiDuration, err)
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return nil, fmt.Errorf("openai request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("openai response contained no choices")
	}

	text := resp.Choices[0].Message.Content
	log.Printf("📥 OPENAI RESPONSE: output_length=%d, tokens=%d, duration=%v",
		len(text), resp.Usage.TotalTokens, apiDuration)

	transaction.SetTag("success", "true")
	return &CompletionResponse{
		Text: text,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}
