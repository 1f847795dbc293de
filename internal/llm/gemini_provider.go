package llm

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"google.golang.org/genai"
)

const (
	providerNameGemini = "gemini"
	geminiUserRole     = "user"
)

// GeminiProvider implements the Provider interface using Google's Gemini API
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiProvider{client: client}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return providerNameGemini
}

// Complete implements non-streaming completion via Gemini's API
func (p *GeminiProvider) Complete(ctx context.Context, request *CompletionRequest) (*CompletionResponse, error) {
	startTime := time.Now()

	transaction := sentry.StartTransaction(ctx, "gemini.complete")
	defer transaction.Finish()
	transaction.SetTag("model", request.Model)
	transaction.SetTag("provider", providerNameGemini)

	contents := []*genai.Content{
		{
			Role:  geminiUserRole,
			Parts: []*genai.Part{{Text: request.UserPrompt}},
		},
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: request.SystemPrompt}},
		},
		Temperature:     genai.Ptr(float32(request.Temperature)),
		MaxOutputTokens: int32(request.MaxTokens),
	}

	span := transaction.StartChild("gemini.api_call")
	result, err := p.client.Models.GenerateContent(ctx, request.Model, contents, config)
	apiDuration := time.Since(startTime)
	span.Finish()

	if err != nil {
		log.Printf("❌ GEMINI REQUEST FAILED after %v: %v", apiDuration, err)
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil ||
		len(result.Candidates[0].Content.Parts) == 0 {
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("gemini response contained no candidates")
	}

	text := result.Candidates[0].Content.Parts[0].Text
	log.Printf("📥 GEMINI RESPONSE: output_length=%d, duration=%v", len(text), apiDuration)

	usage := Usage{}
	if result.UsageMetadata != nil {
		usage.InputTokens = int64(result.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = int64(result.UsageMetadata.CandidatesTokenCount)
		usage.TotalTokens = int64(result.UsageMetadata.TotalTokenCount)
	}

	transaction.SetTag("success", "true")
	return &CompletionResponse{Text: text, Usage: usage}, nil
}
