package setup

import (
	"context"
	"strings"
	"time"

	"github.com/AMGSoya/lmu-setup-generator-sub000/internal/llm"
	"github.com/AMGSoya/lmu-setup-generator-sub000/internal/logger"
	"github.com/AMGSoya/lmu-setup-generator-sub000/internal/observability"
)

const (
	// setupFileMarker is the literal key that opens every valid .svm
	// setup file; cleaned output must start with it.
	setupFileMarker = "[GENERAL]"

	codeFence = "```"

	defaultMaxTokens   = 3000
	defaultTemperature = 0.3
	defaultTimeout     = 90 * time.Second
)

// Assembler validates an inbound setup request, renders the generation
// prompt for the resolved vehicle category, calls the external provider
// once, and validates and cleans the result. It holds no per-request
// state; one instance serves all requests concurrently.
type Assembler struct {
	provider  llm.Provider
	templates *TemplateSet
	renderer  *PromptRenderer

	model       string
	maxTokens   int64
	temperature float64
	timeout     time.Duration
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithTimeout bounds the upstream call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(a *Assembler) { a.timeout = d }
}

// WithMaxTokens overrides the output-length bound.
func WithMaxTokens(n int64) Option {
	return func(a *Assembler) { a.maxTokens = n }
}

// NewAssembler creates an assembler backed by the given provider.
func NewAssembler(provider llm.Provider, model string, opts ...Option) *Assembler {
	a := &Assembler{
		provider:    provider,
		templates:   NewTemplateSet(),
		renderer:    NewPromptRenderer(),
		model:       model,
		maxTokens:   defaultMaxTokens,
		temperature: defaultTemperature,
		timeout:     defaultTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Templates exposes the category catalog (read-only).
func (a *Assembler) Templates() *TemplateSet { return a.templates }

// RenderUserPrompt renders the per-request prompt block without calling
// the provider. Validation and category resolution still apply.
func (a *Assembler) RenderUserPrompt(req *SetupRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	template, err := a.templates.Resolve(req.CarCategory)
	if err != nil {
		return "", err
	}
	return a.renderer.UserPrompt(req, template), nil
}

// Generate runs the full pipeline: validate, resolve the category
// template, render the prompt, call the provider once, clean and check
// the result. Every failure mode maps to a distinct error type; no step
// is retried.
func (a *Assembler) Generate(ctx context.Context, req *SetupRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	template, err := a.templates.Resolve(req.CarCategory)
	if err != nil {
		return "", err
	}

	userPrompt := a.renderer.UserPrompt(req, template)

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	trace := observability.GetClient().StartTrace(ctx, "setup.generate", map[string]interface{}{
		"car":      req.Car,
		"track":    req.Track,
		"category": req.CarCategory,
	})
	defer trace.Finish()

	gen := trace.Generation(a.provider.Name(), map[string]interface{}{"model": a.model})
	gen.Input(userPrompt)

	resp, err := a.provider.Complete(ctx, &llm.CompletionRequest{
		Model:        a.model,
		SystemPrompt: a.renderer.SystemPrompt(),
		UserPrompt:   userPrompt,
		MaxTokens:    a.maxTokens,
		Temperature:  a.temperature,
	})
	if err != nil {
		gen.SetLevel("ERROR")
		gen.Finish()
		return "", &UpstreamError{Provider: a.provider.Name(), Err: err}
	}

	gen.Output(resp.Text)
	gen.Usage(map[string]interface{}{
		"input_tokens":  resp.Usage.InputTokens,
		"output_tokens": resp.Usage.OutputTokens,
		"total_tokens":  resp.Usage.TotalTokens,
	})
	gen.Finish()

	cleaned := CleanOutput(resp.Text)
	if !strings.HasPrefix(cleaned, setupFileMarker) {
		// Full raw output goes to the log only; the caller gets a
		// bounded snippet.
		logger.Warn("Model output failed setup marker check", logger.Fields{
			"model":      a.model,
			"raw_length": len(resp.Text),
			"raw_output": resp.Text,
		})
		return "", &OutputError{Snippet: snippet(cleaned)}
	}

	return cleaned, nil
}

// CleanOutput trims surrounding whitespace and strips a single
// enclosing fenced code block (leading fence with optional language
// tag, trailing fence) if present.
func CleanOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	if !strings.HasPrefix(cleaned, codeFence) {
		return cleaned
	}

	// Drop the opening fence line, language tag included.
	rest := cleaned[len(codeFence):]
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		rest = rest[idx+1:]
	} else {
		rest = strings.TrimPrefix(rest, "ini")
	}

	rest = strings.TrimSpace(rest)
	rest = strings.TrimSuffix(rest, codeFence)
	return strings.TrimSpace(rest)
}
