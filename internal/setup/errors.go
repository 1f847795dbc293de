package setup

import (
	"fmt"
	"net/http"
	"strings"
)

// snippetMaxLen caps the amount of raw model output quoted back to the
// caller when the output fails validation. The full text is only ever
// logged server-side.
const snippetMaxLen = 300

// ValidationError reports required request fields that were missing.
// The request never reaches the external provider.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// StatusCode returns the HTTP status this error maps to
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// CategoryError reports a vehicle category that resolved to no template
// even after synonym resolution.
type CategoryError struct {
	Category string
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("unknown car category: %q", e.Category)
}

func (e *CategoryError) StatusCode() int { return http.StatusBadRequest }

// UpstreamError wraps a failed call to the external generation service.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("setup generation failed (%s): %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) StatusCode() int { return http.StatusBadGateway }

// OutputError reports model output that came back but does not look
// like a setup file. Snippet is bounded; never the full text.
type OutputError struct {
	Snippet string
}

func (e *OutputError) Error() string {
	if e.Snippet == "" {
		return "model returned an empty setup"
	}
	return fmt.Sprintf("model output is not a valid setup file (starts with: %q)", e.Snippet)
}

func (e *OutputError) StatusCode() int { return http.StatusBadGateway }

// snippet bounds s to snippetMaxLen bytes for inclusion in an error
func snippet(s string) string {
	if len(s) <= snippetMaxLen {
		return s
	}
	return s[:snippetMaxLen] + "..."
}
