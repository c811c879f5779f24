// Package provider holds the external model providers: an embedding
// provider and a completion provider behind small interfaces so the
// pipeline and tests can swap implementations.
package provider

import (
	"context"
	"errors"
	"fmt"
)

// EmbeddingProvider turns text into fixed-dimension vectors.
type EmbeddingProvider interface {
	// EmbedTexts embeds a batch of inputs; the result has one vector per
	// input, in order.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// LLMProvider produces a completion for a prompt pair.
type LLMProvider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ErrEmptyResponse is returned when a provider call succeeds at the HTTP
// level but carries no usable payload.
var ErrEmptyResponse = errors.New("provider returned an empty response")

// StatusError is a non-2xx provider response. Retryable reports whether
// the request may be retried (rate limit or server-side failure).
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}

// Retryable reports whether the failure is transient.
func (e *StatusError) Retryable() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}
