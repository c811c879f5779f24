package provider

import "context"

// Redactor strips credential material from provider-bound text.
type Redactor interface {
	Redact(content string) string
}

// RedactingClient decorates the provider pair so no embedding input or user
// prompt leaves the process unredacted. System prompts are our own templates
// and pass through untouched.
type RedactingClient struct {
	embeddings EmbeddingProvider
	llm        LLMProvider
	redactor   Redactor
}

// NewRedactingClient wraps embeddings and llm with redactor.
func NewRedactingClient(embeddings EmbeddingProvider, llm LLMProvider, redactor Redactor) *RedactingClient {
	return &RedactingClient{embeddings: embeddings, llm: llm, redactor: redactor}
}

// EmbedTexts redacts each input before delegating.
func (c *RedactingClient) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	redacted := make([]string, len(texts))
	for i, t := range texts {
		redacted[i] = c.redactor.Redact(t)
	}
	return c.embeddings.EmbedTexts(ctx, redacted)
}

// Complete redacts the user prompt before delegating.
func (c *RedactingClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return c.llm.Complete(ctx, systemPrompt, c.redactor.Redact(userPrompt))
}
