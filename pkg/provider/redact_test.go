package provider

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureEmbedder struct {
	got []string
}

func (c *captureEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	c.got = texts
	return make([][]float32, len(texts)), nil
}

type captureLLM struct {
	system string
	user   string
}

func (c *captureLLM) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	c.system = systemPrompt
	c.user = userPrompt
	return "ok", nil
}

type upperRedactor struct{}

func (upperRedactor) Redact(content string) string {
	return strings.ReplaceAll(content, "secret", "[MASKED]")
}

func TestRedactingClientEmbedTexts(t *testing.T) {
	emb := &captureEmbedder{}
	client := NewRedactingClient(emb, nil, upperRedactor{})

	vecs, err := client.EmbedTexts(context.Background(), []string{"plain", "the secret value"})
	require.NoError(t, err)
	assert.Len(t, vecs, 2)
	assert.Equal(t, []string{"plain", "the [MASKED] value"}, emb.got)
}

func TestRedactingClientCompleteKeepsSystemPrompt(t *testing.T) {
	llm := &captureLLM{}
	client := NewRedactingClient(nil, llm, upperRedactor{})

	out, err := client.Complete(context.Background(), "you handle secret data", "here is a secret")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, "you handle secret data", llm.system)
	assert.Equal(t, "here is a [MASKED]", llm.user)
}
