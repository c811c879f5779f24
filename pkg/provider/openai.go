package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fincomply/vigil/pkg/config"
	"golang.org/x/time/rate"
)

// OpenAIClient talks to OpenAI-compatible embeddings and chat completion
// endpoints. Both call paths share the retry policy; each has its own
// per-minute rate limiter so a burst of embeddings cannot starve verdict
// calls.
type OpenAIClient struct {
	httpClient *http.Client
	cfg        *config.ProvidersConfig
	apiKey     string

	embedLimiter *rate.Limiter
	llmLimiter   *rate.Limiter
	logger       *slog.Logger
}

// NewOpenAIClient builds the client from config, reading the API key from
// the configured environment variable.
func NewOpenAIClient(cfg *config.ProvidersConfig) (*OpenAIClient, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("provider API key environment variable %s is not set", cfg.APIKeyEnv)
	}
	timeout := cfg.CallTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OpenAIClient{
		httpClient:   &http.Client{Timeout: timeout},
		cfg:          cfg,
		apiKey:       apiKey,
		embedLimiter: perMinuteLimiter(cfg.RateLimitEmbeddings),
		llmLimiter:   perMinuteLimiter(cfg.RateLimitLLM),
		logger:       slog.With("component", "provider"),
	}, nil
}

func perMinuteLimiter(callsPerMinute int) *rate.Limiter {
	if callsPerMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	// Burst of one minute's quota, refilled continuously.
	return rate.NewLimiter(rate.Limit(float64(callsPerMinute)/60.0), callsPerMinute)
}

type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

// EmbedTexts embeds a batch of inputs in one provider call. Vectors come
// back in input order regardless of the response ordering.
func (c *OpenAIClient) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if err := c.embedLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("embedding rate limiter: %w", err)
	}

	body, err := json.Marshal(embeddingRequest{Model: c.cfg.EmbeddingModel, Input: texts})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embedding request: %w", err)
	}

	respBody, err := c.post(ctx, c.cfg.EmbeddingBaseURL+"/embeddings", body)
	if err != nil {
		return nil, err
	}

	var resp embeddingResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode embedding response: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embedding response has %d vectors for %d inputs", len(resp.Data), len(texts))
	}

	vectors := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(texts) {
			return nil, fmt.Errorf("embedding response index %d out of range", d.Index)
		}
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends a system/user prompt pair and returns the assistant text.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if err := c.llmLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("completion rate limiter: %w", err)
	}

	body, err := json.Marshal(chatRequest{
		Model: c.cfg.LLMModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	respBody, err := c.post(ctx, c.cfg.LLMBaseURL+"/chat/completions", body)
	if err != nil {
		return "", err
	}

	var resp chatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// post issues one authenticated POST with retries. Rate-limit and
// server-side failures retry with exponential backoff up to MaxAttempts;
// other client errors fail immediately.
func (c *OpenAIClient) post(ctx context.Context, url string, body []byte) ([]byte, error) {
	operation := func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("failed to build request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("provider request failed: %w", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
		if err != nil {
			return nil, fmt.Errorf("failed to read provider response: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			statusErr := &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(data), 200)}
			if !statusErr.Retryable() {
				return nil, backoff.Permanent(error(statusErr))
			}
			c.logger.Warn("Provider call failed, will retry", "url", url, "status", resp.StatusCode)
			return nil, statusErr
		}
		return data, nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.cfg.MaxAttempts-1)), ctx)
	return backoff.RetryWithData(operation, policy)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
