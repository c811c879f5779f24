// Package integration holds database-backed tests for the queue, the code
// map stores, case logs, event delivery and the audit workflow. Every test
// runs against a real PostgreSQL (pgvector) schema from test/util.
package integration

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/fincomply/vigil/ent"
	"github.com/fincomply/vigil/pkg/config"
	"github.com/fincomply/vigil/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fastQueueConfig returns queue settings tuned for tests: single worker,
// tight polling, short backoff.
func fastQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             1,
		MaxConcurrentJobs:       4,
		PollInterval:            25 * time.Millisecond,
		PollIntervalJitter:      5 * time.Millisecond,
		JobTimeout:              time.Minute,
		MaxRetries:              3,
		RetryBackoffBase:        10 * time.Millisecond,
		RetryBackoffCap:         50 * time.Millisecond,
		GracefulShutdownTimeout: 5 * time.Second,
		ReclaimInterval:         50 * time.Millisecond,
	}
}

func seedRepo(t *testing.T, client *ent.Client, fullName string) *ent.Repository {
	t.Helper()
	repo, err := client.Repository.Create().
		SetID(uuid.NewString()).
		SetFullName(fullName).
		Save(context.Background())
	require.NoError(t, err)
	return repo
}

// seedRegulation inserts pre-chunked rule text the way the ingestion
// collaborator would, one row per chunk in document order.
func seedRegulation(t *testing.T, db *stdsql.DB, ruleID string, texts ...string) {
	t.Helper()
	for i, text := range texts {
		_, err := db.ExecContext(context.Background(),
			`INSERT INTO regulation_chunks (chunk_id, rule_id, chunk_text, chunk_index, chunk_hash)
			 VALUES ($1, $2, $3, $4, $5)`,
			uuid.NewString(), ruleID, text, i, fmt.Sprintf("%s-%d", ruleID, i))
		require.NoError(t, err)
	}
}

// unitVector returns a dim-length embedding with 1.0 at position hot, used
// to make cosine distances deterministic in retrieval tests.
func unitVector(dim, hot int) []float32 {
	v := make([]float32, dim)
	v[hot] = 1
	return v
}

// stubLLM routes completion calls by system prompt through fn.
type stubLLM struct {
	mu    sync.Mutex
	calls int
	fn    func(systemPrompt, userPrompt string) (string, error)
}

func (s *stubLLM) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.fn(systemPrompt, userPrompt)
}

// stubRetriever returns a fixed hit set for every task query.
type stubRetriever struct {
	hits []models.RetrievalHit
	err  error
}

func (s *stubRetriever) Retrieve(ctx context.Context, queryText, repoID string, topK int) ([]models.RetrievalHit, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.RetrievalHit, len(s.hits))
	copy(out, s.hits)
	return out, nil
}

// stubAdjudicator issues a fixed verdict for every chunk.
type stubAdjudicator struct {
	verdict models.VerdictResult
	err     error
}

func (s *stubAdjudicator) Adjudicate(ctx context.Context, ruleText string, chunk models.CodeChunk) (models.VerdictResult, error) {
	if s.err != nil {
		return models.VerdictResult{}, s.err
	}
	return s.verdict, nil
}

// recordingCreator counts filed issues and hands out sequential keys.
type recordingCreator struct {
	mu     sync.Mutex
	filed  []string
	failAt int // fail the nth call (1-based); 0 never fails
}

func (r *recordingCreator) CreateIssue(ctx context.Context, summary, description, priority string, labels []string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAt > 0 && len(r.filed)+1 == r.failAt {
		return "", fmt.Errorf("ticketing backend unavailable")
	}
	key := fmt.Sprintf("COMP-%d", len(r.filed)+1)
	r.filed = append(r.filed, key)
	return key, nil
}

func (r *recordingCreator) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.filed)
}

// codeHit builds a retrieval hit over an in-memory chunk.
func codeHit(chunkID, filePath string, startLine, endLine int, text string, similarity float64) models.RetrievalHit {
	return models.RetrievalHit{
		Chunk: models.CodeChunk{
			ChunkID:   chunkID,
			FilePath:  filePath,
			Language:  "go",
			StartLine: startLine,
			EndLine:   endLine,
			ChunkText: text,
			FileHash:  "fh-" + chunkID,
			ChunkHash: "ch-" + chunkID,
			DeltaType: models.DeltaAdded,
		},
		Distance:   1 - similarity,
		Similarity: similarity,
	}
}

// waitFor polls cond until it returns true or the deadline passes.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("condition not met within %s", timeout)
}

const plannerOutput = `{
  "intent": "Sessions must require a second authentication factor",
  "compliance_dimensions": ["authentication"],
  "tasks": [
    {"description": "code enforcing multi-factor authentication on login", "dimension": "authentication"}
  ]
}`
