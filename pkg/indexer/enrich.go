package indexer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fincomply/vigil/pkg/cache"
	"github.com/fincomply/vigil/pkg/models"
	"github.com/fincomply/vigil/pkg/provider"
	"golang.org/x/sync/errgroup"
)

const summarySystemPrompt = `You summarize source code for a compliance knowledge base. Reply with one plain sentence describing what the code does. Do not speculate beyond the code shown.`

// Enricher attaches an embedding and a natural-language summary to each
// chunk, cache first with provider fallback. A provider failure leaves the
// chunk with a nil embedding or summary and never aborts the batch.
type Enricher struct {
	embedder    provider.EmbeddingProvider
	llm         provider.LLMProvider
	cache       *cache.EnrichmentCache
	concurrency int
	logger      *slog.Logger
}

// NewEnricher builds an enricher running up to concurrency chunk tasks in
// parallel.
func NewEnricher(embedder provider.EmbeddingProvider, llm provider.LLMProvider, ec *cache.EnrichmentCache, concurrency int) *Enricher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Enricher{
		embedder:    embedder,
		llm:         llm,
		cache:       ec,
		concurrency: concurrency,
		logger:      slog.With("component", "enricher"),
	}
}

// EnrichChunks fills embeddings and summaries in place. Unchanged chunks
// are skipped entirely; their stored enrichment survives the upsert.
func (e *Enricher) EnrichChunks(ctx context.Context, chunks []models.CodeChunk) []models.CodeChunk {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i := range chunks {
		if chunks[i].DeltaType == models.DeltaUnchanged {
			continue
		}
		g.Go(func() error {
			e.enrichOne(gctx, &chunks[i])
			return nil
		})
	}
	_ = g.Wait()
	return chunks
}

func (e *Enricher) enrichOne(ctx context.Context, ch *models.CodeChunk) {
	if vec, ok := e.cache.GetEmbedding(ctx, ch.ChunkText); ok {
		ch.Embedding = vec
	} else if vecs, err := e.embedder.EmbedTexts(ctx, []string{ch.ChunkText}); err != nil {
		e.logger.Warn("Embedding failed, chunk stored without vector",
			"file", ch.FilePath, "chunk_hash", ch.ChunkHash, "error", err)
	} else if len(vecs) == 1 {
		ch.Embedding = vecs[0]
		e.cache.SetEmbedding(ctx, ch.ChunkText, vecs[0])
	}

	if sum, ok := e.cache.GetSummary(ctx, ch.ChunkHash); ok {
		ch.NLSummary = &sum
	} else if sum, err := e.llm.Complete(ctx, summarySystemPrompt, summaryPrompt(ch)); err != nil {
		e.logger.Warn("Summary failed, chunk stored without summary",
			"file", ch.FilePath, "chunk_hash", ch.ChunkHash, "error", err)
	} else {
		ch.NLSummary = &sum
		e.cache.SetSummary(ctx, ch.ChunkHash, sum)
	}
}

func summaryPrompt(ch *models.CodeChunk) string {
	return fmt.Sprintf("Summarize the following %s code from %s:\n\n%s", ch.Language, ch.FilePath, ch.ChunkText)
}
