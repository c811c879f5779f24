// Package retriever performs rule-to-code nearest-neighbor search over the
// code map: embed the rule text, take the top-k nearest chunks, and gate
// on the similarity threshold.
package retriever

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fincomply/vigil/pkg/cache"
	"github.com/fincomply/vigil/pkg/config"
	"github.com/fincomply/vigil/pkg/models"
	"github.com/fincomply/vigil/pkg/provider"
)

// SearchStore is the code-map surface the retriever needs.
type SearchStore interface {
	SearchSimilar(ctx context.Context, queryEmbedding []float32, repoID string, k int) ([]models.RetrievalHit, error)
}

// Retriever embeds queries and searches the code map.
type Retriever struct {
	store    SearchStore
	embedder provider.EmbeddingProvider
	cache    *cache.EnrichmentCache
	cfg      *config.RetrievalConfig
	logger   *slog.Logger
}

// NewRetriever wires the retrieval path.
func NewRetriever(store SearchStore, embedder provider.EmbeddingProvider, ec *cache.EnrichmentCache, cfg *config.RetrievalConfig) *Retriever {
	return &Retriever{
		store:    store,
		embedder: embedder,
		cache:    ec,
		cfg:      cfg,
		logger:   slog.With("component", "retriever"),
	}
}

// Retrieve returns the chunks nearest to queryText within repoID, gated on
// the similarity threshold. topK <= 0 retrieves nothing. Results arrive
// sorted by ascending distance with deterministic tie-breaks, so fewer than
// topK rows means the store simply had no more above the gate.
func (r *Retriever) Retrieve(ctx context.Context, queryText, repoID string, topK int) ([]models.RetrievalHit, error) {
	if topK <= 0 {
		return nil, nil
	}

	vec, err := r.embed(ctx, queryText)
	if err != nil {
		return nil, err
	}
	return r.RetrieveByEmbedding(ctx, vec, repoID, topK)
}

// RetrieveByEmbedding is Retrieve for callers that already hold the query
// vector (regulation chunks come pre-embedded).
func (r *Retriever) RetrieveByEmbedding(ctx context.Context, queryEmbedding []float32, repoID string, topK int) ([]models.RetrievalHit, error) {
	if topK <= 0 {
		return nil, nil
	}
	if len(queryEmbedding) != r.cfg.EmbeddingDimension {
		return nil, fmt.Errorf("query embedding has dimension %d, store uses %d",
			len(queryEmbedding), r.cfg.EmbeddingDimension)
	}

	hits, err := r.store.SearchSimilar(ctx, queryEmbedding, repoID, topK)
	if err != nil {
		return nil, err
	}

	gated := hits[:0:0]
	for _, h := range hits {
		if h.Similarity >= r.cfg.SimilarityThreshold {
			gated = append(gated, h)
		}
	}
	r.logger.Debug("Retrieved chunks", "repo_id", repoID, "hits", len(hits), "above_threshold", len(gated))
	return gated, nil
}

// embed returns the query vector, cache first.
func (r *Retriever) embed(ctx context.Context, text string) ([]float32, error) {
	if vec, ok := r.cache.GetEmbedding(ctx, text); ok {
		return vec, nil
	}
	vecs, err := r.embedder.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(vecs) != 1 {
		return nil, fmt.Errorf("expected one query vector, got %d", len(vecs))
	}
	r.cache.SetEmbedding(ctx, text, vecs[0])
	return vecs[0], nil
}

// Snippet returns the leading snippetLength characters of a chunk for
// navigation summaries.
func Snippet(chunkText string, snippetLength int) string {
	if snippetLength <= 0 || len(chunkText) <= snippetLength {
		return chunkText
	}
	return chunkText[:snippetLength]
}
