// Package indexer executes index jobs: fetch the working tree, chunk the
// supported files, enrich with embeddings and summaries, and persist into
// the code map. Full passes prune chunks that disappeared; delta passes
// touch only the changed files.
package indexer

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fincomply/vigil/ent"
	"github.com/fincomply/vigil/pkg/chunker"
	"github.com/fincomply/vigil/pkg/codemap"
	"github.com/fincomply/vigil/pkg/config"
	"github.com/fincomply/vigil/pkg/gitsource"
	"github.com/fincomply/vigil/pkg/models"
)

// ChunkStore is the code-map surface the indexer needs.
type ChunkStore interface {
	UpsertBatch(ctx context.Context, chunks []models.CodeChunk) error
	FileChunks(ctx context.Context, repoID, filePath string) ([]codemap.PriorChunk, error)
	DeleteFileChunks(ctx context.Context, repoID, filePath string, retainedHashes []string) (int64, error)
	PruneRemoved(ctx context.Context, repoID string, retainedHashes []string) (int64, error)
	RepoCounts(ctx context.Context, repoID string) (chunks int, files int, err error)
}

// Indexer is the index-job executor.
type Indexer struct {
	client   *ent.Client
	store    ChunkStore
	source   gitsource.RepoSource
	chunker  *chunker.Chunker
	enricher *Enricher
	cfg      *config.IndexingConfig
	logger   *slog.Logger
}

// NewIndexer wires the index pipeline.
func NewIndexer(client *ent.Client, store ChunkStore, source gitsource.RepoSource, enricher *Enricher, cfg *config.IndexingConfig) *Indexer {
	return &Indexer{
		client:   client,
		store:    store,
		source:   source,
		chunker:  chunker.NewChunker(cfg),
		enricher: enricher,
		cfg:      cfg,
		logger:   slog.With("component", "indexer"),
	}
}

// passStats tallies one index pass.
type passStats struct {
	files     int
	added     int
	modified  int
	unchanged int
	removed   int
	skipped   int
}

func (s passStats) result() map[string]any {
	return map[string]any{
		"indexed_files": s.files,
		"added":         s.added,
		"modified":      s.modified,
		"unchanged":     s.unchanged,
		"removed":       s.removed,
		"skipped_files": s.skipped,
	}
}

// Execute runs one index job. A failed pass leaves the repo record's
// last_commit_sha untouched; the queue retries per its policy.
func (ix *Indexer) Execute(ctx context.Context, j *ent.Job) (map[string]any, error) {
	var payload models.IndexJobPayload
	if err := models.PayloadFromMap(j.Payload, &payload); err != nil {
		return nil, fmt.Errorf("invalid index payload: %w", err)
	}

	repo, err := ix.client.Repository.Get(ctx, payload.RepoID)
	if err != nil {
		return nil, fmt.Errorf("failed to load repo %s: %w", payload.RepoID, err)
	}

	checkout, err := ix.source.Fetch(ctx, gitsource.FetchSpec{
		FullName:  repo.FullName,
		Branch:    repo.DefaultBranch,
		CommitSHA: payload.CommitSHA,
	})
	if err != nil {
		return nil, err
	}
	defer checkout.Cleanup()

	log := ix.logger.With("repo_id", repo.ID, "commit", checkout.CommitSHA)

	var stats passStats
	if payload.Delta() {
		stats, err = ix.deltaPass(ctx, repo.ID, checkout.Dir, payload.ChangedFiles)
	} else {
		stats, err = ix.fullPass(ctx, repo.ID, checkout.Dir)
	}
	if err != nil {
		return nil, err
	}

	if err := ix.updateRepoRecord(ctx, repo.ID, checkout.CommitSHA); err != nil {
		return nil, err
	}

	log.Info("Index pass complete",
		"files", stats.files, "added", stats.added, "modified", stats.modified,
		"unchanged", stats.unchanged, "removed", stats.removed)
	return stats.result(), nil
}

// fullPass walks the whole tree, then prunes chunks whose hash did not
// reappear.
func (ix *Indexer) fullPass(ctx context.Context, repoID, root string) (passStats, error) {
	var stats passStats
	var allHashes []string

	batch := newUpsertBatcher(ix.store, ix.cfg.UpsertBatchSize)
	err := ix.walk(root, func(relPath, content string) error {
		chunks, removed, err := ix.processFile(ctx, repoID, relPath, content)
		if err != nil {
			return err
		}
		if chunks == nil && removed == 0 {
			stats.skipped++
			return nil
		}

		stats.files++
		stats.removed += removed
		for _, ch := range chunks {
			allHashes = append(allHashes, ch.ChunkHash)
			stats.count(ch.DeltaType)
		}
		return batch.add(ctx, chunks)
	})
	if err != nil {
		return stats, err
	}
	if err := batch.flush(ctx); err != nil {
		return stats, err
	}

	pruned, err := ix.store.PruneRemoved(ctx, repoID, allHashes)
	if err != nil {
		return stats, err
	}
	stats.removed += int(pruned)
	return stats, nil
}

// deltaPass re-chunks only the changed paths. A changed path missing from
// the working tree was deleted; its chunks go with it.
func (ix *Indexer) deltaPass(ctx context.Context, repoID, root string, changedFiles []string) (passStats, error) {
	var stats passStats

	batch := newUpsertBatcher(ix.store, ix.cfg.UpsertBatchSize)
	for _, relPath := range changedFiles {
		relPath = filepath.ToSlash(relPath)

		content, err := ix.readFile(root, relPath)
		if err != nil {
			if os.IsNotExist(err) {
				removed, err := ix.store.DeleteFileChunks(ctx, repoID, relPath, nil)
				if err != nil {
					return stats, err
				}
				stats.removed += int(removed)
				continue
			}
			ix.logger.Warn("Skipping unreadable file", "file", relPath, "error", err)
			stats.skipped++
			continue
		}
		if content == "" {
			stats.skipped++
			continue
		}

		chunks, removed, err := ix.processFile(ctx, repoID, relPath, content)
		if err != nil {
			return stats, err
		}
		if chunks == nil && removed == 0 {
			stats.skipped++
			continue
		}

		stats.files++
		stats.removed += removed
		for _, ch := range chunks {
			stats.count(ch.DeltaType)
		}
		if err := batch.add(ctx, chunks); err != nil {
			return stats, err
		}
	}
	return stats, batch.flush(ctx)
}

// processFile chunks one file, classifies the drafts against the stored
// rows, enriches the new material, and drops rows the file no longer
// produces. A chunker failure skips the file, never the pass.
func (ix *Indexer) processFile(ctx context.Context, repoID, relPath, content string) (chunks []models.CodeChunk, removed int, err error) {
	drafts := ix.safeChunk(relPath, content, repoID)
	prior, err := ix.store.FileChunks(ctx, repoID, relPath)
	if err != nil {
		return nil, 0, err
	}
	if len(drafts) == 0 && len(prior) == 0 {
		return nil, 0, nil
	}

	classified, removedChunks := classifyChunks(drafts, prior)
	classified = ix.enricher.EnrichChunks(ctx, classified)

	if len(removedChunks) > 0 {
		retained := make([]string, len(classified))
		for i, ch := range classified {
			retained[i] = ch.ChunkHash
		}
		n, err := ix.store.DeleteFileChunks(ctx, repoID, relPath, retained)
		if err != nil {
			return nil, 0, err
		}
		removed = int(n)
	}
	return classified, removed, nil
}

// safeChunk shields the pass from a chunker panic on one pathological
// file.
func (ix *Indexer) safeChunk(relPath, content, repoID string) (chunks []models.CodeChunk) {
	defer func() {
		if r := recover(); r != nil {
			ix.logger.Error("Chunker failed, skipping file", "file", relPath, "panic", r)
			chunks = nil
		}
	}()
	return ix.chunker.ChunkFile(relPath, content, repoID)
}

// walk visits every indexable file under root with its slash-separated
// relative path.
func (ix *Indexer) walk(root string, visit func(relPath, content string) error) error {
	maxBytes := int64(ix.cfg.MaxFileSizeMB) << 20

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if d.Name() == ".git" || (rel != "." && chunker.IsVendorPath(rel+"/")) {
				return filepath.SkipDir
			}
			return nil
		}
		if chunker.IsVendorPath(rel) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.Size() == 0 || info.Size() > maxBytes {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			ix.logger.Warn("Skipping unreadable file", "file", rel, "error", err)
			return nil
		}
		return visit(rel, string(data))
	})
}

func (ix *Indexer) readFile(root, relPath string) (string, error) {
	full := filepath.Join(root, filepath.FromSlash(relPath))
	if !strings.HasPrefix(filepath.Clean(full), filepath.Clean(root)+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %s escapes the working tree", relPath)
	}

	info, err := os.Stat(full)
	if err != nil {
		return "", err
	}
	if info.Size() > int64(ix.cfg.MaxFileSizeMB)<<20 {
		return "", nil
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// updateRepoRecord refreshes the repo counters after a successful pass.
func (ix *Indexer) updateRepoRecord(ctx context.Context, repoID, commitSHA string) error {
	totalChunks, fileCount, err := ix.store.RepoCounts(ctx, repoID)
	if err != nil {
		return err
	}

	err = ix.client.Repository.UpdateOneID(repoID).
		SetLastCommitSha(commitSHA).
		SetIndexedFileCount(fileCount).
		SetTotalChunks(totalChunks).
		SetLastIndexedAt(time.Now()).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update repo record: %w", err)
	}
	return nil
}

func (s *passStats) count(dt models.DeltaType) {
	switch dt {
	case models.DeltaAdded:
		s.added++
	case models.DeltaModified:
		s.modified++
	case models.DeltaUnchanged:
		s.unchanged++
	}
}

// upsertBatcher accumulates chunks and persists them in fixed-size
// transactions.
type upsertBatcher struct {
	store   ChunkStore
	size    int
	pending []models.CodeChunk
}

func newUpsertBatcher(store ChunkStore, size int) *upsertBatcher {
	if size < 1 {
		size = 1
	}
	return &upsertBatcher{store: store, size: size}
}

func (b *upsertBatcher) add(ctx context.Context, chunks []models.CodeChunk) error {
	b.pending = append(b.pending, chunks...)
	for len(b.pending) >= b.size {
		if err := b.store.UpsertBatch(ctx, b.pending[:b.size]); err != nil {
			return err
		}
		b.pending = b.pending[b.size:]
	}
	return nil
}

func (b *upsertBatcher) flush(ctx context.Context) error {
	if len(b.pending) == 0 {
		return nil
	}
	err := b.store.UpsertBatch(ctx, b.pending)
	b.pending = nil
	return err
}
