// Package chunker splits source files into semantic chunks for embedding.
// The primary strategy extracts function/class spans per language; files
// with no recognizable spans fall back to fixed line windows.
package chunker

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"

	"github.com/fincomply/vigil/pkg/config"
	"github.com/fincomply/vigil/pkg/models"
)

// Chunker turns file contents into ordered CodeChunk drafts. Drafts carry
// no embedding or summary; enrichment fills those in later.
type Chunker struct {
	maxTokens      int
	minTokens      int
	fallbackWindow int
	logger         *slog.Logger
}

// NewChunker creates a chunker with the given indexing limits.
func NewChunker(cfg *config.IndexingConfig) *Chunker {
	return &Chunker{
		maxTokens:      cfg.MaxChunkTokens,
		minTokens:      cfg.MinChunkTokens,
		fallbackWindow: cfg.FallbackWindowLines,
		logger:         slog.With("component", "chunker"),
	}
}

// EstimateTokens approximates the token count of text as ceil(len/4).
func EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}

// FileHash returns the SHA-256 hex digest of file content.
func FileHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// ChunkHash returns the SHA-256 hex digest of chunk text.
func ChunkHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// ChunkFile splits one file into chunk drafts. Unsupported files yield nil.
// Ordering follows source position; hashes and enrichment metadata are
// populated, delta classification is left to the indexer.
func (c *Chunker) ChunkFile(filePath, content, repoID string) []models.CodeChunk {
	language := DetectLanguage(filePath, []byte(content))
	if language == "" {
		c.logger.Debug("Unsupported file type", "file", filePath)
		return nil
	}

	fileHash := FileHash(content)
	tags := semanticTags(content)

	if isConfigLanguage(language) {
		return c.chunkConfigFile(filePath, content, repoID, language, fileHash, tags)
	}

	spans := extractSpans(content, language)
	if len(spans) == 0 {
		chunks := c.chunkByWindows(filePath, content, repoID, language, fileHash, tags)
		c.logger.Debug("Chunked file", "file", filePath, "chunks", len(chunks), "strategy", "fallback")
		return chunks
	}

	var chunks []models.CodeChunk
	for _, sp := range spans {
		tokens := EstimateTokens(sp.text)
		if tokens < c.minTokens {
			continue
		}
		if tokens > c.maxTokens {
			chunks = append(chunks, c.splitLargeSpan(filePath, repoID, language, fileHash, tags, sp)...)
			continue
		}
		// Qualified with the declaration name so delta passes can match a
		// re-chunked declaration to the row it replaces.
		nodeType := sp.nodeType + ":" + sp.name
		chunks = append(chunks, models.CodeChunk{
			RepoID:       repoID,
			FilePath:     filePath,
			Language:     language,
			StartLine:    sp.startLine,
			EndLine:      sp.endLine,
			ChunkText:    sp.text,
			ASTNodeType:  &nodeType,
			FileHash:     fileHash,
			ChunkHash:    ChunkHash(sp.text),
			CallLinks:    callLinks(sp.text),
			Variables:    variableNames(sp.text),
			ConfigKeys:   thresholdKeys(sp.text),
			SemanticTags: tags,
		})
	}

	c.logger.Debug("Chunked file", "file", filePath, "chunks", len(chunks), "strategy", "spans")
	return chunks
}

// splitLargeSpan divides an oversized span into line-aligned sub-chunks of
// at most maxTokens each, preserving absolute line numbers. Sub-chunks are
// kept even when small; dropping a tail would lose source coverage.
func (c *Chunker) splitLargeSpan(filePath, repoID, language, fileHash string, tags []string, sp span) []models.CodeChunk {
	lines := strings.Split(sp.text, "\n")

	var chunks []models.CodeChunk
	start := 0
	for start < len(lines) {
		end := start + 1
		for end < len(lines) {
			candidate := strings.Join(lines[start:end+1], "\n")
			if EstimateTokens(candidate) > c.maxTokens {
				break
			}
			end++
		}
		text := strings.Join(lines[start:end], "\n")
		chunks = append(chunks, models.CodeChunk{
			RepoID:       repoID,
			FilePath:     filePath,
			Language:     language,
			StartLine:    sp.startLine + start,
			EndLine:      sp.startLine + end - 1,
			ChunkText:    text,
			FileHash:     fileHash,
			ChunkHash:    ChunkHash(text),
			CallLinks:    callLinks(text),
			Variables:    variableNames(text),
			ConfigKeys:   thresholdKeys(text),
			SemanticTags: tags,
		})
		start = end
	}
	return chunks
}

// chunkByWindows splits a file into fixed line windows, discarding windows
// below the minimum token count.
func (c *Chunker) chunkByWindows(filePath, content, repoID, language, fileHash string, tags []string) []models.CodeChunk {
	lines := strings.Split(content, "\n")

	var chunks []models.CodeChunk
	for start := 0; start < len(lines); start += c.fallbackWindow {
		end := start + c.fallbackWindow
		if end > len(lines) {
			end = len(lines)
		}
		text := strings.Join(lines[start:end], "\n")
		if EstimateTokens(text) < c.minTokens {
			continue
		}
		chunks = append(chunks, models.CodeChunk{
			RepoID:       repoID,
			FilePath:     filePath,
			Language:     language,
			StartLine:    start + 1,
			EndLine:      end,
			ChunkText:    text,
			FileHash:     fileHash,
			ChunkHash:    ChunkHash(text),
			CallLinks:    callLinks(text),
			Variables:    variableNames(text),
			ConfigKeys:   thresholdKeys(text),
			SemanticTags: tags,
		})
	}
	return chunks
}

// chunkConfigFile emits the whole config file as one chunk with its parsed
// keys, subject to the minimum token gate.
func (c *Chunker) chunkConfigFile(filePath, content, repoID, language, fileHash string, tags []string) []models.CodeChunk {
	if EstimateTokens(content) < c.minTokens {
		return nil
	}
	lineCount := strings.Count(content, "\n") + 1
	return []models.CodeChunk{{
		RepoID:       repoID,
		FilePath:     filePath,
		Language:     language,
		StartLine:    1,
		EndLine:      lineCount,
		ChunkText:    content,
		FileHash:     fileHash,
		ChunkHash:    ChunkHash(content),
		ConfigKeys:   ParseConfigKeys(filePath, content),
		SemanticTags: tags,
	}}
}
