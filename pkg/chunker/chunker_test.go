package chunker

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/fincomply/vigil/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChunker() *Chunker {
	return NewChunker(config.DefaultIndexingConfig())
}

// pyFunction renders a Python function body long enough to clear the
// minimum token gate (50 tokens at 4 chars per token).
func pyFunction(name string, bodyLines int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "def %s(record, audit_log):\n", name)
	for i := 0; i < bodyLines; i++ {
		fmt.Fprintf(&b, "    audit_log.append(validate_record(record, attempt=%d))\n", i)
	}
	b.WriteString("    return audit_log\n")
	return b.String()
}

func TestChunkFilePythonFunctions(t *testing.T) {
	c := newTestChunker()
	content := pyFunction("check_retention", 10) + "\n" + pyFunction("check_access", 10)

	chunks := c.ChunkFile("policy.py", content, "repo-1")
	require.Len(t, chunks, 2)

	assert.Equal(t, "check_retention", chunks[0].ChunkText[4:4+len("check_retention")])
	assert.Equal(t, "python", chunks[0].Language)
	assert.Equal(t, 1, chunks[0].StartLine)
	require.NotNil(t, chunks[0].ASTNodeType)
	assert.Equal(t, "function:check_retention", *chunks[0].ASTNodeType)
	assert.Less(t, chunks[0].EndLine, chunks[1].StartLine)
}

func TestChunkHashMatchesContent(t *testing.T) {
	c := newTestChunker()
	chunks := c.ChunkFile("policy.py", pyFunction("check_retention", 12), "repo-1")
	require.NotEmpty(t, chunks)

	for _, ch := range chunks {
		sum := sha256.Sum256([]byte(ch.ChunkText))
		assert.Equal(t, hex.EncodeToString(sum[:]), ch.ChunkHash)
		assert.Equal(t, FileHash(pyFunction("check_retention", 12)), ch.FileHash)
		assert.LessOrEqual(t, ch.StartLine, ch.EndLine)
	}
}

func TestChunkFileUnsupportedExtension(t *testing.T) {
	c := newTestChunker()
	assert.Nil(t, c.ChunkFile("README.md", strings.Repeat("documentation text\n", 100), "repo-1"))
}

func TestChunkFileDropsTinyChunks(t *testing.T) {
	c := newTestChunker()
	// A two-line function is far below 50 tokens.
	content := "def noop():\n    pass\n"
	assert.Empty(t, c.ChunkFile("tiny.py", content, "repo-1"))
}

func TestChunkFileSplitBoundary(t *testing.T) {
	cfg := config.DefaultIndexingConfig()
	cfg.MinChunkTokens = 1
	cfg.MaxChunkTokens = 100
	c := NewChunker(cfg)

	// Declaration line plus N body lines of 40 bytes each (including the
	// newline). At N=9 the function is 92 tokens; N=10 pushes it to 102.
	body := "    " + strings.Repeat("a", 35) + "\n"
	build := func(n int) string {
		return strings.TrimSuffix("def f():\n"+strings.Repeat(body, n), "\n")
	}

	within := build(9)
	require.LessOrEqual(t, EstimateTokens(within), 100)
	chunks := c.ChunkFile("exact.py", within, "repo-1")
	require.Len(t, chunks, 1, "chunk within the token budget stays whole")

	over := build(10)
	require.Greater(t, EstimateTokens(over), 100)
	split := c.ChunkFile("over.py", over, "repo-1")
	require.Greater(t, len(split), 1, "chunk over the budget is split")

	// Sub-chunks preserve absolute line numbers and cover the span.
	assert.Equal(t, 1, split[0].StartLine)
	for i := 1; i < len(split); i++ {
		assert.Equal(t, split[i-1].EndLine+1, split[i].StartLine)
	}
	for _, sc := range split {
		assert.LessOrEqual(t, EstimateTokens(sc.ChunkText), 100)
	}
}

func TestChunkFileFallbackWindows(t *testing.T) {
	c := newTestChunker()

	// Python with no declarations at all: falls back to 50-line windows.
	var b strings.Builder
	for i := 0; i < 120; i++ {
		fmt.Fprintf(&b, "value_%d = compute_percentage(%d) # running tally of settlements\n", i, i)
	}

	chunks := c.ChunkFile("script.py", b.String(), "repo-1")
	require.Len(t, chunks, 3)
	assert.Equal(t, 1, chunks[0].StartLine)
	assert.Equal(t, 50, chunks[0].EndLine)
	assert.Equal(t, 51, chunks[1].StartLine)
	assert.Equal(t, 101, chunks[2].StartLine)
	for _, ch := range chunks {
		assert.Nil(t, ch.ASTNodeType)
	}
}

func TestChunkFileFallbackDropsSmallWindows(t *testing.T) {
	cfg := config.DefaultIndexingConfig()
	c := NewChunker(cfg)

	// 55 short lines: the first window clears the minimum, the 5-line
	// tail window does not.
	var b strings.Builder
	for i := 0; i < 55; i++ {
		b.WriteString("n = tally(n)\n")
	}
	chunks := c.ChunkFile("tally.py", strings.TrimSuffix(b.String(), "\n"), "repo-1")
	require.Len(t, chunks, 1)
}

func TestChunkConfigFile(t *testing.T) {
	c := newTestChunker()
	content := `{
  "max_retry_limit": 3,
  "storage_backend": "s3",
  "retention_years": 5,
  "padding": "` + strings.Repeat("x", 200) + `"
}`

	chunks := c.ChunkFile("settings.json", content, "repo-1")
	require.Len(t, chunks, 1)
	assert.Equal(t, "json", chunks[0].Language)
	assert.Equal(t, []string{"max_retry_limit", "padding", "retention_years", "storage_backend"}, chunks[0].ConfigKeys)
	assert.Contains(t, chunks[0].SemanticTags, "storage")
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("abc"))
	assert.Equal(t, 1, EstimateTokens("abcd"))
	assert.Equal(t, 2, EstimateTokens("abcde"))
}
