package indexer

import (
	"testing"

	"github.com/fincomply/vigil/pkg/codemap"
	"github.com/fincomply/vigil/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestClassifyChunksFirstPassIsAllAdded(t *testing.T) {
	chunks := []models.CodeChunk{
		{ChunkHash: "h1", ASTNodeType: strPtr("def handler")},
		{ChunkHash: "h2", ASTNodeType: strPtr("def validate")},
	}

	classified, removed := classifyChunks(chunks, nil)
	require.Len(t, classified, 2)
	assert.Equal(t, models.DeltaAdded, classified[0].DeltaType)
	assert.Equal(t, models.DeltaAdded, classified[1].DeltaType)
	assert.Empty(t, removed)
}

func TestClassifyChunksUnchangedKeepsChunkID(t *testing.T) {
	prior := []codemap.PriorChunk{
		{ChunkID: "id-1", ChunkHash: "h1", ASTNodeType: strPtr("def handler")},
	}
	chunks := []models.CodeChunk{{ChunkHash: "h1", ASTNodeType: strPtr("def handler")}}

	classified, removed := classifyChunks(chunks, prior)
	require.Len(t, classified, 1)
	assert.Equal(t, models.DeltaUnchanged, classified[0].DeltaType)
	assert.Equal(t, "id-1", classified[0].ChunkID)
	assert.Empty(t, removed)
}

func TestClassifyChunksModifiedCarriesPreviousHash(t *testing.T) {
	prior := []codemap.PriorChunk{
		{ChunkID: "id-1", ChunkHash: "old", ASTNodeType: strPtr("def handler")},
	}
	chunks := []models.CodeChunk{{ChunkHash: "new", ASTNodeType: strPtr("def handler")}}

	classified, removed := classifyChunks(chunks, prior)
	require.Len(t, classified, 1)
	assert.Equal(t, models.DeltaModified, classified[0].DeltaType)
	require.NotNil(t, classified[0].PreviousHash)
	assert.Equal(t, "old", *classified[0].PreviousHash)

	// The replaced row is reported removed; the upsert of the new hash and
	// the delete of the old one are separate operations.
	require.Len(t, removed, 1)
	assert.Equal(t, "old", removed[0].ChunkHash)
}

func TestClassifyChunksNewFunctionNextToUnchangedOne(t *testing.T) {
	prior := []codemap.PriorChunk{
		{ChunkID: "id-1", ChunkHash: "h1", ASTNodeType: strPtr("def first")},
	}
	chunks := []models.CodeChunk{
		{ChunkHash: "h1", ASTNodeType: strPtr("def first")},
		{ChunkHash: "h2", ASTNodeType: strPtr("def second")},
	}

	classified, removed := classifyChunks(chunks, prior)
	assert.Equal(t, models.DeltaUnchanged, classified[0].DeltaType)
	assert.Equal(t, models.DeltaAdded, classified[1].DeltaType)
	assert.Nil(t, classified[1].PreviousHash)
	assert.Empty(t, removed)
}

func TestClassifyChunksDeletedDeclaration(t *testing.T) {
	prior := []codemap.PriorChunk{
		{ChunkID: "id-1", ChunkHash: "h1", ASTNodeType: strPtr("def kept")},
		{ChunkID: "id-2", ChunkHash: "h2", ASTNodeType: strPtr("def dropped")},
	}
	chunks := []models.CodeChunk{{ChunkHash: "h1", ASTNodeType: strPtr("def kept")}}

	_, removed := classifyChunks(chunks, prior)
	require.Len(t, removed, 1)
	assert.Equal(t, "h2", removed[0].ChunkHash)
}

func TestClassifyChunksWindowChunksWithoutNodeType(t *testing.T) {
	prior := []codemap.PriorChunk{{ChunkID: "id-1", ChunkHash: "old"}}
	chunks := []models.CodeChunk{{ChunkHash: "new"}}

	classified, removed := classifyChunks(chunks, prior)
	assert.Equal(t, models.DeltaAdded, classified[0].DeltaType)
	require.Len(t, removed, 1)
}
