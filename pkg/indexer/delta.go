package indexer

import (
	"github.com/fincomply/vigil/pkg/codemap"
	"github.com/fincomply/vigil/pkg/models"
)

// classifyChunks marks each re-chunked draft against the file's prior row
// set. A hash already stored is unchanged; a new hash whose declaration
// node matches a prior chunk that did not survive is a modification of it;
// everything else is added. Prior hashes absent from the new set are the
// removed chunks.
func classifyChunks(chunks []models.CodeChunk, prior []codemap.PriorChunk) (classified []models.CodeChunk, removed []codemap.PriorChunk) {
	priorByHash := make(map[string]codemap.PriorChunk, len(prior))
	priorByNode := make(map[string][]codemap.PriorChunk)
	for _, p := range prior {
		priorByHash[p.ChunkHash] = p
		if p.ASTNodeType != nil {
			priorByNode[*p.ASTNodeType] = append(priorByNode[*p.ASTNodeType], p)
		}
	}

	newHashes := make(map[string]bool, len(chunks))
	for _, ch := range chunks {
		newHashes[ch.ChunkHash] = true
	}

	classified = make([]models.CodeChunk, len(chunks))
	for i, ch := range chunks {
		if p, ok := priorByHash[ch.ChunkHash]; ok {
			ch.DeltaType = models.DeltaUnchanged
			ch.ChunkID = p.ChunkID
		} else if old := previousOf(ch, priorByNode, newHashes); old != nil {
			ch.DeltaType = models.DeltaModified
			ch.PreviousHash = &old.ChunkHash
		} else {
			ch.DeltaType = models.DeltaAdded
		}
		classified[i] = ch
	}

	for _, p := range prior {
		if !newHashes[p.ChunkHash] {
			removed = append(removed, p)
		}
	}
	return classified, removed
}

// previousOf picks the prior chunk of the same declaration whose hash no
// longer appears, i.e. the row this chunk replaces.
func previousOf(ch models.CodeChunk, priorByNode map[string][]codemap.PriorChunk, newHashes map[string]bool) *codemap.PriorChunk {
	if ch.ASTNodeType == nil {
		return nil
	}
	candidates := priorByNode[*ch.ASTNodeType]
	for i := range candidates {
		if !newHashes[candidates[i].ChunkHash] {
			return &candidates[i]
		}
	}
	return nil
}
