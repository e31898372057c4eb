package worker

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// UniqueLeaves returns a ProcessFunc that counts the subtree below a root
// move like CountSubtree and also records every leaf position in seen,
// keyed by the leaf's game ply, so that seen.UniqueCount() gives the number
// of distinct positions reached and seen.DuplicateCount() the transpositions.
func UniqueLeaves(seen *hashing.ThreadSafeDuplicateDetector) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		pos := item.Position
		next := pos
		if !engine.ApplyMove(&next, item.Move) {
			return CountSubtree(item)
		}
		nodes := engine.Leaves(&next, item.Depth, func(leaf *chess.Position) {
			seen.CheckAndAdd(leaf, leaf.Ply())
		})
		return ProcessResult{Index: item.Index, Move: item.Move, Nodes: nodes}
	}
}
