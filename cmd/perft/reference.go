package main

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// referencePerft counts leaf nodes with dragontoothmg, starting from fen.
func referencePerft(fen string, depth int) uint64 {
	board := dragontoothmg.ParseFen(fen)
	return countReference(&board, depth)
}

func countReference(board *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := board.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		undo := board.Apply(move)
		nodes += countReference(board, depth-1)
		undo()
	}
	return nodes
}

// verifySubtree counts the subtree below a root move with both generators
// and fails the item when they disagree.
func verifySubtree(item worker.WorkItem) worker.ProcessResult {
	result := worker.CountSubtree(item)

	next := item.Position
	if !engine.ApplyMove(&next, item.Move) {
		result.Error = fmt.Errorf("%s: %w", notation.FormatMove(item.Move), errors.ErrIllegalMove)
		return result
	}
	if want := referencePerft(engine.FEN(&next), item.Depth); want != result.Nodes {
		result.Error = fmt.Errorf("%s: %d nodes, reference %d: %w",
			notation.FormatMove(item.Move), result.Nodes, want, errors.ErrPerftMismatch)
	}
	return result
}
