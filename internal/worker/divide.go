package worker

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// CountSubtree is the plain perft ProcessFunc.
func CountSubtree(item WorkItem) ProcessResult {
	pos := item.Position
	return ProcessResult{
		Index: item.Index,
		Move:  item.Move,
		Nodes: engine.PerftAfter(&pos, item.Move, item.Depth),
	}
}

// Divide counts the tree below each legal root move of pos using numWorkers
// goroutines. Entries come back in generation order. The first result
// carrying an error stops the pool and is returned alongside the entries
// counted so far.
func Divide(pos chess.Position, depth, numWorkers int, process ProcessFunc) ([]engine.DivideEntry, error) {
	if process == nil {
		process = CountSubtree
	}

	moves := engine.GenerateLegalMoves(&pos)
	if len(moves) == 0 || depth < 1 {
		return nil, nil
	}

	pool := NewPoolWithOptions(process, WithWorkers(numWorkers), WithBufferSize(len(moves)))
	pool.Start()

	go func() {
		for i, move := range moves {
			pool.Submit(WorkItem{Position: pos, Move: move, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	entries := make([]engine.DivideEntry, len(moves))
	done := make([]bool, len(moves))
	var firstErr error
	for result := range pool.Results() {
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
				pool.Stop()
			}
			continue
		}
		entries[result.Index] = engine.DivideEntry{Move: result.Move, Nodes: result.Nodes}
		done[result.Index] = true
	}

	if firstErr != nil {
		counted := entries[:0]
		for i, entry := range entries {
			if done[i] {
				counted = append(counted, entry)
			}
		}
		return counted, firstErr
	}
	return entries, nil
}

// Total sums the node counts of entries.
func Total(entries []engine.DivideEntry) uint64 {
	var total uint64
	for _, entry := range entries {
		total += entry.Nodes
	}
	return total
}
