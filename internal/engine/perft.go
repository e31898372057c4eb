package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// DivideEntry is the leaf count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := GenerateLegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		next := *pos
		makeMove(&next, move)
		nodes += Perft(&next, depth-1)
	}
	return nodes
}

// Divide returns the perft count below each root move, in generation order.
func Divide(pos *chess.Position, depth int) []DivideEntry {
	moves := GenerateLegalMoves(pos)
	entries := make([]DivideEntry, 0, len(moves))
	for _, move := range moves {
		entries = append(entries, DivideEntry{Move: move, Nodes: PerftAfter(pos, move, depth-1)})
	}
	return entries
}

// PerftAfter plays a legal move on a copy of pos and counts the tree below
// it. move must come from GenerateLegalMoves(pos).
func PerftAfter(pos *chess.Position, move chess.Move, depth int) uint64 {
	next := *pos
	makeMove(&next, move)
	return Perft(&next, depth)
}

// Leaves walks the legal move tree to the given depth and calls visit for
// each leaf position. It returns the number of leaves, as Perft does.
func Leaves(pos *chess.Position, depth int, visit func(leaf *chess.Position)) uint64 {
	if depth <= 0 {
		visit(pos)
		return 1
	}

	var nodes uint64
	for _, move := range GenerateLegalMoves(pos) {
		next := *pos
		makeMove(&next, move)
		nodes += Leaves(&next, depth-1, visit)
	}
	return nodes
}
