package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isStructurallyValid dispatches to the movement rule for the moving piece.
// It ignores whether the move leaves the mover's king attacked.
func isStructurallyValid(pos *chess.Position, move chess.Move) bool {
	if !move.From.Valid() || !move.To.Valid() {
		return false
	}

	switch chess.ExtractPiece(move.PieceToMove) {
	case chess.Pawn:
		return isValidPawnMove(pos, move)
	case chess.Knight:
		return isValidKnightMove(move)
	case chess.Bishop:
		return isValidBishopMove(pos, move)
	case chess.Rook:
		return isValidRookMove(pos, move)
	case chess.Queen:
		return isValidQueenMove(pos, move)
	case chess.King:
		return isValidKingMove(pos, move)
	}
	return false
}

// deltas returns the absolute rank and file distance of a move.
func deltas(from, to chess.Square) (rankDiff, fileDiff int) {
	return abs(to.Rank() - from.Rank()), abs(to.File() - from.File())
}

// isValidPawnMove checks single and double steps, diagonal captures and
// en passant. Direction is +1 rank for White and -1 for Black.
func isValidPawnMove(pos *chess.Position, move chess.Move) bool {
	colour := chess.ExtractColour(move.PieceToMove)
	dir := chess.ColourOffset(colour)
	startRank := 1
	if colour == chess.Black {
		startRank = 6
	}

	fromRank, fromFile := move.From.Rank(), move.From.File()
	toRank, toFile := move.To.Rank(), move.To.File()

	switch {
	case fromFile == toFile:
		if toRank == fromRank+dir {
			return pos.IsEmpty(move.To)
		}
		if fromRank == startRank && toRank == fromRank+2*dir {
			return pos.IsEmpty(move.To) && pos.IsEmpty(chess.SquareAt(fromRank+dir, fromFile))
		}

	case abs(toFile-fromFile) == 1 && toRank == fromRank+dir:
		if pos.IsOccupiedBy(move.To, colour.Opposite()) {
			return true
		}
		return move.To == pos.EnPassant && isEnPassantTarget(pos, move.To, colour)
	}

	return false
}

// isEnPassantTarget checks that target is a square the opponent's pawn has
// just skipped over, with that pawn still standing beyond it.
func isEnPassantTarget(pos *chess.Position, target chess.Square, capturer chess.Colour) bool {
	targetRank := 5
	if capturer == chess.Black {
		targetRank = 2
	}
	if target.Rank() != targetRank || !pos.IsEmpty(target) {
		return false
	}
	victim := chess.SquareAt(targetRank-chess.ColourOffset(capturer), target.File())
	return pos.PieceAt(victim) == chess.MakeColouredPiece(capturer.Opposite(), chess.Pawn)
}

// isValidKnightMove checks the (2,1) jump. Knights need no path check.
func isValidKnightMove(move chess.Move) bool {
	rankDiff, fileDiff := deltas(move.From, move.To)
	return (rankDiff == 2 && fileDiff == 1) || (rankDiff == 1 && fileDiff == 2)
}

// isValidBishopMove checks a non-zero diagonal with a clear path.
func isValidBishopMove(pos *chess.Position, move chess.Move) bool {
	rankDiff, fileDiff := deltas(move.From, move.To)
	return rankDiff == fileDiff && rankDiff > 0 && isPathClear(pos, move.From, move.To)
}

// isValidRookMove requires exactly one of rank and file to change, so a
// zero-displacement move is never a rook move, and the path to be clear.
func isValidRookMove(pos *chess.Position, move chess.Move) bool {
	rankDiff, fileDiff := deltas(move.From, move.To)
	oneAxis := (rankDiff == 0) != (fileDiff == 0)
	return oneAxis && isPathClear(pos, move.From, move.To)
}

// isValidQueenMove is the union of the rook and bishop rules.
func isValidQueenMove(pos *chess.Position, move chess.Move) bool {
	return isValidRookMove(pos, move) || isValidBishopMove(pos, move)
}

// isValidKingMove accepts a one-square step or a castling move.
func isValidKingMove(pos *chess.Position, move chess.Move) bool {
	rankDiff, fileDiff := deltas(move.From, move.To)
	if rankDiff <= 1 && fileDiff <= 1 {
		return rankDiff+fileDiff > 0
	}
	if rankDiff == 0 && fileDiff == 2 {
		return canCastle(pos, move)
	}
	return false
}

// isKingStep is the check-free adjacency test used by attack detection.
func isKingStep(from, to chess.Square) bool {
	rankDiff, fileDiff := deltas(from, to)
	return rankDiff <= 1 && fileDiff <= 1 && rankDiff+fileDiff > 0
}

// isPathClear checks that every square strictly between from and to is empty.
// from and to must share a rank, file or diagonal.
func isPathClear(pos *chess.Position, from, to chess.Square) bool {
	rankDir := sign(to.Rank() - from.Rank())
	fileDir := sign(to.File() - from.File())

	rank := from.Rank() + rankDir
	file := from.File() + fileDir

	for rank != to.Rank() || file != to.File() {
		if !pos.IsEmpty(chess.SquareAt(rank, file)) {
			return false
		}
		rank += rankDir
		file += fileDir
	}

	return true
}
