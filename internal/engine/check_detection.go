package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A position without that king is never in check.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	king := pos.FindKing(colour)
	if king == chess.NoSquare {
		return false
	}
	return IsSquareAttacked(pos, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour could move to
// target by its movement rule, ignoring check. Every origin square is
// scanned once.
func IsSquareAttacked(pos *chess.Position, target chess.Square, byColour chess.Colour) bool {
	if !target.Valid() {
		return false
	}

	for from := chess.Square(0); from < chess.NumSquares; from++ {
		piece := pos.Squares[from]
		if !piece.IsPiece() || chess.ExtractColour(piece) != byColour {
			continue
		}
		if attacks(pos, piece, from, target) {
			return true
		}
	}
	return false
}

// attacks reports whether piece standing on from attacks target.
func attacks(pos *chess.Position, piece chess.Piece, from, target chess.Square) bool {
	move := chess.NewMove(from, target, piece)

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		// Capture geometry only: a pawn attacks a diagonal square whether
		// or not anything stands on it.
		dir := chess.ColourOffset(chess.ExtractColour(piece))
		return target.Rank() == from.Rank()+dir && abs(target.File()-from.File()) == 1
	case chess.Knight:
		return isValidKnightMove(move)
	case chess.Bishop:
		return isValidBishopMove(pos, move)
	case chess.Rook:
		return isValidRookMove(pos, move)
	case chess.Queen:
		return isValidQueenMove(pos, move)
	case chess.King:
		// Never the full king rule: castling legality itself asks
		// about attacked squares.
		return isKingStep(from, target)
	}
	return false
}
