package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ApplyMove validates move against the legal move list and, if legal,
// applies the matching generated move to pos.
// Returns true if the move was applied; on false pos is unchanged.
func ApplyMove(pos *chess.Position, move chess.Move) bool {
	legal, ok := FindLegalMove(pos, move)
	if !ok {
		return false
	}
	makeMove(pos, legal)
	return true
}

// makeMove applies an already validated move and updates the board state:
// en passant removal, castling rook, promotion, castling rights, en passant
// target, clocks and side to move.
func makeMove(pos *chess.Position, move chess.Move) {
	colour := pos.ToMove

	// Handle en passant capture
	if move.EnPassant {
		pos.Set(chess.SquareAt(move.From.Rank(), move.To.File()), chess.Empty)
	}

	// Move the rook alongside the king
	if move.Castling {
		if layout, ok := layoutFor(colour, move.To); ok {
			rook := pos.PieceAt(layout.rookFrom)
			pos.Set(layout.rookFrom, chess.Empty)
			pos.Set(layout.rookTo, rook)
		}
	}

	// Move the piece
	placed := move.PieceToMove
	if move.IsPromotion() {
		placed = move.PromotedPiece
	}
	pos.Set(move.From, chess.Empty)
	pos.Set(move.To, placed)

	updateCastlingRights(pos, move)

	// Set en passant square if double pawn push
	pos.EnPassant = chess.NoSquare
	if move.DoublePawnPush {
		pos.EnPassant = chess.SquareAt(move.From.Rank()+chess.ColourOffset(colour), move.From.File())
	}

	// Update halfmove clock
	if chess.ExtractPiece(move.PieceToMove) == chess.Pawn || move.IsCapture() {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}

	if colour == chess.Black {
		pos.MoveNumber++
	}
	pos.ToMove = colour.Opposite()
}
