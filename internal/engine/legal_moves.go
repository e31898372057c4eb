package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// GenerateLegalMoves returns every legal move for the side to move.
// Moves are ordered by origin square, then destination square, then
// promotion piece (queen, rook, bishop, knight). The slice is freshly
// built on every call.
func GenerateLegalMoves(pos *chess.Position) []chess.Move {
	var moves []chess.Move
	colour := pos.ToMove

	for from := chess.Square(0); from < chess.NumSquares; from++ {
		piece := pos.Squares[from]
		if !piece.IsPiece() || chess.ExtractColour(piece) != colour {
			continue
		}

		for to := chess.Square(0); to < chess.NumSquares; to++ {
			if from == to {
				continue
			}

			move := chess.NewMove(from, to, piece)
			move.CapturedPiece = pos.Squares[to]

			// Skip if capturing own piece
			if pos.IsOccupiedBy(to, colour) {
				continue
			}

			if !isStructurallyValid(pos, move) {
				continue
			}
			setMoveFlags(pos, &move)

			if isPromotion(move) {
				for _, promoted := range chess.PromotionPieces {
					candidate := move
					candidate.PromotedPiece = chess.MakeColouredPiece(colour, promoted)
					if !wouldLeaveKingInCheck(pos, candidate, colour) {
						moves = append(moves, candidate)
					}
				}
				continue
			}

			if !wouldLeaveKingInCheck(pos, move, colour) {
				moves = append(moves, move)
			}
		}
	}

	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos *chess.Position) bool {
	return len(GenerateLegalMoves(pos)) > 0
}

// IsValidMove returns true if a move with the same from, to and promotion
// appears in the legal move list.
func IsValidMove(pos *chess.Position, move chess.Move) bool {
	_, ok := FindLegalMove(pos, move)
	return ok
}

// FindLegalMove returns the generated legal move matching move's from, to
// and promotion. The returned move carries the engine's own flags and
// captured piece.
func FindLegalMove(pos *chess.Position, move chess.Move) (chess.Move, bool) {
	for _, legal := range GenerateLegalMoves(pos) {
		if legal.SameAs(move) {
			return legal, true
		}
	}
	return chess.Move{}, false
}

// setMoveFlags marks en passant, double pawn pushes and castling from the
// position the move is made in.
func setMoveFlags(pos *chess.Position, move *chess.Move) {
	switch chess.ExtractPiece(move.PieceToMove) {
	case chess.Pawn:
		if move.To == pos.EnPassant && move.From.File() != move.To.File() {
			move.EnPassant = true
			move.CapturedPiece = pos.PieceAt(chess.SquareAt(move.From.Rank(), move.To.File()))
		}
		if abs(move.To.Rank()-move.From.Rank()) == 2 {
			move.DoublePawnPush = true
		}
	case chess.King:
		if abs(move.To.File()-move.From.File()) == 2 {
			move.Castling = true
		}
	}
}

// isPromotion reports whether a pawn move lands on the last rank.
func isPromotion(move chess.Move) bool {
	if chess.ExtractPiece(move.PieceToMove) != chess.Pawn {
		return false
	}
	if chess.ExtractColour(move.PieceToMove) == chess.White {
		return move.To.Rank() == chess.BoardSize-1
	}
	return move.To.Rank() == 0
}

// wouldLeaveKingInCheck plays move on a scratch copy of the position and
// reports whether colour's king is attacked afterwards. pos is not touched.
func wouldLeaveKingInCheck(pos *chess.Position, move chess.Move, colour chess.Colour) bool {
	scratch := *pos
	makeMove(&scratch, move)
	return IsInCheck(&scratch, colour)
}
