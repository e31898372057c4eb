// Package notation converts between move text ("e2e4", "e2-e4", "e7e8q")
// and chess.Move values.
package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// isSeparator returns true for characters ignored between squares.
func isSeparator(r rune) bool {
	return r == '-' || r == ' ' || r == '\t'
}

// promotionPiece returns the piece type named by a promotion letter.
func promotionPiece(c byte) (chess.Piece, bool) {
	switch c {
	case 'Q', 'q':
		return chess.Queen, true
	case 'R', 'r':
		return chess.Rook, true
	case 'B', 'b':
		return chess.Bishop, true
	case 'N', 'n':
		return chess.Knight, true
	}
	return chess.Empty, false
}

// ParseMove decodes long algebraic move text against pos. Text needs at
// least four characters after separators are removed. The returned
// move carries the piece, captured piece, promotion and special-move flags
// the text implies; whether it is legal is left to the engine.
func ParseMove(pos *chess.Position, text string) (chess.Move, error) {
	clean := strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return -1
		}
		return r
	}, text)

	if len(clean) < 4 {
		return chess.Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMoveText)
	}

	from := chess.ParseSquare(strings.ToLower(clean[0:2]))
	to := chess.ParseSquare(strings.ToLower(clean[2:4]))
	if from == chess.NoSquare || to == chess.NoSquare {
		return chess.Move{}, fmt.Errorf("%q: bad square: %w", text, errors.ErrInvalidMoveText)
	}

	piece := pos.PieceAt(from)
	if !piece.IsPiece() {
		return chess.Move{}, fmt.Errorf("%q: no piece on %v: %w", text, from, errors.ErrInvalidMoveText)
	}

	move := chess.NewMove(from, to, piece)
	move.CapturedPiece = pos.PieceAt(to)

	// Only the fifth character is read; anything after it is ignored.
	if len(clean) >= 5 {
		promoted, ok := promotionPiece(clean[4])
		if !ok {
			return chess.Move{}, fmt.Errorf("%q: bad promotion piece %q: %w", text, clean[4], errors.ErrInvalidMoveText)
		}
		move.PromotedPiece = chess.MakeColouredPiece(chess.ExtractColour(piece), promoted)
	}

	deriveFlags(pos, &move)
	return move, nil
}

// deriveFlags sets the castling, en passant and double push flags the
// way the engine would for the same squares.
func deriveFlags(pos *chess.Position, move *chess.Move) {
	rankDiff := move.To.Rank() - move.From.Rank()
	fileDiff := move.To.File() - move.From.File()

	switch chess.ExtractPiece(move.PieceToMove) {
	case chess.King:
		move.Castling = rankDiff == 0 && (fileDiff == 2 || fileDiff == -2)
	case chess.Pawn:
		move.DoublePawnPush = fileDiff == 0 && (rankDiff == 2 || rankDiff == -2)
		if fileDiff != 0 && move.To == pos.EnPassant && pos.IsEmpty(move.To) {
			move.EnPassant = true
			move.CapturedPiece = pos.PieceAt(chess.SquareAt(move.From.Rank(), move.To.File()))
		}
	}
}

// FormatMove writes a move as from and to squares with an uppercase
// promotion letter, e.g. "e2e4" or "e7e8Q".
func FormatMove(move chess.Move) string {
	var sb strings.Builder
	sb.WriteString(move.From.String())
	sb.WriteString(move.To.String())
	if move.IsPromotion() {
		sb.WriteByte(engine.SANPieceLetter(chess.ExtractPiece(move.PromotedPiece)))
	}
	return sb.String()
}

// FormatMoves formats each move in order.
func FormatMoves(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, move := range moves {
		out[i] = FormatMove(move)
	}
	return out
}
