package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// moveFromText builds a move such as "e2e4" or "e7e8q" against pos.
// Only from, to and promotion matter for matching legal moves.
func moveFromText(t *testing.T, pos *chess.Position, text string) chess.Move {
	t.Helper()
	if len(text) != 4 && len(text) != 5 {
		t.Fatalf("bad move text %q", text)
	}
	from := testutil.MustSquare(t, text[0:2])
	to := testutil.MustSquare(t, text[2:4])
	move := chess.NewMove(from, to, pos.PieceAt(from))
	if len(text) == 5 {
		promoted := map[byte]chess.Piece{'q': chess.Queen, 'r': chess.Rook, 'b': chess.Bishop, 'n': chess.Knight}[text[4]]
		move.PromotedPiece = chess.MakeColouredPiece(pos.ToMove, promoted)
	}
	return move
}

// play applies each move to e, failing the test on the first illegal one.
func play(t *testing.T, e *Engine, moves ...string) {
	t.Helper()
	for _, text := range moves {
		pos := e.Position()
		if !e.ApplyMove(moveFromText(t, &pos, text)) {
			t.Fatalf("ApplyMove(%s) = false in %s", text, FEN(&pos))
		}
	}
}

// uci formats a move as from+to plus a lowercase promotion letter.
func uci(move chess.Move) string {
	s := move.From.String() + move.To.String()
	if move.IsPromotion() {
		s += string(rune(SANPieceLetter(chess.ExtractPiece(move.PromotedPiece)) + 'a' - 'A'))
	}
	return s
}

// movesFrom returns the uci strings of the legal moves starting on from.
func movesFrom(pos *chess.Position, from string) []string {
	var out []string
	for _, move := range GenerateLegalMoves(pos) {
		if move.From.String() == from {
			out = append(out, uci(move))
		}
	}
	return out
}

// hasMove reports whether text is among the legal moves.
func hasMove(pos *chess.Position, text string) bool {
	for _, move := range GenerateLegalMoves(pos) {
		if uci(move) == text {
			return true
		}
	}
	return false
}
