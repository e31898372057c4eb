package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Result is the outcome of a game.
type Result int

const (
	Ongoing Result = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the result in score form ("1-0", "0-1", "1/2-1/2", "*").
func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// IsTerminal returns true if the game is over.
func (r Result) IsTerminal() bool {
	return r != Ongoing
}

// Winner returns the winning colour for a decisive result.
func (r Result) Winner() (chess.Colour, bool) {
	switch r {
	case WhiteWins:
		return chess.White, true
	case BlackWins:
		return chess.Black, true
	}
	return chess.White, false
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	return IsInCheck(pos, pos.ToMove) && !HasLegalMoves(pos)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	return !IsInCheck(pos, pos.ToMove) && !HasLegalMoves(pos)
}

// IsDraw returns true under the fifty-move rule or insufficient material.
// Stalemate and repetition are not part of this test.
func IsDraw(pos *chess.Position) bool {
	return pos.HalfmoveClock >= FiftyMoveHalfmoves || HasInsufficientMaterial(pos)
}

// GameResult classifies the position: checkmate wins for the side that
// just moved, stalemate and draws are Draw.
func GameResult(pos *chess.Position) Result {
	inCheck := IsInCheck(pos, pos.ToMove)
	if !HasLegalMoves(pos) {
		if !inCheck {
			return Draw
		}
		if pos.ToMove == chess.White {
			return BlackWins
		}
		return WhiteWins
	}
	if IsDraw(pos) {
		return Draw
	}
	return Ongoing
}
