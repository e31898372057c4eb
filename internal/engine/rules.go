// Package engine provides chess move validation, legal move generation and
// board manipulation.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// FiftyMoveHalfmoves is the half-move clock value at which the fifty-move
// rule makes the game drawn.
const FiftyMoveHalfmoves = 100

// HasInsufficientMaterial returns true if the position is treated as lacking
// mating material. This is a simplified test:
// - K vs K (two pieces or fewer)
// - K+B vs K or K+N vs K (exactly three pieces, one a minor piece)
// Other drawn endings such as K+N+N vs K are not detected.
func HasInsufficientMaterial(pos *chess.Position) bool {
	count := 0
	hasMinor := false

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.PieceAt(sq)
		if !piece.IsPiece() {
			continue
		}
		count++
		switch chess.ExtractPiece(piece) {
		case chess.Bishop, chess.Knight:
			hasMinor = true
		}
	}

	return count <= 2 || (count == 3 && hasMinor)
}
