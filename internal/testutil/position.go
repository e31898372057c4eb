// Package testutil provides shared test utilities for the chess-rules-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// BuildPosition places pieces on an otherwise empty board.
// Keys are algebraic squares ("e1"); castling rights and en passant are
// left cleared for the caller to set. It calls t.Fatal on a bad square.
func BuildPosition(t *testing.T, toMove chess.Colour, pieces map[string]chess.Piece) chess.Position {
	t.Helper()
	pos := chess.NewPosition()
	pos.ToMove = toMove
	for text, piece := range pieces {
		sq := chess.ParseSquare(text)
		if sq == chess.NoSquare {
			t.Fatalf("BuildPosition: invalid square %q", text)
		}
		pos.Set(sq, piece)
	}
	return pos
}

// MustSquare parses an algebraic square and calls t.Fatal if it is invalid.
func MustSquare(t *testing.T, text string) chess.Square {
	t.Helper()
	sq := chess.ParseSquare(text)
	if sq == chess.NoSquare {
		t.Fatalf("invalid square %q", text)
	}
	return sq
}
