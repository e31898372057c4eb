package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castleLayout describes the squares involved in one castling option.
type castleLayout struct {
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
	transit  chess.Square   // square the king crosses
	between  []chess.Square // squares that must be empty
}

var castleLayouts = [chess.NumColours][2]castleLayout{
	chess.White: {
		{chess.E1, chess.G1, chess.H1, chess.F1, chess.F1, []chess.Square{chess.F1, chess.G1}},
		{chess.E1, chess.C1, chess.A1, chess.D1, chess.D1, []chess.Square{chess.D1, chess.C1, chess.B1}},
	},
	chess.Black: {
		{chess.E8, chess.G8, chess.H8, chess.F8, chess.F8, []chess.Square{chess.F8, chess.G8}},
		{chess.E8, chess.C8, chess.A8, chess.D8, chess.D8, []chess.Square{chess.D8, chess.C8, chess.B8}},
	},
}

// layoutFor returns the castling layout for a king landing on kingTo.
func layoutFor(colour chess.Colour, kingTo chess.Square) (castleLayout, bool) {
	for _, layout := range castleLayouts[colour] {
		if layout.kingTo == kingTo {
			return layout, true
		}
	}
	return castleLayout{}, false
}

// canCastle checks a two-file king move against rights, occupancy and
// attacks on the king's start, transit and destination squares.
func canCastle(pos *chess.Position, move chess.Move) bool {
	colour := chess.ExtractColour(move.PieceToMove)
	layout, ok := layoutFor(colour, move.To)
	if !ok || move.From != layout.kingFrom {
		return false
	}

	rights := pos.Castling[colour]
	kingside := layout.kingTo.File() == 6
	if (kingside && !rights.Kingside) || (!kingside && !rights.Queenside) {
		return false
	}

	if pos.PieceAt(layout.kingFrom) != chess.MakeColouredPiece(colour, chess.King) ||
		pos.PieceAt(layout.rookFrom) != chess.MakeColouredPiece(colour, chess.Rook) {
		return false
	}

	for _, sq := range layout.between {
		if !pos.IsEmpty(sq) {
			return false
		}
	}

	enemy := colour.Opposite()
	for _, sq := range []chess.Square{layout.kingFrom, layout.transit, layout.kingTo} {
		if IsSquareAttacked(pos, sq, enemy) {
			return false
		}
	}
	return true
}

// updateCastlingRights removes rights when a king or rook leaves its
// starting square, or something lands on one of those squares.
func updateCastlingRights(pos *chess.Position, move chess.Move) {
	touched := func(sq chess.Square) bool {
		return move.From == sq || move.To == sq
	}

	for colour := chess.Black; colour <= chess.White; colour++ {
		kingside, queenside := castleLayouts[colour][0], castleLayouts[colour][1]
		if touched(kingside.kingFrom) {
			pos.Castling[colour] = chess.CastlingRights{}
			continue
		}
		if touched(kingside.rookFrom) {
			pos.Castling[colour].Kingside = false
		}
		if touched(queenside.rookFrom) {
			pos.Castling[colour].Queenside = false
		}
	}

	if chess.ExtractPiece(move.PieceToMove) == chess.King {
		pos.Castling[chess.ExtractColour(move.PieceToMove)] = chess.CastlingRights{}
	}
}
