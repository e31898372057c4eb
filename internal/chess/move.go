package chess

// Move represents a single move from one square to another.
// Pieces are coloured; CapturedPiece and PromotedPiece are Empty when unused.
type Move struct {
	From Square
	To   Square

	// The piece being moved.
	PieceToMove Piece

	// The piece captured (Empty if no capture). For en passant this is the
	// pawn removed from beside the destination square.
	CapturedPiece Piece

	// The piece promoted to (Empty if not a promotion).
	PromotedPiece Piece

	EnPassant      bool
	Castling       bool
	DoublePawnPush bool
}

// NewMove creates a move of piece from one square to another with no
// capture, promotion or special flags.
func NewMove(from, to Square, piece Piece) Move {
	return Move{
		From:          from,
		To:            to,
		PieceToMove:   piece,
		CapturedPiece: Empty,
		PromotedPiece: Empty,
	}
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.CapturedPiece.IsPiece() || m.EnPassant
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.PromotedPiece.IsPiece()
}

// PromotionKind returns the piece type promoted to, or Empty when the move
// is not a promotion. PromotedPiece may hold a coloured piece or a bare
// piece type; Off and Empty both mean no promotion.
func (m Move) PromotionKind() Piece {
	switch {
	case m.PromotedPiece.IsPiece():
		return ExtractPiece(m.PromotedPiece)
	case m.PromotedPiece >= Pawn && m.PromotedPiece <= King:
		return m.PromotedPiece
	}
	return Empty
}

// SameAs reports whether two moves name the same from, to and promotion.
// Flags, captured piece and the promotion's colour are not compared.
func (m Move) SameAs(other Move) bool {
	return m.From == other.From && m.To == other.To && m.PromotionKind() == other.PromotionKind()
}
