package chess

// CastlingRights holds one colour's remaining castling options.
// Rights are only ever revoked during play, never restored.
type CastlingRights struct {
	Kingside  bool
	Queenside bool
}

// Position captures all state needed to continue a game.
// It is a plain value: assigning a Position copies the whole board, which is
// what the engine relies on for history snapshots and scratch simulation.
type Position struct {
	// The board squares, indexed by Square.
	Squares [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// Castling rights indexed by Colour.
	Castling [NumColours]CastlingRights

	// The square passed over by the previous move's double pawn push,
	// or NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// The current move number, incremented after Black moves.
	MoveNumber int
}

// NewPosition creates an empty board with White to move and no castling rights.
func NewPosition() Position {
	p := Position{
		ToMove:     White,
		EnPassant:  NoSquare,
		MoveNumber: 1,
	}
	for sq := range p.Squares {
		p.Squares[sq] = Empty
	}
	return p
}

// StartingPosition returns the standard chess starting position.
func StartingPosition() Position {
	p := NewPosition()
	p.SetupInitialPosition()
	return p
}

// SetupInitialPosition sets up the standard chess starting position.
func (p *Position) SetupInitialPosition() {
	for sq := range p.Squares {
		p.Squares[sq] = Empty
	}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		p.Squares[SquareAt(0, file)] = W(backRank[file])
		p.Squares[SquareAt(1, file)] = W(Pawn)
		p.Squares[SquareAt(6, file)] = B(Pawn)
		p.Squares[SquareAt(7, file)] = B(backRank[file])
	}

	p.ToMove = White
	p.Castling[White] = CastlingRights{Kingside: true, Queenside: true}
	p.Castling[Black] = CastlingRights{Kingside: true, Queenside: true}
	p.EnPassant = NoSquare
	p.HalfmoveClock = 0
	p.MoveNumber = 1
}

// PieceAt returns the piece on sq. Squares outside 0-63 return Off.
func (p *Position) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return Off
	}
	return p.Squares[sq]
}

// Set places a piece on sq. Out-of-range squares are ignored.
func (p *Position) Set(sq Square, piece Piece) {
	if sq.Valid() {
		p.Squares[sq] = piece
	}
}

// IsEmpty reports whether sq is on the board and holds no piece.
func (p *Position) IsEmpty(sq Square) bool {
	return p.PieceAt(sq) == Empty
}

// IsOccupiedBy reports whether sq holds a piece of the given colour.
func (p *Position) IsOccupiedBy(sq Square, colour Colour) bool {
	piece := p.PieceAt(sq)
	return piece.IsPiece() && ExtractColour(piece) == colour
}

// ColourOf returns the colour of the piece on sq.
// Callers must not ask about an empty or off-board square.
func (p *Position) ColourOf(sq Square) Colour {
	return ExtractColour(p.PieceAt(sq))
}

// FindKing returns the square of the given colour's king, or NoSquare.
func (p *Position) FindKing(colour Colour) Square {
	king := MakeColouredPiece(colour, King)
	for sq := Square(0); sq < NumSquares; sq++ {
		if p.Squares[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// Ply returns the number of half-moves played since the first move,
// derived from MoveNumber and ToMove.
func (p *Position) Ply() int {
	ply := 2 * (p.MoveNumber - 1)
	if p.ToMove == Black {
		ply++
	}
	return ply
}

// PieceCount returns the number of pieces of both colours on the board.
func (p *Position) PieceCount() int {
	count := 0
	for _, piece := range p.Squares {
		if piece.IsPiece() {
			count++
		}
	}
	return count
}
