package chess

// Square is a board cell index: rank*8 + file, a1 = 0, h8 = 63.
type Square int

// NoSquare marks an absent or invalid square.
const NoSquare Square = -1

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	FileBase = 'a'
)

// Named squares used by castling and the starting position.
const (
	A1 Square = 0
	B1 Square = 1
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	B8 Square = 57
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// SquareAt returns the square for a 0-based rank and file, or NoSquare
// when either coordinate is off the board.
func SquareAt(rank, file int) Square {
	if !InBounds(rank, file) {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// InBounds reports whether a 0-based rank and file lie on the board.
func InBounds(rank, file int) bool {
	return rank >= 0 && rank < BoardSize && file >= 0 && file < BoardSize
}

// Valid reports whether s addresses one of the 64 board cells.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Rank returns the 0-based rank of s.
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// File returns the 0-based file of s.
func (s Square) File() int {
	return int(s) % BoardSize
}

// String returns the algebraic name of s ("e4"), or "-" for an invalid square.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File()), byte(RankBase + s.Rank())})
}

// ParseSquare converts two-character algebraic text to a square.
// Wrong length or out-of-range characters yield NoSquare.
func ParseSquare(text string) Square {
	if len(text) != 2 {
		return NoSquare
	}
	file := int(text[0]) - FileBase
	rank := int(text[1]) - RankBase
	return SquareAt(rank, file)
}
