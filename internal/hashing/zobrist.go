package hashing

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Coloured piece values fit below this bound.
const pieceValues = 1 << (chess.PieceShift + 3)

var (
	pieceKeys     [chess.NumSquares][pieceValues]uint64
	blackToMove   uint64
	castlingKeys  [chess.NumColours][2]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	rng := splitMix(0x5D588B656C078965)
	for sq := range pieceKeys {
		for p := range pieceKeys[sq] {
			pieceKeys[sq][p] = rng.next()
		}
	}
	blackToMove = rng.next()
	for c := range castlingKeys {
		castlingKeys[c][0] = rng.next()
		castlingKeys[c][1] = rng.next()
	}
	for f := range enPassantKeys {
		enPassantKeys[f] = rng.next()
	}
}

// splitMix is the SplitMix64 generator; fixed seeding keeps hashes stable
// across runs so they can be persisted.
type splitMix uint64

func (s *splitMix) next() uint64 {
	*s += 0x9E3779B97F4A7C15
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Zobrist returns the hash of the placement, side to move, castling rights
// and en-passant file of pos. The move counters are not part of the hash.
func Zobrist(pos *chess.Position) uint64 {
	var hash uint64
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if piece := pos.Squares[sq]; piece.IsPiece() {
			hash ^= pieceKeys[sq][piece]
		}
	}
	if pos.ToMove == chess.Black {
		hash ^= blackToMove
	}
	for c := chess.Colour(0); c < chess.NumColours; c++ {
		if pos.Castling[c].Kingside {
			hash ^= castlingKeys[c][0]
		}
		if pos.Castling[c].Queenside {
			hash ^= castlingKeys[c][1]
		}
	}
	if pos.EnPassant != chess.NoSquare {
		hash ^= enPassantKeys[pos.EnPassant.File()]
	}
	return hash
}
