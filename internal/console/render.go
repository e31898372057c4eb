package console

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

const fileLabels = "  a b c d e f g h\n"

// pieceChar returns the board letter for a square's contents.
func pieceChar(piece chess.Piece) byte {
	if !piece.IsPiece() {
		return '.'
	}
	return engine.ColouredPieceToSANLetter(piece)
}

// RenderBoard draws pos as text, rank 8 at the top, White in uppercase.
func RenderBoard(pos *chess.Position, showCoords bool) string {
	var sb strings.Builder

	if showCoords {
		sb.WriteString(fileLabels)
	}
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		if showCoords {
			fmt.Fprintf(&sb, "%d ", rank+1)
		}
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(pieceChar(pos.PieceAt(chess.SquareAt(rank, file))))
			sb.WriteByte(' ')
		}
		if showCoords {
			fmt.Fprintf(&sb, "%d", rank+1)
		}
		sb.WriteByte('\n')
	}
	if showCoords {
		sb.WriteString(fileLabels)
	}
	fmt.Fprintf(&sb, "\nTo move: %v\n", pos.ToMove)
	return sb.String()
}

// RenderStatus describes check or the end of the game, or returns "" when
// there is nothing to report.
func RenderStatus(pos *chess.Position, result engine.Result) string {
	if result == engine.Draw && engine.IsStalemate(pos) {
		return "Stalemate! " + game.Describe(result)
	}
	if result.IsTerminal() {
		return game.Describe(result)
	}
	if engine.IsInCheck(pos, pos.ToMove) {
		return fmt.Sprintf("%v is in check!", pos.ToMove)
	}
	return ""
}

// RenderMoveList lays out move strings eight to a line.
func RenderMoveList(moves []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Legal moves (%d total):\n", len(moves))
	for i, move := range moves {
		sb.WriteString(move)
		if (i+1)%8 == 0 || i == len(moves)-1 {
			sb.WriteByte('\n')
		} else {
			sb.WriteString("  ")
		}
	}
	return sb.String()
}
