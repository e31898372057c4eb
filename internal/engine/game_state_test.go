package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestGameResult_FoolsMate(t *testing.T) {
	e := NewEngine()
	play(t, e, "f2f3", "e7e5", "g2g4", "d8h4")

	testutil.AssertTrue(t, e.IsInCheck(chess.White))
	testutil.AssertTrue(t, e.IsCheckmate())
	testutil.AssertFalse(t, e.IsStalemate())
	testutil.AssertEqual(t, e.Result(), BlackWins)
	testutil.AssertEqual(t, len(e.LegalMoves()), 0)
}

func TestGameResult_ScholarsMate(t *testing.T) {
	e := NewEngine()
	play(t, e, "e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7")

	testutil.AssertTrue(t, e.IsCheckmate())
	testutil.AssertEqual(t, e.Result(), WhiteWins)
}

func TestGameResult_Stalemate(t *testing.T) {
	pos := testutil.BuildPosition(t, chess.Black, map[string]chess.Piece{
		"a8": chess.B(chess.King),
		"a7": chess.W(chess.Pawn),
		"b6": chess.W(chess.King),
	})

	testutil.AssertFalse(t, IsInCheck(&pos, chess.Black))
	testutil.AssertTrue(t, IsStalemate(&pos))
	testutil.AssertFalse(t, IsCheckmate(&pos))
	testutil.AssertEqual(t, GameResult(&pos), Draw)
}

func TestGameResult_Draws(t *testing.T) {
	tests := []struct {
		name     string
		pieces   map[string]chess.Piece
		halfmove int
		want     Result
	}{
		{
			name:   "king versus king",
			pieces: map[string]chess.Piece{"e1": chess.W(chess.King), "e8": chess.B(chess.King)},
			want:   Draw,
		},
		{
			name:   "king and bishop versus king",
			pieces: map[string]chess.Piece{"e1": chess.W(chess.King), "c1": chess.W(chess.Bishop), "e8": chess.B(chess.King)},
			want:   Draw,
		},
		{
			name:   "king and knight versus king",
			pieces: map[string]chess.Piece{"e1": chess.W(chess.King), "e8": chess.B(chess.King), "g8": chess.B(chess.Knight)},
			want:   Draw,
		},
		{
			name: "two knights are not detected",
			pieces: map[string]chess.Piece{
				"e1": chess.W(chess.King), "b1": chess.W(chess.Knight), "g1": chess.W(chess.Knight), "e8": chess.B(chess.King),
			},
			want: Ongoing,
		},
		{
			name:   "king and rook versus king",
			pieces: map[string]chess.Piece{"e1": chess.W(chess.King), "a1": chess.W(chess.Rook), "e8": chess.B(chess.King)},
			want:   Ongoing,
		},
		{
			name:     "fifty-move rule",
			pieces:   map[string]chess.Piece{"e1": chess.W(chess.King), "a1": chess.W(chess.Rook), "e8": chess.B(chess.King)},
			halfmove: 100,
			want:     Draw,
		},
		{
			name:     "one half-move short",
			pieces:   map[string]chess.Piece{"e1": chess.W(chess.King), "a1": chess.W(chess.Rook), "e8": chess.B(chess.King)},
			halfmove: 99,
			want:     Ongoing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.BuildPosition(t, chess.White, tt.pieces)
			pos.HalfmoveClock = tt.halfmove
			if got := GameResult(&pos); got != tt.want {
				t.Errorf("GameResult() = %v, want %v", got, tt.want)
			}
			testutil.AssertEqual(t, IsDraw(&pos), tt.want == Draw)
		})
	}
}

func TestGameResult_CheckmateBeatsFiftyMoveRule(t *testing.T) {
	e := NewEngine()
	play(t, e, "f2f3", "e7e5", "g2g4", "d8h4")
	pos := e.Position()
	pos.HalfmoveClock = 120
	testutil.AssertEqual(t, GameResult(&pos), BlackWins)
}

func TestResult_String(t *testing.T) {
	tests := []struct {
		result Result
		want   string
	}{
		{Ongoing, "*"},
		{WhiteWins, "1-0"},
		{BlackWins, "0-1"},
		{Draw, "1/2-1/2"},
	}
	for _, tt := range tests {
		if got := tt.result.String(); got != tt.want {
			t.Errorf("Result(%d).String() = %q, want %q", tt.result, got, tt.want)
		}
	}
}

func TestResult_Winner(t *testing.T) {
	colour, ok := WhiteWins.Winner()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, colour, chess.White)

	colour, ok = BlackWins.Winner()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, colour, chess.Black)

	_, ok = Draw.Winner()
	testutil.AssertFalse(t, ok)
	testutil.AssertTrue(t, Draw.IsTerminal())
	testutil.AssertFalse(t, Ongoing.IsTerminal())
}
