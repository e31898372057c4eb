// Package game runs a single chess game on top of the rules engine: it
// accepts moves as text, keeps the played move list and result, and saves
// or replays move transcripts.
package game

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// Game is one game session. A Game is not safe for concurrent use.
type Game struct {
	cfg    *config.Config
	engine *engine.Engine
	moves  []chess.Move
	result engine.Result
}

// New creates a game at the starting position. A nil cfg uses defaults.
func New(cfg *config.Config) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Game{
		cfg:    cfg,
		engine: engine.NewEngine(),
	}
}

// NewGame discards the current game and returns to the starting position.
func (g *Game) NewGame() {
	g.engine.Reset()
	g.moves = g.moves[:0]
	g.result = engine.Ongoing
	g.cfg.Logf(2, "new game\n")
}

// Engine returns the underlying rules engine for queries. Moves must go
// through the Game so the move list and result stay in step.
func (g *Game) Engine() *engine.Engine {
	return g.engine
}

// Position returns a snapshot of the current position.
func (g *Game) Position() chess.Position {
	return g.engine.Position()
}

// Result returns the game result as of the last move.
func (g *Game) Result() engine.Result {
	return g.result
}

// Moves returns a copy of the moves played so far.
func (g *Game) Moves() []chess.Move {
	moves := make([]chess.Move, len(g.moves))
	copy(moves, g.moves)
	return moves
}

// MakeMove parses text against the current position and plays it.
func (g *Game) MakeMove(text string) error {
	if g.result.IsTerminal() {
		return errors.ErrGameOver
	}
	pos := g.engine.Position()
	move, err := notation.ParseMove(&pos, text)
	if err != nil {
		return err
	}
	return g.Play(move)
}

// Play plays move if it is legal. The recorded move is the engine's own
// version, with flags derived from the position.
func (g *Game) Play(move chess.Move) error {
	if g.result.IsTerminal() {
		return errors.ErrGameOver
	}

	pos := g.engine.Position()
	legal, ok := engine.FindLegalMove(&pos, move)
	if !ok || !g.engine.ApplyMove(legal) {
		return fmt.Errorf("%s: %w", notation.FormatMove(move), errors.ErrIllegalMove)
	}

	g.moves = append(g.moves, legal)
	g.result = g.engine.Result()
	g.cfg.Logf(2, "%d. %s %s\n", len(g.moves), notation.FormatMove(legal), g.result)
	return nil
}

// UndoLastMove takes back the last move and reopens the game.
func (g *Game) UndoLastMove() error {
	if !g.engine.UndoMove() {
		return errors.ErrNothingToUndo
	}
	g.moves = g.moves[:len(g.moves)-1]
	g.result = engine.Ongoing
	return nil
}

// LegalMoveStrings returns the legal moves in text form, in generation order.
func (g *Game) LegalMoveStrings() []string {
	return notation.FormatMoves(g.engine.LegalMoves())
}

// IsValidMoveString reports whether text parses to a legal move.
func (g *Game) IsValidMoveString(text string) bool {
	pos := g.engine.Position()
	move, err := notation.ParseMove(&pos, text)
	if err != nil {
		return false
	}
	return engine.IsValidMove(&pos, move)
}

// MoveHistory returns the moves as numbered pairs: "1. e2e4 e7e5 2. g1f3".
func (g *Game) MoveHistory() string {
	var sb strings.Builder
	for i, move := range g.moves {
		if i%2 == 0 {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d.", i/2+1)
		}
		sb.WriteByte(' ')
		sb.WriteString(notation.FormatMove(move))
	}
	return sb.String()
}

// Describe returns a sentence for a result, as shown to players.
func Describe(result engine.Result) string {
	switch result {
	case engine.WhiteWins:
		return "Checkmate! White wins!"
	case engine.BlackWins:
		return "Checkmate! Black wins!"
	case engine.Draw:
		return "Game drawn."
	default:
		return "Game in progress."
	}
}
