package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Engine owns one game's position and the history of snapshots needed to
// take moves back. An Engine is not safe for concurrent use; run independent
// games on independent engines.
type Engine struct {
	pos     chess.Position
	history []chess.Position
}

// NewEngine creates an engine at the standard starting position.
func NewEngine() *Engine {
	return &Engine{pos: chess.StartingPosition()}
}

// NewEngineFromPosition creates an engine that starts from pos with an
// empty history.
func NewEngineFromPosition(pos chess.Position) *Engine {
	return &Engine{pos: pos}
}

// Reset returns to the starting position and clears the history.
func (e *Engine) Reset() {
	e.pos = chess.StartingPosition()
	e.history = e.history[:0]
}

// Clone returns an independent engine with a copy of the position and history.
func (e *Engine) Clone() *Engine {
	history := make([]chess.Position, len(e.history))
	copy(history, e.history)
	return &Engine{pos: e.pos, history: history}
}

// Position returns a snapshot of the current position.
func (e *Engine) Position() chess.Position {
	return e.pos
}

// ToMove returns the side to move.
func (e *Engine) ToMove() chess.Colour {
	return e.pos.ToMove
}

// PieceAt returns the piece on sq, or Off for an out-of-range square.
func (e *Engine) PieceAt(sq chess.Square) chess.Piece {
	return e.pos.PieceAt(sq)
}

// HistoryLen returns the number of moves that can be undone.
func (e *Engine) HistoryLen() int {
	return len(e.history)
}

// LegalMoves returns the legal moves for the side to move.
func (e *Engine) LegalMoves() []chess.Move {
	return GenerateLegalMoves(&e.pos)
}

// IsValidMove returns true if move is legal in the current position.
func (e *Engine) IsValidMove(move chess.Move) bool {
	return IsValidMove(&e.pos, move)
}

// ApplyMove plays move if it is legal, saving the previous position for undo.
// An illegal move leaves the engine untouched and returns false.
func (e *Engine) ApplyMove(move chess.Move) bool {
	next := e.pos
	if !ApplyMove(&next, move) {
		return false
	}
	e.history = append(e.history, e.pos)
	e.pos = next
	return true
}

// UndoMove restores the position before the last applied move.
// Returns false if there is nothing to undo.
func (e *Engine) UndoMove() bool {
	if len(e.history) == 0 {
		return false
	}
	last := len(e.history) - 1
	e.pos = e.history[last]
	e.history = e.history[:last]
	return true
}

// IsInCheck returns true if colour's king is attacked.
func (e *Engine) IsInCheck(colour chess.Colour) bool {
	return IsInCheck(&e.pos, colour)
}

// IsCheckmate returns true if the side to move is checkmated.
func (e *Engine) IsCheckmate() bool {
	return IsCheckmate(&e.pos)
}

// IsStalemate returns true if the side to move is stalemated.
func (e *Engine) IsStalemate() bool {
	return IsStalemate(&e.pos)
}

// IsDraw returns true under the fifty-move rule or insufficient material.
func (e *Engine) IsDraw() bool {
	return IsDraw(&e.pos)
}

// Result returns the outcome of the current position.
func (e *Engine) Result() Result {
	return GameResult(&e.pos)
}
