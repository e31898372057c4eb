// Package errors provides sentinel errors and error types for the chess
// rules tools. The rules core reports failure with booleans; the layers
// around it (notation, game sessions, the ledger, the binaries) turn those
// failures into these errors so callers can inspect them with errors.Is()
// and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidMoveText indicates move text that cannot be parsed.
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrGameOver indicates a move was attempted after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrNothingToUndo indicates an undo with no moves played.
	ErrNothingToUndo = errors.New("no moves to undo")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRecordNotFound indicates a ledger lookup for an unknown game.
	ErrRecordNotFound = errors.New("game record not found")

	// ErrLedgerClosed indicates use of a ledger after Close.
	ErrLedgerClosed = errors.New("ledger is closed")

	// ErrPerftMismatch indicates a node count that disagrees with the reference generator.
	ErrPerftMismatch = errors.New("perft count mismatch")
)

// TranscriptError wraps a replay failure with the transcript location and
// the move text that could not be played.
type TranscriptError struct {
	Err      error  // The underlying error
	File     string // Transcript name (if known)
	Line     int    // 1-based line number
	MoveText string // The offending line, trimmed
}

// Error returns a formatted error message including all available context.
func (e *TranscriptError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case context == "":
		return "transcript error"
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the TranscriptError wrapper.
func (e *TranscriptError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
