package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// PerftConfig holds settings for the perft tool.
type PerftConfig struct {
	// Depth is the search depth in plies
	Depth int

	// Workers is the number of goroutines counting root subtrees
	Workers int

	// Divide prints the count below each root move
	Divide bool

	// Verify cross-checks every root move against a second move generator
	Verify bool

	// Unique also counts the distinct leaf positions
	Unique bool

	// MaxPositions bounds the leaf positions remembered by Unique; 0 means
	// unlimited. Once full, the unique count is a lower bound.
	MaxPositions int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   4,
		Workers: runtime.NumCPU(),
		Divide:  true,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 1 {
		return fmt.Errorf("perft depth %d is below 1: %w", p.Depth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("worker count %d is below 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.MaxPositions < 0 {
		return fmt.Errorf("position limit %d is negative: %w", p.MaxPositions, errors.ErrInvalidConfig)
	}
	if p.Verify && p.Unique {
		return fmt.Errorf("verify and unique cannot be combined: %w", errors.ErrInvalidConfig)
	}
	return nil
}
