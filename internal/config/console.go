package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ConsoleConfig holds settings for the interactive command loop.
type ConsoleConfig struct {
	// ShowBoard renders the board after every command
	ShowBoard bool

	// Prompt is printed before each command is read
	Prompt string

	// Coordinates adds file letters and rank digits around the board
	Coordinates bool
}

// NewConsoleConfig creates a ConsoleConfig with default values.
func NewConsoleConfig() *ConsoleConfig {
	return &ConsoleConfig{
		ShowBoard:   true,
		Prompt:      "> ",
		Coordinates: true,
	}
}

// Validate checks that the console configuration is usable.
func (c *ConsoleConfig) Validate() error {
	if c.Prompt == "" {
		return fmt.Errorf("console prompt is empty: %w", errors.ErrInvalidConfig)
	}
	return nil
}
