// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Session options
	loadFile = flag.String("load", "", "Transcript to replay before the first prompt")
	dataDir  = flag.String("data", "", "Ledger directory for finished games (empty disables recording)")

	// Display options
	noBoard  = flag.Bool("noboard", false, "Don't draw the board after each command")
	noCoords = flag.Bool("nocoords", false, "Draw the board without file and rank labels")
	prompt   = flag.String("prompt", "> ", "Command prompt")

	// Diagnostics
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 running commentary")
	logFile   = flag.String("l", "", "Write diagnostics to this file instead of stderr")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies parsed flag values into cfg.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	cfg.InputFile = *loadFile
	cfg.Storage.DataDir = *dataDir
	cfg.Console.ShowBoard = !*noBoard
	cfg.Console.Coordinates = !*noCoords
	cfg.Console.Prompt = *prompt
}
