// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	depth     = flag.Int("d", 4, "Search depth in plies")
	movesFile = flag.String("moves", "", "Transcript of moves to play before counting")
	workers   = flag.Int("j", runtime.NumCPU(), "Number of worker goroutines")
	verify    = flag.Bool("verify", false, "Cross-check every root move against an independent move generator")
	noDivide  = flag.Bool("nodivide", false, "Print only the total, not the count below each root move")
	unique    = flag.Bool("unique", false, "Also count the distinct leaf positions")
	maxPos    = flag.Int("maxpositions", 0, "Limit on leaf positions remembered by -unique (0 = no limit)")
	output    = flag.String("o", "", "Write results to this file instead of stdout")

	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 running commentary")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies parsed flag values into cfg.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	cfg.InputFile = *movesFile
	cfg.OutputFilename = *output
	cfg.Perft.Depth = *depth
	cfg.Perft.Workers = *workers
	cfg.Perft.Verify = *verify
	cfg.Perft.Divide = !*noDivide
	cfg.Perft.Unique = *unique
	cfg.Perft.MaxPositions = *maxPos
}
