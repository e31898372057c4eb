// perft counts the leaf nodes of the legal move tree, optionally split by
// root move and cross-checked against a second move generator.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("perft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pos, err := startPosition(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	file, err := setupOutputFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	runErr := runPerft(cfg, pos)
	if file != nil {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing output file: %v\n", err)
		}
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// setupOutputFile points cfg.OutputFile at cfg.OutputFilename when one is
// set. The returned file, nil otherwise, belongs to the caller.
func setupOutputFile(cfg *config.Config) (*os.File, error) {
	if cfg.OutputFilename == "" {
		return nil, nil
	}
	file, err := os.Create(cfg.OutputFilename)
	if err != nil {
		return nil, err
	}
	cfg.OutputFile = file
	return file, nil
}

// startPosition returns the starting position, advanced by the transcript
// named in cfg.InputFile when one is given.
func startPosition(cfg *config.Config) (chess.Position, error) {
	if cfg.InputFile == "" {
		return chess.StartingPosition(), nil
	}
	g := game.New(cfg)
	if err := g.LoadFile(cfg.InputFile); err != nil {
		return chess.Position{}, err
	}
	return g.Position(), nil
}

// runPerft counts the tree below pos and writes the results to
// cfg.OutputFile. Verification failures are returned after the counts
// gathered so far have been printed.
func runPerft(cfg *config.Config, pos chess.Position) error {
	var seen *hashing.ThreadSafeDuplicateDetector
	process := worker.CountSubtree
	switch {
	case cfg.Perft.Verify:
		process = verifySubtree
	case cfg.Perft.Unique:
		seen = hashing.NewThreadSafeDuplicateDetector(true, cfg.Perft.MaxPositions)
		process = worker.UniqueLeaves(seen)
	}

	cfg.Logf(1, "%s\n", engine.FEN(&pos))
	start := time.Now()
	entries, err := worker.Divide(pos, cfg.Perft.Depth, cfg.Perft.Workers, process)
	elapsed := time.Since(start)

	if cfg.Perft.Divide {
		writeDivide(cfg.OutputFile, entries)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cfg.OutputFile, "\nNodes searched: %d\n", worker.Total(entries))
	if seen != nil {
		writeUnique(cfg, seen)
	}
	cfg.Logf(1, "depth %d, %d root moves, %d workers, %v\n",
		cfg.Perft.Depth, len(entries), cfg.Perft.Workers, elapsed.Round(time.Millisecond))
	if cfg.Perft.Verify {
		cfg.Logf(1, "all root moves match the reference generator\n")
	}
	return nil
}

// writeUnique prints the distinct and repeated leaf counts. A full position
// table stops remembering new leaves, so the counts become lower bounds.
func writeUnique(cfg *config.Config, seen *hashing.ThreadSafeDuplicateDetector) {
	fmt.Fprintf(cfg.OutputFile, "Unique positions: %d\n", seen.UniqueCount())
	fmt.Fprintf(cfg.OutputFile, "Transpositions: %d\n", seen.DuplicateCount())
	if seen.IsFull() {
		fmt.Fprintf(cfg.OutputFile, "Position limit of %d reached; counts are lower bounds\n", cfg.Perft.MaxPositions)
		cfg.Logf(1, "raise -maxpositions for exact unique counts\n")
	}
}

// writeDivide prints one "move: nodes" line per root move.
func writeDivide(w io.Writer, entries []engine.DivideEntry) {
	for _, entry := range entries {
		fmt.Fprintf(w, "%s: %d\n", notation.FormatMove(entry.Move), entry.Nodes)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "perft version %s\n\n", programVersion)
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts legal move sequences from the starting position, or from the\n")
	fmt.Fprintf(os.Stderr, "position reached by -moves.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
