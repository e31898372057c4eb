// chess is an interactive two-player chess console.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/console"
	"github.com/lgbarn/chess-rules-go/internal/storage"
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
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log := setupLogFile(cfg)

	ledger, err := openLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger %s: %v\n", cfg.Storage.DataDir, err)
		closeResources(nil, log)
		os.Exit(1)
	}

	var recorder console.Recorder
	if ledger != nil {
		recorder = ledger
	}
	runErr := run(cfg, os.Stdin, recorder)

	closeResources(ledger, log)
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// setupLogFile redirects diagnostics when -l is given. The file it returns,
// nil without -l, belongs to the caller.
func setupLogFile(cfg *config.Config) *os.File {
	if *logFile == "" {
		return nil
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
	return file
}

// closeResources closes the ledger and then the log file. Either may be nil.
func closeResources(ledger *storage.Ledger, log *os.File) {
	if ledger != nil {
		if err := ledger.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing ledger: %v\n", err)
		}
	}
	if log != nil {
		if err := log.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing log file: %v\n", err)
		}
	}
}

// openLedger opens the finished-game ledger, or returns nil when recording
// is disabled.
func openLedger(cfg *config.Config) (*storage.Ledger, error) {
	switch {
	case !cfg.Storage.Enabled():
		return nil, nil
	case cfg.Storage.InMemory:
		return storage.OpenInMemory()
	default:
		return storage.Open(cfg.Storage.DataDir)
	}
}

// run replays the start-up transcript, if any, and then drives the console
// until the user quits or input ends.
func run(cfg *config.Config, in io.Reader, ledger console.Recorder) error {
	c := console.New(cfg, in, ledger)
	if cfg.InputFile != "" {
		if err := c.Game().LoadFile(cfg.InputFile); err != nil {
			return err
		}
		cfg.Logf(1, "loaded %d moves from %s\n", len(c.Game().Moves()), cfg.InputFile)
	}
	return c.Run()
}

func usage() {
	fmt.Fprintf(os.Stderr, "chess version %s\n\n", programVersion)
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Moves are entered as from and to squares, e.g. e2e4 or e7e8q.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
