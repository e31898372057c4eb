package game

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// Save writes the played moves, one per line.
func (g *Game) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, move := range g.moves {
		if _, err := fmt.Fprintln(bw, notation.FormatMove(move)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveFile writes the transcript to path, replacing any existing file.
func (g *Game) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating transcript")
	}
	if err := g.Save(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", path)
	}
	g.cfg.Logf(1, "saved %d moves to %s\n", len(g.moves), path)
	return nil
}

// Load starts a new game and replays a transcript, one move per line.
// Blank lines are skipped. On the first move that fails the game is reset
// to the starting position and a *errors.TranscriptError is returned.
func (g *Game) Load(r io.Reader, name string) error {
	g.NewGame()

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if err := g.MakeMove(text); err != nil {
			g.NewGame()
			g.cfg.Logf(1, "%s:%d: cannot play %q: %v\n", name, lineNum, text, err)
			return &errors.TranscriptError{Err: err, File: name, Line: lineNum, MoveText: text}
		}
	}
	if err := scanner.Err(); err != nil {
		g.NewGame()
		return &errors.TranscriptError{Err: err, File: name, Line: lineNum}
	}

	g.cfg.Logf(1, "loaded %d moves from %s\n", len(g.moves), name)
	return nil
}

// LoadFile replays the transcript at path.
func (g *Game) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening transcript")
	}
	defer f.Close()
	return g.Load(f, path)
}
