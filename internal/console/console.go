// Package console runs the text command loop for playing a game: moves
// and commands are read line by line and the board and status are written
// back after each one.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/storage"
)

// Recorder stores finished games and looks them up. *storage.Ledger
// implements it.
type Recorder interface {
	RecordGame(rec storage.GameRecord) (storage.GameRecord, error)
	Stats() (storage.Stats, error)
	List() ([]storage.GameRecord, error)
	FindByPosition(hash uint64) ([]storage.GameRecord, error)
}

// commandFunc handles one command; arg is the text after the command word.
type commandFunc func(c *Console, arg string)

// commands maps lowercase command words to handlers. Anything else is
// played as a move.
var commands = map[string]commandFunc{
	"help":    (*Console).cmdHelp,
	"moves":   (*Console).cmdMoves,
	"history": (*Console).cmdHistory,
	"undo":    (*Console).cmdUndo,
	"new":     (*Console).cmdNew,
	"save":    (*Console).cmdSave,
	"load":    (*Console).cmdLoad,
	"stats":   (*Console).cmdStats,
	"games":   (*Console).cmdGames,
	"same":    (*Console).cmdSame,
}

// Console is one interactive session.
type Console struct {
	cfg      *config.Config
	game     *game.Game
	ledger   Recorder
	in       *bufio.Scanner
	out      io.Writer
	recorded bool
}

// New creates a console reading commands from in and writing to
// cfg.OutputFile. ledger may be nil to disable recording.
func New(cfg *config.Config, in io.Reader, ledger Recorder) *Console {
	return &Console{
		cfg:    cfg,
		game:   game.New(cfg),
		ledger: ledger,
		in:     bufio.NewScanner(in),
		out:    cfg.OutputFile,
	}
}

// Game returns the game being played.
func (c *Console) Game() *game.Game {
	return c.game
}

// Run prints the welcome text and processes commands until quit or end of
// input. Only a read error is returned.
func (c *Console) Run() error {
	c.printWelcome()

	for {
		c.printState()
		fmt.Fprint(c.out, "\n"+c.cfg.Console.Prompt)

		if !c.in.Scan() {
			fmt.Fprintln(c.out)
			return c.in.Err()
		}
		if quit := c.Execute(c.in.Text()); quit {
			fmt.Fprintln(c.out, "\nThanks for playing!")
			return nil
		}
	}
}

// Execute handles one input line and reports whether the session should end.
func (c *Console) Execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	word, arg, _ := strings.Cut(input, " ")
	word = strings.ToLower(word)
	if word == "quit" || word == "exit" {
		return true
	}

	if handler, ok := commands[word]; ok {
		handler(c, strings.TrimSpace(arg))
	} else {
		c.playMove(input)
	}

	c.recordIfFinished()
	return false
}

func (c *Console) printWelcome() {
	fmt.Fprintln(c.out, "======================================")
	fmt.Fprintln(c.out, "               CHESS")
	fmt.Fprintln(c.out, "======================================")
	fmt.Fprintln(c.out, "\nCommands:")
	fmt.Fprintln(c.out, "  - Make a move: e2e4, a7a5, etc.")
	fmt.Fprintln(c.out, "  - Castling: e1g1 (king side), e1c1 (queen side)")
	fmt.Fprintln(c.out, "  - Promotion: e7e8Q (add Q/R/B/N for promotion)")
	fmt.Fprintln(c.out, "  - 'help' - Show this help")
	fmt.Fprintln(c.out, "  - 'moves' - Show legal moves")
	fmt.Fprintln(c.out, "  - 'history' - Show move history")
	fmt.Fprintln(c.out, "  - 'undo' - Undo last move")
	fmt.Fprintln(c.out, "  - 'new' - Start new game")
	fmt.Fprintln(c.out, "  - 'save <filename>' - Save game")
	fmt.Fprintln(c.out, "  - 'load <filename>' - Load game")
	fmt.Fprintln(c.out, "  - 'stats' - Show recorded results")
	fmt.Fprintln(c.out, "  - 'games' - List recorded games")
	fmt.Fprintln(c.out, "  - 'same' - List recorded games that ended in this position")
	fmt.Fprintln(c.out, "  - 'quit' - Exit game")
}

// printState writes the board, if enabled, and any check or result message.
func (c *Console) printState() {
	pos := c.game.Position()
	if c.cfg.Console.ShowBoard {
		fmt.Fprint(c.out, "\n"+RenderBoard(&pos, c.cfg.Console.Coordinates))
	}
	if status := RenderStatus(&pos, c.game.Result()); status != "" {
		fmt.Fprintln(c.out, "\n"+status)
	}
	if c.game.Result().IsTerminal() {
		fmt.Fprintln(c.out, "\nGame over! Type 'new' to start a new game or 'quit' to exit.")
	}
}

func (c *Console) playMove(input string) {
	if err := c.game.MakeMove(input); err != nil {
		fmt.Fprintf(c.out, "\nInvalid move: %s (%v)\n", input, err)
		fmt.Fprintln(c.out, "Type 'help' for command list or 'moves' for legal moves.")
		return
	}
	moves := c.game.Moves()
	fmt.Fprintf(c.out, "\nMove played: %s\n", notation.FormatMove(moves[len(moves)-1]))
}

// recordIfFinished writes a newly finished game to the ledger once.
func (c *Console) recordIfFinished() {
	result := c.game.Result()
	if !result.IsTerminal() {
		c.recorded = false
		return
	}
	if c.recorded || c.ledger == nil {
		return
	}
	c.recorded = true

	pos := c.game.Position()
	rec, err := c.ledger.RecordGame(storage.GameRecord{
		Result:    result.String(),
		Reason:    reason(c.game),
		Moves:     notation.FormatMoves(c.game.Moves()),
		FinalFEN:  engine.FEN(&pos),
		FinalHash: hashing.Zobrist(&pos),
	})
	if err != nil {
		c.cfg.Logf(0, "recording game: %v\n", err)
		return
	}
	c.cfg.Logf(1, "recorded game %s (%s)\n", rec.ID, rec.Result)
}

// reason names how a finished game ended.
func reason(g *game.Game) string {
	if _, decisive := g.Result().Winner(); decisive {
		return "checkmate"
	}
	if g.Engine().IsStalemate() {
		return "stalemate"
	}
	if g.Position().HalfmoveClock >= engine.FiftyMoveHalfmoves {
		return "fifty-move rule"
	}
	return "insufficient material"
}

func (c *Console) cmdHelp(string) {
	fmt.Fprintln(c.out, "\nChess Move Format:")
	fmt.Fprintln(c.out, "  Standard: [from][to] (e.g., e2e4)")
	fmt.Fprintln(c.out, "  Promotion: [from][to][piece] (e.g., e7e8Q)")
	fmt.Fprintln(c.out, "  Piece codes: Q=Queen, R=Rook, B=Bishop, N=Knight")
	fmt.Fprintln(c.out, "\nExamples:")
	fmt.Fprintln(c.out, "  e2e4     - Pawn from e2 to e4")
	fmt.Fprintln(c.out, "  g1f3     - Knight from g1 to f3")
	fmt.Fprintln(c.out, "  e1g1     - King-side castling (white)")
	fmt.Fprintln(c.out, "  e7e8Q    - Pawn promotion to Queen")
	fmt.Fprintln(c.out, "\nCommands: help, moves, history, undo, new, save, load, stats, games, same, quit")
}

func (c *Console) cmdMoves(string) {
	fmt.Fprint(c.out, "\n"+RenderMoveList(c.game.LegalMoveStrings()))
}

func (c *Console) cmdHistory(string) {
	history := c.game.MoveHistory()
	if history == "" {
		history = "(no moves)"
	}
	fmt.Fprintln(c.out, "\nMove History:\n"+history)
}

func (c *Console) cmdUndo(string) {
	if err := c.game.UndoLastMove(); err != nil {
		fmt.Fprintln(c.out, "\nNo moves to undo.")
		return
	}
	fmt.Fprintln(c.out, "\nMove undone.")
}

func (c *Console) cmdNew(string) {
	c.game.NewGame()
	fmt.Fprintln(c.out, "\nNew game started.")
}

func (c *Console) cmdSave(filename string) {
	if filename == "" {
		fmt.Fprintln(c.out, "\nUsage: save <filename>")
		return
	}
	if err := c.game.SaveFile(filename); err != nil {
		fmt.Fprintf(c.out, "\nFailed to save game: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "\nGame saved to %s\n", filename)
}

func (c *Console) cmdLoad(filename string) {
	if filename == "" {
		fmt.Fprintln(c.out, "\nUsage: load <filename>")
		return
	}
	if err := c.game.LoadFile(filename); err != nil {
		fmt.Fprintf(c.out, "\nFailed to load game: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "\nGame loaded from %s\n", filename)
}

// hasLedger reports whether recording is enabled, telling the player if not.
func (c *Console) hasLedger() bool {
	if c.ledger == nil {
		fmt.Fprintln(c.out, "\nNo game ledger configured.")
		return false
	}
	return true
}

func (c *Console) cmdStats(string) {
	if !c.hasLedger() {
		return
	}
	stats, err := c.ledger.Stats()
	if err != nil {
		fmt.Fprintf(c.out, "\nCannot read statistics: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "\nGames played: %d\n", stats.GamesPlayed)
	fmt.Fprintf(c.out, "White wins:   %d\n", stats.WhiteWins)
	fmt.Fprintf(c.out, "Black wins:   %d\n", stats.BlackWins)
	fmt.Fprintf(c.out, "Draws:        %d\n", stats.Draws)
	fmt.Fprintf(c.out, "Longest game: %d plies\n", stats.LongestGame)
}

func (c *Console) cmdGames(string) {
	if !c.hasLedger() {
		return
	}
	records, err := c.ledger.List()
	if err != nil {
		fmt.Fprintf(c.out, "\nCannot list games: %v\n", err)
		return
	}
	c.printRecords("Recorded games", records)
}

func (c *Console) cmdSame(string) {
	if !c.hasLedger() {
		return
	}
	pos := c.game.Position()
	records, err := c.ledger.FindByPosition(hashing.Zobrist(&pos))
	if err != nil {
		fmt.Fprintf(c.out, "\nCannot search games: %v\n", err)
		return
	}
	c.printRecords("Games ending in this position", records)
}

// printRecords writes one line per game, oldest first.
func (c *Console) printRecords(title string, records []storage.GameRecord) {
	fmt.Fprintf(c.out, "\n%s (%d):\n", title, len(records))
	for i := range records {
		rec := &records[i]
		fmt.Fprintf(c.out, "  %s  %-7s  %-21s  %3d plies  %s\n",
			shortID(rec.ID), rec.Result, rec.Reason, rec.Plies(),
			rec.FinishedAt.Format("2006-01-02 15:04"))
	}
}

// shortID trims a game ID to its first block.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
