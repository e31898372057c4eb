package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestLedger_RecordAndGet(t *testing.T) {
	l := openTestLedger(t)

	rec, err := l.RecordGame(GameRecord{
		Result: "0-1",
		Reason: "checkmate",
		Moves:  []string{"f2f3", "e7e5", "g2g4", "d8h4"},
	})
	testutil.AssertNoError(t, err)

	if _, err := uuid.Parse(rec.ID); err != nil {
		t.Errorf("record ID %q is not a UUID: %v", rec.ID, err)
	}
	testutil.AssertFalse(t, rec.FinishedAt.IsZero(), "finish time should be set")
	testutil.AssertEqual(t, rec.Plies(), 4)

	got, err := l.Get(rec.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, got.FinishedAt.Equal(rec.FinishedAt))
	got.FinishedAt = rec.FinishedAt
	testutil.AssertEqual(t, got, rec)
}

func TestLedger_GetMissing(t *testing.T) {
	l := openTestLedger(t)
	_, err := l.Get("no-such-game")
	testutil.AssertErrorIs(t, err, errors.ErrRecordNotFound)
}

func TestLedger_Stats(t *testing.T) {
	l := openTestLedger(t)

	empty, err := l.Stats()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, empty, Stats{})

	records := []GameRecord{
		{Result: "1-0", Reason: "checkmate", Moves: make([]string, 7)},
		{Result: "0-1", Reason: "checkmate", Moves: make([]string, 4)},
		{Result: "1/2-1/2", Reason: "stalemate", Moves: make([]string, 30)},
		{Result: "1-0", Reason: "checkmate", Moves: make([]string, 11)},
	}
	for _, rec := range records {
		_, err := l.RecordGame(rec)
		testutil.AssertNoError(t, err)
	}

	stats, err := l.Stats()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stats, Stats{
		GamesPlayed: 4,
		WhiteWins:   2,
		BlackWins:   1,
		Draws:       1,
		LongestGame: 30,
	})
}

func TestLedger_ListOrdered(t *testing.T) {
	l := openTestLedger(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, offset := range []int{3, 1, 2} {
		_, err := l.RecordGame(GameRecord{
			Result:     "1/2-1/2",
			Reason:     "draw",
			Moves:      make([]string, i+1),
			FinishedAt: base.Add(time.Duration(offset) * time.Hour),
		})
		testutil.AssertNoError(t, err)
	}

	list, err := l.List()
	testutil.AssertNoError(t, err)
	if len(list) != 3 {
		t.Fatalf("List() returned %d records, want 3", len(list))
	}
	testutil.AssertEqual(t, []int{list[0].Plies(), list[1].Plies(), list[2].Plies()}, []int{2, 3, 1})
}

func TestLedger_Reopen(t *testing.T) {
	dir := t.TempDir()

	l, err := Open(dir)
	testutil.AssertNoError(t, err)
	rec, err := l.RecordGame(GameRecord{Result: "1-0", Reason: "checkmate"})
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, l.Close())

	reopened, err := Open(dir)
	testutil.AssertNoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(rec.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got.Result, "1-0")

	stats, err := reopened.Stats()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stats.GamesPlayed, 1)
}

func TestLedger_InMemory(t *testing.T) {
	l, err := OpenInMemory()
	testutil.AssertNoError(t, err)
	defer l.Close()

	_, err = l.RecordGame(GameRecord{Result: "0-1", Reason: "checkmate"})
	testutil.AssertNoError(t, err)

	list, err := l.List()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(list), 1)
}

func TestLedger_FindByPosition(t *testing.T) {
	l := openTestLedger(t)

	first, err := l.RecordGame(GameRecord{Result: "0-1", Moves: []string{"f2f3", "e7e5", "g2g4", "d8h4"}, FinalHash: 0xABCDEF})
	testutil.AssertNoError(t, err)
	_, err = l.RecordGame(GameRecord{Result: "1/2-1/2", FinalHash: 0x1234})
	testutil.AssertNoError(t, err)
	second, err := l.RecordGame(GameRecord{Result: "0-1", Moves: []string{"g2g4", "e7e5", "f2f3", "d8h4"}, FinalHash: 0xABCDEF})
	testutil.AssertNoError(t, err)

	found, err := l.FindByPosition(0xABCDEF)
	testutil.AssertNoError(t, err)
	ids := make(map[string]bool)
	for _, rec := range found {
		ids[rec.ID] = true
	}
	testutil.AssertEqual(t, ids, map[string]bool{first.ID: true, second.ID: true})

	none, err := l.FindByPosition(0xABCDE)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(none), 0, "hash prefixes must not match")

	list, err := l.List()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(list), 3, "index entries are not listed as games")
}

func TestLedger_Closed(t *testing.T) {
	l, err := OpenInMemory()
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, l.Close())
	testutil.AssertNoError(t, l.Close(), "second Close")

	_, err = l.RecordGame(GameRecord{Result: "1-0"})
	testutil.AssertErrorIs(t, err, errors.ErrLedgerClosed)
	_, err = l.Get("x")
	testutil.AssertErrorIs(t, err, errors.ErrLedgerClosed)
	_, err = l.List()
	testutil.AssertErrorIs(t, err, errors.ErrLedgerClosed)
	_, err = l.Stats()
	testutil.AssertErrorIs(t, err, errors.ErrLedgerClosed)
	_, err = l.FindByPosition(0)
	testutil.AssertErrorIs(t, err, errors.ErrLedgerClosed)
}
