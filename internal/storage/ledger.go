// Package storage keeps a ledger of finished games in BadgerDB.
package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Storage keys
const (
	keyStats       = "stats"
	gamePrefix     = "game/"
	positionPrefix = "pos/"
)

// GameRecord is one finished game.
type GameRecord struct {
	ID         string    `json:"id"`
	Result     string    `json:"result"` // "1-0", "0-1" or "1/2-1/2"
	Reason     string    `json:"reason"` // checkmate, stalemate, draw
	Moves      []string  `json:"moves"`
	FinalFEN   string    `json:"final_fen"`
	FinalHash  uint64    `json:"final_hash"` // Zobrist hash of the final position
	FinishedAt time.Time `json:"finished_at"`
}

// Plies returns the number of half-moves played.
func (r *GameRecord) Plies() int {
	return len(r.Moves)
}

// Stats aggregates every recorded game.
type Stats struct {
	GamesPlayed int `json:"games_played"`
	WhiteWins   int `json:"white_wins"`
	BlackWins   int `json:"black_wins"`
	Draws       int `json:"draws"`
	LongestGame int `json:"longest_game"` // in plies
}

// add counts one more game into the totals.
func (s *Stats) add(rec *GameRecord) {
	s.GamesPlayed++
	switch rec.Result {
	case "1-0":
		s.WhiteWins++
	case "0-1":
		s.BlackWins++
	default:
		s.Draws++
	}
	if rec.Plies() > s.LongestGame {
		s.LongestGame = rec.Plies()
	}
}

// Ledger wraps BadgerDB for the finished-game record.
type Ledger struct {
	db  *badger.DB
	now func() time.Time
}

// Open opens or creates a ledger in dir.
func Open(dir string) (*Ledger, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens a ledger that lives only as long as the process.
func OpenInMemory() (*Ledger, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Ledger, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening ledger")
	}
	return &Ledger{db: db, now: time.Now}, nil
}

// Close closes the database. Further calls fail with ErrLedgerClosed.
func (l *Ledger) Close() error {
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// RecordGame stores rec under a fresh ID and updates the totals in the
// same transaction. The stored record is returned.
func (l *Ledger) RecordGame(rec GameRecord) (GameRecord, error) {
	if l.db == nil {
		return GameRecord{}, errors.ErrLedgerClosed
	}

	rec.ID = uuid.NewString()
	if rec.FinishedAt.IsZero() {
		rec.FinishedAt = l.now().UTC()
	}

	data, err := json.Marshal(&rec)
	if err != nil {
		return GameRecord{}, err
	}

	err = l.db.Update(func(txn *badger.Txn) error {
		stats, err := loadStats(txn)
		if err != nil {
			return err
		}
		stats.add(&rec)
		statsData, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		if err := txn.Set([]byte(gamePrefix+rec.ID), data); err != nil {
			return err
		}
		if err := txn.Set(positionKey(rec.FinalHash, rec.ID), nil); err != nil {
			return err
		}
		return txn.Set([]byte(keyStats), statsData)
	})
	if err != nil {
		return GameRecord{}, errors.Wrap(err, "recording game")
	}
	return rec, nil
}

// Get loads the record with the given ID.
func (l *Ledger) Get(id string) (GameRecord, error) {
	if l.db == nil {
		return GameRecord{}, errors.ErrLedgerClosed
	}

	var rec GameRecord
	err := l.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(gamePrefix + id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%s: %w", id, errors.ErrRecordNotFound)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	return rec, err
}

// List returns every record, oldest first.
func (l *Ledger) List() ([]GameRecord, error) {
	if l.db == nil {
		return nil, errors.ErrLedgerClosed
	}

	var records []GameRecord
	err := l.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec GameRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortRecords(records)
	return records, nil
}

// sortRecords orders records by finish time, then ID.
func sortRecords(records []GameRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].FinishedAt.Equal(records[j].FinishedAt) {
			return records[i].FinishedAt.Before(records[j].FinishedAt)
		}
		return records[i].ID < records[j].ID
	})
}

// positionKey indexes a game by the hash of its final position.
func positionKey(hash uint64, id string) []byte {
	return []byte(fmt.Sprintf("%s%016x/%s", positionPrefix, hash, id))
}

// FindByPosition returns the games whose final position has the given
// hash, oldest first.
func (l *Ledger) FindByPosition(hash uint64) ([]GameRecord, error) {
	if l.db == nil {
		return nil, errors.ErrLedgerClosed
	}

	var ids []string
	err := l.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := positionKey(hash, "")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			ids = append(ids, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	records := make([]GameRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := l.Get(id)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	sortRecords(records)
	return records, nil
}

// Stats returns the totals, or zero totals for an empty ledger.
func (l *Ledger) Stats() (Stats, error) {
	if l.db == nil {
		return Stats{}, errors.ErrLedgerClosed
	}

	var stats *Stats
	err := l.db.View(func(txn *badger.Txn) error {
		var err error
		stats, err = loadStats(txn)
		return err
	})
	if err != nil {
		return Stats{}, err
	}
	return *stats, nil
}

// loadStats reads the totals inside txn, returning empty totals if unset.
func loadStats(txn *badger.Txn) (*Stats, error) {
	stats := &Stats{}
	item, err := txn.Get([]byte(keyStats))
	if err == badger.ErrKeyNotFound {
		return stats, nil
	}
	if err != nil {
		return nil, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, stats)
	})
	return stats, err
}
