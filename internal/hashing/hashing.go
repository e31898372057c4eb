// Package hashing provides position hashing and duplicate detection for
// finished games and search trees.
package hashing

import "github.com/lgbarn/chess-rules-go/internal/chess"

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]Signature
	// useExactMatch also requires the ply counts to agree
	useExactMatch bool
	// maxCapacity bounds the stored signatures; 0 means unlimited
	maxCapacity int
	// stored is the number of signatures in hashTable
	stored int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// Signature identifies a position reached after a number of half-moves.
type Signature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// Plies is the number of half-moves played to reach it
	Plies int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]Signature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd reports whether pos has been seen before and records it if
// not. Once the detector is full new positions are checked but not stored.
func (d *DuplicateDetector) CheckAndAdd(pos *chess.Position, plies int) bool {
	if pos == nil {
		return false
	}

	sig := Signature{Hash: Zobrist(pos), Plies: plies}
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.stored++
	return false
}

// signaturesMatch checks if two signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash {
		return false
	}
	return !d.useExactMatch || a.Plies == b.Plies
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.stored >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.stored = 0
	d.duplicateCount = 0
}
