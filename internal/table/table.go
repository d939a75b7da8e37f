// Package table implements the fixed-size transposition table used both as
// search memoization and, loaded from disk, as the opening book store.
package table

import (
	"github.com/pbnjay/memory"
)

// DefaultCapacity is the reference implementation's memoization-array
// budget: 2^26 entries (~600MB resident: 8 bytes in the uint64 key array
// plus 1 byte in the uint8 value array per entry). NewDefault scales this
// down on constrained hosts.
const DefaultCapacity = 1 << 26

// bytesPerEntry approximates the footprint of one memo-array slot (an
// 8-byte key plus a 1-byte value, rounded up for alignment).
const bytesPerEntry = 16

// Table is the split design spec.md's Open Question (a) calls out: a lossy,
// direct-mapped array for search-time memoization, plus a never-evicted map
// for opening-book entries loaded once at startup. Get checks the opening
// store first.
type Table struct {
	memoKeys   []uint64
	memoValues []uint8
	opening    map[uint64]uint8
}

// New returns a Table whose memoization array holds capacity entries.
// capacity should be prime-sized relative to expected key distribution; the
// zero value is not usable, use NewDefault for a host-sized table.
func New(capacity int) *Table {
	if capacity <= 0 {
		capacity = 1
	}
	return &Table{
		memoKeys:   make([]uint64, capacity),
		memoValues: make([]uint8, capacity),
		opening:    make(map[uint64]uint8),
	}
}

// NewDefault sizes the memoization array relative to available host memory,
// the way github.com/domino14/macondo sizes its in-memory search structures
// off github.com/pbnjay/memory, capped at DefaultCapacity.
func NewDefault() *Table {
	capacity := DefaultCapacity
	if avail := memory.TotalMemory(); avail > 0 {
		budget := int(avail / 8 / bytesPerEntry) // at most 1/8th of RAM
		if budget > 0 && budget < capacity {
			capacity = nextPrime(budget)
		}
	}
	return New(capacity)
}

// Put stores value at key. value must be non-zero (0 means "empty/miss").
// Put always targets the lossy memo array; opening-book entries are loaded
// through PutOpening instead so they are never evicted by search writes.
func (t *Table) Put(key uint64, value uint8) {
	idx := key % uint64(len(t.memoKeys))
	t.memoKeys[idx] = key
	t.memoValues[idx] = value
}

// PutOpening installs a never-evicted opening-book entry. Used only during
// book/warmup loading, before the table is shared with concurrent search.
func (t *Table) PutOpening(key uint64, value uint8) {
	t.opening[key] = value
}

// Get returns the stored value for key, or 0 on a miss. The opening store is
// consulted first since it is authoritative and collision-free.
func (t *Table) Get(key uint64) uint8 {
	if v, ok := t.opening[key]; ok {
		return v
	}
	idx := key % uint64(len(t.memoKeys))
	if t.memoKeys[idx] == key {
		return t.memoValues[idx]
	}
	return 0
}

// Reset zeroes the memoization array. Opening-book entries are untouched:
// they are populated once at startup and are read-only for the lifetime of
// the process (spec.md §5).
func (t *Table) Reset() {
	for i := range t.memoKeys {
		t.memoKeys[i] = 0
		t.memoValues[i] = 0
	}
}

// Len reports the memoization array's capacity.
func (t *Table) Len() int {
	return len(t.memoKeys)
}

// Opening exposes the opening-book store for iteration (used by
// internal/book when saving a table back to disk).
func (t *Table) Opening() map[uint64]uint8 {
	return t.opening
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func nextPrime(n int) int {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}
	for !isPrime(n) {
		n += 2
	}
	return n
}
