// Package sorter implements the move-ordering buffer used inside the
// negamax loop to explore promising moves first.
package sorter

import "github.com/adnope/connect4-engine/internal/position"

type entry struct {
	move  uint64
	score int
}

// Sorter is a stack-allocated, insertion-sorted buffer of at most
// position.Width (move, heuristic-score) pairs, iterated best-first by
// GetNext. It is reset between calls; its lifetime is bounded to one
// negamax recursion frame.
type Sorter struct {
	entries [position.Width]entry
	size    int
}

// Add inserts move with heuristic score, keeping entries sorted so the
// highest score ends up last.
func (s *Sorter) Add(move uint64, score int) {
	pos := s.size
	s.size++
	for pos != 0 && s.entries[pos-1].score > score {
		s.entries[pos] = s.entries[pos-1]
		pos--
	}
	s.entries[pos] = entry{move: move, score: score}
}

// GetNext pops and returns the highest-scoring remaining move, or 0 once the
// buffer is exhausted.
func (s *Sorter) GetNext() uint64 {
	if s.size == 0 {
		return 0
	}
	s.size--
	return s.entries[s.size].move
}

// Reset empties the buffer for reuse.
func (s *Sorter) Reset() {
	s.size = 0
}
