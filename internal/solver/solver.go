// Package solver implements the negamax alpha-beta searcher with
// null-window iterative deepening that scores Connect Four positions and
// selects moves.
package solver

import (
	"context"
	"math/rand"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/adnope/connect4-engine/internal/position"
	"github.com/adnope/connect4-engine/internal/sorter"
	"github.com/adnope/connect4-engine/internal/table"
)

// columnOrder explores center-out: for Width=7, {3,4,2,5,1,6,0}. Combined
// with the dynamic MoveSorter score, ties break toward the center.
var columnOrder = func() [position.Width]int {
	var order [position.Width]int
	for i := 0; i < position.Width; i++ {
		order[i] = position.Width/2 - (1-2*(i%2))*(i+1)/2
	}
	return order
}()

// Solver is a single negamax searcher backed by one shared transposition
// table. Solve, FindBestMove, and Analyze are mutex-serialized (spec.md §5's
// "shared-serialized model"): one search runs at a time, so writes to the
// memoization table never race.
type Solver struct {
	mu        sync.Mutex
	table     *table.Table
	nodeCount uint64
	rng       *rand.Rand
}

// New returns a Solver backed by t. t's opening-book portion, if any, must
// be populated before the first search and is treated as read-only from
// then on.
func New(t *table.Table) *Solver {
	return &Solver{
		table: t,
		rng:   rand.New(rand.NewSource(1)),
	}
}

// NodeCount returns the number of negamax nodes visited since New or the
// last Reset; it accumulates across Solve/FindBestMove/Analyze calls.
func (s *Solver) NodeCount() uint64 {
	return s.nodeCount
}

// Reset zeroes the node counter and the memoization portion of the table
// (the opening-book portion is never reset, per spec.md §5).
func (s *Solver) Reset() {
	s.nodeCount = 0
	s.table.Reset()
}

// negamax implements the contract of spec.md §4.5: on a position where the
// side to move cannot win this move, it returns a value v such that
//   - if true score <= alpha then v <= alpha and v >= true score
//   - if true score >= beta then v >= beta and v <= true score
//   - otherwise v == true score
func (s *Solver) negamax(p position.Position, alpha, beta int) int {
	s.nodeCount++

	next := p.PossibleNonLosingMoves()
	if next == 0 {
		return -(position.Width*position.Height - p.Moves()) / 2
	}
	if p.Moves() >= position.Width*position.Height-2 {
		return 0
	}

	min := -(position.Width*position.Height - 2 - p.Moves()) / 2
	if alpha < min {
		alpha = min
		if alpha >= beta {
			return alpha
		}
	}

	max := (position.Width*position.Height - 1 - p.Moves()) / 2
	if val := s.table.Get(p.Key3()); val != 0 {
		max = int(val) + position.MinScore - 1
	}
	if beta > max {
		beta = max
		if alpha >= beta {
			return beta
		}
	}

	var moves sorter.Sorter
	for i := position.Width - 1; i >= 0; i-- {
		col := columnOrder[i]
		move := next & columnMask(col)
		if move != 0 {
			moves.Add(move, p.MoveScore(move))
		}
	}

	for move := moves.GetNext(); move != 0; move = moves.GetNext() {
		child := p
		child.Play(move)
		score := -s.negamax(child, -beta, -alpha)
		if score >= beta {
			return score
		}
		if score > alpha {
			alpha = score
		}
	}

	s.table.Put(p.Key3(), uint8(alpha-position.MinScore+1))
	return alpha
}

func columnMask(col int) uint64 {
	return ((uint64(1) << position.Height) - 1) << (col * (position.Height + 1))
}

// Solve returns the game-theoretic score of the side to move in p: positive
// means the side to move wins, negative means they lose, 0 is a draw. The
// magnitude is larger the sooner the game is decided: it is 22 minus the
// number of stones the winner has played when completing four in a row.
func (s *Solver) Solve(p position.Position) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solveLocked(p)
}

func (s *Solver) solveLocked(p position.Position) int {
	if val := s.table.Get(p.Key3()); val != 0 {
		return int(val) + position.MinScore - 1
	}
	if p.CanWinNext() {
		return (position.Width*position.Height + 1 - p.Moves()) / 2
	}

	min := -(position.Width*position.Height - p.Moves()) / 2
	max := (position.Width*position.Height + 1 - p.Moves()) / 2

	for min < max {
		med := min + (max-min)/2
		if med <= 0 && min/2 < med {
			med = min / 2
		} else if med >= 0 && max/2 > med {
			med = max / 2
		}
		r := s.negamax(p, med, med+1)
		if r <= med {
			max = r
		} else {
			min = r
		}
	}
	log.Debug().Int("score", min).Uint64("nodes", s.nodeCount).Msg("solve complete")
	return min
}

// FindBestMove returns a column achieving the best score for the side to
// move, breaking ties uniformly at random among equally-scored columns.
// An empty board returns the center column immediately; an immediately
// winning move is returned without a search. Every legal column is scored
// and grouped, so a fully lost position still returns a legal move; -1 is
// returned only when no column is playable.
func (s *Solver) FindBestMove(p position.Position) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := s.analyzeLocked(p)
	if len(groups) == 0 {
		return -1
	}
	best := groups[0]
	return best[s.rng.Intn(len(best))]
}

// Analyze groups legal columns by descending score: the immediate-win group
// (if any) comes first, otherwise columns are grouped and sorted by score
// descending, with column order randomised within each group. The first
// non-empty group is the set of best moves.
func (s *Solver) Analyze(p position.Position) [][]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analyzeLocked(p)
}

// analyzeLocked is Analyze's body, callable by other Solver methods that
// already hold mu (FindBestMove) without re-entering the lock.
func (s *Solver) analyzeLocked(p position.Position) [][]int {
	var legal []int
	for col := 0; col < position.Width; col++ {
		if p.CanPlay(col) {
			legal = append(legal, col)
		}
	}
	if len(legal) == 0 {
		return nil
	}

	if p.IsEmpty() {
		return [][]int{{position.Width / 2}}
	}

	var winning []int
	for _, col := range legal {
		if p.IsWinningMove(col) {
			winning = append(winning, col)
		}
	}
	if len(winning) > 0 {
		s.shuffle(winning)
		return [][]int{winning}
	}

	scored := make(map[int][]int)
	var scores []int
	for _, col := range legal {
		child := p
		child.PlayCol(col)
		score := -s.solveLocked(child)
		if _, ok := scored[score]; !ok {
			scores = append(scores, score)
		}
		scored[score] = append(scored[score], col)
	}

	sortDescending(scores)
	groups := make([][]int, 0, len(scores))
	for _, score := range scores {
		cols := scored[score]
		s.shuffle(cols)
		groups = append(groups, cols)
	}
	return groups
}

func (s *Solver) shuffle(cols []int) {
	s.rng.Shuffle(len(cols), func(i, j int) { cols[i], cols[j] = cols[j], cols[i] })
}

func sortDescending(scores []int) {
	for i := 1; i < len(scores); i++ {
		v := scores[i]
		j := i - 1
		for j >= 0 && scores[j] < v {
			scores[j+1] = scores[j]
			j--
		}
		scores[j+1] = v
	}
}

// AnalyzeWithContext gives callers (the HTTP layer) a cooperative deadline
// check at the call boundary. The search itself has no cancel point
// mid-recursion (spec.md §5): if ctx is already past its deadline when
// checked, the call returns immediately with a nil result rather than
// starting a fresh search. The HTTP handler's timeout-fallback worker calls
// this instead of Analyze directly.
func (s *Solver) AnalyzeWithContext(ctx context.Context, p position.Position) [][]int {
	if ctx.Err() != nil {
		return nil
	}
	return s.Analyze(p)
}

// RandomIndex returns a uniformly random index in [0, n) drawn from the
// solver's generator. Locked because s.rng is not safe for concurrent use,
// so it waits for any search in progress to finish.
func (s *Solver) RandomIndex(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// RandomMove returns a uniformly random legal column, or -1 when every
// column is full. Locked for the same reason as RandomIndex.
func (s *Solver) RandomMove(p position.Position) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var legal []int
	for col := 0; col < position.Width; col++ {
		if p.CanPlay(col) {
			legal = append(legal, col)
		}
	}
	if len(legal) == 0 {
		return -1
	}
	return legal[s.rng.Intn(len(legal))]
}
