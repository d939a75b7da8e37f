// Package generator builds the opening book offline: it enumerates
// reachable positions, solves them in a resumable batch pass, and converts
// the result to the binary format internal/book expects.
package generator

import (
	"bufio"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/adnope/connect4-engine/internal/position"
)

// MinBookMoves is the shallowest ply depth recorded by Explore. Shallower
// positions are cheap enough for the solver to score on the fly; recording
// them would bloat the book for no measurable speedup.
const MinBookMoves = 13

// Explore performs a depth-bounded DFS from the empty board, writing the
// move sequence of every unique position (by Key3, so mirror images count
// once) whose ply count falls in [MinBookMoves, depth] to w, one sequence
// per line. It returns the number of sequences written. Winning moves are
// never descended past: a position one move from a forced win carries no
// information an opening book needs to store.
func Explore(depth int, w io.Writer) (int, error) {
	return exploreWindow(MinBookMoves, depth, w)
}

// exploreWindow is Explore generalised to an arbitrary [minMoves, maxMoves]
// recording window, so tests can exercise the traversal at shallow, fast
// depths without waiting on the real MinBookMoves cutoff.
func exploreWindow(minMoves, maxMoves int, w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	visited := make(map[uint64]struct{})
	buf := make([]byte, maxMoves)
	count := 0
	var walkErr error

	var walk func(p position.Position)
	walk = func(p position.Position) {
		if walkErr != nil {
			return
		}
		key := p.Key3()
		if _, seen := visited[key]; seen {
			return
		}
		visited[key] = struct{}{}

		moves := p.Moves()
		if moves >= minMoves && moves <= maxMoves {
			if _, err := bw.Write(buf[:moves]); err != nil {
				walkErr = err
				return
			}
			if _, err := bw.WriteString("\n"); err != nil {
				walkErr = err
				return
			}
			count++
		}
		if moves >= maxMoves {
			return
		}

		for col := 0; col < position.Width; col++ {
			if !p.CanPlay(col) || p.IsWinningMove(col) {
				continue
			}
			child := p
			child.PlayCol(col)
			buf[moves] = byte('1' + col)
			walk(child)
		}
	}

	walk(position.New())
	if walkErr != nil {
		return count, walkErr
	}
	if err := bw.Flush(); err != nil {
		return count, err
	}
	log.Info().Int("min_moves", minMoves).Int("max_moves", maxMoves).Int("positions", count).Msg("explore complete")
	return count, nil
}
