package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/adnope/connect4-engine/internal/position"
	"github.com/adnope/connect4-engine/internal/solver"
)

// runFind reads one move sequence per line from stdin and prints its score,
// node count, search time, and best move, mirroring the original CLI's
// find_move loop.
func runFind(s *solver.Solver) error {
	scanner := bufio.NewScanner(os.Stdin)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		seq := scanner.Text()
		if seq == "" {
			continue
		}

		p := position.New()
		if n := p.PlaySequence(seq); n != len(seq) {
			fmt.Fprintf(os.Stderr, "line %d: invalid move %d %q\n", lineNo, n+1, seq)
			continue
		}

		start := time.Now()
		move := s.FindBestMove(p)
		score := s.Solve(p)
		elapsed := time.Since(start)

		fmt.Printf("%s: %d moves, Score: %d, Nodes: %d, Time: %.3f ms, Best move: column %d\n",
			seq, p.Moves(), score, s.NodeCount(), float64(elapsed.Microseconds())/1000, move+1)
	}
	return scanner.Err()
}

// runCfind is --cfind: unlike runFind, the position persists across lines.
// Each line is appended to the running sequence rather than replayed from
// an empty board, so the printed sequence accumulates turn by turn.
func runCfind(s *solver.Solver) error {
	scanner := bufio.NewScanner(os.Stdin)
	p := position.New()
	var seq string
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		if n := p.PlaySequence(line); n != len(line) {
			fmt.Fprintf(os.Stderr, "invalid move: %s\n", line)
			continue
		}
		seq += line

		start := time.Now()
		score := s.Solve(p)
		move := s.FindBestMove(p)
		elapsed := time.Since(start)

		fmt.Printf("%s: %d moves, Score: %d, Nodes: %d, Time: %.3f ms, Best move: column %d\n",
			seq, p.Moves(), score, s.NodeCount(), float64(elapsed.Microseconds())/1000, move+1)
	}
	return scanner.Err()
}
