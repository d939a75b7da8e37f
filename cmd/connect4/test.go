package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/adnope/connect4-engine/internal/position"
	"github.com/adnope/connect4-engine/internal/solver"
)

// runTest benchmarks s against a file of "<sequence> <correct score>"
// lines, the way the original runTest() validates against a reference
// score file.
func runTest(s *solver.Solver, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open test suite: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	total, passed := 0, 0
	for lineNo := 1; scanner.Scan(); lineNo++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			continue
		}
		seq := fields[0]
		correct, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "line %d: invalid score %q\n", lineNo, fields[1])
			continue
		}

		p := position.New()
		if n := p.PlaySequence(seq); n != len(seq) {
			fmt.Printf("line %d: invalid move %d %q\n", lineNo, n+1, seq)
			continue
		}

		total++
		s.Reset()
		score := s.Solve(p)
		if score == correct {
			passed++
			fmt.Printf("%s: score %d [correct]\n", seq, score)
		} else {
			fmt.Printf("%s: score %d, expected %d [INCORRECT]\n", seq, score, correct)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	fmt.Printf("%d/%d correct\n", passed, total)
	return nil
}
